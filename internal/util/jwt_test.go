package util

import (
	"testing"
	"time"
)

const testSecret = "unit-test-secret"

func TestUserTokenRoundTrip(t *testing.T) {
	token, err := GenerateToken(uint(7), testSecret, time.Hour)
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}

	p, err := ParseDynamicToken(token, testSecret)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if p.Kind != PrincipalUser || p.UserID != 7 {
		t.Fatalf("expected user principal 7, got %+v", p)
	}
}

func TestAdminTokenRoundTrip(t *testing.T) {
	token, err := GenerateToken("root-admin", testSecret, time.Hour)
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}

	p, err := ParseDynamicToken(token, testSecret)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if p.Kind != PrincipalAdmin || p.AdminID != "root-admin" {
		t.Fatalf("expected admin principal root-admin, got %+v", p)
	}
}

// Klaim id berupa string numerik tetap dianggap user, bukan admin.
func TestNumericStringClaimIsUser(t *testing.T) {
	token, err := GenerateToken("42", testSecret, time.Hour)
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}

	p, err := ParseDynamicToken(token, testSecret)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if p.Kind != PrincipalUser || p.UserID != 42 {
		t.Fatalf("expected user principal 42, got %+v", p)
	}
}

func TestTamperedTokenRejected(t *testing.T) {
	token, _ := GenerateToken(uint(7), testSecret, time.Hour)

	if _, err := ParseDynamicToken(token+"x", testSecret); err != ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken for tampered token, got %v", err)
	}
	if _, err := ParseDynamicToken(token, "wrong-secret"); err != ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken for wrong secret, got %v", err)
	}
}

func TestExpiredTokenRejected(t *testing.T) {
	token, _ := GenerateToken(uint(7), testSecret, -time.Minute)

	if _, err := ParseDynamicToken(token, testSecret); err != ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken for expired token, got %v", err)
	}
}

func TestTypedParsersRejectOppositeKind(t *testing.T) {
	userToken, _ := GenerateToken(uint(7), testSecret, time.Hour)
	adminToken, _ := GenerateToken("root-admin", testSecret, time.Hour)

	if _, err := ParseUserToken(adminToken, testSecret); err != ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
	if _, err := ParseAdminToken(userToken, testSecret); err != ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}
