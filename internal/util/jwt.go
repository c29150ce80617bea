package util

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// Satu format token melayani tiga jenis principal. Klaim "id" berisi
// angka untuk pelajar/mentor dan string untuk admin; pembedanya murni
// tipe runtime klaim tersebut, jadi parsing mencoba interpretasi
// integer lebih dulu lalu jatuh ke string.

type PrincipalKind int

const (
	PrincipalUser PrincipalKind = iota
	PrincipalAdmin
)

// Principal adalah hasil dekode token dinamis.
type Principal struct {
	Kind    PrincipalKind
	UserID  uint
	AdminID string
}

// GenerateToken menandatangani klaim id (uint untuk pelajar/mentor,
// string untuk admin) dengan HS256. Gagal menandatangani berarti
// misconfiguration dan dikembalikan apa adanya ke pemanggil.
func GenerateToken(id interface{}, secret string, expiration time.Duration) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"id":  id,
		"iat": jwt.NewNumericDate(now),
		"exp": jwt.NewNumericDate(now.Add(expiration)),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

func parseClaims(tokenString, secret string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

// ParseUserToken membaca token pelajar/mentor dan mengembalikan id numerik.
func ParseUserToken(tokenString, secret string) (uint, error) {
	p, err := ParseDynamicToken(tokenString, secret)
	if err != nil {
		return 0, err
	}
	if p.Kind != PrincipalUser {
		return 0, ErrInvalidToken
	}
	return p.UserID, nil
}

// ParseAdminToken membaca token admin dan mengembalikan id string.
func ParseAdminToken(tokenString, secret string) (string, error) {
	p, err := ParseDynamicToken(tokenString, secret)
	if err != nil {
		return "", err
	}
	if p.Kind != PrincipalAdmin {
		return "", ErrInvalidToken
	}
	return p.AdminID, nil
}

// ParseDynamicToken menerima token dari principal mana pun dan
// menentukan variannya dari bentuk klaim id.
func ParseDynamicToken(tokenString, secret string) (*Principal, error) {
	claims, err := parseClaims(tokenString, secret)
	if err != nil {
		return nil, err
	}

	raw, ok := claims["id"]
	if !ok || raw == nil {
		return nil, ErrInvalidToken
	}

	switch id := raw.(type) {
	case float64:
		return &Principal{Kind: PrincipalUser, UserID: uint(id)}, nil
	case string:
		if n, convErr := strconv.Atoi(id); convErr == nil {
			return &Principal{Kind: PrincipalUser, UserID: uint(n)}, nil
		}
		return &Principal{Kind: PrincipalAdmin, AdminID: id}, nil
	}
	return nil, ErrInvalidToken
}

// GetPrincipalFromContext mengambil hasil dekode token yang disimpan
// middleware auth di context gin.
func GetPrincipalFromContext(c *gin.Context) *Principal {
	v, exists := c.Get("principal")
	if !exists {
		return nil
	}
	p, ok := v.(*Principal)
	if !ok {
		return nil
	}
	return p
}
