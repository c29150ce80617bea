package service_test

import (
	"errors"
	"testing"

	"swift_elearning_backend/internal/model"
	"swift_elearning_backend/internal/service"
	"swift_elearning_backend/internal/util"
)

func TestRequireMentor(t *testing.T) {
	asal := "Universitas Indonesia"
	authz := service.NewAuthzService(fakeMentorStore{
		1: {UID: 1, Asal: &asal, IsVerified: true},
		2: {UID: 2}, // terdaftar tapi asal masih kosong
	}, fakeAdminStore{})

	if _, err := authz.RequireMentor(1); err != nil {
		t.Fatalf("expected verified mentor to pass, got %v", err)
	}
	if _, err := authz.RequireMentor(2); !errors.Is(err, util.ErrNotMentor) {
		t.Fatalf("expected ErrNotMentor, got %v", err)
	}
	if _, err := authz.RequireMentor(3); !errors.Is(err, util.ErrAccountNotFound) {
		t.Fatalf("expected ErrAccountNotFound, got %v", err)
	}
}

func TestRequireOwner(t *testing.T) {
	authz := service.NewAuthzService(fakeMentorStore{}, fakeAdminStore{})

	if err := authz.RequireOwner(5, 5); err != nil {
		t.Fatalf("expected owner to pass, got %v", err)
	}
	if err := authz.RequireOwner(5, 6); !errors.Is(err, util.ErrNotOwner) {
		t.Fatalf("expected ErrNotOwner, got %v", err)
	}
}

func TestRequireAdmin(t *testing.T) {
	authz := service.NewAuthzService(fakeMentorStore{}, fakeAdminStore{
		"root": &model.Admin{ID: "root"},
	})

	if _, err := authz.RequireAdmin("root"); err != nil {
		t.Fatalf("expected known admin to pass, got %v", err)
	}
	if _, err := authz.RequireAdmin("intruder"); !errors.Is(err, util.ErrInvalidAdmin) {
		t.Fatalf("expected ErrInvalidAdmin, got %v", err)
	}
}
