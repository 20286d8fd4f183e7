package service

import (
	"errors"
	"testing"
	"time"
)

func TestAuthLoginAndValidate(t *testing.T) {
	hash, err := HashPIN("2468")
	if err != nil {
		t.Fatalf("HashPIN: %v", err)
	}
	svc := NewAuthService(hash, "test-secret", time.Hour)

	token, err := svc.Login("2468")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if err := svc.Validate(token); err != nil {
		t.Errorf("Validate: %v", err)
	}

	if _, err := svc.Login("0000"); !errors.Is(err, ErrInvalidPIN) {
		t.Errorf("wrong PIN: err = %v, want ErrInvalidPIN", err)
	}
	if err := svc.Validate("not.a.token"); err == nil {
		t.Error("expected error for garbage token")
	}
}

func TestAuthTokensFromOtherSecretRejected(t *testing.T) {
	hash, _ := HashPIN("2468")
	issuer := NewAuthService(hash, "secret-a", time.Hour)
	verifier := NewAuthService(hash, "secret-b", time.Hour)

	token, err := issuer.Login("2468")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if err := verifier.Validate(token); err == nil {
		t.Error("token signed with another secret should be rejected")
	}
}

func TestAuthDisabledWithoutConfiguration(t *testing.T) {
	svc := NewAuthService("", "", time.Hour)

	if svc.Enabled() {
		t.Error("service should be disabled without a PIN hash")
	}
	if _, err := svc.Login("2468"); !errors.Is(err, ErrInvalidPIN) {
		t.Errorf("err = %v, want ErrInvalidPIN", err)
	}
}
