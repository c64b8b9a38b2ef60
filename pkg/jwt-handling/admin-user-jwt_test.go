package jwthandling

import (
	"testing"
	"time"
)

func TestAdminUserTokenRoundtrip(t *testing.T) {
	secret := "test-sign-key"

	token, err := GenerateNewAdminUserToken(time.Minute, "user-id-1", "admin1", "admin", secret)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if token == "" {
		t.Fatal("expected non-empty token")
	}

	claims, valid, err := ValidateAdminUserToken(token, secret)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !valid {
		t.Fatal("expected token to be valid")
	}
	if claims.ID != "user-id-1" || claims.Username != "admin1" || claims.Role != "admin" {
		t.Errorf("unexpected claims: %+v", claims)
	}
}

func TestAdminUserTokenWrongSecret(t *testing.T) {
	token, err := GenerateNewAdminUserToken(time.Minute, "user-id-1", "admin1", "admin", "correct-secret")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_, valid, err := ValidateAdminUserToken(token, "wrong-secret")
	if valid {
		t.Error("expected token to be invalid with wrong secret")
	}
	if err == nil {
		t.Error("expected validation error with wrong secret")
	}
}

func TestAdminUserTokenExpired(t *testing.T) {
	secret := "test-sign-key"
	token, err := GenerateNewAdminUserToken(-time.Minute, "user-id-1", "admin1", "admin", secret)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_, valid, err := ValidateAdminUserToken(token, secret)
	if valid {
		t.Error("expected expired token to be invalid")
	}
	if err == nil {
		t.Error("expected validation error for expired token")
	}
}

func TestValidateGarbageToken(t *testing.T) {
	_, valid, _ := ValidateAdminUserToken("not-a-token", "secret")
	if valid {
		t.Error("expected garbage token to be invalid")
	}
}
