package pwhash

import (
	"strings"
	"testing"
)

func TestHashAndComparePassword(t *testing.T) {
	hash, err := HashPassword("correct horse battery staple")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.HasPrefix(hash, "$argon2id$") {
		t.Errorf("unexpected hash format: %s", hash)
	}

	match, err := ComparePasswordWithHash(hash, "correct horse battery staple")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !match {
		t.Error("expected password to match its own hash")
	}

	match, err = ComparePasswordWithHash(hash, "wrong password")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if match {
		t.Error("expected wrong password to not match")
	}
}

func TestHashesAreSalted(t *testing.T) {
	h1, err := HashPassword("samepassword")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	h2, err := HashPassword("samepassword")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if h1 == h2 {
		t.Error("expected different salts to produce different hashes")
	}
}

func TestCompareWithMalformedHash(t *testing.T) {
	if _, err := ComparePasswordWithHash("not-an-encoded-hash", "pw"); err == nil {
		t.Error("expected error for malformed hash")
	}
}
