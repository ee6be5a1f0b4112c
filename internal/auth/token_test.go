package auth

import (
	"testing"
	"time"
)

func TestIssueAndVerify(t *testing.T) {
	issuer := NewTokenIssuer([]byte("test-secret"), 15*time.Minute)

	token, err := issuer.Issue(42, "test83", "test7@mail.com")
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}
	if token == "" {
		t.Fatal("Issue returned empty token")
	}

	identity, err := issuer.Verify(token)
	if err != nil {
		t.Fatalf("Verify returned error: %v", err)
	}
	if identity.UserID != "42" {
		t.Errorf("UserID = %q, want %q", identity.UserID, "42")
	}
	if identity.Username != "test83" {
		t.Errorf("Username = %q, want %q", identity.Username, "test83")
	}
	if identity.Email != "test7@mail.com" {
		t.Errorf("Email = %q, want %q", identity.Email, "test7@mail.com")
	}
}

func TestVerifyExpiredToken(t *testing.T) {
	issuer := NewTokenIssuer([]byte("test-secret"), -1*time.Minute)

	token, err := issuer.Issue(1, "test", "test@mail.com")
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}
	if _, err := issuer.Verify(token); err == nil {
		t.Error("expected error verifying expired token")
	}
}

func TestVerifyWrongSecret(t *testing.T) {
	issuer := NewTokenIssuer([]byte("secret-a"), 15*time.Minute)
	other := NewTokenIssuer([]byte("secret-b"), 15*time.Minute)

	token, err := issuer.Issue(1, "test", "test@mail.com")
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}
	if _, err := other.Verify(token); err == nil {
		t.Error("expected error verifying token signed with another secret")
	}
}

func TestVerifyGarbage(t *testing.T) {
	issuer := NewTokenIssuer([]byte("test-secret"), 15*time.Minute)
	if _, err := issuer.Verify("not-a-token"); err == nil {
		t.Error("expected error verifying garbage token")
	}
}
