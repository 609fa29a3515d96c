package auth

import (
	"testing"
	"time"

	"campushub/internal/constants"
)

func TestTokenIssuer_IssueAndParse(t *testing.T) {
	issuer := NewTokenIssuer([]byte("test-secret"), time.Hour)

	token, expiresAt, err := issuer.Issue("session-1", "user-1", constants.RoleStudent)
	if err != nil {
		t.Fatalf("Issue failed: %v", err)
	}

	if time.Until(expiresAt) > time.Hour || time.Until(expiresAt) < 55*time.Minute {
		t.Errorf("Unexpected expiry %v", expiresAt)
	}

	claims, err := issuer.Parse(token)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	if claims.SessionID != "session-1" {
		t.Errorf("Expected session-1, got %s", claims.SessionID)
	}
	if claims.Subject != "user-1" {
		t.Errorf("Expected user-1, got %s", claims.Subject)
	}
	if claims.Role != constants.RoleStudent {
		t.Errorf("Expected student role, got %s", claims.Role)
	}
}

func TestTokenIssuer_RejectsWrongSecret(t *testing.T) {
	issuer := NewTokenIssuer([]byte("secret-a"), time.Hour)
	other := NewTokenIssuer([]byte("secret-b"), time.Hour)

	token, _, err := issuer.Issue("session-1", "user-1", constants.RoleAdmin)
	if err != nil {
		t.Fatalf("Issue failed: %v", err)
	}

	if _, err := other.Parse(token); err == nil {
		t.Error("Expected parse with wrong secret to fail")
	}
}

func TestTokenIssuer_RejectsExpired(t *testing.T) {
	issuer := NewTokenIssuer([]byte("test-secret"), -time.Minute)

	token, _, err := issuer.Issue("session-1", "user-1", constants.RoleStudent)
	if err != nil {
		t.Fatalf("Issue failed: %v", err)
	}

	if _, err := issuer.Parse(token); err == nil {
		t.Error("Expected expired token to be rejected")
	}
}

func TestTokenIssuer_RejectsGarbage(t *testing.T) {
	issuer := NewTokenIssuer([]byte("test-secret"), time.Hour)

	if _, err := issuer.Parse("not-a-token"); err == nil {
		t.Error("Expected garbage token to be rejected")
	}
}
