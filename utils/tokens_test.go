package utils

import (
	"testing"
	"time"

	"invenBack/internal/models"
)

func TestNewManagerRequiresKey(t *testing.T) {
	if _, err := NewManager("", time.Hour); err == nil {
		t.Fatalf("expected error for empty signing key")
	}
}

func TestJWTRoundTrip(t *testing.T) {
	m, err := NewManager("test-key", time.Hour)
	if err != nil {
		t.Fatalf("NewManager: %v", err)
	}

	token, err := m.NewJWT(42, "alice", models.RoleAdmin)
	if err != nil {
		t.Fatalf("NewJWT: %v", err)
	}

	claims, err := m.Parse(token)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if claims.UserID != 42 || claims.Username != "alice" || claims.Role != models.RoleAdmin {
		t.Fatalf("unexpected claims %+v", claims)
	}
}

func TestParseRejectsForeignSignature(t *testing.T) {
	m1, _ := NewManager("key-one", time.Hour)
	m2, _ := NewManager("key-two", time.Hour)

	token, err := m1.NewJWT(1, "alice", models.RoleUser)
	if err != nil {
		t.Fatalf("NewJWT: %v", err)
	}

	if _, err := m2.Parse(token); err == nil {
		t.Fatalf("expected signature verification failure")
	}
}

func TestParseRejectsGarbage(t *testing.T) {
	m, _ := NewManager("test-key", time.Hour)
	if _, err := m.Parse("not-a-token"); err == nil {
		t.Fatalf("expected parse failure")
	}
}

func TestRefreshTokensAreUnique(t *testing.T) {
	m, _ := NewManager("test-key", time.Hour)

	seen := map[string]bool{}
	for i := 0; i < 10; i++ {
		token, err := m.NewRefreshToken()
		if err != nil {
			t.Fatalf("NewRefreshToken: %v", err)
		}
		if len(token) != 64 {
			t.Fatalf("expected 32 random bytes hex-encoded, got %d chars", len(token))
		}
		if seen[token] {
			t.Fatalf("duplicate refresh token")
		}
		seen[token] = true
	}
}
