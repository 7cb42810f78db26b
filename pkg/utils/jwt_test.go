package utils

import (
	"testing"

	"github.com/google/uuid"
)

// The secret may be loaded from .env long after this package is
// initialized, so tokens must be signed with whatever JWT_SECRET
// holds at call time.
func TestTokenUsesSecretSetAfterInit(t *testing.T) {
	t.Setenv("JWT_SECRET", "secret-set-late")

	id := uuid.New()
	token, err := CreateToken(id, "admin")
	if err != nil {
		t.Fatalf("CreateToken: %v", err)
	}

	claims, err := ValidateToken(token)
	if err != nil {
		t.Fatalf("ValidateToken: %v", err)
	}
	if claims.UserID != id.String() || claims.Role != "admin" {
		t.Fatalf("claims = %q/%q, want %q/admin", claims.UserID, claims.Role, id)
	}

	// A token minted under one secret must not verify under another.
	t.Setenv("JWT_SECRET", "rotated-secret")
	if _, err := ValidateToken(token); err == nil {
		t.Fatal("expected validation to fail after secret rotation")
	}
}
