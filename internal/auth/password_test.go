package auth

import (
	"strings"
	"testing"
)

func TestHashPassword(t *testing.T) {
	t.Run("same password hashes differently", func(t *testing.T) {
		h1, err := HashPassword("correct horse battery staple")
		if err != nil {
			t.Fatalf("HashPassword failed: %v", err)
		}
		h2, err := HashPassword("correct horse battery staple")
		if err != nil {
			t.Fatalf("HashPassword failed: %v", err)
		}

		if h1 == h2 {
			t.Error("expected salted hashes to differ for the same password")
		}
		if !VerifyPassword("correct horse battery staple", h1) {
			t.Error("first hash did not verify")
		}
		if !VerifyPassword("correct horse battery staple", h2) {
			t.Error("second hash did not verify")
		}
	})

	t.Run("hash is self-describing", func(t *testing.T) {
		h, err := HashPassword("pw1")
		if err != nil {
			t.Fatalf("HashPassword failed: %v", err)
		}
		if !strings.HasPrefix(h, "$2a$12$") {
			t.Errorf("expected bcrypt cost-12 prefix, got %q", h[:7])
		}
	})

	t.Run("long passwords truncate at 72 bytes", func(t *testing.T) {
		base := strings.Repeat("x", 72)
		h, err := HashPassword(base + "tail-one")
		if err != nil {
			t.Fatalf("HashPassword failed: %v", err)
		}

		// Everything past byte 72 is ignored, so a different tail still
		// verifies against the same hash.
		if !VerifyPassword(base+"tail-two", h) {
			t.Error("expected passwords identical in the first 72 bytes to verify")
		}
		if VerifyPassword(base[:71], h) {
			t.Error("expected shorter password to fail verification")
		}
	})
}

func TestVerifyPassword(t *testing.T) {
	t.Run("wrong password fails", func(t *testing.T) {
		h, err := HashPassword("right")
		if err != nil {
			t.Fatalf("HashPassword failed: %v", err)
		}
		if VerifyPassword("wrong", h) {
			t.Error("expected wrong password to fail")
		}
	})

	t.Run("malformed hash fails closed", func(t *testing.T) {
		for _, hash := range []string{"", "not-a-hash", "$2a$12$tooshort"} {
			if VerifyPassword("anything", hash) {
				t.Errorf("expected malformed hash %q to fail verification", hash)
			}
		}
	})
}
