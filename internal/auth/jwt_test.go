package auth

import (
	"errors"
	"testing"
	"time"
)

func TestJWTManager(t *testing.T) {
	manager := NewJWTManager("test-secret-key", 30*time.Minute)

	t.Run("issue and validate round-trip", func(t *testing.T) {
		token, err := manager.Issue("Club")
		if err != nil {
			t.Fatalf("Issue failed: %v", err)
		}

		subject, err := manager.Validate(token)
		if err != nil {
			t.Fatalf("Validate failed: %v", err)
		}
		if subject != "Club" {
			t.Errorf("subject mismatch: got %q, want %q", subject, "Club")
		}
	})

	t.Run("zero TTL token is expired", func(t *testing.T) {
		expired := NewJWTManager("test-secret-key", 0)
		token, err := expired.Issue("Club")
		if err != nil {
			t.Fatalf("Issue failed: %v", err)
		}

		// Validation happens strictly after issuance, so exp has passed.
		time.Sleep(10 * time.Millisecond)
		if _, err := expired.Validate(token); !errors.Is(err, ErrInvalidToken) {
			t.Errorf("expected ErrInvalidToken for expired token, got %v", err)
		}
	})

	t.Run("wrong secret fails", func(t *testing.T) {
		token, err := manager.Issue("Club")
		if err != nil {
			t.Fatalf("Issue failed: %v", err)
		}

		other := NewJWTManager("different-secret", 30*time.Minute)
		if _, err := other.Validate(token); !errors.Is(err, ErrInvalidToken) {
			t.Errorf("expected ErrInvalidToken for wrong secret, got %v", err)
		}
	})

	t.Run("malformed token fails", func(t *testing.T) {
		for _, token := range []string{"", "garbage", "a.b.c"} {
			if _, err := manager.Validate(token); !errors.Is(err, ErrInvalidToken) {
				t.Errorf("expected ErrInvalidToken for %q, got %v", token, err)
			}
		}
	})

	t.Run("missing subject fails", func(t *testing.T) {
		anonymous := NewJWTManager("test-secret-key", 30*time.Minute)
		token, err := anonymous.Issue("")
		if err != nil {
			t.Fatalf("Issue failed: %v", err)
		}

		if _, err := manager.Validate(token); !errors.Is(err, ErrInvalidToken) {
			t.Errorf("expected ErrInvalidToken for empty subject, got %v", err)
		}
	})
}
