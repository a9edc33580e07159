package scope

import (
	"testing"
	"time"
)

func TestSignVerify(t *testing.T) {
	m := NewManager("test-secret")

	t.Run("round trip", func(t *testing.T) {
		token := m.Sign("user-1", time.Hour)
		userID, err := m.Verify(token)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if userID != "user-1" {
			t.Errorf("expected user-1, got %q", userID)
		}
	})

	t.Run("tampered token", func(t *testing.T) {
		token := m.Sign("user-1", time.Hour)
		if _, err := m.Verify(token + "x"); err != ErrInvalidToken {
			t.Errorf("expected ErrInvalidToken, got %v", err)
		}
	})

	t.Run("wrong secret", func(t *testing.T) {
		other := NewManager("other-secret")
		token := other.Sign("user-1", time.Hour)
		if _, err := m.Verify(token); err != ErrInvalidToken {
			t.Errorf("expected ErrInvalidToken, got %v", err)
		}
	})

	t.Run("expired token", func(t *testing.T) {
		token := m.Sign("user-1", -time.Minute)
		if _, err := m.Verify(token); err != ErrExpiredToken {
			t.Errorf("expected ErrExpiredToken, got %v", err)
		}
	})

	t.Run("malformed token", func(t *testing.T) {
		if _, err := m.Verify("garbage"); err != ErrInvalidToken {
			t.Errorf("expected ErrInvalidToken, got %v", err)
		}
	})
}
