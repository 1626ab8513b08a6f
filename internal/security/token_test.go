package security

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTokenManager(t *testing.T) {
	manager := NewTokenManager("test-secret-that-is-long-enough-123", 60)

	t.Run("RoundTrip", func(t *testing.T) {
		token, err := manager.GenerateAccessToken(7, "admin")
		assert.NoError(t, err)

		claims, err := manager.ValidateToken(token)
		assert.NoError(t, err)
		assert.Equal(t, int32(7), claims.AdminID)
		assert.Equal(t, "admin", claims.Username)
		assert.NotEmpty(t, claims.ID)
	})

	t.Run("WrongSecret", func(t *testing.T) {
		other := NewTokenManager("a-completely-different-secret-value-9", 60)
		token, err := other.GenerateAccessToken(7, "admin")
		assert.NoError(t, err)

		_, err = manager.ValidateToken(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("Expired", func(t *testing.T) {
		expired := NewTokenManager("test-secret-that-is-long-enough-123", 0)
		token, err := expired.GenerateAccessToken(7, "admin")
		assert.NoError(t, err)

		time.Sleep(10 * time.Millisecond)
		_, err = manager.ValidateToken(token)
		assert.ErrorIs(t, err, ErrExpiredToken)
	})

	t.Run("Garbage", func(t *testing.T) {
		_, err := manager.ValidateToken("not-a-token")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})
}
