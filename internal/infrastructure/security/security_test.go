package security

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBcryptHasher(t *testing.T) {
	hasher := NewBcryptHasher(4)

	hash, err := hasher.Hash("p1")
	require.NoError(t, err)
	assert.NotEqual(t, "p1", hash)

	assert.True(t, hasher.Compare(hash, "p1"))
	assert.False(t, hasher.Compare(hash, "p2"))
	assert.False(t, hasher.Compare("p1", "p1"), "texto puro não é um hash válido")
}

func TestBcryptHasher_SaltPerHash(t *testing.T) {
	hasher := NewBcryptHasher(4)

	first, err := hasher.Hash("admin")
	require.NoError(t, err)
	second, err := hasher.Hash("admin")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestJWTService_IssueAndParse(t *testing.T) {
	service := NewJWTService("secret", time.Hour)

	token, err := service.Issue(42, "ana@x.com", "tenant")
	require.NoError(t, err)

	claims, err := service.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, int64(42), claims.UserID)
	assert.Equal(t, "ana@x.com", claims.Email)
	assert.Equal(t, "tenant", claims.UserType)
}

func TestJWTService_Rejects(t *testing.T) {
	service := NewJWTService("secret", time.Hour)
	token, err := service.Issue(1, "ana@x.com", "tenant")
	require.NoError(t, err)

	t.Run("segredo diferente", func(t *testing.T) {
		_, err := NewJWTService("other", time.Hour).Parse(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("token expirado", func(t *testing.T) {
		expired := NewJWTService("secret", time.Hour)
		expired.now = func() time.Time { return time.Now().Add(2 * time.Hour) }
		_, err := expired.Parse(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("texto qualquer", func(t *testing.T) {
		_, err := service.Parse("not-a-token")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})
}
