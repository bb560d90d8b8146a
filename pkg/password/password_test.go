package password

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
)

func TestHasher(t *testing.T) {
	h := New(WithCost(bcrypt.MinCost))

	t.Run("hash and verify", func(t *testing.T) {
		digest, err := h.Hash("abc")

		assert.NoError(t, err)
		assert.NotEqual(t, "abc", digest)
		assert.True(t, h.Verify("abc", digest))
		assert.False(t, h.Verify("abd", digest))
	})

	t.Run("salted", func(t *testing.T) {
		d1, err := h.Hash("abc")
		assert.NoError(t, err)
		d2, err := h.Hash("abc")
		assert.NoError(t, err)

		assert.NotEqual(t, d1, d2)
	})

	t.Run("malformed digest", func(t *testing.T) {
		assert.False(t, h.Verify("abc", "not a digest"))
	})

	t.Run("password too long", func(t *testing.T) {
		digest, err := h.Hash(string(make([]byte, 100)))

		assert.Error(t, err)
		assert.Empty(t, digest)
	})
}

func TestNew_costOutOfRange(t *testing.T) {
	assert.Equal(t, bcrypt.DefaultCost, New(WithCost(0)).cost)
	assert.Equal(t, bcrypt.DefaultCost, New(WithCost(bcrypt.MaxCost+1)).cost)
	assert.Equal(t, bcrypt.MinCost, New(WithCost(bcrypt.MinCost)).cost)
}
