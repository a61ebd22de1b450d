package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndComparePassword(t *testing.T) {
	hash, err := HashPassword("s3cret-pass")
	require.NoError(t, err)
	require.NotEmpty(t, hash)
	assert.NotEqual(t, "s3cret-pass", hash)

	assert.True(t, ComparePassword(hash, "s3cret-pass"))
	assert.False(t, ComparePassword(hash, "wrong-pass"))
	assert.False(t, ComparePassword("not-a-hash", "s3cret-pass"))
}

func TestGenerateID(t *testing.T) {
	a := GenerateID()
	b := GenerateID()

	assert.Len(t, a, 7)
	assert.NotEqual(t, a, b)
}

func TestGenerateNGOCode(t *testing.T) {
	code := GenerateNGOCode()

	assert.Len(t, code, 6)
	for _, r := range code {
		assert.Contains(t, "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ", string(r))
	}
}
