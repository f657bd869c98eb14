package password

import (
	"strings"
	"testing"

	"github.com/MKhiriev/go-auth-api/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

// test hashes use the minimum cost to keep the suite fast
func newTestHasher() *Hasher {
	return NewHasher(bcrypt.MinCost, logger.Nop())
}

func TestHash_RoundTrip(t *testing.T) {
	h := newTestHasher()

	hashed, err := h.Hash("correct horse battery staple")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(hashed, "$2"), "bcrypt output should be self-describing")

	assert.True(t, h.Verify("correct horse battery staple", hashed))
	assert.False(t, h.Verify("wrong guess", hashed))
}

func TestHash_EmptySecret(t *testing.T) {
	h := newTestHasher()

	_, err := h.Hash("")
	assert.ErrorIs(t, err, ErrEmptySecret)
}

func TestHash_DistinctSalts(t *testing.T) {
	h := newTestHasher()

	first, err := h.Hash("same secret")
	require.NoError(t, err)
	second, err := h.Hash("same secret")
	require.NoError(t, err)

	assert.NotEqual(t, first, second, "each hash should use a fresh salt")
	assert.True(t, h.Verify("same secret", first))
	assert.True(t, h.Verify("same secret", second))
}

func TestVerify_MalformedHash(t *testing.T) {
	h := newTestHasher()

	tests := []struct {
		name   string
		hashed string
	}{
		{name: "empty hash", hashed: ""},
		{name: "garbage", hashed: "not-a-bcrypt-hash"},
		{name: "truncated", hashed: "$2a$10$abc"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NotPanics(t, func() {
				assert.False(t, h.Verify("anything", tt.hashed))
			})
		})
	}
}

func TestNewHasher_ClampsOutOfRangeCost(t *testing.T) {
	h := NewHasher(1000, logger.Nop())
	assert.Equal(t, bcrypt.DefaultCost, h.cost)

	h = NewHasher(-1, logger.Nop())
	assert.Equal(t, bcrypt.DefaultCost, h.cost)
}
