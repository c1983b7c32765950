package token

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOpaque(t *testing.T) {
	first, err := NewOpaque()
	require.NoError(t, err)
	assert.Len(t, first, 64)

	second, err := NewOpaque()
	require.NoError(t, err)
	assert.NotEqual(t, first, second)
}

func TestHash(t *testing.T) {
	h := Hash("some-token")

	assert.Len(t, h, 64)
	assert.NotEqual(t, "some-token", h)
	// Deterministic: the stored digest must match on redemption.
	assert.Equal(t, h, Hash("some-token"))
	assert.NotEqual(t, h, Hash("some-other-token"))
}

func TestNewOTP(t *testing.T) {
	for i := 0; i < 100; i++ {
		otp, err := NewOTP()
		require.NoError(t, err)
		require.Len(t, otp, 6)

		n, err := strconv.Atoi(otp)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, n, 100000)
		assert.LessOrEqual(t, n, 999999)
	}
}
