package service

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTokenService(t *testing.T) {
	ts := NewTokenService("access-secret", "refresh-secret", 15, 43200)

	require.NotNil(t, ts)
	assert.Equal(t, 15*time.Minute, ts.GetAccessTokenExpiry())
	assert.Equal(t, 43200*time.Minute, ts.GetRefreshTokenExpiry())
}

func TestTokenService_Generate(t *testing.T) {
	tests := []struct {
		name   string
		userID string
		email  string
		role   string
	}{
		{
			name:   "client identity",
			userID: "user-123",
			email:  "client@example.com",
			role:   "client",
		},
		{
			name:   "admin identity",
			userID: "user-456",
			email:  "admin@example.com",
			role:   "admin",
		},
		{
			name:   "empty identity",
			userID: "",
			email:  "",
			role:   "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts := NewTokenService("access-secret", "refresh-secret", 15, 43200)

			access, refresh, refreshExpiry, err := ts.Generate(tt.userID, tt.email, tt.role)
			require.NoError(t, err)
			assert.NotEmpty(t, access)
			assert.NotEmpty(t, refresh)
			assert.NotEqual(t, access, refresh)
			assert.WithinDuration(t, time.Now().Add(43200*time.Minute), refreshExpiry, 5*time.Second)

			accessClaims, err := ts.VerifyAccessToken(access)
			require.NoError(t, err)
			assert.Equal(t, tt.userID, accessClaims.UserID)
			assert.Equal(t, tt.email, accessClaims.Email)
			assert.Equal(t, tt.role, accessClaims.Role)

			refreshClaims, err := ts.VerifyRefreshToken(refresh)
			require.NoError(t, err)
			assert.Equal(t, tt.userID, refreshClaims.UserID)
			assert.Equal(t, tt.role, refreshClaims.Role)
		})
	}
}

func TestTokenService_GenerateAccess(t *testing.T) {
	ts := NewTokenService("access-secret", "refresh-secret", 15, 43200)

	access, expiry, err := ts.GenerateAccess("user-123", "client@example.com", "client")
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(15*time.Minute), expiry, 5*time.Second)

	claims, err := ts.VerifyAccessToken(access)
	require.NoError(t, err)
	assert.Equal(t, "user-123", claims.UserID)
}

// Each token class verifies only against its own secret, so a refresh token
// can never pass as an access token.
func TestTokenService_CrossClassVerificationFails(t *testing.T) {
	ts := NewTokenService("access-secret", "refresh-secret", 15, 43200)

	access, refresh, _, err := ts.Generate("user-123", "client@example.com", "client")
	require.NoError(t, err)

	_, err = ts.VerifyAccessToken(refresh)
	assert.Error(t, err)

	_, err = ts.VerifyRefreshToken(access)
	assert.Error(t, err)
}

func TestTokenService_VerifyAccessToken_WrongSecret(t *testing.T) {
	ts := NewTokenService("access-secret", "refresh-secret", 15, 43200)
	other := NewTokenService("different-secret", "refresh-secret", 15, 43200)

	access, _, err := ts.GenerateAccess("user-123", "client@example.com", "client")
	require.NoError(t, err)

	_, err = other.VerifyAccessToken(access)
	assert.Error(t, err)
}

func TestTokenService_VerifyAccessToken_Expired(t *testing.T) {
	ts := NewTokenService("access-secret", "refresh-secret", -1, 43200)

	access, _, err := ts.GenerateAccess("user-123", "client@example.com", "client")
	require.NoError(t, err)

	_, err = ts.VerifyAccessToken(access)
	assert.Error(t, err)
}

func TestTokenService_VerifyAccessToken_WrongSigningMethod(t *testing.T) {
	ts := NewTokenService("access-secret", "refresh-secret", 15, 43200)

	unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, AccessClaims{UserID: "user-123"})
	tokenString, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = ts.VerifyAccessToken(tokenString)
	assert.Error(t, err)
}

func TestTokenService_VerifyAccessToken_Garbage(t *testing.T) {
	ts := NewTokenService("access-secret", "refresh-secret", 15, 43200)

	_, err := ts.VerifyAccessToken("not-a-jwt")
	assert.Error(t, err)
}
