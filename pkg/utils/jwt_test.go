package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/maheshrc27/postflow-composer/internal/transfer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	token, err := GenerateToken("secret", "7", time.Hour)
	require.NoError(t, err)

	claims, err := ValidateToken("secret", token)
	require.NoError(t, err)
	assert.Equal(t, "7", claims.UserID)
	assert.Equal(t, "7", claims.Subject)
	assert.Equal(t, TokenIssuer, claims.Issuer)
	assert.Equal(t, jwt.ClaimStrings{TokenAudience}, claims.Audience)
}

func signClaims(t *testing.T, method jwt.SigningMethod, mutate func(*transfer.CustomClaims)) string {
	t.Helper()
	now := time.Now()
	claims := transfer.CustomClaims{
		UserID: "7",
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    TokenIssuer,
			Subject:   "7",
			Audience:  jwt.ClaimStrings{TokenAudience},
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
		},
	}
	mutate(&claims)

	signed, err := jwt.NewWithClaims(method, claims).SignedString([]byte("secret"))
	require.NoError(t, err)
	return signed
}

func TestValidateToken_Rejects(t *testing.T) {
	expired, err := GenerateToken("secret", "7", -time.Minute)
	require.NoError(t, err)
	good, err := GenerateToken("secret", "7", time.Hour)
	require.NoError(t, err)

	tests := []struct {
		name   string
		secret string
		token  string
	}{
		{"expired", "secret", expired},
		{"wrong secret", "other", good},
		{"garbage", "secret", "not.a.token"},
		{"other audience", "secret", signClaims(t, jwt.SigningMethodHS256, func(c *transfer.CustomClaims) {
			c.Audience = jwt.ClaimStrings{"billing-api"}
		})},
		{"no audience", "secret", signClaims(t, jwt.SigningMethodHS256, func(c *transfer.CustomClaims) {
			c.Audience = nil
		})},
		{"old issuer", "secret", signClaims(t, jwt.SigningMethodHS256, func(c *transfer.CustomClaims) {
			c.Issuer = "postflow"
		})},
		{"no expiry", "secret", signClaims(t, jwt.SigningMethodHS256, func(c *transfer.CustomClaims) {
			c.ExpiresAt = nil
		})},
		{"subject mismatch", "secret", signClaims(t, jwt.SigningMethodHS256, func(c *transfer.CustomClaims) {
			c.Subject = "8"
		})},
		{"no user", "secret", signClaims(t, jwt.SigningMethodHS256, func(c *transfer.CustomClaims) {
			c.UserID = ""
			c.Subject = ""
		})},
		{"other hmac", "secret", signClaims(t, jwt.SigningMethodHS512, func(*transfer.CustomClaims) {})},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ValidateToken(tt.secret, tt.token)
			assert.Error(t, err)
		})
	}
}
