package jwt

import (
	"testing"
	"time"

	"gamehub/backend/internal/config"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func withSecret(t *testing.T, secret string) {
	t.Helper()
	prev := config.AppConfig
	config.AppConfig = &config.Config{JWTSecret: secret}
	t.Cleanup(func() { config.AppConfig = prev })
}

func TestGenerateAndParse(t *testing.T) {
	withSecret(t, "test-secret")

	token, err := GenerateToken(42)
	require.NoError(t, err)

	id, err := ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, uint(42), id)
}

func TestParseToken_Rejects(t *testing.T) {
	withSecret(t, "test-secret")

	sign := func(claims jwt.Claims, method jwt.SigningMethod, key any) string {
		s, err := jwt.NewWithClaims(method, claims).SignedString(key)
		require.NoError(t, err)
		return s
	}
	future := jwt.NewNumericDate(time.Now().Add(time.Hour))

	tests := []struct {
		name  string
		token string
	}{
		{"garbage", "not.a.token"},
		{"wrong secret", sign(jwt.RegisteredClaims{Subject: "1", ExpiresAt: future}, jwt.SigningMethodHS256, []byte("other"))},
		{"expired", sign(jwt.RegisteredClaims{Subject: "1", ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute))}, jwt.SigningMethodHS256, []byte("test-secret"))},
		{"no expiry", sign(jwt.RegisteredClaims{Subject: "1"}, jwt.SigningMethodHS256, []byte("test-secret"))},
		{"other algorithm", sign(jwt.RegisteredClaims{Subject: "1", ExpiresAt: future}, jwt.SigningMethodHS512, []byte("test-secret"))},
		{"non-numeric subject", sign(jwt.RegisteredClaims{Subject: "alice", ExpiresAt: future}, jwt.SigningMethodHS256, []byte("test-secret"))},
		{"zero subject", sign(jwt.RegisteredClaims{Subject: "0", ExpiresAt: future}, jwt.SigningMethodHS256, []byte("test-secret"))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseToken(tt.token)
			assert.ErrorIs(t, err, ErrInvalidToken)
		})
	}
}
