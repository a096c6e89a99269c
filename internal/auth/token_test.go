package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndParseJWT(t *testing.T) {
	t.Run("Round Trip", func(t *testing.T) {
		t.Setenv("JWT_SECRET", "test_secret")

		token, err := GenerateJWT("u1", "a@b.com")
		require.NoError(t, err)
		require.NotEmpty(t, token)

		claims, err := ParseJWT(token)
		require.NoError(t, err)
		assert.Equal(t, "u1", claims.UserID)
		assert.Equal(t, "a@b.com", claims.Email)
	})

	t.Run("Missing Secret", func(t *testing.T) {
		t.Setenv("JWT_SECRET", "")

		_, err := GenerateJWT("u1", "a@b.com")
		assert.Error(t, err)
	})

	t.Run("Wrong Secret", func(t *testing.T) {
		t.Setenv("JWT_SECRET", "test_secret")
		token, err := GenerateJWT("u1", "a@b.com")
		require.NoError(t, err)

		t.Setenv("JWT_SECRET", "other_secret")
		_, err = ParseJWT(token)
		assert.Error(t, err)
	})

	t.Run("Garbage Token", func(t *testing.T) {
		t.Setenv("JWT_SECRET", "test_secret")

		_, err := ParseJWT("not.a.token")
		assert.Error(t, err)
	})
}

func TestExtractAccessToken(t *testing.T) {
	t.Run("Cookie Preferred", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.AddCookie(&http.Cookie{Name: "access_token", Value: "cookie_token"})
		req.Header.Set("Authorization", "Bearer header_token")

		assert.Equal(t, "cookie_token", ExtractAccessToken(req))
	})

	t.Run("Header Fallback", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer header_token")

		assert.Equal(t, "header_token", ExtractAccessToken(req))
	})

	t.Run("No Token", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)

		assert.Empty(t, ExtractAccessToken(req))
	})

	t.Run("Malformed Header", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Basic user:pass")

		assert.Empty(t, ExtractAccessToken(req))
	})
}

func TestPasswordHashing(t *testing.T) {
	t.Run("Round Trip", func(t *testing.T) {
		hash, err := HashPassword("secret")
		require.NoError(t, err)
		assert.NotEqual(t, "secret", hash)
		assert.True(t, CheckPasswordHash("secret", hash))
		assert.False(t, CheckPasswordHash("wrong", hash))
	})
}
