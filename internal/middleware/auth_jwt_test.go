package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/johnsmera/checkout/internal/config"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func signToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

func callProtected(t *testing.T, authorization string) (*httptest.ResponseRecorder, string) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/cart", nil)
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	var gotUserID string
	handler := AuthJWT(config.Config{JWTSecret: testSecret})(func(c echo.Context) error {
		gotUserID, _ = c.Get(CtxUserIDKey).(string)
		return c.NoContent(http.StatusOK)
	})

	require.NoError(t, handler(c))
	return rec, gotUserID
}

func TestAuthJWT_ValidToken(t *testing.T) {
	now := time.Now()
	token := signToken(t, testSecret, jwt.MapClaims{
		"sub": "user-1",
		"iat": now.Unix(),
		"exp": now.Add(15 * time.Minute).Unix(),
	})

	rec, userID := callProtected(t, "Bearer "+token)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "user-1", userID)
}

func TestAuthJWT_Rejections(t *testing.T) {
	now := time.Now()

	cases := []struct {
		name          string
		authorization string
	}{
		{"no header", ""},
		{"not bearer", "Basic abc"},
		{"empty token", "Bearer "},
		{"garbage token", "Bearer not.a.jwt"},
		{"wrong secret", "Bearer " + signToken(t, "other-secret", jwt.MapClaims{
			"sub": "user-1",
			"exp": now.Add(15 * time.Minute).Unix(),
		})},
		{"expired token", "Bearer " + signToken(t, testSecret, jwt.MapClaims{
			"sub": "user-1",
			"exp": now.Add(-time.Minute).Unix(),
		})},
		{"missing sub", "Bearer " + signToken(t, testSecret, jwt.MapClaims{
			"exp": now.Add(15 * time.Minute).Unix(),
		})},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec, userID := callProtected(t, tc.authorization)
			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.Empty(t, userID)
			assert.JSONEq(t, `{"error":"unauthorized"}`, rec.Body.String())
		})
	}
}
