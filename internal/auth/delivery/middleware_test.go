package delivery_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/DanielValenz21/LifeStyleIABACK/internal/auth/delivery"
	"github.com/DanielValenz21/LifeStyleIABACK/internal/auth/usecase"
	"github.com/DanielValenz21/LifeStyleIABACK/pkg/config"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func newProtectedRouter() *gin.Engine {
	cfg := &config.Config{JWTSecret: testSecret, JWTExpiry: time.Hour}
	authUc := usecase.NewAuthUsecase(nil, cfg)

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/protected", delivery.AuthMiddleware(authUc), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"user_id": c.GetString("userID"), "email": c.GetString("email")})
	})
	return r
}

func signToken(t *testing.T, secret string, expiresIn time.Duration) string {
	t.Helper()
	claims := jwt.MapClaims{
		"user_id": "user-1",
		"email":   "ana@example.com",
		"exp":     time.Now().Add(expiresIn).Unix(),
		"iat":     time.Now().Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return token
}

func get(r *gin.Engine, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthMiddleware_MissingHeader(t *testing.T) {
	r := newProtectedRouter()
	w := get(r, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddleware_MalformedHeader(t *testing.T) {
	r := newProtectedRouter()

	for _, header := range []string{"token-sin-esquema", "Basic abc", "Bearer"} {
		w := get(r, header)
		assert.Equal(t, http.StatusUnauthorized, w.Code, "header %q", header)
	}
}

func TestAuthMiddleware_BadSignatureIsForbidden(t *testing.T) {
	r := newProtectedRouter()

	token := signToken(t, "otra-clave", time.Hour)
	w := get(r, "Bearer "+token)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestAuthMiddleware_ExpiredTokenIsForbidden(t *testing.T) {
	r := newProtectedRouter()

	token := signToken(t, testSecret, -time.Minute)
	w := get(r, "Bearer "+token)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestAuthMiddleware_ValidTokenAttachesIdentity(t *testing.T) {
	r := newProtectedRouter()

	token := signToken(t, testSecret, time.Hour)
	w := get(r, "Bearer "+token)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "user-1")
	assert.Contains(t, w.Body.String(), "ana@example.com")
}
