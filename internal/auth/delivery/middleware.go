package delivery

import (
	"net/http"
	"strings"

	"github.com/DanielValenz21/LifeStyleIABACK/internal/auth/usecase"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware enforces the "Bearer <token>" header on protected routes.
// A missing or malformed header is 401; a token that fails signature or
// expiry checks is 403.
func AuthMiddleware(authUsecase usecase.AuthUsecase) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Token requerido"})
			c.Abort()
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Formato de autorización inválido"})
			c.Abort()
			return
		}

		claims, err := authUsecase.ValidateToken(parts[1])
		if err != nil {
			c.JSON(http.StatusForbidden, gin.H{"error": "Token inválido o expirado"})
			c.Abort()
			return
		}

		c.Set("userID", claims.UserID)
		c.Set("email", claims.Email)
		c.Next()
	}
}
