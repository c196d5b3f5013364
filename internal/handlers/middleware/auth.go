package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/rafabene/inhouse-backend/internal/domain/ports"
)

const (
	// UserIDContextKey guarda o ID do usuário autenticado
	UserIDContextKey = "user_id"
	// UserEmailContextKey guarda o email do usuário autenticado
	UserEmailContextKey = "user_email"
)

// RequireAuth exige um token Bearer válido. Sem token, chama unauthorized e aborta.
func RequireAuth(tokens ports.TokenIssuer, unauthorized gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		token, found := strings.CutPrefix(header, "Bearer ")
		if !found || strings.TrimSpace(token) == "" {
			unauthorized(c)
			c.Abort()
			return
		}

		claims, err := tokens.Parse(strings.TrimSpace(token))
		if err != nil {
			unauthorized(c)
			c.Abort()
			return
		}

		c.Set(UserIDContextKey, claims.UserID)
		c.Set(UserEmailContextKey, claims.Email)
		c.Next()
	}
}

// CurrentUserID retorna o ID definido por RequireAuth
func CurrentUserID(c *gin.Context) (int64, bool) {
	value, exists := c.Get(UserIDContextKey)
	if !exists {
		return 0, false
	}
	id, ok := value.(int64)
	return id, ok
}
