package middleware

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/azamatdev/library-api/internal/domain"
	"github.com/azamatdev/library-api/internal/repository"
)

const errUnauthorized = "Unauthorized"

// Auth resolves the raw bearer token in the Authorization header against
// the token store and sets "userID" in the gin context. The header carries
// the token itself, no scheme prefix. Deny stops the request before any
// resource table is touched.
func Auth(tokens repository.TokenRepository, logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := c.GetHeader("Authorization")
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": errUnauthorized})
			return
		}

		userID, err := tokens.FindUserID(c.Request.Context(), token)
		if err != nil {
			if errors.Is(err, domain.ErrTokenInvalid) {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": errUnauthorized})
				return
			}
			logger.ErrorContext(c.Request.Context(), "token lookup", "error", err)
			c.AbortWithStatusJSON(http.StatusInternalServerError,
				gin.H{"error": "Internal server error"})
			return
		}

		c.Set("userID", userID)
		c.Next()
	}
}
