// File: internal/middleware/auth.go
package middleware

import (
	"synapse_backend/internal/auth"
	"synapse_backend/internal/common"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AuthMiddleware verifies the Bearer token and stores the user ID in the
// request context. Requests without a valid token are rejected.
func AuthMiddleware(tokens *auth.TokenService, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenStr := common.GetTokenFromContext(c)
		if tokenStr == "" {
			common.RespondWithError(c, common.ErrUnauthorized.WithDetails("No token, authorization denied."))
			return
		}

		claims, err := tokens.Parse(tokenStr)
		if err != nil {
			logger.Debug("Token verification failed", zap.Error(err))
			common.RespondWithError(c, common.ErrUnauthorized.WithDetails("Token is not valid."))
			return
		}

		c.Set(common.UserIDKey, claims.UserID)
		c.Next()
	}
}
