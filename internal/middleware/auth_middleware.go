package middleware

import (
	"microblog/internal/repository"
	"microblog/pkg/utils"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// ContextUserIDKey holds the resolved requester ID; absent or 0 means the
// caller is anonymous.
const ContextUserIDKey = "userID"

func bearerToken(c *gin.Context) (string, bool) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return "", false
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if !(len(parts) == 2 && parts[0] == "Bearer") {
		return "", false
	}
	return parts[1], true
}

// AuthMiddleware rejects requests without a valid token. Routes behind it
// can rely on a non-zero requester ID being present.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := bearerToken(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "authorization header is required"})
			c.Abort()
			return
		}

		claims, err := utils.ParseToken(token)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired token"})
			c.Abort()
			return
		}

		userRepo := repository.NewUserRepository()
		user, err := userRepo.FindByID(claims.UserID)
		if err != nil || user == nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "user not found"})
			c.Abort()
			return
		}

		c.Set(ContextUserIDKey, claims.UserID)
		c.Set("user", user)

		c.Next()
	}
}

// OptionalAuthMiddleware resolves a token when one is supplied and lets the
// request through as anonymous otherwise. Used on the read paths where
// authentication only changes extras (e.g. the "following" flag).
func OptionalAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if token, ok := bearerToken(c); ok {
			if claims, err := utils.ParseToken(token); err == nil {
				c.Set(ContextUserIDKey, claims.UserID)
			}
		}
		c.Next()
	}
}
