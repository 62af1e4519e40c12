package middleware

import (
	"campushub/internal/utils" // JWT utility functions
	"errors"                   // Sentinel error matching
	"net/http"                 // HTTP status codes
	"strings"                  // String manipulation

	"github.com/gin-gonic/gin"     // Gin web framework
	"github.com/golang-jwt/jwt/v5" // JWT errors
)

// JWTAuthMiddleware validates bearer tokens and stores the caller's user ID
// in the request context. The three failure modes stay distinguishable on the
// wire: a missing token and an expired token are 401, a token that fails
// signature or claim validation is 422.
func JWTAuthMiddleware(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Request does not contain an access token"})
			return
		}
		tokenStr := strings.TrimPrefix(authHeader, "Bearer ")
		claims, err := utils.ParseJWT(tokenStr, secret)
		if err != nil {
			if errors.Is(err, jwt.ErrTokenExpired) {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Token has expired", "details": "token_expired"})
				return
			}
			c.AbortWithStatusJSON(http.StatusUnprocessableEntity, gin.H{"error": "Invalid token", "details": err.Error()})
			return
		}
		c.Set("userID", claims.UserID) // Store userID in context
		c.Next()
	}
}

// CallerID returns the authenticated user ID stored by JWTAuthMiddleware.
func CallerID(c *gin.Context) (uint, bool) {
	v, exists := c.Get("userID")
	if !exists {
		return 0, false
	}
	id, ok := v.(uint)
	return id, ok
}
