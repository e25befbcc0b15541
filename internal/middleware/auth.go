package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Sakil71/doctors-portal-server/internal/utils"
)

// VerifyJWT guards a route with the portal's bearer-token check. A missing
// Authorization header and a bad token both answer 403, with the two distinct
// bodies the portal client matches on.
func VerifyJWT() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.String(http.StatusForbidden, "unauthorized token")
			c.Abort()
			return
		}

		var tokenString string
		if parts := strings.Split(authHeader, " "); len(parts) > 1 {
			tokenString = parts[1]
		}
		claims, err := utils.ValidateJWT(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "access forbidden"})
			return
		}

		// Expose the decoded identity to handlers.
		c.Set("email", claims.Email)

		c.Next()
	}
}
