package middleware

import (
	"net/http"
	"strings"

	userRepo "chorus/database/repository/user"
	"chorus/models"
	"chorus/utils"

	"github.com/gin-gonic/gin"
)

// JWTAuthMiddleware validates the bearer token, loads the calling user and
// stores it on the request context under "currentUser".
func JWTAuthMiddleware(users userRepo.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "Insufficient authorization",
			})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "Insufficient authorization",
			})
			return
		}

		userID, _, err := utils.ExtractClaimsFromToken(tokenString)
		if err != nil || userID == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "Insufficient authorization",
			})
			return
		}

		user, err := users.GetByID(userID)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "Unknown user",
			})
			return
		}

		c.Set("currentUser", user)
		c.Next()
	}
}

// CurrentUser retrieves the authenticated user stored by JWTAuthMiddleware.
func CurrentUser(c *gin.Context) *models.User {
	val, exists := c.Get("currentUser")
	if !exists {
		return nil
	}
	user, ok := val.(*models.User)
	if !ok {
		return nil
	}
	return user
}
