package middleware

import (
	"strings"

	"geopost-api/helper"
	"geopost-api/models"
	"geopost-api/repositories"
	"geopost-api/services"

	"github.com/gin-gonic/gin"
)

var HTTPHelper = &helper.HTTPHelper{}

const userContextKey = "current_user"

// Authenticated validates the bearer token and resolves it to a live user
// record. The record is re-read on every request on purpose: entitlement
// changes take effect without reissuing tokens.
func Authenticated(tokens services.TokenService, users repositories.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			HTTPHelper.SendUnauthorizedError(c, "Authorization header required", HTTPHelper.EmptyJsonMap())
			c.Abort()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			HTTPHelper.SendUnauthorizedError(c, "Bearer token required", HTTPHelper.EmptyJsonMap())
			c.Abort()
			return
		}

		username, err := tokens.Validate(tokenString)
		if err != nil {
			HTTPHelper.SendUnauthorizedError(c, err.Error(), HTTPHelper.EmptyJsonMap())
			c.Abort()
			return
		}

		user, err := users.GetByUsername(username)
		if err != nil {
			HTTPHelper.SendUnauthorizedError(c, "Could not validate credentials", HTTPHelper.EmptyJsonMap())
			c.Abort()
			return
		}

		c.Set(userContextKey, user)
		c.Next()
	}
}

// RequireVIP gates post creation and mutation behind the VIP flag.
func RequireVIP() gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := CurrentUser(c)
		if !ok {
			HTTPHelper.SendUnauthorizedError(c, "User not found in context", HTTPHelper.EmptyJsonMap())
			c.Abort()
			return
		}

		if !user.IsVIP {
			HTTPHelper.SendForbiddenError(c, "VIP status required", HTTPHelper.EmptyJsonMap())
			c.Abort()
			return
		}

		c.Next()
	}
}

// RequireAdmin gates category management and entitlement toggling.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := CurrentUser(c)
		if !ok {
			HTTPHelper.SendUnauthorizedError(c, "User not found in context", HTTPHelper.EmptyJsonMap())
			c.Abort()
			return
		}

		if !user.IsAdmin {
			HTTPHelper.SendForbiddenError(c, "Admin privileges required", HTTPHelper.EmptyJsonMap())
			c.Abort()
			return
		}

		c.Next()
	}
}

// CurrentUser returns the user resolved by Authenticated.
func CurrentUser(c *gin.Context) (*models.User, bool) {
	value, exists := c.Get(userContextKey)
	if !exists {
		return nil, false
	}
	user, ok := value.(*models.User)
	return user, ok
}
