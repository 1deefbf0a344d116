// auth.go - Session authentication middleware
// This file implements authentication and authorization for the shop pages
//
// Authentication Flow (shopper pages):
// 1. Read the session cookie and validate its signature and expiry
// 2. Store user ID and username in the gin context for handlers
// 3. Missing or invalid session: redirect to /login
//
// Authorization Flow (admin pages):
// 1. Validate the session the same way
// 2. Load the user and ask it whether it is an Administrator
// 3. Missing session or non-admin: plain "Access Denied!" with 403

package middleware

import (
	"errors"
	"net/http"

	"go-food-shop/database"
	"go-food-shop/logger"
	"go-food-shop/models"
	"go-food-shop/services"
	"go-food-shop/session"

	"github.com/gin-gonic/gin"
)

const (
	UserIDKey   = "user_id"  // gin context key holding the session user ID (uint)
	UsernameKey = "username" // gin context key holding the session username
)

const accessDenied = "Access Denied!"

// RequireSession - redirects to the login page unless a valid session exists
func RequireSession(sessions *session.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, err := sessions.Load(c)
		if err != nil {
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}
		c.Set(UserIDKey, claims.UserID)
		c.Set(UsernameKey, claims.Username)
		c.Next()
	}
}

// RequireAdmin - denies access unless the session user has the admin role.
// Unlike RequireSession it never redirects, even when there is no session.
func RequireAdmin(sessions *session.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, err := sessions.Load(c)
		if err != nil {
			c.String(http.StatusForbidden, accessDenied)
			c.Abort()
			return
		}

		// The token does not carry the role, so ask the store
		user, err := services.FindUser(database.DB.WithContext(c.Request.Context()), claims.UserID)
		if err != nil {
			if !errors.Is(err, services.ErrUserNotFound) {
				logger.FromContext(c).Error().Err(err).Msg("load admin user")
				c.String(http.StatusInternalServerError, "Internal Server Error")
				c.Abort()
				return
			}
			c.String(http.StatusForbidden, accessDenied)
			c.Abort()
			return
		}

		var admin models.Administrator = user
		if !admin.IsAdmin() {
			c.String(http.StatusForbidden, accessDenied)
			c.Abort()
			return
		}

		c.Set(UserIDKey, user.ID)
		c.Set(UsernameKey, user.Username)
		c.Next()
	}
}

// CurrentUserID returns the user ID stored by RequireSession or RequireAdmin.
func CurrentUserID(c *gin.Context) uint {
	return c.GetUint(UserIDKey)
}

// CurrentUsername returns the username stored by RequireSession or RequireAdmin.
func CurrentUsername(c *gin.Context) string {
	return c.GetString(UsernameKey)
}
