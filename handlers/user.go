// user.go - Handles user registration, login and logout

package handlers

import (
	"errors"
	"net/http"

	"go-food-shop/services"
	"go-food-shop/session"

	"github.com/gin-gonic/gin"
)

type RegisterInput struct { // Form fields for registration
	Username string `form:"username" binding:"required"`
	Password string `form:"password" binding:"required"`
}

type LoginInput struct { // Form fields for login
	Username string `form:"username" binding:"required"`
	Password string `form:"password" binding:"required"`
}

func RegisterForm(c *gin.Context) {
	c.HTML(http.StatusOK, "register.html", nil)
}

func Register(c *gin.Context) { // Handler for user registration
	var input RegisterInput
	if err := c.ShouldBind(&input); err != nil {
		badRequest(c)
		return
	}
	_, err := services.Register(db(c), input.Username, input.Password)
	if errors.Is(err, services.ErrDuplicateUsername) {
		c.String(http.StatusOK, "Username already exists! Try another.")
		return
	}
	if err != nil {
		internalError(c, err, "register user")
		return
	}
	c.Redirect(http.StatusFound, "/")
}

func LoginForm(c *gin.Context) {
	c.HTML(http.StatusOK, "login.html", nil)
}

func Login(sessions *session.Manager) gin.HandlerFunc { // Handler for user login
	return func(c *gin.Context) {
		var input LoginInput
		if err := c.ShouldBind(&input); err != nil {
			badRequest(c)
			return
		}
		user, err := services.Authenticate(db(c), input.Username, input.Password)
		if errors.Is(err, services.ErrInvalidCredentials) {
			c.String(http.StatusUnauthorized, "Invalid username or password.")
			return
		}
		if err != nil {
			internalError(c, err, "authenticate")
			return
		}
		if err := sessions.Start(c, user.ID, user.Username); err != nil {
			internalError(c, err, "start session")
			return
		}
		c.Redirect(http.StatusFound, "/")
	}
}

func Logout(sessions *session.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessions.End(c)
		c.Redirect(http.StatusFound, "/")
	}
}
