// admin.go - Admin pages; every route here sits behind middleware.RequireAdmin

package handlers

import (
	"errors"
	"net/http"

	"go-food-shop/logger"
	"go-food-shop/middleware"
	"go-food-shop/services"

	"github.com/gin-gonic/gin"
)

type ResetPasswordInput struct {
	UserID      uint   `form:"user_id" binding:"required"`
	NewPassword string `form:"new_password" binding:"required"`
}

func AdminDashboard(c *gin.Context) {
	c.HTML(http.StatusOK, "admin_dashboard.html", nil)
}

func AdminUsers(c *gin.Context) {
	users, err := services.ListUsers(db(c))
	if err != nil {
		internalError(c, err, "list users")
		return
	}
	c.HTML(http.StatusOK, "admin_users.html", gin.H{"Users": users})
}

func AdminOrders(c *gin.Context) {
	orders, err := services.ListOrders(db(c))
	if err != nil {
		internalError(c, err, "list orders")
		return
	}
	c.HTML(http.StatusOK, "admin_orders.html", gin.H{"Orders": orders})
}

func AdminResetPassword(c *gin.Context) {
	var input ResetPasswordInput
	if err := c.ShouldBind(&input); err != nil {
		badRequest(c)
		return
	}
	err := services.ResetPassword(db(c), input.UserID, input.NewPassword)
	if errors.Is(err, services.ErrUserNotFound) {
		c.String(http.StatusNotFound, "User not found.")
		return
	}
	if err != nil {
		internalError(c, err, "reset password")
		return
	}
	logger.FromContext(c).Info().
		Uint("admin_id", middleware.CurrentUserID(c)).
		Uint("target_user_id", input.UserID).
		Msg("password reset")
	htmlMessage(c, http.StatusOK, "Password reset successfully! <a href='/admin/dashboard'>Back to Dashboard</a>")
}
