package handlers

import (
	"net/http"

	"go-food-shop/database"
	"go-food-shop/logger"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// db returns the shared pool bound to this request's context
func db(c *gin.Context) *gorm.DB {
	return database.DB.WithContext(c.Request.Context())
}

// internalError logs an unexpected store failure and answers 500
func internalError(c *gin.Context, err error, msg string) {
	_ = c.Error(err)
	logger.FromContext(c).Error().Err(err).Msg(msg)
	c.String(http.StatusInternalServerError, "Internal Server Error")
}

func badRequest(c *gin.Context) {
	c.String(http.StatusBadRequest, "Invalid request.")
}

// htmlMessage answers with a short HTML fragment, as the shop does after
// state-changing actions that do not redirect
func htmlMessage(c *gin.Context, status int, body string) {
	c.Data(status, "text/html; charset=utf-8", []byte(body))
}
