// shop.go - Catalog landing page

package handlers

import (
	"net/http"

	"go-food-shop/catalog"
	"go-food-shop/session"

	"github.com/gin-gonic/gin"
)

// Index renders the catalog. The session is optional here and only used to
// show who is logged in.
func Index(sessions *session.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		username := ""
		if claims, err := sessions.Load(c); err == nil {
			username = claims.Username
		}
		c.HTML(http.StatusOK, "index.html", gin.H{
			"Products": catalog.Products(),
			"Username": username,
		})
	}
}
