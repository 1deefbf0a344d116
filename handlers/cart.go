// cart.go - Cart pages and place-order

package handlers

import (
	"errors"
	"net/http"

	"go-food-shop/logger"
	"go-food-shop/middleware"
	"go-food-shop/models"
	"go-food-shop/services"

	"github.com/gin-gonic/gin"
)

// OrderNotifier is told about every non-empty order batch after it commits.
type OrderNotifier interface {
	OrderPlaced(userID uint, username string, orders []models.Order) error
}

type AddToCartInput struct {
	ProductName string `form:"product_name" binding:"required"`
	Price       *int64 `form:"price" binding:"required,min=0"` // Pointer so a missing field differs from 0
	Quantity    int    `form:"quantity" binding:"required,min=1"`
}

type RemoveFromCartInput struct {
	CartID uint `form:"cart_id" binding:"required"`
}

func Cart(c *gin.Context) {
	summary, err := services.ListItems(db(c), middleware.CurrentUserID(c))
	if err != nil {
		internalError(c, err, "list cart")
		return
	}
	c.HTML(http.StatusOK, "cart.html", gin.H{
		"Items": summary.Items,
		"Total": summary.Total,
	})
}

// AddToCart stores the submitted line as is. With strictPrices the product
// and price must match the catalog.
func AddToCart(strictPrices bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input AddToCartInput
		if err := c.ShouldBind(&input); err != nil {
			badRequest(c)
			return
		}
		if strictPrices {
			if err := services.CheckCatalogPrice(input.ProductName, *input.Price); err != nil {
				c.String(http.StatusBadRequest, "Invalid product or price.")
				return
			}
		}
		_, err := services.AddItem(db(c), middleware.CurrentUserID(c), input.ProductName, *input.Price, input.Quantity)
		if errors.Is(err, services.ErrInvalidQuantity) || errors.Is(err, services.ErrInvalidPrice) ||
			errors.Is(err, services.ErrAmountTooLarge) {
			badRequest(c)
			return
		}
		if err != nil {
			internalError(c, err, "add to cart")
			return
		}
		c.Redirect(http.StatusFound, "/cart")
	}
}

func RemoveFromCart(c *gin.Context) {
	var input RemoveFromCartInput
	if err := c.ShouldBind(&input); err != nil {
		badRequest(c)
		return
	}
	if err := services.RemoveItem(db(c), middleware.CurrentUserID(c), input.CartID); err != nil {
		internalError(c, err, "remove from cart")
		return
	}
	c.Redirect(http.StatusFound, "/cart")
}

// PlaceOrder converts the cart. A notifier failure is logged only; the
// orders are already committed at that point.
func PlaceOrder(notifier OrderNotifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := middleware.CurrentUserID(c)
		orders, err := services.PlaceOrder(db(c), userID)
		if err != nil {
			internalError(c, err, "place order")
			return
		}
		if len(orders) > 0 && notifier != nil {
			if err := notifier.OrderPlaced(userID, middleware.CurrentUsername(c), orders); err != nil {
				logger.FromContext(c).Warn().Err(err).Int("orders", len(orders)).Msg("order notification failed")
			}
		}
		htmlMessage(c, http.StatusOK, "Order placed successfully! <a href='/'>Back to Shop</a>")
	}
}

// MyOrders lists the orders of the logged-in user.
func MyOrders(c *gin.Context) {
	orders, err := services.ListUserOrders(db(c), middleware.CurrentUserID(c))
	if err != nil {
		internalError(c, err, "list own orders")
		return
	}
	c.HTML(http.StatusOK, "orders.html", gin.H{"Orders": orders})
}
