package routes

import (
	"go-food-shop/handlers"
	"go-food-shop/middleware"
	"go-food-shop/session"
	"go-food-shop/templates"

	"github.com/gin-gonic/gin"
)

// Options carries what the route table needs besides the database.
type Options struct {
	Sessions     *session.Manager
	Notifier     handlers.OrderNotifier // nil disables order notifications
	StrictPrices bool
	StaticDir    string // Served under /static when set
}

// Setup is the single entry point that wires public, shopper and admin routes.
func Setup(r *gin.Engine, opts Options) {
	r.SetHTMLTemplate(templates.Load())
	if opts.StaticDir != "" {
		r.Static("/static", opts.StaticDir)
	}

	// Public routes (no session required)
	r.GET("/", handlers.Index(opts.Sessions))
	r.GET("/register", handlers.RegisterForm)
	r.POST("/register", handlers.Register)
	r.GET("/login", handlers.LoginForm)
	r.POST("/login", handlers.Login(opts.Sessions))
	r.GET("/logout", handlers.Logout(opts.Sessions))
	r.POST("/logout", handlers.Logout(opts.Sessions))

	// Shopper routes (redirect to /login without a session)
	shop := r.Group("/")
	shop.Use(middleware.RequireSession(opts.Sessions))
	{
		shop.GET("/cart", handlers.Cart)
		shop.POST("/add-to-cart", handlers.AddToCart(opts.StrictPrices))
		shop.POST("/remove-from-cart", handlers.RemoveFromCart)
		shop.POST("/place-order", handlers.PlaceOrder(opts.Notifier))
		shop.GET("/orders", handlers.MyOrders)
	}

	// Admin routes (plain "Access Denied!" without an admin session)
	admin := r.Group("/admin")
	admin.Use(middleware.RequireAdmin(opts.Sessions))
	{
		admin.GET("/dashboard", handlers.AdminDashboard)
		admin.GET("/users", handlers.AdminUsers)
		admin.GET("/orders", handlers.AdminOrders)
		admin.POST("/reset-password", handlers.AdminResetPassword)
	}
}
