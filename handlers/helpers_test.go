package handlers

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"go-food-shop/database"
	"go-food-shop/middleware"
	"go-food-shop/models"
	"go-food-shop/services"
	"go-food-shop/session"
	"go-food-shop/templates"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

// setupTestDB creates a fresh database file for each test
func setupTestDB(t *testing.T) {
	t.Helper()
	require.NoError(t, database.Connect(filepath.Join(t.TempDir(), "test.db"), 1))
	t.Cleanup(func() { _ = database.Close() })
}

// setupRouter returns a gin engine with every shop route. It must mirror
// routes.Setup by hand; routes imports handlers, so using it here would be an
// import cycle. End-to-end coverage of the real table lives in routes_test.go.
func setupRouter(notifier OrderNotifier, strictPrices bool) (*gin.Engine, *session.Manager) {
	gin.SetMode(gin.TestMode)
	sessions := session.NewManager(testSecret, time.Hour)

	r := gin.New()
	r.SetHTMLTemplate(templates.Load())
	r.GET("/", Index(sessions))
	r.GET("/register", RegisterForm)
	r.POST("/register", Register)
	r.GET("/login", LoginForm)
	r.POST("/login", Login(sessions))
	r.GET("/logout", Logout(sessions))
	r.POST("/logout", Logout(sessions))

	shop := r.Group("/")
	shop.Use(middleware.RequireSession(sessions))
	shop.GET("/cart", Cart)
	shop.POST("/add-to-cart", AddToCart(strictPrices))
	shop.POST("/remove-from-cart", RemoveFromCart)
	shop.POST("/place-order", PlaceOrder(notifier))
	shop.GET("/orders", MyOrders)

	admin := r.Group("/admin")
	admin.Use(middleware.RequireAdmin(sessions))
	admin.GET("/dashboard", AdminDashboard)
	admin.GET("/users", AdminUsers)
	admin.GET("/orders", AdminOrders)
	admin.POST("/reset-password", AdminResetPassword)
	return r, sessions
}

func createUser(t *testing.T, username, password string) *models.User {
	t.Helper()
	user, err := services.Register(database.DB, username, password)
	require.NoError(t, err)
	return user
}

func createAdmin(t *testing.T) *models.User {
	t.Helper()
	_, err := database.SeedAdmin(database.DB, "admin", "admin123")
	require.NoError(t, err)
	var admin models.User
	require.NoError(t, database.DB.Where("username = ?", "admin").First(&admin).Error)
	return &admin
}

// sessionCookie signs a session for the user without going through /login
func sessionCookie(t *testing.T, sessions *session.Manager, user *models.User) *http.Cookie {
	t.Helper()
	token, err := sessions.Issue(user.ID, user.Username)
	require.NoError(t, err)
	return &http.Cookie{Name: session.CookieName, Value: token}
}

func postForm(r http.Handler, path string, form url.Values, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	for _, c := range cookies {
		req.AddCookie(c)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func get(r http.Handler, path string, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func findCookie(w *httptest.ResponseRecorder, name string) *http.Cookie {
	for _, c := range w.Result().Cookies() {
		if c.Name == name {
			return c
		}
	}
	return nil
}
