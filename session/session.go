// Package session issues and reads the signed login cookie.
package session

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const CookieName = "session"

var ErrNoSession = errors.New("no session")

// Claims is what a session token carries.
type Claims struct {
	UserID   uint   `json:"user_id"`
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// Manager signs session tokens with a key fixed at process start.
type Manager struct {
	secret []byte
	ttl    time.Duration
	secure bool // Only send the cookie over HTTPS
}

func NewManager(secret string, ttl time.Duration) *Manager {
	return &Manager{secret: []byte(secret), ttl: ttl}
}

// WithSecureCookie marks the cookie Secure, for deployments behind TLS.
func (m *Manager) WithSecureCookie(secure bool) *Manager {
	m.secure = secure
	return m
}

// Issue returns a signed token for the given user.
func (m *Manager) Issue(userID uint, username string) (string, error) {
	now := time.Now()
	claims := Claims{
		UserID:   userID,
		Username: username,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    "go-food-shop",
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
}

// Parse validates a token and returns its claims.
func (m *Manager) Parse(token string) (*Claims, error) {
	claims := &Claims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		return m.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, err
	}
	if !parsed.Valid || claims.UserID == 0 {
		return nil, errors.New("invalid session token")
	}
	return claims, nil
}

// Start writes the session cookie for a freshly authenticated user.
func (m *Manager) Start(c *gin.Context, userID uint, username string) error {
	token, err := m.Issue(userID, username)
	if err != nil {
		return err
	}
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(CookieName, token, int(m.ttl.Seconds()), "/", "", m.secure, true)
	return nil
}

// Load reads the session from the request cookie.
func (m *Manager) Load(c *gin.Context) (*Claims, error) {
	token, err := c.Cookie(CookieName)
	if err != nil || token == "" {
		return nil, ErrNoSession
	}
	return m.Parse(token)
}

// End expires the session cookie.
func (m *Manager) End(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(CookieName, "", -1, "/", "", m.secure, true)
}
