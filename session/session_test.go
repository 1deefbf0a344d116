package session

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssueAndParse(t *testing.T) {
	m := NewManager("secret", time.Hour)

	token, err := m.Issue(7, "alice")
	require.NoError(t, err)

	claims, err := m.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, uint(7), claims.UserID)
	assert.Equal(t, "alice", claims.Username)
}

func TestParseRejectsForeignKey(t *testing.T) {
	token, err := NewManager("one", time.Hour).Issue(7, "alice")
	require.NoError(t, err)

	_, err = NewManager("two", time.Hour).Parse(token)
	assert.Error(t, err)
}

func TestParseRejectsExpired(t *testing.T) {
	m := NewManager("secret", -time.Minute)
	token, err := m.Issue(7, "alice")
	require.NoError(t, err)

	_, err = m.Parse(token)
	assert.Error(t, err)
}

func TestCookieRoundTrip(t *testing.T) {
	gin.SetMode(gin.TestMode)
	m := NewManager("secret", time.Hour)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	require.NoError(t, m.Start(c, 3, "bob"))

	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, CookieName, cookies[0].Name)
	assert.True(t, cookies[0].HttpOnly)
	assert.False(t, cookies[0].Secure)

	c2, _ := gin.CreateTestContext(httptest.NewRecorder())
	c2.Request = httptest.NewRequest(http.MethodGet, "/cart", nil)
	c2.Request.AddCookie(cookies[0])
	claims, err := m.Load(c2)
	require.NoError(t, err)
	assert.Equal(t, "bob", claims.Username)

	c3, _ := gin.CreateTestContext(httptest.NewRecorder())
	c3.Request = httptest.NewRequest(http.MethodGet, "/cart", nil)
	_, err = m.Load(c3)
	assert.ErrorIs(t, err, ErrNoSession)
}

func TestSecureCookie(t *testing.T) {
	gin.SetMode(gin.TestMode)
	m := NewManager("secret", time.Hour).WithSecureCookie(true)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	require.NoError(t, m.Start(c, 3, "bob"))
	m.End(c)

	cookies := w.Result().Cookies()
	require.Len(t, cookies, 2)
	for _, ck := range cookies {
		assert.True(t, ck.Secure)
		assert.True(t, ck.HttpOnly)
	}
}
