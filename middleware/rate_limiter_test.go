package middleware

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func newRequestContext(t *testing.T) *gin.Context {
	t.Helper()
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", "/", nil)
	return c
}

func TestClientIP(t *testing.T) {
	t.Run("prefers X-Real-IP", func(t *testing.T) {
		c := newRequestContext(t)
		c.Request.Header.Set("X-Real-IP", "203.0.113.7")
		c.Request.Header.Set("X-Forwarded-For", "198.51.100.1, 10.0.0.2")
		assert.Equal(t, "203.0.113.7", clientIP(c))
	})

	t.Run("first forwarded hop", func(t *testing.T) {
		c := newRequestContext(t)
		c.Request.Header.Set("X-Forwarded-For", " 198.51.100.1 , 10.0.0.2")
		assert.Equal(t, "198.51.100.1", clientIP(c))
	})

	t.Run("remote addr without port", func(t *testing.T) {
		c := newRequestContext(t)
		c.Request.RemoteAddr = "192.0.2.4:51234"
		assert.Equal(t, "192.0.2.4", clientIP(c))
	})

	t.Run("remote addr as-is when unparseable", func(t *testing.T) {
		c := newRequestContext(t)
		c.Request.RemoteAddr = "192.0.2.4"
		assert.Equal(t, "192.0.2.4", clientIP(c))
	})
}
