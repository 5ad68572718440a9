package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func setupRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RequestID(), Logging())
	r.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, c.GetString(ctxRequestID))
	})
	return r
}

func TestRequestID_Generated(t *testing.T) {
	r := setupRouter()

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	id := w.Header().Get(headerRequestID)
	assert.NotEmpty(t, id)
	assert.Equal(t, id, w.Body.String())
}

func TestRequestID_Propagated(t *testing.T) {
	r := setupRouter()

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set(headerRequestID, "req-123")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, "req-123", w.Header().Get(headerRequestID))
	assert.Equal(t, "req-123", w.Body.String())
}
