package middleware

import (
	"account-service/internal/errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

// TestErrorMonitorCountsErrors 错误监控按错误码统计处理错误
func TestErrorMonitorCountsErrors(t *testing.T) {
	gin.SetMode(gin.TestMode)

	monitor := NewErrorMonitor()
	router := gin.New()
	router.Use(ErrorMonitorMiddleware(monitor))
	router.GET("/boom", func(c *gin.Context) {
		errors.HandleError(c, errors.New(errors.ErrValidation, "无效的数据"))
	})

	for i := 0; i < 3; i++ {
		req, _ := http.NewRequest("GET", "/boom", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	}

	counts := monitor.GetErrorCounts()
	assert.Equal(t, 3, counts[errors.ErrValidation])
}

// TestRequireJSONAllowsGet GET 请求不检查 Content-Type
func TestRequireJSONAllowsGet(t *testing.T) {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.Use(RequireJSONMiddleware())
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	req, _ := http.NewRequest("GET", "/ping", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}
