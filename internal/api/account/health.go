package account

import (
	"net/http"

	"account-service/internal/middleware"

	"github.com/gin-gonic/gin"
)

// HealthHandler 提供存活探针
type HealthHandler struct {
	monitor *middleware.ErrorMonitor
}

func NewHealthHandler(monitor *middleware.ErrorMonitor) *HealthHandler {
	return &HealthHandler{monitor}
}

// Health 返回服务状态和按错误码统计的错误计数
func (h *HealthHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "OK",
		"errors": h.monitor.GetErrorCounts(),
	})
}
