package middleware

import (
	"net/http"

	"account-service/internal/errors"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RequireJSONMiddleware 要求带请求体的请求必须声明 application/json
func RequireJSONMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method == http.MethodPost || c.Request.Method == http.MethodPut {
			if c.ContentType() != "application/json" {
				zap.L().Error("无效的 Content-Type",
					zap.String("content_type", c.ContentType()),
					zap.String("path", c.Request.URL.Path))
				errors.HandleError(c, errors.New(errors.ErrUnsupportedMedia,
					"Content-Type must be application/json"))
				c.Abort()
				return
			}
		}
		c.Next()
	}
}
