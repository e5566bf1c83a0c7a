package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/xiebiao/bookcatalog/pkg/logger"
)

// RequestIDHeader 请求ID响应头
const RequestIDHeader = "X-Request-ID"

// RequestIDKey gin.Context中保存请求ID的key
const RequestIDKey = "request_id"

// slowRequest 超过该耗时记录warn日志
const slowRequest = 3 * time.Second

// Logger 请求日志中间件
//
// 设计说明：
// 1. 为每个请求生成唯一的请求ID（客户端传入X-Request-ID时沿用）
// 2. 请求结束后输出一条结构化日志：方法、路由、状态码、耗时、客户端IP
// 3. handler通过c.Error挂上的内部错误在这里统一记录
func Logger(log *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(RequestIDHeader)
		if requestID == "" {
			requestID = uuid.New().String()
		}
		c.Set(RequestIDKey, requestID)
		c.Header(RequestIDHeader, requestID)

		start := time.Now()
		c.Next()
		latency := time.Since(start)

		entry := log.WithFields(map[string]any{
			"request_id": requestID,
			"method":     c.Request.Method,
			"path":       c.Request.URL.Path,
			"query":      c.Request.URL.RawQuery,
			"status":     c.Writer.Status(),
			"latency_ms": latency.Milliseconds(),
			"client_ip":  c.ClientIP(),
		})

		switch {
		case len(c.Errors) > 0:
			entry.Error(c.Errors.Last().Err, "http request")
		case latency > slowRequest:
			entry.Warn("slow http request")
		default:
			entry.Info("http request")
		}
	}
}

// GetRequestID 从Context获取请求ID
func GetRequestID(c *gin.Context) string {
	return c.GetString(RequestIDKey)
}
