// Package response HTTP统一响应封装
//
// 所有接口都返回HTTP 200 + {code, message, data}，调用方按code判断结果；
// 请求经过日志中间件时，响应里附带request_id，方便对照服务端日志排查
package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "github.com/xiebiao/bookcatalog/pkg/errors"
)

// CodeOK 成功
const CodeOK = 0

// requestIDKey 与日志中间件写入gin.Context的key一致
const requestIDKey = "request_id"

// Response 统一响应结构
type Response struct {
	Code      int    `json:"code"`                 // 业务错误码，不是HTTP状态码
	Message   string `json:"message"`              // 用户友好的提示信息
	Data      any    `json:"data,omitempty"`       // 失败时为空
	RequestID string `json:"request_id,omitempty"` // 日志中间件生成的请求ID
}

// Success 成功响应
func Success(c *gin.Context, data any) {
	write(c, CodeOK, "success", data)
}

// Error 错误响应（自动处理AppError）
//
//	detail, err := h.service.Select(ctx, id)
//	if err != nil {
//	    response.Error(c, err)
//	    return
//	}
//
// 内部错误通过c.Error挂到请求上下文，由日志中间件统一记录，不返回给客户端
func Error(c *gin.Context, err error) {
	appErr := apperrors.GetAppError(err)
	if appErr.Err != nil {
		_ = c.Error(appErr.Err)
	}
	write(c, appErr.Code, appErr.Message, nil)
}

// NotFound 路由不存在（注册到engine.NoRoute）
func NotFound(c *gin.Context) {
	write(c, apperrors.ErrCodeNotFound, "资源不存在", nil)
}

func write(c *gin.Context, code int, message string, data any) {
	c.JSON(http.StatusOK, Response{
		Code:      code,
		Message:   message,
		Data:      data,
		RequestID: c.GetString(requestIDKey),
	})
}
