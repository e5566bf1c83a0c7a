package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

var errBookNotFound = New(ErrCodeBookNotFound, "图书不存在")

func TestAppError_Error(t *testing.T) {
	assert.Equal(t, "[40402] 图书不存在", errBookNotFound.Error())

	wrapped := ErrDatabaseError.WithCause(fmt.Errorf("connection refused"))
	assert.Equal(t, "[50001] 数据库错误: connection refused", wrapped.Error())
}

func TestAppError_Is(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		target error
		want   bool
	}{
		{"同一个哨兵错误", errBookNotFound, errBookNotFound, true},
		{"WithDetail派生", ErrInvalidParams.WithDetail("page必须大于等于1"), ErrInvalidParams, true},
		{"WithCause派生", ErrRedisError.WithCause(errors.New("EOF")), ErrRedisError, true},
		{"fmt包装后仍可匹配", fmt.Errorf("load: %w", errBookNotFound), errBookNotFound, true},
		{"错误码不同", errBookNotFound, ErrInvalidParams, false},
		{"普通错误", errors.New("boom"), ErrInternal, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, errors.Is(tt.err, tt.target))
		})
	}
}

func TestWithDetail(t *testing.T) {
	err := ErrInvalidParams.WithDetail("author不能为空")

	assert.Equal(t, ErrCodeInvalidParams, err.Code)
	assert.Equal(t, "参数错误: author不能为空", err.Message)
	assert.Equal(t, "参数错误", ErrInvalidParams.Message, "哨兵错误不能被修改")
}

func TestWithCause(t *testing.T) {
	cause := errors.New("dial tcp: timeout")

	err := ErrRedisError.WithCause(cause)
	assert.Equal(t, ErrCodeRedisError, err.Code)
	assert.Equal(t, "缓存服务错误", err.Message)
	assert.ErrorIs(t, err, cause)
	assert.Nil(t, ErrRedisError.Err, "哨兵错误不能被修改")
}

func TestGetAppError(t *testing.T) {
	t.Run("AppError原样返回", func(t *testing.T) {
		err := fmt.Errorf("handler: %w", errBookNotFound)
		assert.Same(t, errBookNotFound, GetAppError(err))
	})

	t.Run("普通错误包装为内部错误", func(t *testing.T) {
		err := errors.New("boom")

		appErr := GetAppError(err)
		assert.Equal(t, ErrCodeInternal, appErr.Code)
		assert.ErrorIs(t, appErr, err)
		assert.ErrorIs(t, appErr, ErrInternal)
	})
}
