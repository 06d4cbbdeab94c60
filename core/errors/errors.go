package errors

import (
	"fmt"
)

// AppError 带业务错误码的错误，跨 logic 层边界传递
// 中间件按 Code 映射HTTP状态码
type AppError struct {
	Code    ErrCode // 业务错误码
	Message string  // 面向调用方的错误描述
}

func (e *AppError) Error() string {
	return fmt.Sprintf("[%d] %s", e.Code, e.Message)
}

// New 构造业务错误
func New(code ErrCode, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
	}
}

// Newf 构造业务错误，消息格式化
func Newf(code ErrCode, format string, args ...interface{}) *AppError {
	return &AppError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// IsAppError 是否为业务错误
func IsAppError(err error) bool {
	_, ok := err.(*AppError)
	return ok
}

// GetAppError 取出业务错误，不是则返回nil
func GetAppError(err error) *AppError {
	if appErr, ok := err.(*AppError); ok {
		return appErr
	}
	return nil
}

// CodeOf 返回错误携带的业务错误码，非业务错误一律归为内部错误
func CodeOf(err error) ErrCode {
	if appErr := GetAppError(err); appErr != nil {
		return appErr.Code
	}
	return ErrInternalError
}
