package login

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/Xushengqwer/weapp_gateway/constants"
	"github.com/Xushengqwer/weapp_gateway/dependencies"
)

// LoginServiceError 会话服务对外的错误。
// Type 取 constants.ErrType* 之一，写入错误响应的 error 字段。
type LoginServiceError struct {
	Type    string
	Message string
	Err     error
}

func (e *LoginServiceError) Error() string {
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

func (e *LoginServiceError) Unwrap() error {
	return e.Err
}

// HTTPStatus 错误对应的 HTTP 状态码。
// 鉴权服务不可达时返回 502，与错误类型无关。
func HTTPStatus(err error) int {
	var loginErr *LoginServiceError
	if !errors.As(err, &loginErr) {
		return http.StatusInternalServerError
	}
	if errors.Is(err, dependencies.ErrRemoteIO) {
		return http.StatusBadGateway
	}
	switch loginErr.Type {
	case constants.ErrTypeInvalidRequest:
		return http.StatusBadRequest
	case constants.ErrTypeInvalidSession, constants.ErrTypeLoginFailed:
		return http.StatusUnauthorized
	case constants.ErrTypeCheckLoginFailed:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
