package authorization

import "fmt"

// AuthorizationAPIError 鉴权服务调用失败。
// - Code 为上游返回的错误码；未能拿到上游响应 (网络错误等) 时为 0，此时 Err 包装了 dependencies.ErrRemoteIO。
// - Message 为上游返回的错误信息，原样透传给客户端。
type AuthorizationAPIError struct {
	Code    int
	Message string
	Err     error
}

func (e *AuthorizationAPIError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("鉴权服务调用失败 (code=%d): %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("鉴权服务调用失败 (code=%d): %s", e.Code, e.Message)
}

func (e *AuthorizationAPIError) Unwrap() error {
	return e.Err
}
