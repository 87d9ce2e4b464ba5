package vo

// Session 登录成功后下发给客户端的会话
type Session struct {
	ID   string `json:"id"`
	Skey string `json:"skey"`
}

// LoginResponse /login 成功时的响应体
type LoginResponse struct {
	Magic   int     `json:"magic"`
	Session Session `json:"session"`
}

// CheckResponse /check 成功时的响应体
type CheckResponse struct {
	Magic    int       `json:"magic"`
	UserInfo *UserInfo `json:"userInfo"`
}

// ErrorResponse 会话相关错误的响应体。
// Error 仅在错误来自会话服务时存在。
type ErrorResponse struct {
	Magic   int    `json:"magic"`
	Code    int    `json:"code"`
	Error   string `json:"error,omitempty"`
	Message string `json:"message"`
}
