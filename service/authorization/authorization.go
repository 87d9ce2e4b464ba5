package authorization

import "context"

// LoginResult code 换取会话的结果
type LoginResult struct {
	ID       string // 会话 id
	Skey     string // 会话密钥
	UserInfo any    // 上游返回的 user_info，原样保留
}

// CheckLoginResult 校验会话的结果
type CheckLoginResult struct {
	UserInfo any
}

// AuthorizationService 鉴权网关：用 code 换取会话、校验已有会话。
// 两个操作都是同步的单次调用，不重试、不缓存；相同参数再次调用会再走一次完整流程。
type AuthorizationService interface {
	// Login 用一次性 code 以及加密的用户数据换取新会话。
	// 上游报告错误时返回 *AuthorizationAPIError。
	Login(ctx context.Context, code, encryptedData, iv string) (*LoginResult, error)

	// CheckLogin 校验会话 id 与 skey，成功时返回会话对应的用户资料。
	// 上游报告错误时返回 *AuthorizationAPIError。
	CheckLogin(ctx context.Context, id, skey string) (*CheckLoginResult, error)
}
