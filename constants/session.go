package constants

import "time"

// 客户端 SDK 约定的请求头
const (
	HeaderCode          = "code"           // wx.login() 获取的一次性 code
	HeaderEncryptedData = "encrypted-data" // wx.getUserInfo() 返回的加密数据
	HeaderIV            = "iv"             // 解密 encrypted-data 所需的初始向量
	HeaderID            = "id"             // 登录后下发的会话 id
	HeaderSkey          = "skey"           // 登录后下发的会话密钥
)

// SessionMagicKey 响应体中的标记字段，客户端 SDK 据此识别会话响应。
const SessionMagicKey = "magic"

// ErrorResponseCode 所有会话错误响应统一使用的 code。
const ErrorResponseCode = -1

// 会话错误类型，写入错误响应的 error 字段
const (
	ErrTypeInvalidRequest   = "INVALID_REQUEST"
	ErrTypeLoginFailed      = "LOGIN_FAILED"
	ErrTypeCheckLoginFailed = "CHECK_LOGIN_FAILED"
	ErrTypeInvalidSession   = "INVALID_SESSION"
)

// 鉴权服务返回的、表示会话已失效的错误码
const (
	UpstreamCodeSessionExpired = 60011 // 会话不存在或已过期
	UpstreamCodeSkeyMismatch   = 60012 // skey 与会话不匹配
)

// UpstreamCodeDecryptFailed local 模式下解密用户数据失败时使用的错误码
const UpstreamCodeDecryptFailed = 41003

// ContextKeyUserInfo 拦截器校验通过后，在 gin.Context 中存放 UserInfo 的键。
const ContextKeyUserInfo = "weapp.userInfo"

const (
	SessionKeyPrefix  = "weapp:session" // Redis 会话键前缀
	DefaultSessionTTL = 72 * time.Hour  // sessionConfig.ttl 未配置时的会话有效期
)

// DefaultAllowlist routeConfig.allowlist 未配置时无需会话即可访问的路径。
var DefaultAllowlist = []string{"/login", "/index", "/check", "/swagger/**"}
