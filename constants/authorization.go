package constants

// 鉴权服务协议常量
const (
	AuthAPIVersion       = 1
	AuthAPIComponentName = "MA"

	AuthInterfaceLogin      = "qcloud.cam.id_skey" // 用 code 换取会话
	AuthInterfaceCheckLogin = "qcloud.cam.auth"    // 校验会话
)

// DefaultWechatSessionEndpoint 微信 jscode2session 官方地址
const DefaultWechatSessionEndpoint = "https://api.weixin.qq.com/sns/jscode2session"
