package config

import "time"

// AuthorizationMode 决定会话由谁签发和校验。
type AuthorizationMode string

const (
	// AuthorizationModeRemote 将 login / checkLogin 委托给托管的鉴权服务 (默认)。
	AuthorizationModeRemote AuthorizationMode = "remote"
	// AuthorizationModeLocal 由本服务直接调用微信 jscode2session 并自行签发会话。
	AuthorizationModeLocal AuthorizationMode = "local"
)

// AuthorizationConfig 定义鉴权网关的配置
type AuthorizationConfig struct {
	// Mode 取值 remote 或 local，留空按 remote 处理。
	Mode AuthorizationMode `mapstructure:"mode" json:"mode" yaml:"mode"`

	// URL 鉴权服务地址，remote 模式必填，例如 "https://mina.qcloud.com"
	URL string `mapstructure:"url" json:"url" yaml:"url"`

	// Proxy 可选的出站代理，支持 http://、https:// 和 socks5:// 三种形式。
	Proxy string `mapstructure:"proxy" json:"proxy" yaml:"proxy"`

	// Timeout 单次出站请求的超时时间，0 表示沿用传输层默认值。
	Timeout time.Duration `mapstructure:"timeout" json:"timeout" yaml:"timeout"`
}
