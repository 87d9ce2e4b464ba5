package config

type WechatConfig struct {
	// 小程序的 AppID
	AppID string `mapstructure:"appID" json:"appID" yaml:"appID"`

	// 小程序的 AppSecret
	Secret string `mapstructure:"secret" json:"secret" yaml:"secret"`

	// Endpoint jscode2session 接口地址，留空使用微信官方地址
	Endpoint string `mapstructure:"endpoint" json:"endpoint" yaml:"endpoint"`
}
