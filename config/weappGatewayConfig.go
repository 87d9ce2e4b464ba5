package config

import (
	"github.com/Xushengqwer/go-common/config"
)

type WeappGatewayConfig struct {
	ZapConfig           config.ZapConfig     `mapstructure:"zapConfig" json:"zapConfig" yaml:"zapConfig"`
	GormLogConfig       config.GormLogConfig `mapstructure:"gormLogConfig" json:"gormLogConfig" yaml:"gormLogConfig"`
	ServerConfig        config.ServerConfig  `mapstructure:"serverConfig" json:"serverConfig" yaml:"serverConfig"`
	TracerConfig        config.TracerConfig  `mapstructure:"tracerConfig" json:"tracerConfig" yaml:"tracerConfig"`
	MySQLConfig         MySQLConfig          `mapstructure:"mySQLConfig" json:"mySQLConfig" yaml:"mySQLConfig"`
	RedisConfig         RedisConfig          `mapstructure:"redisConfig" json:"redisConfig" yaml:"redisConfig"`
	WechatConfig        WechatConfig         `mapstructure:"wechatConfig" json:"wechatConfig" yaml:"wechatConfig"`
	AuthorizationConfig AuthorizationConfig  `mapstructure:"authorizationConfig" json:"authorizationConfig" yaml:"authorizationConfig"`
	SessionConfig       SessionConfig        `mapstructure:"sessionConfig" json:"sessionConfig" yaml:"sessionConfig"`
	RouteConfig         RouteConfig          `mapstructure:"routeConfig" json:"routeConfig" yaml:"routeConfig"`
}
