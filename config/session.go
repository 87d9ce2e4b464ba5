package config

import "time"

// SessionConfig 定义 local 模式下自行签发会话所需的参数
type SessionConfig struct {
	SecretKey string        `mapstructure:"secret_key" yaml:"secret_key"` // 用于签名 skey 的密钥
	Issuer    string        `mapstructure:"issuer" yaml:"issuer"`         // skey 的签发者
	TTL       time.Duration `mapstructure:"ttl" yaml:"ttl"`               // 会话有效期，同时作为 Redis 键的过期时间
}
