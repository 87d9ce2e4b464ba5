package main

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/Xushengqwer/weapp_gateway/config"
)

// applyEnvOverrides 用环境变量覆盖文件配置，密钥类配置只记录被覆盖，不打印值。
func applyEnvOverrides(cfg *config.WeappGatewayConfig) {
	log.Println("检查环境变量以覆盖 Weapp Gateway 的文件配置...")

	// Server & Log
	if level := os.Getenv("ZAPCONFIG_LEVEL"); level != "" {
		cfg.ZapConfig.Level = level
		log.Printf("通过环境变量覆盖了 ZapConfig.Level: %s\n", level)
	}
	if level := os.Getenv("GORMLOGCONFIG_LEVEL"); level != "" {
		cfg.GormLogConfig.Level = level
		log.Printf("通过环境变量覆盖了 GormLogConfig.Level: %s\n", level)
	}
	if port := os.Getenv("SERVERCONFIG_PORT"); port != "" {
		cfg.ServerConfig.Port = port
		log.Printf("通过环境变量覆盖了 ServerConfig.Port: %s\n", port)
	}
	// Tracer
	if enabled, err := strconv.ParseBool(os.Getenv("TRACERCONFIG_ENABLED")); err == nil {
		cfg.TracerConfig.Enabled = enabled
		log.Printf("通过环境变量覆盖了 TracerConfig.Enabled: %t\n", enabled)
	}

	// Authorization
	if mode := os.Getenv("AUTHORIZATIONCONFIG_MODE"); mode != "" {
		cfg.AuthorizationConfig.Mode = config.AuthorizationMode(mode)
		log.Printf("通过环境变量覆盖了 AuthorizationConfig.Mode: %s\n", mode)
	}
	if url := os.Getenv("AUTHORIZATIONCONFIG_URL"); url != "" {
		cfg.AuthorizationConfig.URL = url
		log.Printf("通过环境变量覆盖了 AuthorizationConfig.URL: %s\n", url)
	}
	if proxy := os.Getenv("AUTHORIZATIONCONFIG_PROXY"); proxy != "" {
		cfg.AuthorizationConfig.Proxy = proxy
		log.Printf("通过环境变量覆盖了 AuthorizationConfig.Proxy") // 代理地址可能带账号密码
	}
	if timeout, err := time.ParseDuration(os.Getenv("AUTHORIZATIONCONFIG_TIMEOUT")); err == nil {
		cfg.AuthorizationConfig.Timeout = timeout
		log.Printf("通过环境变量覆盖了 AuthorizationConfig.Timeout: %s\n", timeout)
	}

	// Wechat & Session (local 模式)
	if appID := os.Getenv("WECHATCONFIG_APP_ID"); appID != "" {
		cfg.WechatConfig.AppID = appID
		log.Printf("通过环境变量覆盖了 WechatConfig.AppID: %s\n", appID)
	}
	if secret := os.Getenv("WECHATCONFIG_SECRET"); secret != "" {
		cfg.WechatConfig.Secret = secret
		log.Printf("通过环境变量覆盖了 WechatConfig.Secret")
	}
	if key := os.Getenv("SESSIONCONFIG_SECRET_KEY"); key != "" {
		cfg.SessionConfig.SecretKey = key
		log.Printf("通过环境变量覆盖了 SessionConfig.SecretKey")
	}

	// MySQL & Redis
	if dsn := os.Getenv("MYSQLCONFIG_DSN"); dsn != "" {
		cfg.MySQLConfig.DSN = dsn
		log.Printf("通过环境变量覆盖了 MySQLConfig.DSN")
	}
	if addr := os.Getenv("REDISCONFIG_ADDRESS"); addr != "" {
		cfg.RedisConfig.Address = addr
		log.Printf("通过环境变量覆盖了 RedisConfig.Address: %s\n", addr)
	}
	if pass := os.Getenv("REDISCONFIG_PASSWORD"); pass != "" {
		cfg.RedisConfig.Password = pass
		log.Printf("通过环境变量覆盖了 RedisConfig.Password")
	}
}
