package initialization

import (
	"fmt"

	"github.com/Xushengqwer/go-common/core"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Xushengqwer/weapp_gateway/config"
	"github.com/Xushengqwer/weapp_gateway/dependencies"
)

// AppDependencies 封装了应用运行所需的所有基础依赖项。
// local 模式专用的依赖在 remote 模式下为 nil。
type AppDependencies struct {
	Config   *config.WeappGatewayConfig      // Config: 应用的全局配置。
	Logger   *core.ZapLogger                 // Logger: Zap 日志记录器实例。
	DB       *gorm.DB                        // DB: 保存用户资料的 MySQL 连接。
	Provider dependencies.ConnectionProvider // Provider: 所有出站调用共用的连接提供者。

	RedisClient   *redis.Client                      // RedisClient: local 模式的会话存储。
	WechatClient  dependencies.WechatClient          // WechatClient: local 模式调用 jscode2session。
	SessionTokens dependencies.SessionTokenInterface // SessionTokens: local 模式签发和校验 skey。
}

// AuthorizationMode 返回生效的鉴权模式，未配置时为 remote。
func AuthorizationMode(cfg *config.WeappGatewayConfig) (config.AuthorizationMode, error) {
	switch cfg.AuthorizationConfig.Mode {
	case "", config.AuthorizationModeRemote:
		return config.AuthorizationModeRemote, nil
	case config.AuthorizationModeLocal:
		return config.AuthorizationModeLocal, nil
	default:
		return "", fmt.Errorf("%w: 未知的 authorizationConfig.mode: %q", dependencies.ErrConfiguration, cfg.AuthorizationConfig.Mode)
	}
}

// SetupDependencies 按配置初始化基础依赖，任何一步失败都返回错误，由 main 决定退出。
func SetupDependencies(cfg *config.WeappGatewayConfig, logger *core.ZapLogger) (*AppDependencies, error) {
	deps := &AppDependencies{Config: cfg, Logger: logger}

	mode, err := AuthorizationMode(cfg)
	if err != nil {
		return nil, err
	}
	logger.Info("鉴权模式", zap.String("mode", string(mode)))

	// 1. 出站连接，remote 模式下连接鉴权服务，local 模式下连接微信 API
	provider, err := dependencies.NewConnectionProvider(&cfg.AuthorizationConfig)
	if err != nil {
		return nil, fmt.Errorf("初始化出站连接失败: %w", err)
	}
	deps.Provider = provider

	// 2. MySQL，两种模式都用于保存用户资料
	db, err := dependencies.InitMySQL(cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("初始化数据库失败: %w", err)
	}
	deps.DB = db
	logger.Info("数据库连接初始化成功")

	if mode != config.AuthorizationModeLocal {
		logger.Info("所有基础依赖项初始化完成")
		return deps, nil
	}

	// 3. local 模式: 先校验纯配置项，再连接 Redis
	wechatClient, err := dependencies.NewWechatClient(&cfg.WechatConfig, provider)
	if err != nil {
		return nil, fmt.Errorf("初始化微信客户端失败: %w", err)
	}
	deps.WechatClient = wechatClient

	tokens, err := dependencies.NewSessionTokenUtility(&cfg.SessionConfig)
	if err != nil {
		return nil, fmt.Errorf("初始化 skey 工具失败: %w", err)
	}
	deps.SessionTokens = tokens

	redisClient, err := dependencies.InitRedis(&cfg.RedisConfig, logger.Logger())
	if err != nil {
		return nil, fmt.Errorf("初始化 Redis 失败: %w", err)
	}
	deps.RedisClient = redisClient
	logger.Info("Redis 连接初始化成功")

	logger.Info("所有基础依赖项初始化完成")
	return deps, nil
}
