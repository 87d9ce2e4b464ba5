package initialization

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/Xushengqwer/weapp_gateway/config"
	"github.com/Xushengqwer/weapp_gateway/dependencies"
	"github.com/Xushengqwer/weapp_gateway/repository/mysql"
	"github.com/Xushengqwer/weapp_gateway/repository/redis"
	"github.com/Xushengqwer/weapp_gateway/service/authorization"
	"github.com/Xushengqwer/weapp_gateway/service/login"
	"github.com/Xushengqwer/weapp_gateway/service/user"
)

// AppServices 封装了应用所需的所有服务层实例。
type AppServices struct {
	Authorization authorization.AuthorizationService
	Login         login.LoginService
	User          user.UserService
}

// SetupServices 初始化仓库层和服务层实例。
func SetupServices(deps *AppDependencies) (*AppServices, error) {
	logger := deps.Logger.Logger()

	authService, err := NewAuthorizationService(deps, logger)
	if err != nil {
		return nil, err
	}

	userRepo := mysql.NewWeappUserRepository(deps.DB)

	return &AppServices{
		Authorization: authService,
		Login:         login.NewLoginService(authService, logger),
		User:          user.NewUserService(userRepo, logger),
	}, nil
}

// NewAuthorizationService 按鉴权模式创建鉴权网关。
// local 模式要求 deps 中的 RedisClient、WechatClient、SessionTokens 均已初始化。
func NewAuthorizationService(deps *AppDependencies, logger *zap.Logger) (authorization.AuthorizationService, error) {
	mode, err := AuthorizationMode(deps.Config)
	if err != nil {
		return nil, err
	}

	if mode == config.AuthorizationModeLocal {
		if deps.RedisClient == nil || deps.WechatClient == nil || deps.SessionTokens == nil {
			return nil, fmt.Errorf("%w: local 模式的依赖未初始化", dependencies.ErrConfiguration)
		}
		return authorization.NewLocalAuthorizationService(
			deps.Config.WechatConfig.AppID,
			deps.WechatClient,
			deps.SessionTokens,
			redis.NewSessionRepo(deps.RedisClient),
			logger,
		), nil
	}

	remoteClient := dependencies.NewRemoteClient(deps.Provider)
	return authorization.NewRemoteAuthorizationService(&deps.Config.AuthorizationConfig, remoteClient, logger)
}
