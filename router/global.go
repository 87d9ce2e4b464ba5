package router

import (
	"time"

	"github.com/Xushengqwer/go-common/core"
	commonMiddleware "github.com/Xushengqwer/go-common/middleware"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.uber.org/zap"

	"github.com/Xushengqwer/weapp_gateway/config"
	"github.com/Xushengqwer/weapp_gateway/constants"
	"github.com/Xushengqwer/weapp_gateway/controller"
	_ "github.com/Xushengqwer/weapp_gateway/docs" // 引入 docs 包以注册 Swagger 信息
	"github.com/Xushengqwer/weapp_gateway/initialization"
	"github.com/Xushengqwer/weapp_gateway/middleware"
)

// SetupRouter 初始化并配置 Gin 引擎，注册所有中间件和路由。
// 中间件顺序: 追踪 -> panic 恢复 -> 访问日志 -> 超时 -> 会话校验 -> 业务处理。
func SetupRouter(
	logger *core.ZapLogger,
	cfg *config.WeappGatewayConfig,
	appServices *initialization.AppServices,
) *gin.Engine {
	logger.Info("开始设置 Gin 路由...")

	router := gin.Default()

	// 1. OTel Middleware (最先，处理追踪上下文和 Span)
	router.Use(otelgin.Middleware(constants.ServiceName))

	// 2. Panic Recovery
	router.Use(commonMiddleware.ErrorHandlingMiddleware(logger))

	// 3. Request Logger (记录访问日志，需要 TraceID)
	if baseLogger := logger.Logger(); baseLogger != nil {
		router.Use(commonMiddleware.RequestLoggerMiddleware(baseLogger))
	} else {
		logger.Warn("无法获取底层的 *zap.Logger，跳过 RequestLoggerMiddleware 注册")
	}

	// 4. Request Timeout，配置单位为秒
	requestTimeout := time.Duration(cfg.ServerConfig.RequestTimeout) * time.Second
	router.Use(commonMiddleware.RequestTimeoutMiddleware(logger, requestTimeout))

	allowlist := cfg.RouteConfig.Allowlist
	if len(allowlist) == 0 {
		allowlist = constants.DefaultAllowlist
	}
	RegisterRoutes(router, appServices, allowlist, logger.Logger())
	logger.Info("所有业务路由已成功注册", zap.Strings("allowlist", allowlist))

	return router
}

// RegisterRoutes 挂载会话拦截器并注册全部路由。
// 拦截器先于任何路由注册，白名单以外的路径 (包括未定义的路径) 都要求有效会话。
func RegisterRoutes(router *gin.Engine, appServices *initialization.AppServices, allowlist []string, logger *zap.Logger) {
	router.Use(middleware.VerifySession(appServices.Login, allowlist))

	loginCtrl := controller.NewLoginController(appServices.Login, appServices.User, logger)
	userCtrl := controller.NewUserController(appServices.User, logger)

	loginCtrl.RegisterRoutes(router)
	userCtrl.RegisterRoutes(router)
	router.GET("/index", controller.IndexHandler)

	// 访问路径 /swagger/index.html
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
