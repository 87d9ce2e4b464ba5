package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Xushengqwer/weapp_gateway/models/vo"
	"github.com/Xushengqwer/weapp_gateway/service/login"
	"github.com/Xushengqwer/weapp_gateway/service/user"
)

// LoginController 处理小程序登录和会话校验请求。
// 请求和响应格式由客户端 SDK 约定，不使用通用响应结构。
type LoginController struct {
	loginService login.LoginService
	userService  user.UserService
	logger       *zap.Logger
}

// NewLoginController 创建一个新的 LoginController 实例。
func NewLoginController(loginService login.LoginService, userService user.UserService, logger *zap.Logger) *LoginController {
	return &LoginController{
		loginService: loginService,
		userService:  userService,
		logger:       logger,
	}
}

// LoginHandler 使用 wx.login() 的 code 和 wx.getUserInfo() 的加密数据换取会话。
// @Summary 小程序登录
// @Description 用 code、encrypted-data、iv 三个请求头向鉴权服务换取会话 id 和 skey。
// @Tags 会话
// @Produce json
// @Param code header string true "wx.login() 获取的 code"
// @Param encrypted-data header string true "wx.getUserInfo() 返回的 encryptedData"
// @Param iv header string true "wx.getUserInfo() 返回的 iv"
// @Success 200 {object} vo.LoginResponse "登录成功，返回会话"
// @Failure 400 {object} vo.ErrorResponse "缺少请求头 (INVALID_REQUEST)"
// @Failure 401 {object} vo.ErrorResponse "鉴权服务拒绝登录 (LOGIN_FAILED)"
// @Failure 502 {object} vo.ErrorResponse "无法连接鉴权服务 (LOGIN_FAILED)"
// @Router /login [get]
func (ctrl *LoginController) LoginHandler(c *gin.Context) {
	userInfo, err := ctrl.loginService.Login(c)
	if err != nil {
		ctrl.loginService.RespondError(c, err)
		return
	}

	// 会话已经写入响应，资料保存失败只记录日志
	if err := ctrl.userService.RecordLogin(c.Request.Context(), userInfo); err != nil {
		ctrl.logger.Warn("登录成功但保存用户资料失败", zap.String("openid", userInfo.OpenID), zap.Error(err))
	}
}

// CheckHandler 校验会话并返回用户资料，不会签发新会话。
// @Summary 校验会话
// @Tags 会话
// @Produce json
// @Param id header string true "登录时下发的会话 id"
// @Param skey header string true "登录时下发的 skey"
// @Success 200 {object} vo.CheckResponse "会话有效"
// @Failure 400 {object} vo.ErrorResponse "缺少请求头 (INVALID_REQUEST)"
// @Failure 401 {object} vo.ErrorResponse "会话已失效，需要重新登录 (INVALID_SESSION)"
// @Failure 502 {object} vo.ErrorResponse "鉴权服务校验失败 (CHECK_LOGIN_FAILED)"
// @Router /check [get]
func (ctrl *LoginController) CheckHandler(c *gin.Context) {
	userInfo, err := ctrl.loginService.Check(c)
	if err != nil {
		ctrl.loginService.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, vo.CheckResponse{Magic: 1, UserInfo: userInfo})
}

// RegisterRoutes 注册登录和会话校验路由。
// 客户端 SDK 可能使用 GET 或 POST，两种方法都注册。
func (ctrl *LoginController) RegisterRoutes(group gin.IRoutes) {
	group.Match([]string{http.MethodGet, http.MethodPost}, "/login", ctrl.LoginHandler)
	group.Match([]string{http.MethodGet, http.MethodPost}, "/check", ctrl.CheckHandler)
}
