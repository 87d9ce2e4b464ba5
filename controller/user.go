package controller

import (
	"errors"
	"net/http"

	"github.com/Xushengqwer/go-common/commonerrors"
	"github.com/Xushengqwer/go-common/response"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Xushengqwer/weapp_gateway/middleware"
	"github.com/Xushengqwer/weapp_gateway/service/user"
)

// UserController 处理已登录用户的资料查询。
type UserController struct {
	userService user.UserService
	logger      *zap.Logger
}

// NewUserController 创建一个新的 UserController 实例。
func NewUserController(userService user.UserService, logger *zap.Logger) *UserController {
	return &UserController{
		userService: userService,
		logger:      logger,
	}
}

// GetProfileHandler 返回当前会话用户已保存的资料。
// @Summary 获取当前用户资料
// @Description 需要有效会话，会话用户由拦截器校验后放入请求上下文。
// @Tags 用户
// @Produce json
// @Param id header string true "会话 id"
// @Param skey header string true "会话 skey"
// @Success 200 {object} docs.SwaggerAPIProfileVOResponse "获取成功"
// @Failure 401 {object} vo.ErrorResponse "会话无效"
// @Failure 404 {object} docs.SwaggerAPIErrorResponseString "用户资料不存在"
// @Failure 500 {object} docs.SwaggerAPIErrorResponseString "系统内部错误"
// @Router /user [get]
func (ctrl *UserController) GetProfileHandler(c *gin.Context) {
	const operation = "UserController.GetProfileHandler"

	userInfo, ok := middleware.UserInfoFromContext(c)
	if !ok {
		ctrl.logger.Error("请求上下文中没有会话用户，拦截器可能未生效", zap.String("operation", operation))
		response.RespondError(c, http.StatusUnauthorized, response.ErrCodeClientUnauthorized, "用户未认证")
		return
	}

	profile, err := ctrl.userService.GetProfile(c.Request.Context(), userInfo.OpenID)
	if err != nil {
		if errors.Is(err, commonerrors.ErrRepoNotFound) {
			response.RespondError(c, http.StatusNotFound, response.ErrCodeClientResourceNotFound, "用户资料不存在")
			return
		}
		ctrl.logger.Error("获取用户资料失败", zap.String("operation", operation), zap.String("openid", userInfo.OpenID), zap.Error(err))
		response.RespondError(c, http.StatusInternalServerError, response.ErrCodeServerInternal, commonerrors.ErrSystemError.Error())
		return
	}

	response.RespondSuccess(c, profile, "获取用户资料成功")
}

// RegisterRoutes 注册用户资料路由。
func (ctrl *UserController) RegisterRoutes(group gin.IRoutes) {
	group.GET("/user", ctrl.GetProfileHandler)
}
