package login

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Xushengqwer/weapp_gateway/constants"
	"github.com/Xushengqwer/weapp_gateway/models/dto"
	"github.com/Xushengqwer/weapp_gateway/models/vo"
	"github.com/Xushengqwer/weapp_gateway/service/authorization"
	"github.com/Xushengqwer/weapp_gateway/utils"
)

// LoginService 面向请求的会话服务：从请求头取参数，调用鉴权网关，组装响应。
type LoginService interface {
	// Login 处理登录请求。
	// - 成功时向响应写入 {magic: 1, session: {id, skey}}，并返回用户资料供后续业务使用。
	// - 失败时不写响应，返回 *LoginServiceError，由调用方交给 RespondError。
	Login(c *gin.Context) (*vo.UserInfo, error)

	// Check 校验请求携带的会话，不写响应，也不会签发新会话。
	// - 成功时返回会话对应的用户资料。
	// - 失败时返回 *LoginServiceError。
	Check(c *gin.Context) (*vo.UserInfo, error)

	// RespondError 把错误写成 {magic: 1, code: -1, error, message} 并中止后续处理。
	RespondError(c *gin.Context, err error)
}

type loginService struct {
	authService authorization.AuthorizationService
	logger      *zap.Logger
}

// NewLoginService 创建 LoginService。
func NewLoginService(authService authorization.AuthorizationService, logger *zap.Logger) LoginService {
	return &loginService{
		authService: authService,
		logger:      logger,
	}
}

// Login 实现接口方法
func (s *loginService) Login(c *gin.Context) (*vo.UserInfo, error) {
	const operation = "LoginService.Login"

	var headers dto.LoginHeaders
	if err := c.ShouldBindHeader(&headers); err != nil {
		return nil, invalidRequest(&headers, err)
	}

	result, err := s.authService.Login(c.Request.Context(), headers.Code, headers.EncryptedData, headers.IV)
	if err != nil {
		s.logger.Warn("登录失败", zap.String("operation", operation), zap.Error(err))
		return nil, &LoginServiceError{Type: constants.ErrTypeLoginFailed, Message: upstreamMessage(err), Err: err}
	}

	userInfo, err := vo.BuildUserInfo(result.UserInfo)
	if err != nil {
		s.logger.Error("解析登录用户资料失败", zap.String("operation", operation), zap.Error(err))
		return nil, &LoginServiceError{Type: constants.ErrTypeLoginFailed, Message: "鉴权服务返回的用户资料无效", Err: err}
	}

	c.JSON(http.StatusOK, vo.LoginResponse{
		Magic:   1,
		Session: vo.Session{ID: result.ID, Skey: result.Skey},
	})
	return userInfo, nil
}

// Check 实现接口方法
func (s *loginService) Check(c *gin.Context) (*vo.UserInfo, error) {
	const operation = "LoginService.Check"

	var headers dto.CheckHeaders
	if err := c.ShouldBindHeader(&headers); err != nil {
		return nil, invalidRequest(&headers, err)
	}

	result, err := s.authService.CheckLogin(c.Request.Context(), headers.ID, headers.Skey)
	if err != nil {
		errType := constants.ErrTypeCheckLoginFailed
		var apiErr *authorization.AuthorizationAPIError
		if errors.As(err, &apiErr) &&
			(apiErr.Code == constants.UpstreamCodeSessionExpired || apiErr.Code == constants.UpstreamCodeSkeyMismatch) {
			errType = constants.ErrTypeInvalidSession
		}
		s.logger.Info("会话校验未通过",
			zap.String("operation", operation),
			zap.String("sessionID", headers.ID),
			zap.String("errorType", errType),
			zap.Error(err),
		)
		return nil, &LoginServiceError{Type: errType, Message: upstreamMessage(err), Err: err}
	}

	userInfo, err := vo.BuildUserInfo(result.UserInfo)
	if err != nil {
		s.logger.Error("解析会话用户资料失败", zap.String("operation", operation), zap.Error(err))
		return nil, &LoginServiceError{Type: constants.ErrTypeCheckLoginFailed, Message: "鉴权服务返回的用户资料无效", Err: err}
	}
	return userInfo, nil
}

// RespondError 实现接口方法
func (s *loginService) RespondError(c *gin.Context, err error) {
	body := vo.ErrorResponse{
		Magic:   1,
		Code:    constants.ErrorResponseCode,
		Message: err.Error(),
	}
	var loginErr *LoginServiceError
	if errors.As(err, &loginErr) {
		body.Error = loginErr.Type
		body.Message = loginErr.Message
	}
	c.AbortWithStatusJSON(HTTPStatus(err), body)
}

// invalidRequest 把请求头绑定错误转换为 INVALID_REQUEST，消息中指明缺失的请求头。
func invalidRequest(headers any, err error) error {
	message := "请求头无效，请配合客户端 SDK 使用"
	if name, ok := utils.MissingHeader(headers, err); ok {
		message = fmt.Sprintf("请求头不包含 %s，请配合客户端 SDK 使用", name)
	}
	return &LoginServiceError{Type: constants.ErrTypeInvalidRequest, Message: message, Err: err}
}

// upstreamMessage 鉴权网关错误时原样使用上游返回的信息。
func upstreamMessage(err error) string {
	var apiErr *authorization.AuthorizationAPIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return err.Error()
}
