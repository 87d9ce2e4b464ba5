package authorization

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/Xushengqwer/go-common/commonerrors"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Xushengqwer/weapp_gateway/constants"
	"github.com/Xushengqwer/weapp_gateway/dependencies"
	"github.com/Xushengqwer/weapp_gateway/repository/redis"
	"github.com/Xushengqwer/weapp_gateway/utils"
)

// localAuthorizationService 在本进程内完成鉴权服务的工作：
// 调用微信 jscode2session、解密用户数据、签发并保存会话。
// 对外的错误码与托管鉴权服务保持一致，会话失效同样使用 60011 / 60012。
type localAuthorizationService struct {
	appID    string
	wechat   dependencies.WechatClient
	tokens   dependencies.SessionTokenInterface
	sessions redis.SessionRepo
	logger   *zap.Logger
}

// NewLocalAuthorizationService 创建 local 模式的鉴权网关。
func NewLocalAuthorizationService(
	appID string,
	wechat dependencies.WechatClient,
	tokens dependencies.SessionTokenInterface,
	sessions redis.SessionRepo,
	logger *zap.Logger,
) AuthorizationService {
	return &localAuthorizationService{
		appID:    appID,
		wechat:   wechat,
		tokens:   tokens,
		sessions: sessions,
		logger:   logger,
	}
}

// Login 实现接口方法
func (s *localAuthorizationService) Login(ctx context.Context, code, encryptedData, iv string) (*LoginResult, error) {
	const operation = "LocalAuthorizationService.Login"

	// 1. code 换取 openid 和 session_key
	openID, sessionKey, err := s.wechat.GetSession(ctx, code)
	if err != nil {
		var wxErr *dependencies.WechatAPIError
		if errors.As(err, &wxErr) {
			return nil, &AuthorizationAPIError{Code: wxErr.ErrCode, Message: wxErr.ErrMsg, Err: err}
		}
		return nil, &AuthorizationAPIError{Message: "连接微信服务失败，请检查网络状态", Err: err}
	}

	// 2. 解密用户数据并校验水印
	userInfo, err := s.decryptUserInfo(sessionKey, encryptedData, iv)
	if err != nil {
		s.logger.Warn("解密用户数据失败", zap.String("operation", operation), zap.String("openid", openID), zap.Error(err))
		return nil, &AuthorizationAPIError{Code: constants.UpstreamCodeDecryptFailed, Message: "解密用户数据失败", Err: err}
	}
	userInfo["openId"] = openID

	// 3. 签发会话
	id := uuid.New().String()
	skey, err := s.tokens.Generate(id, openID)
	if err != nil {
		s.logger.Error("签发 skey 失败", zap.String("operation", operation), zap.Error(err))
		return nil, &AuthorizationAPIError{Message: "签发会话失败", Err: err}
	}

	rawUserInfo, err := json.Marshal(userInfo)
	if err != nil {
		return nil, &AuthorizationAPIError{Message: "签发会话失败", Err: err}
	}
	record := &redis.SessionRecord{OpenID: openID, UserInfo: rawUserInfo, CreatedAt: time.Now()}
	if err := s.sessions.SaveSession(ctx, id, record, s.tokens.TTL()); err != nil {
		s.logger.Error("保存会话失败", zap.String("operation", operation), zap.String("sessionID", id), zap.Error(err))
		return nil, &AuthorizationAPIError{Message: "保存会话失败", Err: err}
	}

	s.logger.Info("已签发新会话", zap.String("operation", operation), zap.String("sessionID", id), zap.String("openid", openID))
	return &LoginResult{ID: id, Skey: skey, UserInfo: userInfo}, nil
}

// CheckLogin 实现接口方法
func (s *localAuthorizationService) CheckLogin(ctx context.Context, id, skey string) (*CheckLoginResult, error) {
	record, err := s.sessions.GetSession(ctx, id)
	if err != nil {
		if errors.Is(err, commonerrors.ErrRepoNotFound) {
			return nil, &AuthorizationAPIError{Code: constants.UpstreamCodeSessionExpired, Message: "会话不存在或已过期"}
		}
		return nil, &AuthorizationAPIError{Message: "读取会话失败", Err: err}
	}

	claims, err := s.tokens.Parse(skey)
	if err != nil || claims.SessionID != id || claims.Subject != record.OpenID {
		return nil, &AuthorizationAPIError{Code: constants.UpstreamCodeSkeyMismatch, Message: "skey 与会话不匹配", Err: err}
	}

	var userInfo map[string]any
	if err := json.Unmarshal(record.UserInfo, &userInfo); err != nil {
		return nil, &AuthorizationAPIError{Message: "解析会话用户资料失败", Err: err}
	}
	return &CheckLoginResult{UserInfo: userInfo}, nil
}

// decryptUserInfo 解密 encryptedData，确认水印中的 appid 属于本小程序，返回去掉水印后的资料。
func (s *localAuthorizationService) decryptUserInfo(sessionKey, encryptedData, iv string) (map[string]any, error) {
	plain, err := utils.DecryptUserData(sessionKey, encryptedData, iv)
	if err != nil {
		return nil, err
	}

	var userInfo map[string]any
	if err := json.Unmarshal(plain, &userInfo); err != nil {
		return nil, err
	}
	if userInfo == nil {
		return nil, errors.New("用户数据为空")
	}

	watermark, _ := userInfo["watermark"].(map[string]any)
	if appID, _ := watermark["appid"].(string); appID != s.appID {
		return nil, errors.New("水印中的 appid 与配置不一致")
	}
	delete(userInfo, "watermark")
	return userInfo, nil
}
