package authorization

import (
	"context"
	"encoding/json"
	"fmt"

	"go.uber.org/zap"

	"github.com/Xushengqwer/weapp_gateway/config"
	"github.com/Xushengqwer/weapp_gateway/constants"
	"github.com/Xushengqwer/weapp_gateway/dependencies"
)

// remoteAuthorizationService 把 login / checkLogin 委托给托管的鉴权服务。
// 会话状态完全由上游维护，本服务不保存任何会话。
type remoteAuthorizationService struct {
	url    string
	client dependencies.RemoteClient
	logger *zap.Logger
}

// NewRemoteAuthorizationService 创建 remote 模式的鉴权网关。
// - cfg.URL 为空时返回 dependencies.ErrConfiguration。
func NewRemoteAuthorizationService(cfg *config.AuthorizationConfig, client dependencies.RemoteClient, logger *zap.Logger) (AuthorizationService, error) {
	if cfg.URL == "" {
		return nil, fmt.Errorf("%w: remote 模式需要配置 authorizationConfig.url", dependencies.ErrConfiguration)
	}
	return &remoteAuthorizationService{
		url:    cfg.URL,
		client: client,
		logger: logger,
	}, nil
}

// Login 实现接口方法
func (s *remoteAuthorizationService) Login(ctx context.Context, code, encryptedData, iv string) (*LoginResult, error) {
	data, err := s.request(ctx, constants.AuthInterfaceLogin, map[string]any{
		"code":         code,
		"encrypt_data": encryptedData,
		"iv":           iv,
	})
	if err != nil {
		return nil, err
	}

	id, _ := data["id"].(string)
	skey, _ := data["skey"].(string)
	if id == "" || skey == "" {
		return nil, &AuthorizationAPIError{
			Message: "鉴权服务响应缺少 id 或 skey",
			Err:     dependencies.ErrRemoteIO,
		}
	}

	return &LoginResult{ID: id, Skey: skey, UserInfo: data["user_info"]}, nil
}

// CheckLogin 实现接口方法
func (s *remoteAuthorizationService) CheckLogin(ctx context.Context, id, skey string) (*CheckLoginResult, error) {
	data, err := s.request(ctx, constants.AuthInterfaceCheckLogin, map[string]any{
		"id":   id,
		"skey": skey,
	})
	if err != nil {
		return nil, err
	}
	return &CheckLoginResult{UserInfo: data["user_info"]}, nil
}

// request 按鉴权服务协议发起一次调用，返回 returnData。
func (s *remoteAuthorizationService) request(ctx context.Context, interfaceName string, para map[string]any) (map[string]any, error) {
	params := map[string]any{
		"version":       constants.AuthAPIVersion,
		"componentName": constants.AuthAPIComponentName,
		"interface": map[string]any{
			"interfaceName": interfaceName,
			"para":          para,
		},
	}

	s.logger.Debug("调用鉴权服务", zap.String("interface", interfaceName))
	result, err := s.client.Post(ctx, s.url, params)
	if err != nil {
		return nil, &AuthorizationAPIError{Message: "连接鉴权服务失败，请检查网络状态", Err: err}
	}

	returnCode, ok := intValue(result["returnCode"])
	if !ok {
		return nil, &AuthorizationAPIError{
			Message: "鉴权服务响应缺少 returnCode",
			Err:     dependencies.ErrRemoteIO,
		}
	}
	if returnCode != 0 {
		message, _ := result["returnMessage"].(string)
		s.logger.Info("鉴权服务返回错误",
			zap.String("interface", interfaceName),
			zap.Int("returnCode", returnCode),
			zap.String("returnMessage", message),
		)
		return nil, &AuthorizationAPIError{Code: returnCode, Message: message}
	}

	data, ok := result["returnData"].(map[string]any)
	if !ok {
		return nil, &AuthorizationAPIError{
			Message: "鉴权服务响应缺少 returnData",
			Err:     dependencies.ErrRemoteIO,
		}
	}
	return data, nil
}

// intValue 读取 JSON 数字，兼容 json.Number 和 float64 两种解码结果。
func intValue(v any) (int, bool) {
	switch n := v.(type) {
	case json.Number:
		i, err := n.Int64()
		if err != nil {
			return 0, false
		}
		return int(i), true
	case float64:
		return int(n), true
	case int:
		return n, true
	default:
		return 0, false
	}
}
