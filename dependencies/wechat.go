package dependencies

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/Xushengqwer/weapp_gateway/config"
	"github.com/Xushengqwer/weapp_gateway/constants"
)

// WechatClient 定义了与微信小程序服务端 API 交互的客户端接口。
// - 仅在 local 模式下使用：根据小程序前端获取的 code 换取 openid 和 session_key。
type WechatClient interface {
	// GetSession 使用小程序授权码换取 openid 和 session_key。
	// - 微信 API 返回业务错误码时，返回 *WechatAPIError。
	// - 网络或解析失败时，返回包装了 ErrRemoteIO 的错误。
	GetSession(ctx context.Context, code string) (openid, sessionKey string, err error)
}

// WechatAPIError 微信 API 返回的业务错误
type WechatAPIError struct {
	ErrCode int
	ErrMsg  string
}

func (e *WechatAPIError) Error() string {
	return fmt.Sprintf("微信 API 业务错误: code=%d, msg=%s", e.ErrCode, e.ErrMsg)
}

// wechatClient 是 WechatClient 接口的实现。
type wechatClient struct {
	config   *config.WechatConfig // config 存储微信小程序的 AppID 和 Secret
	endpoint string
	provider ConnectionProvider // provider 与鉴权网关共用，代理配置同样生效
}

// wechatSessionResponse 定义了微信 jscode2session API 响应的结构。
type wechatSessionResponse struct {
	OpenID     string `json:"openid"`      // 用户唯一标识
	SessionKey string `json:"session_key"` // 会话密钥
	UnionID    string `json:"unionid"`     // 用户在开放平台的唯一标识符，在满足UnionID下发条件时返回
	ErrCode    int    `json:"errcode"`     // 错误码 (成功时为 0)
	ErrMsg     string `json:"errmsg"`      // 错误信息 (成功时为 "ok")
}

// NewWechatClient 创建一个新的 wechatClient 实例。
// - AppID 或 Secret 为空时返回 ErrConfiguration。
func NewWechatClient(cfg *config.WechatConfig, provider ConnectionProvider) (WechatClient, error) {
	if cfg.AppID == "" || cfg.Secret == "" {
		return nil, fmt.Errorf("%w: local 模式需要配置 wechatConfig.appID 和 wechatConfig.secret", ErrConfiguration)
	}
	endpoint := cfg.Endpoint
	if endpoint == "" {
		endpoint = constants.DefaultWechatSessionEndpoint
	}
	return &wechatClient{
		config:   cfg,
		endpoint: endpoint,
		provider: provider,
	}, nil
}

// GetSession 实现接口方法，调用微信 API 获取会话信息。
func (w *wechatClient) GetSession(ctx context.Context, code string) (string, string, error) {
	// 1. 构造请求 URL，code 来自客户端，需要转义
	query := url.Values{}
	query.Set("appid", w.config.AppID)
	query.Set("secret", w.config.Secret)
	query.Set("js_code", code)
	query.Set("grant_type", "authorization_code")
	apiURL := w.endpoint + "?" + query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, apiURL, nil)
	if err != nil {
		return "", "", fmt.Errorf("wechatClient.GetSession: 创建微信 API 请求失败: %w", err)
	}

	// 2. 发送请求
	resp, err := w.provider.Send(req)
	if err != nil {
		return "", "", fmt.Errorf("wechatClient.GetSession: %w: 请求微信 API 失败: %v", ErrRemoteIO, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", "", fmt.Errorf("wechatClient.GetSession: %w: 读取微信 API 响应体失败: %v", ErrRemoteIO, err)
	}

	// 3. 微信 API 通常在 body 中返回错误码，但也可能返回非 200 状态码
	if resp.StatusCode != http.StatusOK {
		return "", "", fmt.Errorf("wechatClient.GetSession: %w: 微信 API 返回非 200 状态码: %d, 响应体: %s", ErrRemoteIO, resp.StatusCode, string(body))
	}

	var result wechatSessionResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return "", "", fmt.Errorf("wechatClient.GetSession: %w: 解析微信 API 响应失败: %v", ErrRemoteIO, err)
	}

	// 4. 检查微信业务错误码
	if result.ErrCode != 0 {
		return "", "", &WechatAPIError{ErrCode: result.ErrCode, ErrMsg: result.ErrMsg}
	}
	if result.OpenID == "" || result.SessionKey == "" {
		return "", "", fmt.Errorf("wechatClient.GetSession: %w: 微信 API 响应缺少 openid 或 session_key", ErrRemoteIO)
	}

	return result.OpenID, result.SessionKey, nil
}
