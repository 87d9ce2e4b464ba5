package dependencies

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// RemoteClient 向远程 API 发送 JSON POST 请求并把响应体解析为 map。
// 每次调用只发起一次请求，不重试；失败会立即返回给调用方。
type RemoteClient interface {
	// Post 以 JSON 形式发送 params，返回解析后的响应体。
	// - 网络错误、非 2xx 状态码、响应体不是 JSON 对象时返回包装了 ErrRemoteIO 的错误。
	// - 数字以 json.Number 形式返回。
	Post(ctx context.Context, url string, params map[string]any) (map[string]any, error)
}

type remoteClient struct {
	provider ConnectionProvider
}

// NewRemoteClient 创建 RemoteClient，provider 决定请求实际如何发送。
func NewRemoteClient(provider ConnectionProvider) RemoteClient {
	return &remoteClient{provider: provider}
}

// Post 实现接口方法
func (r *remoteClient) Post(ctx context.Context, url string, params map[string]any) (map[string]any, error) {
	body, err := json.Marshal(params)
	if err != nil {
		return nil, fmt.Errorf("remoteClient.Post: 序列化请求参数失败: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("remoteClient.Post: 创建请求失败: %w", err)
	}
	req.Header.Set("Content-Type", "application/json; charset=utf-8")

	resp, err := r.provider.Send(req)
	if err != nil {
		return nil, fmt.Errorf("remoteClient.Post: %w: 请求 %s 失败: %v", ErrRemoteIO, url, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("remoteClient.Post: %w: 读取响应体失败: %v", ErrRemoteIO, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("remoteClient.Post: %w: 非 2xx 状态码 %d, 响应体: %s", ErrRemoteIO, resp.StatusCode, string(respBody))
	}

	var result map[string]any
	decoder := json.NewDecoder(bytes.NewReader(respBody))
	decoder.UseNumber()
	if err := decoder.Decode(&result); err != nil {
		return nil, fmt.Errorf("remoteClient.Post: %w: 解析响应体失败: %v", ErrRemoteIO, err)
	}
	if result == nil {
		return nil, fmt.Errorf("remoteClient.Post: %w: 响应体为空", ErrRemoteIO)
	}
	return result, nil
}
