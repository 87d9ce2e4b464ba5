package dependencies

import (
	"fmt"
	"net/http"
	"net/url"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"golang.org/x/net/proxy"

	"github.com/Xushengqwer/weapp_gateway/config"
)

// ConnectionProvider 负责把一个已构造好的请求发送出去。
// - 生产环境使用 NewConnectionProvider 创建的实现 (可选代理 + OTel 传输层)。
// - 测试中替换为返回固定响应的实现，无需全局可变状态。
type ConnectionProvider interface {
	Send(req *http.Request) (*http.Response, error)
}

// httpConnectionProvider 基于 *http.Client 的 ConnectionProvider 实现
type httpConnectionProvider struct {
	client *http.Client
}

// Send 实现接口方法
func (p *httpConnectionProvider) Send(req *http.Request) (*http.Response, error) {
	return p.client.Do(req)
}

// NewConnectionProvider 按鉴权配置创建生产环境使用的 ConnectionProvider。
// - Proxy 为空时直连；支持 http/https 代理和 socks5 代理。
// - Timeout 为 0 时不设置客户端超时，沿用传输层默认行为。
func NewConnectionProvider(cfg *config.AuthorizationConfig) (ConnectionProvider, error) {
	transport := http.DefaultTransport.(*http.Transport).Clone()

	if cfg.Proxy != "" {
		proxyURL, err := url.Parse(cfg.Proxy)
		if err != nil {
			return nil, fmt.Errorf("%w: 代理地址无法解析 (%s): %v", ErrConfiguration, cfg.Proxy, err)
		}
		switch proxyURL.Scheme {
		case "http", "https":
			transport.Proxy = http.ProxyURL(proxyURL)
		case "socks5", "socks5h":
			dialer, err := proxy.FromURL(proxyURL, proxy.Direct)
			if err != nil {
				return nil, fmt.Errorf("%w: 创建 socks5 代理失败 (%s): %v", ErrConfiguration, proxyURL.Host, err)
			}
			contextDialer, ok := dialer.(proxy.ContextDialer)
			if !ok {
				return nil, fmt.Errorf("%w: socks5 代理不支持 DialContext", ErrConfiguration)
			}
			transport.Proxy = nil
			transport.DialContext = contextDialer.DialContext
		default:
			return nil, fmt.Errorf("%w: 不支持的代理协议 %q", ErrConfiguration, proxyURL.Scheme)
		}
	}

	return &httpConnectionProvider{
		client: &http.Client{
			Transport: otelhttp.NewTransport(transport),
			Timeout:   cfg.Timeout,
		},
	}, nil
}
