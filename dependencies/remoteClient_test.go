package dependencies

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Xushengqwer/weapp_gateway/config"
)

// stubProvider 记录收到的请求并返回预设的响应
type stubProvider struct {
	requests []*http.Request
	bodies   []string
	status   int
	body     string
	err      error
}

func (p *stubProvider) Send(req *http.Request) (*http.Response, error) {
	p.requests = append(p.requests, req)
	if req.Body != nil {
		data, _ := io.ReadAll(req.Body)
		p.bodies = append(p.bodies, string(data))
	}
	if p.err != nil {
		return nil, p.err
	}
	status := p.status
	if status == 0 {
		status = http.StatusOK
	}
	return &http.Response{
		StatusCode: status,
		Body:       io.NopCloser(strings.NewReader(p.body)),
		Header:     make(http.Header),
	}, nil
}

func TestRemoteClientPostSendsJSONAndParsesResponse(t *testing.T) {
	var gotMethod, gotContentType string
	var gotBody map[string]any
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotContentType = r.Header.Get("Content-Type")
		_ = json.NewDecoder(r.Body).Decode(&gotBody)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"returnCode":0,"returnMessage":"OK","returnData":{"id":"abc"}}`))
	}))
	defer ts.Close()

	provider, err := NewConnectionProvider(&config.AuthorizationConfig{})
	require.NoError(t, err)
	client := NewRemoteClient(provider)

	result, err := client.Post(context.Background(), ts.URL, map[string]any{"version": 1, "name": "weapp"})
	require.NoError(t, err)

	assert.Equal(t, http.MethodPost, gotMethod)
	assert.Contains(t, gotContentType, "application/json")
	assert.Equal(t, "weapp", gotBody["name"])
	assert.Equal(t, json.Number("0"), result["returnCode"])
	assert.Equal(t, "OK", result["returnMessage"])
	data, ok := result["returnData"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "abc", data["id"])
}

func TestRemoteClientPostUsesInjectedProvider(t *testing.T) {
	provider := &stubProvider{body: `{"ok":true}`}
	client := NewRemoteClient(provider)

	result, err := client.Post(context.Background(), "http://auth.invalid/api", map[string]any{"k": "v"})
	require.NoError(t, err)
	assert.Equal(t, true, result["ok"])

	require.Len(t, provider.requests, 1)
	assert.Equal(t, "http://auth.invalid/api", provider.requests[0].URL.String())
	assert.JSONEq(t, `{"k":"v"}`, provider.bodies[0])
}

func TestRemoteClientPostErrors(t *testing.T) {
	tests := []struct {
		name     string
		provider *stubProvider
	}{
		{name: "transport failure", provider: &stubProvider{err: errors.New("connection refused")}},
		{name: "non 2xx status", provider: &stubProvider{status: http.StatusBadGateway, body: "bad gateway"}},
		{name: "malformed body", provider: &stubProvider{body: "<html>"}},
		{name: "null body", provider: &stubProvider{body: "null"}},
		{name: "array body", provider: &stubProvider{body: "[1,2]"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := NewRemoteClient(tt.provider)
			result, err := client.Post(context.Background(), "http://auth.invalid", map[string]any{})
			require.Error(t, err)
			assert.Nil(t, result)
			assert.True(t, errors.Is(err, ErrRemoteIO), "expected ErrRemoteIO, got %v", err)
			assert.Len(t, tt.provider.requests, 1, "no retry expected")
		})
	}
}

func TestRemoteClientPostConnectionRefused(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := ts.URL
	ts.Close()

	provider, err := NewConnectionProvider(&config.AuthorizationConfig{})
	require.NoError(t, err)

	_, err = NewRemoteClient(provider).Post(context.Background(), url, map[string]any{})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrRemoteIO)
}

func TestNewConnectionProviderProxy(t *testing.T) {
	tests := []struct {
		name    string
		proxy   string
		wantErr bool
	}{
		{name: "direct", proxy: ""},
		{name: "http proxy", proxy: "http://127.0.0.1:3128"},
		{name: "socks5 proxy", proxy: "socks5://127.0.0.1:1080"},
		{name: "unsupported scheme", proxy: "ftp://127.0.0.1:21", wantErr: true},
		{name: "unparsable", proxy: "http://[::1", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			provider, err := NewConnectionProvider(&config.AuthorizationConfig{Proxy: tt.proxy})
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrConfiguration)
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, provider)
		})
	}
}

func TestHTTPProxyRoutesThroughProxy(t *testing.T) {
	var proxiedURL string
	proxyServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		proxiedURL = r.URL.String()
		_, _ = w.Write([]byte(`{"via":"proxy"}`))
	}))
	defer proxyServer.Close()

	provider, err := NewConnectionProvider(&config.AuthorizationConfig{Proxy: proxyServer.URL})
	require.NoError(t, err)

	result, err := NewRemoteClient(provider).Post(context.Background(), "http://auth.example.com/api", map[string]any{})
	require.NoError(t, err)
	assert.Equal(t, "proxy", result["via"])
	assert.Equal(t, "http://auth.example.com/api", proxiedURL)
}
