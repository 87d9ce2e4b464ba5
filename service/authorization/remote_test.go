package authorization

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Xushengqwer/weapp_gateway/config"
	"github.com/Xushengqwer/weapp_gateway/constants"
	"github.com/Xushengqwer/weapp_gateway/dependencies"
)

// fakeRemoteClient 记录调用参数，返回预设结果
type fakeRemoteClient struct {
	calls  []map[string]any
	urls   []string
	result map[string]any
	err    error
}

func (f *fakeRemoteClient) Post(_ context.Context, url string, params map[string]any) (map[string]any, error) {
	f.urls = append(f.urls, url)
	f.calls = append(f.calls, params)
	return f.result, f.err
}

func newRemote(t *testing.T, client dependencies.RemoteClient) AuthorizationService {
	t.Helper()
	svc, err := NewRemoteAuthorizationService(&config.AuthorizationConfig{URL: "https://auth.example.com"}, client, zap.NewNop())
	require.NoError(t, err)
	return svc
}

func TestRemoteLogin(t *testing.T) {
	client := &fakeRemoteClient{result: map[string]any{
		"returnCode":    json.Number("0"),
		"returnMessage": "OK",
		"returnData": map[string]any{
			"id":        "abc",
			"skey":      "xyz",
			"user_info": map[string]any{"openId": "open-1", "nickName": "小明"},
		},
	}}
	svc := newRemote(t, client)

	result, err := svc.Login(context.Background(), "code-1", "data-1", "iv-1")
	require.NoError(t, err)
	assert.Equal(t, "abc", result.ID)
	assert.Equal(t, "xyz", result.Skey)
	assert.Equal(t, map[string]any{"openId": "open-1", "nickName": "小明"}, result.UserInfo)

	require.Len(t, client.calls, 1)
	assert.Equal(t, "https://auth.example.com", client.urls[0])
	call := client.calls[0]
	assert.Equal(t, constants.AuthAPIVersion, call["version"])
	assert.Equal(t, constants.AuthAPIComponentName, call["componentName"])
	iface := call["interface"].(map[string]any)
	assert.Equal(t, constants.AuthInterfaceLogin, iface["interfaceName"])
	assert.Equal(t, map[string]any{"code": "code-1", "encrypt_data": "data-1", "iv": "iv-1"}, iface["para"])
}

func TestRemoteLoginMissingSession(t *testing.T) {
	client := &fakeRemoteClient{result: map[string]any{
		"returnCode": json.Number("0"),
		"returnData": map[string]any{"id": "abc"},
	}}

	_, err := newRemote(t, client).Login(context.Background(), "c", "d", "i")
	var apiErr *AuthorizationAPIError
	require.True(t, errors.As(err, &apiErr))
	assert.ErrorIs(t, err, dependencies.ErrRemoteIO)
}

func TestRemoteCheckLogin(t *testing.T) {
	client := &fakeRemoteClient{result: map[string]any{
		"returnCode": float64(0),
		"returnData": map[string]any{"user_info": map[string]any{"openId": "open-1"}},
	}}
	svc := newRemote(t, client)

	result, err := svc.CheckLogin(context.Background(), "abc", "xyz")
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"openId": "open-1"}, result.UserInfo)

	iface := client.calls[0]["interface"].(map[string]any)
	assert.Equal(t, constants.AuthInterfaceCheckLogin, iface["interfaceName"])
	assert.Equal(t, map[string]any{"id": "abc", "skey": "xyz"}, iface["para"])
}

func TestRemoteUpstreamError(t *testing.T) {
	client := &fakeRemoteClient{result: map[string]any{
		"returnCode":    json.Number("60012"),
		"returnMessage": "checkLogin failed",
	}}

	_, err := newRemote(t, client).CheckLogin(context.Background(), "abc", "xyz")
	var apiErr *AuthorizationAPIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, 60012, apiErr.Code)
	assert.Equal(t, "checkLogin failed", apiErr.Message)
	assert.Nil(t, apiErr.Err)
}

func TestRemoteTransportError(t *testing.T) {
	client := &fakeRemoteClient{err: errors.Join(dependencies.ErrRemoteIO, errors.New("timeout"))}

	_, err := newRemote(t, client).Login(context.Background(), "c", "d", "i")
	var apiErr *AuthorizationAPIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, 0, apiErr.Code)
	assert.ErrorIs(t, err, dependencies.ErrRemoteIO)
}

func TestRemoteMalformedEnvelope(t *testing.T) {
	tests := []struct {
		name   string
		result map[string]any
	}{
		{name: "missing returnCode", result: map[string]any{"returnData": map[string]any{}}},
		{name: "non numeric returnCode", result: map[string]any{"returnCode": "0"}},
		{name: "missing returnData", result: map[string]any{"returnCode": json.Number("0")}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := newRemote(t, &fakeRemoteClient{result: tt.result}).CheckLogin(context.Background(), "a", "b")
			require.Error(t, err)
			assert.ErrorIs(t, err, dependencies.ErrRemoteIO)
		})
	}
}

func TestRemoteNoCaching(t *testing.T) {
	client := &fakeRemoteClient{result: map[string]any{
		"returnCode": json.Number("0"),
		"returnData": map[string]any{"user_info": map[string]any{}},
	}}
	svc := newRemote(t, client)

	for i := 0; i < 3; i++ {
		_, err := svc.CheckLogin(context.Background(), "abc", "xyz")
		require.NoError(t, err)
	}
	assert.Len(t, client.calls, 3)
}

func TestNewRemoteAuthorizationServiceRequiresURL(t *testing.T) {
	_, err := NewRemoteAuthorizationService(&config.AuthorizationConfig{}, &fakeRemoteClient{}, zap.NewNop())
	assert.ErrorIs(t, err, dependencies.ErrConfiguration)
}
