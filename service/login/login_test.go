package login

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Xushengqwer/weapp_gateway/constants"
	"github.com/Xushengqwer/weapp_gateway/dependencies"
	"github.com/Xushengqwer/weapp_gateway/models/vo"
	"github.com/Xushengqwer/weapp_gateway/service/authorization"
)

// fakeAuthService 记录调用参数并返回预设结果
type fakeAuthService struct {
	loginResult *authorization.LoginResult
	checkResult *authorization.CheckLoginResult
	err         error

	loginCalls int
	checkCalls int
	lastArgs   []string
}

func (f *fakeAuthService) Login(_ context.Context, code, encryptedData, iv string) (*authorization.LoginResult, error) {
	f.loginCalls++
	f.lastArgs = []string{code, encryptedData, iv}
	return f.loginResult, f.err
}

func (f *fakeAuthService) CheckLogin(_ context.Context, id, skey string) (*authorization.CheckLoginResult, error) {
	f.checkCalls++
	f.lastArgs = []string{id, skey}
	return f.checkResult, f.err
}

var testUserInfo = map[string]any{"openId": "open-1", "nickName": "小明", "gender": json.Number("1")}

func newTestContext(headers map[string]string) (*gin.Context, *httptest.ResponseRecorder) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	c.Request = req
	return c, w
}

func loginHeaders() map[string]string {
	return map[string]string{
		constants.HeaderCode:          "code-1",
		constants.HeaderEncryptedData: "data-1",
		constants.HeaderIV:            "iv-1",
	}
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) vo.ErrorResponse {
	t.Helper()
	var body vo.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func TestLoginWritesSession(t *testing.T) {
	auth := &fakeAuthService{loginResult: &authorization.LoginResult{ID: "sid", Skey: "skey", UserInfo: testUserInfo}}
	svc := NewLoginService(auth, zap.NewNop())
	c, w := newTestContext(loginHeaders())

	userInfo, err := svc.Login(c)
	require.NoError(t, err)
	assert.Equal(t, "open-1", userInfo.OpenID)
	assert.Equal(t, "小明", userInfo.NickName)
	assert.Equal(t, []string{"code-1", "data-1", "iv-1"}, auth.lastArgs)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"magic":1,"session":{"id":"sid","skey":"skey"}}`, w.Body.String())
}

func TestLoginMissingHeader(t *testing.T) {
	tests := []struct {
		name    string
		missing string
	}{
		{name: "code", missing: constants.HeaderCode},
		{name: "encrypted data", missing: constants.HeaderEncryptedData},
		{name: "iv", missing: constants.HeaderIV},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			auth := &fakeAuthService{}
			svc := NewLoginService(auth, zap.NewNop())
			headers := loginHeaders()
			delete(headers, tt.missing)
			c, w := newTestContext(headers)

			_, err := svc.Login(c)
			var loginErr *LoginServiceError
			require.True(t, errors.As(err, &loginErr))
			assert.Equal(t, constants.ErrTypeInvalidRequest, loginErr.Type)
			assert.Equal(t, fmt.Sprintf("请求头不包含 %s，请配合客户端 SDK 使用", tt.missing), loginErr.Message)
			assert.Zero(t, auth.loginCalls, "gateway must not be called")

			svc.RespondError(c, err)
			assert.Equal(t, http.StatusBadRequest, w.Code)
			body := decodeError(t, w)
			assert.Equal(t, 1, body.Magic)
			assert.Equal(t, constants.ErrorResponseCode, body.Code)
			assert.Equal(t, constants.ErrTypeInvalidRequest, body.Error)
		})
	}
}

func TestLoginUpstreamFailure(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantMsg    string
	}{
		{
			name:       "upstream rejects code",
			err:        &authorization.AuthorizationAPIError{Code: 40029, Message: "invalid code"},
			wantStatus: http.StatusUnauthorized,
			wantMsg:    "invalid code",
		},
		{
			name:       "upstream unreachable",
			err:        &authorization.AuthorizationAPIError{Message: "连接鉴权服务失败，请检查网络状态", Err: dependencies.ErrRemoteIO},
			wantStatus: http.StatusBadGateway,
			wantMsg:    "连接鉴权服务失败，请检查网络状态",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewLoginService(&fakeAuthService{err: tt.err}, zap.NewNop())
			c, w := newTestContext(loginHeaders())

			userInfo, err := svc.Login(c)
			require.Error(t, err)
			assert.Nil(t, userInfo)
			assert.Zero(t, w.Body.Len(), "nothing written before RespondError")

			svc.RespondError(c, err)
			assert.Equal(t, tt.wantStatus, w.Code)
			body := decodeError(t, w)
			assert.Equal(t, constants.ErrTypeLoginFailed, body.Error)
			assert.Equal(t, tt.wantMsg, body.Message)
			assert.True(t, c.IsAborted())
		})
	}
}

func TestLoginWithoutUserInfo(t *testing.T) {
	auth := &fakeAuthService{loginResult: &authorization.LoginResult{ID: "sid", Skey: "skey"}}
	svc := NewLoginService(auth, zap.NewNop())
	c, w := newTestContext(loginHeaders())

	_, err := svc.Login(c)
	var loginErr *LoginServiceError
	require.True(t, errors.As(err, &loginErr))
	assert.Equal(t, constants.ErrTypeLoginFailed, loginErr.Type)
	assert.Zero(t, w.Body.Len())
}

func TestCheckReturnsUserInfo(t *testing.T) {
	auth := &fakeAuthService{checkResult: &authorization.CheckLoginResult{UserInfo: testUserInfo}}
	svc := NewLoginService(auth, zap.NewNop())
	c, w := newTestContext(map[string]string{constants.HeaderID: "sid", constants.HeaderSkey: "skey"})

	userInfo, err := svc.Check(c)
	require.NoError(t, err)
	assert.Equal(t, "open-1", userInfo.OpenID)
	assert.Equal(t, []string{"sid", "skey"}, auth.lastArgs)
	assert.Zero(t, w.Body.Len(), "check must not write a response")
	assert.Zero(t, auth.loginCalls)
}

func TestCheckIsIdempotent(t *testing.T) {
	auth := &fakeAuthService{checkResult: &authorization.CheckLoginResult{UserInfo: testUserInfo}}
	svc := NewLoginService(auth, zap.NewNop())

	var results []*vo.UserInfo
	for i := 0; i < 3; i++ {
		c, _ := newTestContext(map[string]string{constants.HeaderID: "sid", constants.HeaderSkey: "skey"})
		userInfo, err := svc.Check(c)
		require.NoError(t, err)
		results = append(results, userInfo)
	}
	assert.Equal(t, results[0], results[1])
	assert.Equal(t, results[1], results[2])
	assert.Equal(t, 3, auth.checkCalls, "no caching between calls")
}

func TestCheckMissingHeader(t *testing.T) {
	auth := &fakeAuthService{}
	svc := NewLoginService(auth, zap.NewNop())
	c, _ := newTestContext(map[string]string{constants.HeaderID: "sid"})

	_, err := svc.Check(c)
	var loginErr *LoginServiceError
	require.True(t, errors.As(err, &loginErr))
	assert.Equal(t, constants.ErrTypeInvalidRequest, loginErr.Type)
	assert.Equal(t, "请求头不包含 skey，请配合客户端 SDK 使用", loginErr.Message)
	assert.Zero(t, auth.checkCalls)
}

func TestCheckErrorClassification(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantType   string
		wantStatus int
		wantMsg    string
	}{
		{
			name:       "session expired",
			err:        &authorization.AuthorizationAPIError{Code: constants.UpstreamCodeSessionExpired, Message: "会话已过期"},
			wantType:   constants.ErrTypeInvalidSession,
			wantStatus: http.StatusUnauthorized,
			wantMsg:    "会话已过期",
		},
		{
			name:       "skey mismatch",
			err:        &authorization.AuthorizationAPIError{Code: constants.UpstreamCodeSkeyMismatch, Message: "skey 不匹配"},
			wantType:   constants.ErrTypeInvalidSession,
			wantStatus: http.StatusUnauthorized,
			wantMsg:    "skey 不匹配",
		},
		{
			name:       "other upstream code",
			err:        &authorization.AuthorizationAPIError{Code: 50000, Message: "内部错误"},
			wantType:   constants.ErrTypeCheckLoginFailed,
			wantStatus: http.StatusBadGateway,
			wantMsg:    "内部错误",
		},
		{
			name:       "upstream unreachable",
			err:        &authorization.AuthorizationAPIError{Message: "连接鉴权服务失败，请检查网络状态", Err: dependencies.ErrRemoteIO},
			wantType:   constants.ErrTypeCheckLoginFailed,
			wantStatus: http.StatusBadGateway,
			wantMsg:    "连接鉴权服务失败，请检查网络状态",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewLoginService(&fakeAuthService{err: tt.err}, zap.NewNop())
			c, w := newTestContext(map[string]string{constants.HeaderID: "sid", constants.HeaderSkey: "skey"})

			_, err := svc.Check(c)
			require.Error(t, err)
			svc.RespondError(c, err)

			assert.Equal(t, tt.wantStatus, w.Code)
			body := decodeError(t, w)
			assert.Equal(t, vo.ErrorResponse{Magic: 1, Code: -1, Error: tt.wantType, Message: tt.wantMsg}, body)
		})
	}
}

func TestRespondErrorPlainError(t *testing.T) {
	svc := NewLoginService(&fakeAuthService{}, zap.NewNop())
	c, w := newTestContext(nil)

	svc.RespondError(c, errors.New("boom"))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"magic":1,"code":-1,"message":"boom"}`, w.Body.String())
}
