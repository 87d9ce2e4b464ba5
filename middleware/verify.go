package middleware

import (
	"path"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Xushengqwer/weapp_gateway/constants"
	"github.com/Xushengqwer/weapp_gateway/models/vo"
	"github.com/Xushengqwer/weapp_gateway/service/login"
)

// Guard 一个带前置条件的拦截器：仅当 Match 返回 true 时执行 Handler。
// Handler 通过 c.Abort 系列方法中止请求，不应调用 c.Next。
type Guard struct {
	Match   func(requestPath string) bool
	Handler gin.HandlerFunc
}

// Chain 按声明顺序执行各个 Guard，任一 Guard 中止请求后不再执行后续 Guard 和业务处理函数。
func Chain(guards ...Guard) gin.HandlerFunc {
	return func(c *gin.Context) {
		requestPath := c.Request.URL.Path
		for _, guard := range guards {
			if guard.Match != nil && !guard.Match(requestPath) {
				continue
			}
			guard.Handler(c)
			if c.IsAborted() {
				return
			}
		}
		c.Next()
	}
}

// Except 返回一个匹配 "不在白名单中" 的路径的条件。
// 白名单条目支持三种写法:
//   - 精确路径，如 /login
//   - path.Match 通配，如 /static/*.js
//   - 以 /** 结尾的前缀，如 /swagger/** 匹配 /swagger 及其下所有路径
func Except(allowlist ...string) func(string) bool {
	return func(requestPath string) bool {
		return !matchAny(allowlist, requestPath)
	}
}

func matchAny(patterns []string, requestPath string) bool {
	cleaned := path.Clean("/" + requestPath)
	for _, pattern := range patterns {
		if prefix, ok := strings.CutSuffix(pattern, "/**"); ok {
			if cleaned == prefix || strings.HasPrefix(cleaned, prefix+"/") {
				return true
			}
			continue
		}
		if pattern == cleaned {
			return true
		}
		if matched, err := path.Match(pattern, cleaned); err == nil && matched {
			return true
		}
	}
	return false
}

// SessionGuard 会话校验：通过时把 UserInfo 放入 gin.Context，失败时写出错误响应并中止请求。
func SessionGuard(loginService login.LoginService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userInfo, err := loginService.Check(c)
		if err != nil {
			loginService.RespondError(c, err)
			return
		}
		c.Set(constants.ContextKeyUserInfo, userInfo)
	}
}

// VerifySession 除白名单外的所有路由都要求携带有效会话。
func VerifySession(loginService login.LoginService, allowlist []string) gin.HandlerFunc {
	return Chain(Guard{
		Match:   Except(allowlist...),
		Handler: SessionGuard(loginService),
	})
}

// UserInfoFromContext 读取 SessionGuard 放入的 UserInfo。
func UserInfoFromContext(c *gin.Context) (*vo.UserInfo, bool) {
	value, exists := c.Get(constants.ContextKeyUserInfo)
	if !exists {
		return nil, false
	}
	userInfo, ok := value.(*vo.UserInfo)
	return userInfo, ok && userInfo != nil
}
