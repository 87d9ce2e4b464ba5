package dependencies

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/Xushengqwer/weapp_gateway/config"
	"github.com/Xushengqwer/weapp_gateway/constants"
)

// SessionTokenInterface 定义 local 模式下 skey 的签发与校验
// - skey 是绑定会话 id 的 HS256 令牌，服务端不保存 skey 本身
type SessionTokenInterface interface {
	// Generate 为会话签发 skey
	Generate(sessionID, openID string) (string, error)

	// Parse 校验 skey 的签名、签发者和有效期，返回其中的声明
	Parse(skey string) (*SessionClaims, error)

	// TTL 会话有效期
	TTL() time.Duration
}

// SessionClaims skey 中携带的声明
type SessionClaims struct {
	SessionID string `json:"sid"` // 会话 id，校验时必须与请求头中的 id 一致
	jwt.RegisteredClaims
}

// SessionTokenUtility 实现 SessionTokenInterface
type SessionTokenUtility struct {
	cfg *config.SessionConfig
	ttl time.Duration
}

// NewSessionTokenUtility 创建 SessionTokenUtility
// - SecretKey 为空时返回 ErrConfiguration
func NewSessionTokenUtility(cfg *config.SessionConfig) (SessionTokenInterface, error) {
	if cfg.SecretKey == "" {
		return nil, fmt.Errorf("%w: local 模式需要配置 sessionConfig.secret_key", ErrConfiguration)
	}
	ttl := cfg.TTL
	if ttl <= 0 {
		ttl = constants.DefaultSessionTTL
	}
	return &SessionTokenUtility{cfg: cfg, ttl: ttl}, nil
}

// TTL 实现接口方法
func (su *SessionTokenUtility) TTL() time.Duration {
	return su.ttl
}

// Generate 实现接口方法
func (su *SessionTokenUtility) Generate(sessionID, openID string) (string, error) {
	now := time.Now()
	claims := &SessionClaims{
		SessionID: sessionID,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    su.cfg.Issuer,
			Subject:   openID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(su.ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(su.cfg.SecretKey))
	if err != nil {
		return "", fmt.Errorf("签名 skey 失败: %w", err)
	}
	return signed, nil
}

// Parse 实现接口方法
func (su *SessionTokenUtility) Parse(skey string) (*SessionClaims, error) {
	parser := jwt.NewParser(
		jwt.WithExpirationRequired(),
		jwt.WithIssuer(su.cfg.Issuer),
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
	)

	token, err := parser.ParseWithClaims(skey, &SessionClaims{}, func(token *jwt.Token) (interface{}, error) {
		return []byte(su.cfg.SecretKey), nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*SessionClaims)
	if !ok || !token.Valid {
		return nil, errors.New("无效的 skey 声明")
	}
	return claims, nil
}
