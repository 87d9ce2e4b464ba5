package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/Xushengqwer/go-common/commonerrors"
	"github.com/redis/go-redis/v9"

	"github.com/Xushengqwer/weapp_gateway/constants"
)

// SessionRecord local 模式下服务端保存的会话内容。
// skey 本身不保存，校验时由签名保证其与会话 id 绑定。
type SessionRecord struct {
	OpenID    string          `json:"openId"`
	UserInfo  json.RawMessage `json:"userInfo"`
	CreatedAt time.Time       `json:"createdAt"`
}

// SessionRepo 定义了 local 模式的会话存储接口。
type SessionRepo interface {
	// SaveSession 保存会话并设置过期时间，ttl 必须为正数。
	SaveSession(ctx context.Context, id string, record *SessionRecord, ttl time.Duration) error

	// GetSession 读取会话。
	// - 会话不存在或已过期时返回 commonerrors.ErrRepoNotFound。
	GetSession(ctx context.Context, id string) (*SessionRecord, error)
}

// sessionRepo 是 SessionRepo 基于 go-redis/v9 的实现。
type sessionRepo struct {
	client *redis.Client
}

// NewSessionRepo 创建一个新的 sessionRepo 实例。
func NewSessionRepo(client *redis.Client) SessionRepo {
	return &sessionRepo{client: client}
}

// buildSessionKey 示例键: "weapp:session:xxxxxxxx-xxxx-xxxx-xxxx-xxxxxxxxxxxx"
func (r *sessionRepo) buildSessionKey(id string) string {
	return constants.SessionKeyPrefix + ":" + id
}

// SaveSession 实现接口方法。
func (r *sessionRepo) SaveSession(ctx context.Context, id string, record *SessionRecord, ttl time.Duration) error {
	if ttl <= 0 {
		return fmt.Errorf("sessionRepo.SaveSession: 无效的 TTL (%v)", ttl)
	}
	data, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("sessionRepo.SaveSession: 序列化会话失败: %w", err)
	}
	if err := r.client.Set(ctx, r.buildSessionKey(id), data, ttl).Err(); err != nil {
		return fmt.Errorf("sessionRepo.SaveSession: 写入会话失败 (ID: %s): %w", id, err)
	}
	return nil
}

// GetSession 实现接口方法。
func (r *sessionRepo) GetSession(ctx context.Context, id string) (*SessionRecord, error) {
	data, err := r.client.Get(ctx, r.buildSessionKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, commonerrors.ErrRepoNotFound
		}
		return nil, fmt.Errorf("sessionRepo.GetSession: 读取会话失败 (ID: %s): %w", id, err)
	}

	var record SessionRecord
	if err := json.Unmarshal(data, &record); err != nil {
		return nil, fmt.Errorf("sessionRepo.GetSession: 解析会话失败 (ID: %s): %w", id, err)
	}
	return &record, nil
}
