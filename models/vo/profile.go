package vo

import (
	"time"

	"github.com/Xushengqwer/weapp_gateway/models/enums"
)

// ProfileVO /user 返回的已持久化用户资料
type ProfileVO struct {
	OpenID    string       `json:"open_id" example:"oGZUI0egBJY1zhBYw2KhdUfwVJJE"`
	NickName  string       `json:"nick_name" example:"小明"`
	AvatarURL string       `json:"avatar_url" example:"https://example.com/avatar.jpg"`
	Gender    enums.Gender `json:"gender" example:"1"`
	Province  string       `json:"province" example:"广东"`
	City      string       `json:"city" example:"深圳"`
	LastLogin time.Time    `json:"last_login" example:"2023-01-01T00:00:00Z"`
	CreatedAt time.Time    `json:"created_at" example:"2023-01-01T00:00:00Z"`
}

// IndexVO /index 返回的服务信息
type IndexVO struct {
	Service string `json:"service"`
	Version string `json:"version"`
}
