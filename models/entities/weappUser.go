package entities

import (
	"time"

	"github.com/Xushengqwer/weapp_gateway/models/enums"
)

// WeappUser 登录过的小程序用户资料，以 openId 唯一标识
type WeappUser struct {
	// 自增主键
	ID uint `gorm:"primaryKey;autoIncrement"`

	// 用户在小程序内的唯一标识
	OpenID string `gorm:"type:varchar(64);uniqueIndex;not null"`

	// 开放平台唯一标识，满足下发条件时才有
	UnionID string `gorm:"type:varchar(64);index"`

	NickName  string       `gorm:"type:varchar(64)"`
	AvatarURL string       `gorm:"type:varchar(512)"`
	Gender    enums.Gender `gorm:"type:tinyint;default:0"`
	Language  string       `gorm:"type:varchar(16)"`
	City      string       `gorm:"type:varchar(64)"`
	Province  string       `gorm:"type:varchar(64)"`
	Country   string       `gorm:"type:varchar(64)"`

	// 最近一次登录时间
	LastLogin time.Time `gorm:"type:timestamp;not null"`

	CreatedAt time.Time `gorm:"type:timestamp;default:CURRENT_TIMESTAMP"`
	UpdatedAt time.Time `gorm:"type:timestamp;default:CURRENT_TIMESTAMP;autoUpdateTime"`
}

// TableName 指定表名
func (WeappUser) TableName() string {
	return "weapp_users"
}
