package vo

import (
	"encoding/json"
	"fmt"

	"github.com/Xushengqwer/weapp_gateway/models/enums"
)

// UserInfo 小程序用户资料，由鉴权服务返回的 user_info 解析而来。
type UserInfo struct {
	OpenID    string       `json:"openId"`
	UnionID   string       `json:"unionId,omitempty"`
	NickName  string       `json:"nickName"`
	AvatarURL string       `json:"avatarUrl"`
	Gender    enums.Gender `json:"gender"`
	Language  string       `json:"language,omitempty"`
	City      string       `json:"city,omitempty"`
	Province  string       `json:"province,omitempty"`
	Country   string       `json:"country,omitempty"`
}

// BuildUserInfo 将鉴权服务返回的 user_info 字段 (任意 JSON 值) 解析为 UserInfo。
func BuildUserInfo(raw any) (*UserInfo, error) {
	if raw == nil {
		return nil, fmt.Errorf("vo.BuildUserInfo: user_info 为空")
	}
	data, err := json.Marshal(raw)
	if err != nil {
		return nil, fmt.Errorf("vo.BuildUserInfo: 序列化 user_info 失败: %w", err)
	}
	var info UserInfo
	if err := json.Unmarshal(data, &info); err != nil {
		return nil, fmt.Errorf("vo.BuildUserInfo: 解析 user_info 失败: %w", err)
	}
	return &info, nil
}
