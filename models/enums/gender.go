package enums

// Gender 微信用户资料中的性别取值
type Gender uint

const (
	Unknown Gender = 0 // 未知
	Male    Gender = 1 // 男性
	Female  Gender = 2 // 女性
)

// String 返回性别的中文描述
func (g Gender) String() string {
	switch g {
	case Male:
		return "男"
	case Female:
		return "女"
	default:
		return "未知"
	}
}
