package dto

// LoginHeaders /login 需要的请求头，字段顺序即缺失时的检查顺序。
type LoginHeaders struct {
	Code          string `header:"code" binding:"required"`
	EncryptedData string `header:"encrypted-data" binding:"required"`
	IV            string `header:"iv" binding:"required"`
}

// CheckHeaders 校验会话需要的请求头
type CheckHeaders struct {
	ID   string `header:"id" binding:"required"`
	Skey string `header:"skey" binding:"required"`
}
