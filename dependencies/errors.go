package dependencies

import "errors"

var (
	// ErrRemoteIO 出站请求未能完成：连接失败、超时、非 2xx 状态码或响应体无法解析。
	ErrRemoteIO = errors.New("远程调用失败")

	// ErrConfiguration 缺少或错误的进程级配置，只会在启动阶段出现。
	ErrConfiguration = errors.New("配置错误")
)
