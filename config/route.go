package config

// RouteConfig 定义请求拦截器的放行名单
type RouteConfig struct {
	// Allowlist 中的路径不做会话校验。
	// 支持精确路径 ("/login")、path.Match 通配 ("/static/*") 以及前缀形式 ("/swagger/**")。
	Allowlist []string `mapstructure:"allowlist" json:"allowlist" yaml:"allowlist"`
}
