package constants

const (
	ServiceName    = "weapp-gateway"
	ServiceVersion = "1.0.0"
)
