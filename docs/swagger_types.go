package docs

// 这个文件定义了专门用于 Swagger 文档注解的类型。
// swaggo/swag 不支持直接解析泛型类型 (如 response.APIResponse[T])，
// 需要为控制器注解中用到的每个具体实例化类型定义一个非泛型的包装器。
// 会话相关接口 (/login、/check) 使用客户端 SDK 约定的响应结构，不经过这里。

import (
	"github.com/Xushengqwer/go-common/response"

	"github.com/Xushengqwer/weapp_gateway/models/vo"
)

// SwaggerAPIProfileVOResponse 包装了 response.APIResponse[vo.ProfileVO]
// 用于 UserController.GetProfileHandler
type SwaggerAPIProfileVOResponse struct {
	response.APIResponse[vo.ProfileVO]
}

// SwaggerAPIErrorResponseString 包装了 response.APIResponse[string]
type SwaggerAPIErrorResponseString struct {
	response.APIResponse[string]
}
