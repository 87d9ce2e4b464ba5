package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Xushengqwer/weapp_gateway/constants"
	"github.com/Xushengqwer/weapp_gateway/models/vo"
)

// IndexHandler 不需要会话的首页，返回服务名称和版本。
// @Summary 服务信息
// @Tags 首页
// @Produce json
// @Success 200 {object} vo.IndexVO
// @Router /index [get]
func IndexHandler(c *gin.Context) {
	c.JSON(http.StatusOK, vo.IndexVO{
		Service: constants.ServiceName,
		Version: constants.ServiceVersion,
	})
}
