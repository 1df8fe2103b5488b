package middleware

import (
	"FutureMe/internal/pkg/consts"

	"github.com/gin-gonic/gin"
)

// SoftPaywallMiddleware 标记导出类接口，客户端据此展示升级提示
func SoftPaywallMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header(consts.PaywallHeader, consts.PaywallSoft)
		c.Next()
	}
}
