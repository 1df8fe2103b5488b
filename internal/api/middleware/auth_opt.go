package middleware

import (
	"FutureMe/internal/pkg/consts"
	"FutureMe/internal/pkg/redis"
	"FutureMe/internal/pkg/security"

	"github.com/gin-gonic/gin"
)

// AuthOptionalMiddleware 可选鉴权：解析成功注入 user_id，失败或缺失则为空串
func AuthOptionalMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(consts.ContextUserID, "")

		token, ok := BearerToken(c)
		if !ok {
			c.Next()
			return
		}

		claims, err := security.ValidateToken(token)
		if err != nil {
			c.Next()
			return
		}

		signature, _ := security.ExtractSignature(token)
		if value, err := redis.GetValue(c.Request.Context(), consts.TokenBlacklistKey+signature); err == nil && value != "" {
			c.Next()
			return
		}

		setUser(c, claims.UserID)
		c.Next()
	}
}
