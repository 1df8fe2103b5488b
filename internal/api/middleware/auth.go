package middleware

import (
	"FutureMe/internal/pkg/consts"
	"FutureMe/internal/pkg/logger"
	"FutureMe/internal/pkg/redis"
	"FutureMe/internal/pkg/response"
	"FutureMe/internal/pkg/security"
	"context"
	log "log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware 负责验证 JWT 并将用户身份信息注入 Context
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, ok := BearerToken(c)
		if !ok {
			response.Fail(c, http.StatusUnauthorized, "missing or malformed bearer token")
			c.Abort()
			return
		}

		signature, err := security.ExtractSignature(tokenString)
		if err != nil {
			response.Fail(c, http.StatusUnauthorized, "missing or malformed bearer token")
			c.Abort()
			return
		}

		value, err := redis.GetValue(c.Request.Context(), consts.TokenBlacklistKey+signature)
		if err != nil {
			log.ErrorContext(c.Request.Context(), "Token blacklist lookup failed", "err", err)
			response.Fail(c, http.StatusInternalServerError, "internal server error")
			c.Abort()
			return
		}
		if value != "" {
			response.Fail(c, http.StatusUnauthorized, "token is invalid or expired")
			c.Abort()
			return
		}

		claims, err := security.ValidateToken(tokenString)
		if err != nil {
			response.Fail(c, http.StatusUnauthorized, "token is invalid or expired")
			c.Abort()
			return
		}

		setUser(c, claims.UserID)
		c.Next()
	}
}

// BearerToken 取 Authorization: Bearer 后的 Token
func BearerToken(c *gin.Context) (string, bool) {
	authHeader := c.GetHeader("Authorization")
	if !strings.HasPrefix(authHeader, "Bearer ") {
		return "", false
	}
	token := strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))
	return token, token != ""
}

func setUser(c *gin.Context, userID string) {
	c.Set(consts.ContextUserID, userID)
	newCtx := context.WithValue(c.Request.Context(), logger.UserIDKey, userID)
	c.Request = c.Request.WithContext(newCtx)
}
