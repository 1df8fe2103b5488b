package security

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const (
	defaultJWTSecret         = "futureme-dev-secret"
	defaultJWTExpirationTime = time.Hour * 24
	jwtIssuer                = "FutureMe"
)

var (
	jwtSecret         = []byte(defaultJWTSecret)
	jwtExpirationTime = defaultJWTExpirationTime
)

// UserClaims Token 中携带的业务信息
type UserClaims struct {
	UserID string `json:"user_id"`
	jwt.RegisteredClaims
}

// Setup 使用配置覆盖默认的签名密钥与有效期
func Setup(secret string, expiration time.Duration) {
	if secret != "" {
		jwtSecret = []byte(secret)
	}
	if expiration > 0 {
		jwtExpirationTime = expiration
	}
}
