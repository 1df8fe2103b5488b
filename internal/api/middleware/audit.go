package middleware

import (
	log "log/slog"
	"net/url"
	"time"

	"github.com/gin-gonic/gin"
)

// AuditMiddleware 只记录请求行与状态，不记录请求/响应体
func AuditMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		rawQuery := c.Request.URL.RawQuery
		decodedQuery, err := url.QueryUnescape(rawQuery)
		if err != nil {
			decodedQuery = rawQuery
		}

		log.InfoContext(c.Request.Context(), "Recv Request",
			log.String("method", c.Request.Method),
			log.String("path", c.Request.URL.Path),
			log.String("query", decodedQuery),
		)

		startTime := time.Now()
		c.Next()

		log.InfoContext(c.Request.Context(), "Send Response",
			log.Int("status", c.Writer.Status()),
			log.Duration("latency", time.Since(startTime)),
			log.Int("size", c.Writer.Size()),
		)
	}
}
