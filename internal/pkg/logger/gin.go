package logger

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
)

// SetupGin 挂载 JSON 格式的访问日志与 panic 恢复
func SetupGin(r *gin.Engine) {
	r.Use(gin.LoggerWithConfig(gin.LoggerConfig{
		Output:    LogWriter,
		Formatter: accessLogFormatter,
	}))

	r.Use(gin.Recovery())
}

func accessLogFormatter(p gin.LogFormatterParams) string {
	var traceID string
	if p.Keys != nil {
		if id, ok := p.Keys[TraceIDKey].(string); ok {
			traceID = id
		}
	}

	if traceID == "" && p.Request != nil {
		if id, ok := p.Request.Context().Value(TraceIDKey).(string); ok {
			traceID = id
		}
	}

	return fmt.Sprintf(
		`{"time":"%s","level":"INFO","msg":"GIN_ACCESS","trace_id":"%s","target_index":"%s","method":"%s","path":"%s","status":%d,"latency":"%v"}`+"\n",
		p.TimeStamp.Format(time.RFC3339),
		traceID,
		accessIndex,
		p.Method,
		p.Path,
		p.StatusCode,
		p.Latency,
	)
}
