package client

import (
	"FutureMe/internal/model"
	"FutureMe/internal/pkg/logger"
	"context"
	"errors"
	"fmt"
	log "log/slog"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/goccy/go-json"
)

const sentimentPath = "/api/sentiment"

// SentimentClient 通过 HTTP 调用本服务的 /api/sentiment
type SentimentClient struct {
	http *resty.Client
}

func NewSentimentClient(baseURL string, timeout time.Duration) *SentimentClient {
	c := resty.New().
		SetBaseURL(strings.TrimRight(baseURL, "/")).
		SetHeader("Content-Type", "application/json").
		SetJSONMarshaler(json.Marshal).
		SetJSONUnmarshaler(json.Unmarshal)
	if timeout > 0 {
		c.SetTimeout(timeout)
	}
	return &SentimentClient{http: c}
}

// ClassifySentiment 远端返回非 2xx 或结果不合法都视为失败
func (s *SentimentClient) ClassifySentiment(ctx context.Context, content string) (*model.Sentiment, error) {
	req := s.http.R().
		SetContext(ctx).
		SetBody(map[string]string{"content": content}).
		SetResult(&model.Sentiment{})
	if traceID, ok := ctx.Value(logger.TraceIDKey).(string); ok && traceID != "" {
		req.SetHeader("X-Trace-ID", traceID)
	}

	resp, err := req.Post(sentimentPath)
	if err != nil {
		log.ErrorContext(ctx, "Sentiment endpoint unreachable", "err", err)
		return nil, err
	}
	if resp.IsError() {
		return nil, fmt.Errorf("sentiment endpoint returned %d", resp.StatusCode())
	}

	result, ok := resp.Result().(*model.Sentiment)
	if !ok || !result.Valid() {
		return nil, errors.New("sentiment endpoint returned invalid body")
	}
	return result, nil
}
