package llm

import (
	"FutureMe/internal/model"
	"FutureMe/internal/pkg/util"
	"context"
	"fmt"
	log "log/slog"
	"strings"

	"github.com/goccy/go-json"
	"github.com/tmc/langchaingo/llms"
)

// MaxSentimentInput 送入分类的最大字符数
const MaxSentimentInput = 2000

var labelAliases = map[string]string{
	"negative": model.SentimentNegative,
	"neutral":  model.SentimentNeutral,
	"positive": model.SentimentPositive,
}

// ClassifySentiment 对日记文本做情感分类，返回结果一定合法，否则返回错误
func (c *Client) ClassifySentiment(ctx context.Context, content string) (*model.Sentiment, error) {
	input := util.TruncateRunes(content, MaxSentimentInput)

	resp, err := c.fetchModel(ctx, sentimentSystemPrompt+sentimentSchema, input,
		llms.WithTemperature(0),
		llms.WithJSONMode(),
	)
	if err != nil {
		log.ErrorContext(ctx, "Sentiment request failed", "err", err)
		return nil, err
	}

	return parseSentiment(resp)
}

func parseSentiment(raw string) (*model.Sentiment, error) {
	var s model.Sentiment
	if err := json.Unmarshal([]byte(cleanJSON(raw)), &s); err != nil {
		return nil, fmt.Errorf("parse sentiment: %w", err)
	}

	s.Label = strings.ToLower(strings.TrimSpace(s.Label))
	if alias, ok := labelAliases[s.Label]; ok {
		s.Label = alias
	}
	if !s.Valid() {
		return nil, fmt.Errorf("invalid sentiment %q/%v", s.Label, s.Score)
	}
	return &s, nil
}
