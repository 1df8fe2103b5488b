package llm

import (
	"FutureMe/internal/api/dto"
	"context"
	"fmt"
	log "log/slog"

	"github.com/goccy/go-json"
	"github.com/tmc/langchaingo/llms"
)

// WriteLetter 根据当月日记摘录生成结构化的月度反思信
func (c *Client) WriteLetter(ctx context.Context, month string, corpus string) (*dto.ReflectionLetterDTO, error) {
	prompt, err := letterUserPrompt.Format(map[string]any{
		"month":  month,
		"corpus": corpus,
	})
	if err != nil {
		return nil, err
	}

	resp, err := c.fetchModel(ctx, letterSystemPrompt+letterSchema, prompt,
		llms.WithTemperature(0),
		llms.WithJSONMode(),
	)
	if err != nil {
		log.ErrorContext(ctx, "Letter request failed", "err", err)
		return nil, err
	}

	var letter dto.ReflectionLetterDTO
	if err = json.Unmarshal([]byte(cleanJSON(resp)), &letter); err != nil {
		log.ErrorContext(ctx, "Letter response is not valid JSON", "err", err)
		return nil, fmt.Errorf("parse letter: %w", err)
	}
	if letter.Month == "" {
		letter.Month = month
	}
	return &letter, nil
}
