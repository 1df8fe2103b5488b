package llm

import (
	"context"
	log "log/slog"
	"strings"

	"github.com/tmc/langchaingo/llms"
)

// Reflect 为一篇日记生成 2-3 句的反思
func (c *Client) Reflect(ctx context.Context, content string) (string, error) {
	prompt, err := reflectionPrompt.Format(map[string]any{"content": content})
	if err != nil {
		return "", err
	}

	resp, err := c.fetchModel(ctx, "", prompt,
		llms.WithTemperature(0.7),
		llms.WithMaxTokens(140),
	)
	if err != nil {
		log.ErrorContext(ctx, "Reflection request failed", "err", err)
		return "", err
	}

	return strings.TrimSpace(resp), nil
}
