package llm

import (
	"context"
	"errors"
	log "log/slog"
	"strings"

	"github.com/tmc/langchaingo/llms"
)

var ErrEmptyResponse = errors.New("llm returned no choices")

func (c *Client) fetchModel(ctx context.Context, systemPrompt string, userPrompt string, opts ...llms.CallOption) (string, error) {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	if err := TextSem.Acquire(ctx, 1); err != nil {
		return "", err
	}
	defer TextSem.Release(1)

	messages := make([]llms.MessageContent, 0, 2)
	if systemPrompt != "" {
		messages = append(messages, llms.TextParts(llms.ChatMessageTypeSystem, systemPrompt))
	}
	messages = append(messages, llms.TextParts(llms.ChatMessageTypeHuman, userPrompt))

	if c.textModel != "" {
		opts = append(opts, llms.WithModel(c.textModel))
	}

	log.DebugContext(ctx, "Requesting llm", "model", c.textModel)
	resp, err := c.model.GenerateContent(ctx, messages, opts...)
	if err != nil {
		return "", err
	}
	if resp == nil || len(resp.Choices) == 0 {
		return "", ErrEmptyResponse
	}
	return resp.Choices[0].Content, nil
}

// cleanJSON 去掉模型有时附带的 markdown 代码块
func cleanJSON(s string) string {
	cleaned := strings.TrimSpace(s)
	cleaned = strings.TrimPrefix(cleaned, "```json")
	cleaned = strings.TrimPrefix(cleaned, "```")
	cleaned = strings.TrimSuffix(cleaned, "```")
	return strings.TrimSpace(cleaned)
}
