package llm

import (
	"FutureMe/internal/api/config"
	"fmt"
	log "log/slog"
	"time"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"
)

// Client 语言模型调用封装，负责情感分类、反思生成与月度信
type Client struct {
	model     llms.Model
	textModel string
	timeout   time.Duration
}

// NewClient 使用任意 llms.Model 构造客户端
func NewClient(model llms.Model, textModel string, timeout time.Duration) *Client {
	return &Client{
		model:     model,
		textModel: textModel,
		timeout:   timeout,
	}
}

// InitLLM 按配置创建 OpenAI 兼容客户端
func InitLLM(cfg config.LLMConfig) (*Client, error) {
	opts := []openai.Option{
		openai.WithModel(cfg.TextModel),
		openai.WithToken(cfg.ApiKey),
	}
	if cfg.URL != "" {
		opts = append(opts, openai.WithBaseURL(cfg.URL))
	}

	model, err := openai.New(opts...)
	if err != nil {
		log.Error("Failed to initialize llm client", "err", err)
		return nil, fmt.Errorf("init llm: %w", err)
	}

	return NewClient(model, cfg.TextModel, time.Duration(cfg.Timeout)*time.Second), nil
}
