package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Cfg 全局可访问的配置实例
var Cfg *Config

// LoadConfig 从 ./configs/config.yaml 加载配置并填充到 Cfg
func LoadConfig() error {
	cfg, err := LoadConfigFrom("./configs")
	if err != nil {
		return err
	}
	Cfg = cfg
	return nil
}

// LoadConfigFrom 从指定目录读取 config.yaml，环境变量优先于文件
func LoadConfigFrom(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(path)

	setDefaults(v)

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	_ = v.BindEnv("llm.api_key", "LLM_API_KEY", "OPENAI_API_KEY")
	_ = v.BindEnv("database.dsn", "DATABASE_DSN", "DATABASE_URL")
	_ = v.BindEnv("app.base_url", "APP_BASE_URL")

	if err := v.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFoundError) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 8080)

	v.SetDefault("database.driver", "postgres")
	v.SetDefault("database.max_idle", 5)
	v.SetDefault("database.max_open", 20)
	v.SetDefault("database.max_lifetime", 30)
	v.SetDefault("database.auto_migrate", true)

	v.SetDefault("redis.pool_size", 10)

	v.SetDefault("llm.url", "https://api.openai.com/v1")
	v.SetDefault("llm.text_model", "gpt-4o-mini")
	v.SetDefault("llm.timeout", 30)

	v.SetDefault("jwt.expiration", 24)

	v.SetDefault("journal.min_content_length", 10)
	v.SetDefault("journal.free_tier_limit", 7)
	v.SetDefault("journal.trend_default_days", 30)
	v.SetDefault("journal.trend_max_days", 365)
	v.SetDefault("journal.list_default_limit", 20)
	v.SetDefault("journal.list_max_limit", 100)
	v.SetDefault("journal.sentiment_via_http", false)

	v.SetDefault("logstash.index", "logstash-futureme")
	v.SetDefault("logstash.level", "info")
}
