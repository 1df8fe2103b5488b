package config

// Config 配置主体
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	DB       DBConfig       `mapstructure:"database"`
	Redis    RedisConfig    `mapstructure:"redis"`
	LLM      LLMConfig      `mapstructure:"llm"`
	JWT      JWTConfig      `mapstructure:"jwt"`
	App      AppConfig      `mapstructure:"app"`
	Journal  JournalConfig  `mapstructure:"journal"`
	Logstash LogstashConfig `mapstructure:"logstash"`
}

// ServerConfig Server配置
type ServerConfig struct {
	Port int `mapstructure:"port"`
}

// DBConfig 数据库配置，Driver 取值 postgres / mysql / sqlite
type DBConfig struct {
	Driver      string `mapstructure:"driver"`
	DSN         string `mapstructure:"dsn"`
	MaxIdle     int    `mapstructure:"max_idle"`
	MaxOpen     int    `mapstructure:"max_open"`
	MaxLifetime int    `mapstructure:"max_lifetime"`
	AutoMigrate bool   `mapstructure:"auto_migrate"`
}

// RedisConfig Addr 为空时不启用缓存
type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
	PoolSize int    `mapstructure:"pool_size"`
}

type LLMConfig struct {
	URL       string `mapstructure:"url"`
	ApiKey    string `mapstructure:"api_key"`
	TextModel string `mapstructure:"text_model"`
	// Timeout 单次模型调用超时（秒），0 表示不限制
	Timeout int `mapstructure:"timeout"`
}

type JWTConfig struct {
	Secret     string `mapstructure:"secret"`
	Expiration int    `mapstructure:"expiration"` // 小时
}

// AppConfig 服务自身对外地址，用于内部回调 /api/sentiment
type AppConfig struct {
	BaseURL string `mapstructure:"base_url"`
}

// JournalConfig 日记业务参数
type JournalConfig struct {
	MinContentLength int  `mapstructure:"min_content_length"`
	FreeTierLimit    int  `mapstructure:"free_tier_limit"`
	TrendDefaultDays int  `mapstructure:"trend_default_days"`
	TrendMaxDays     int  `mapstructure:"trend_max_days"`
	ListDefaultLimit int  `mapstructure:"list_default_limit"`
	ListMaxLimit     int  `mapstructure:"list_max_limit"`
	SentimentViaHTTP bool `mapstructure:"sentiment_via_http"`
	// SeedPrompts 题库为空时启动写入
	SeedPrompts []string `mapstructure:"seed_prompts"`
}

type LogstashConfig struct {
	Address string `mapstructure:"address"`
	Index   string `mapstructure:"index"`
	Level   string `mapstructure:"level"`
}
