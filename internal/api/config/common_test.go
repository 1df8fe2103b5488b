package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigFrom_Defaults(t *testing.T) {
	cfg, err := LoadConfigFrom(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "postgres", cfg.DB.Driver)
	assert.Equal(t, 10, cfg.Journal.MinContentLength)
	assert.Equal(t, 7, cfg.Journal.FreeTierLimit)
	assert.Equal(t, 30, cfg.Journal.TrendDefaultDays)
	assert.Equal(t, 20, cfg.Journal.ListDefaultLimit)
	assert.Equal(t, 100, cfg.Journal.ListMaxLimit)
	assert.Equal(t, "gpt-4o-mini", cfg.LLM.TextModel)
	assert.False(t, cfg.Journal.SentimentViaHTTP)
}

func TestLoadConfigFrom_FileAndEnv(t *testing.T) {
	dir := t.TempDir()
	yaml := []byte(`
server:
  port: 9090
database:
  driver: sqlite
  dsn: "file::memory:"
journal:
  free_tier_limit: 3
llm:
  api_key: from-file
`)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), yaml, 0o600))

	t.Setenv("OPENAI_API_KEY", "from-env")
	t.Setenv("APP_BASE_URL", "http://localhost:9090")

	cfg, err := LoadConfigFrom(dir)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "sqlite", cfg.DB.Driver)
	assert.Equal(t, "file::memory:", cfg.DB.DSN)
	assert.Equal(t, 3, cfg.Journal.FreeTierLimit)
	assert.Equal(t, 10, cfg.Journal.MinContentLength)
	assert.Equal(t, "from-env", cfg.LLM.ApiKey)
	assert.Equal(t, "http://localhost:9090", cfg.App.BaseURL)
}
