package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run("valid config", func(t *testing.T) {
		configContent := `
server:
  listen: ":9090"
  timeout: 45s

database:
  dsn: "file:test.db"
  max_open_conns: 20

schedule:
  check_interval: 10m
  max_workers: 8

fetch:
  timeout: 15s
  user_agent: "custom-agent/2.0"

ai:
  endpoint: "https://api.openai.com/v1"
  api_key: "sk-test"
  model: "gpt-4o-mini"
  temperature: 0.5
  timeout: 20s
`
		tmpDir := t.TempDir()
		configPath := filepath.Join(tmpDir, "test-config.yml")
		err := os.WriteFile(configPath, []byte(configContent), 0o644)
		require.NoError(t, err)

		cfg, err := Load(configPath)
		require.NoError(t, err)
		require.NotNil(t, cfg)

		assert.Equal(t, ":9090", cfg.Server.Listen)
		assert.Equal(t, 45*time.Second, cfg.Server.Timeout)

		assert.Equal(t, "file:test.db", cfg.Database.DSN)
		assert.Equal(t, 20, cfg.Database.MaxOpenConns)
		assert.Equal(t, 5, cfg.Database.MaxIdleConns) // default

		assert.Equal(t, 10*time.Minute, cfg.Schedule.CheckInterval)
		assert.Equal(t, 8, cfg.Schedule.MaxWorkers)

		assert.Equal(t, 15*time.Second, cfg.Fetch.Timeout)
		assert.Equal(t, "custom-agent/2.0", cfg.Fetch.UserAgent)

		assert.Equal(t, "https://api.openai.com/v1", cfg.AI.Endpoint)
		assert.Equal(t, "sk-test", cfg.AI.APIKey)
		assert.Equal(t, "gpt-4o-mini", cfg.AI.Model)
		assert.InDelta(t, 0.5, cfg.AI.Temperature, 0.001)
		assert.Equal(t, 20*time.Second, cfg.AI.Timeout)
	})

	t.Run("defaults", func(t *testing.T) {
		tmpDir := t.TempDir()
		configPath := filepath.Join(tmpDir, "test-config.yml")
		err := os.WriteFile(configPath, []byte("server: {}\n"), 0o644)
		require.NoError(t, err)

		cfg, err := Load(configPath)
		require.NoError(t, err)
		require.NotNil(t, cfg)

		// check server defaults
		assert.Equal(t, ":8080", cfg.Server.Listen)
		assert.Equal(t, 30*time.Second, cfg.Server.Timeout)

		// check database defaults
		assert.Equal(t, 10, cfg.Database.MaxOpenConns)
		assert.Equal(t, 3600, cfg.Database.ConnMaxLifetime)

		// check scheduler defaults
		assert.Equal(t, 5*time.Minute, cfg.Schedule.CheckInterval)
		assert.Equal(t, 5, cfg.Schedule.MaxWorkers)

		// check fetch defaults
		assert.Equal(t, 30*time.Second, cfg.Fetch.Timeout)
		assert.Equal(t, "rivsy RSS Reader/1.0", cfg.Fetch.UserAgent)

		// check AI defaults
		assert.InDelta(t, 0.7, cfg.AI.Temperature, 0.001)
		assert.Equal(t, 30*time.Second, cfg.AI.Timeout)

		// redis disabled by default
		assert.Empty(t, cfg.Redis.Addr)
		assert.Equal(t, time.Hour, cfg.Redis.TTL)
	})

	t.Run("environment variable expansion", func(t *testing.T) {
		t.Setenv("TEST_AI_KEY", "sk-from-env")

		configContent := `
ai:
  endpoint: "https://api.openai.com/v1"
  api_key: "${TEST_AI_KEY}"
  model: "gpt-4o"
`
		tmpDir := t.TempDir()
		configPath := filepath.Join(tmpDir, "test-config.yml")
		err := os.WriteFile(configPath, []byte(configContent), 0o644)
		require.NoError(t, err)

		cfg, err := Load(configPath)
		require.NoError(t, err)
		assert.Equal(t, "sk-from-env", cfg.AI.APIKey)
	})

	t.Run("file not found", func(t *testing.T) {
		cfg, err := Load("/non/existent/file.yml")
		require.Error(t, err)
		assert.Nil(t, cfg)
		assert.Contains(t, err.Error(), "read config file")
	})

	t.Run("invalid yaml", func(t *testing.T) {
		configContent := `
invalid yaml content
  with bad indentation
    and no structure
`
		tmpDir := t.TempDir()
		configPath := filepath.Join(tmpDir, "invalid.yml")
		err := os.WriteFile(configPath, []byte(configContent), 0o644)
		require.NoError(t, err)

		cfg, err := Load(configPath)
		require.Error(t, err)
		assert.Nil(t, cfg)
		assert.Contains(t, err.Error(), "parse config")
	})

	t.Run("ai endpoint without model rejected", func(t *testing.T) {
		configContent := `
ai:
  endpoint: "https://api.openai.com/v1"
  api_key: "sk-test"
`
		tmpDir := t.TempDir()
		configPath := filepath.Join(tmpDir, "test-config.yml")
		err := os.WriteFile(configPath, []byte(configContent), 0o644)
		require.NoError(t, err)

		cfg, err := Load(configPath)
		require.Error(t, err)
		assert.Nil(t, cfg)
		assert.Contains(t, err.Error(), "ai.model is required")
	})

	t.Run("temperature out of range rejected", func(t *testing.T) {
		configContent := `
ai:
  model: "gpt-4o"
  temperature: 3.5
`
		tmpDir := t.TempDir()
		configPath := filepath.Join(tmpDir, "test-config.yml")
		err := os.WriteFile(configPath, []byte(configContent), 0o644)
		require.NoError(t, err)

		cfg, err := Load(configPath)
		require.Error(t, err)
		assert.Nil(t, cfg)
		assert.Contains(t, err.Error(), "ai.temperature")
	})
}

func TestConfig_GetAIConfig(t *testing.T) {
	cfg := &Config{}
	cfg.AI.Model = "gpt-4o"
	cfg.AI.Temperature = 0.3

	ai := cfg.GetAIConfig()
	assert.Equal(t, "gpt-4o", ai.Model)
	assert.InDelta(t, 0.3, ai.Temperature, 0.001)
}

func TestVerifyAgainstEmbeddedSchema(t *testing.T) {
	t.Run("valid config passes", func(t *testing.T) {
		cfg := &Config{}
		cfg.Server.Listen = ":8080"
		cfg.Server.Timeout = 30 * time.Second
		cfg.Schedule.CheckInterval = 5 * time.Minute
		cfg.Schedule.MaxWorkers = 5

		err := VerifyAgainstEmbeddedSchema(cfg)
		assert.NoError(t, err)
	})

	t.Run("missing listen fails", func(t *testing.T) {
		cfg := &Config{}
		cfg.Server.Timeout = 30 * time.Second
		cfg.Schedule.CheckInterval = 5 * time.Minute
		cfg.Schedule.MaxWorkers = 5

		err := VerifyAgainstEmbeddedSchema(cfg)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "server.listen is required")
	})

	t.Run("zero workers fails", func(t *testing.T) {
		cfg := &Config{}
		cfg.Server.Listen = ":8080"
		cfg.Server.Timeout = 30 * time.Second
		cfg.Schedule.CheckInterval = 5 * time.Minute

		err := VerifyAgainstEmbeddedSchema(cfg)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "schedule.max_workers")
	})
}

func TestGenerateSchema(t *testing.T) {
	schema, err := GenerateSchema()
	require.NoError(t, err)
	require.NotNil(t, schema)
}
