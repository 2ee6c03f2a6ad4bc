package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{
		"PORT", "FRONTEND_URL", "DATABASE_PATH", "UPLOAD_DIR",
		"MAX_FILE_SIZE", "ANTHROPIC_API_KEY", "CLAUDE_MODEL",
		"CLAUDE_MAX_TOKENS", "APP_ENV",
	} {
		t.Setenv(key, "")
	}

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "3001", cfg.Server.Port)
	assert.Equal(t, "http://localhost:5173", cfg.Server.FrontendURL)
	assert.Equal(t, "./database/uxr.db", cfg.Database.Path)
	assert.Equal(t, "./uploads", cfg.Storage.UploadDir)
	assert.Equal(t, int64(10*1024*1024), cfg.Storage.MaxFileSize)
	assert.Equal(t, "claude-3-5-sonnet-20241022", cfg.Claude.Model)
	assert.Equal(t, 4096, cfg.Claude.MaxTokens)
	assert.Equal(t, "development", cfg.App.Environment)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("PORT", "8080")
	t.Setenv("MAX_FILE_SIZE", "1048576")
	t.Setenv("CLAUDE_MAX_TOKENS", "2048")
	t.Setenv("ANTHROPIC_API_KEY", "sk-ant-test")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, int64(1048576), cfg.Storage.MaxFileSize)
	assert.Equal(t, 2048, cfg.Claude.MaxTokens)
	assert.Equal(t, "sk-ant-test", cfg.Claude.APIKey)
}

func TestLoad_InvalidIntFallsBack(t *testing.T) {
	t.Setenv("CLAUDE_MAX_TOKENS", "not-a-number")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 4096, cfg.Claude.MaxTokens)
}

func TestValidate(t *testing.T) {
	valid := &Config{
		Server:   ServerConfig{Port: "3001"},
		Database: DatabaseConfig{Path: "./db.sqlite"},
		Storage:  StorageConfig{MaxFileSize: 1024},
		Claude:   ClaudeConfig{MaxTokens: 4096},
	}
	assert.NoError(t, valid.Validate())

	noPort := *valid
	noPort.Server.Port = ""
	assert.Error(t, noPort.Validate())

	badSize := *valid
	badSize.Storage.MaxFileSize = 0
	assert.Error(t, badSize.Validate())

	badTokens := *valid
	badTokens.Claude.MaxTokens = -1
	assert.Error(t, badTokens.Validate())
}
