package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, body string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(body), 0o644))
}

func TestLoadFromDefaults(t *testing.T) {
	t.Setenv("TELEGRAM_BOT_TOKEN", "")

	cfg, err := LoadFrom(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "https://api.telegram.org", cfg.TelegramAPIURL)
	assert.Equal(t, "./data", cfg.StoragePath)
	assert.Equal(t, "8080", cfg.HTTPPort)
	assert.Equal(t, 50, cfg.FeedLimit)
	assert.Equal(t, AppEnvProduction, cfg.AppEnv)
	assert.False(t, cfg.BotEnabled())
	assert.Equal(t, "http://localhost:8080", cfg.BaseURL())
}

func TestLoadFromYAML(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "config.yaml", `
telegram_bot_token: "123:abc"
http_port: "9090"
public_url: "https://feeds.example.com/"
feed_limit: 20
allowed_users: [1, 2]
app_env: Development
`)

	cfg, err := LoadFrom(dir)
	require.NoError(t, err)

	assert.True(t, cfg.BotEnabled())
	assert.Equal(t, "9090", cfg.HTTPPort)
	assert.Equal(t, 20, cfg.FeedLimit)
	assert.Equal(t, []int64{1, 2}, cfg.AllowedUsers)
	assert.Equal(t, AppEnvDevelopment, cfg.AppEnv)
	assert.Equal(t, "https://feeds.example.com", cfg.BaseURL())
}

func TestLoadFromEnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "config.json", `{"http_port": "9090", "storage_path": "/srv/data"}`)
	t.Setenv("HTTP_PORT", "7070")
	t.Setenv("ALLOWED_USERS", "10, 20,x")

	cfg, err := LoadFrom(dir)
	require.NoError(t, err)

	assert.Equal(t, "7070", cfg.HTTPPort)
	assert.Equal(t, "/srv/data", cfg.StoragePath)
	assert.Equal(t, []int64{10, 20}, cfg.AllowedUsers)
	assert.True(t, cfg.IsAllowed(10))
	assert.False(t, cfg.IsAllowed(30))
}

func TestLoadFromTOML(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "config.toml", "retain_messages = 10\nprune_interval = 60\n")

	cfg, err := LoadFrom(dir)
	require.NoError(t, err)

	assert.Equal(t, 10, cfg.RetainMessages)
	assert.Equal(t, 60, cfg.PruneInterval)
}

func TestLoadFromRejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "non numeric port", body: `http_port: "http"`},
		{name: "feed limit too large", body: `feed_limit: 1000`},
		{name: "bad public url", body: `public_url: "not a url"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			writeFile(t, dir, "config.yaml", tt.body)

			_, err := LoadFrom(dir)
			assert.Error(t, err)
		})
	}
}

func TestLoadFromUnknownAppEnvFallsBack(t *testing.T) {
	t.Setenv("APP_ENV", "staging")

	cfg, err := LoadFrom(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, AppEnvProduction, cfg.AppEnv)
}

func TestParseAllowedUsers(t *testing.T) {
	assert.Empty(t, ParseAllowedUsers(""))
	assert.Equal(t, []int64{1, 2, 3}, ParseAllowedUsers("1,2, 3"))
	assert.Equal(t, []int64{5}, ParseAllowedUsers("a,,5"))
}
