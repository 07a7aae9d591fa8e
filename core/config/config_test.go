package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadDefaults(t *testing.T) {
	path := writeConfig(t, `
telegram:
  token: "123:abc"
  admin_ids: [5529532494]
`)
	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, RunModeLongpoll, cfg.Telegram.RunMode)
	assert.Equal(t, "projects.json", cfg.Catalog.Path)
	assert.Equal(t, "photos", cfg.Broadcast.PhotosDir)
	assert.Zero(t, cfg.Broadcast.IntervalMinutes)
	assert.True(t, cfg.IsAdmin(5529532494))
	assert.False(t, cfg.IsAdmin(1))
}

func TestNormalizeRequiresToken(t *testing.T) {
	err := Normalize(&Config{})
	require.ErrorContains(t, err, "token")
}

func TestNormalizeWebhookRequirements(t *testing.T) {
	cfg := &Config{}
	cfg.Telegram.Token = "t"
	cfg.Telegram.RunMode = "webhook"
	require.ErrorContains(t, Normalize(cfg), "webhook.url")

	cfg.Webhook.URL = "https://example.org/hook"
	require.ErrorContains(t, Normalize(cfg), "webhook.listen")

	cfg.Webhook.Listen = "0.0.0.0"
	require.ErrorContains(t, Normalize(cfg), "webhook.port")

	cfg.Webhook.Port = 8443
	require.NoError(t, Normalize(cfg))
}

func TestNormalizePollingAlias(t *testing.T) {
	cfg := &Config{}
	cfg.Telegram.Token = "t"
	cfg.Telegram.RunMode = "polling"
	require.NoError(t, Normalize(cfg))
	assert.Equal(t, RunModeLongpoll, cfg.Telegram.RunMode)
}

func TestNormalizeRejectsUnknownRunMode(t *testing.T) {
	cfg := &Config{}
	cfg.Telegram.Token = "t"
	cfg.Telegram.RunMode = "carrier-pigeon"
	require.ErrorContains(t, Normalize(cfg), "run_mode")
}

func TestNormalizeRateLimitExclusions(t *testing.T) {
	cfg := &Config{}
	cfg.Telegram.Token = "t"
	cfg.RateLimit.ExcludeUpdates = []string{" Callback ", "message"}
	require.NoError(t, Normalize(cfg))
	assert.Equal(t, []string{"callback", "message"}, cfg.RateLimit.ExcludeUpdates)

	cfg.RateLimit.ExcludeUpdates = []string{"smoke-signal"}
	require.ErrorContains(t, Normalize(cfg), "exclude_updates")
}

func TestNormalizeRejectsNegativeInterval(t *testing.T) {
	cfg := &Config{}
	cfg.Telegram.Token = "t"
	cfg.Broadcast.IntervalMinutes = -1
	require.ErrorContains(t, Normalize(cfg), "interval_minutes")
}
