package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mj1618/kodi-search/internal/model"
)

func isolate(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	for _, k := range []string{"KODI_HOST", "KODI_PORT", "KODI_EVENT_PORT", "KODI_USERNAME", "KODI_PASSWORD", "KODI_SEARCH_METHOD", "LOG_LEVEL"} {
		t.Setenv(k, "")
	}
	return home
}

func TestLoad_DefaultsWhenNoFile(t *testing.T) {
	isolate(t)

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "localhost", cfg.Kodi.Host)
	assert.Equal(t, DefaultPort, cfg.Kodi.Port)
	assert.Equal(t, DefaultEventPort, cfg.Kodi.EventPort)
	assert.Equal(t, model.MethodSkin, cfg.Method())
	assert.Equal(t, 5*time.Second, cfg.Timings.ReadyTimeout())
	assert.Equal(t, 100*time.Millisecond, cfg.Timings.PollInterval())
	assert.Equal(t, 3, cfg.Timings.FocusAttempts)
}

func TestLoad_ExplicitPathMustExist(t *testing.T) {
	isolate(t)

	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}

func TestLoad_FileThenEnv(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := `
kodi:
  host: livingroom.lan
  port: 8081
search_method: global
timings:
  focus_attempts: 5
profiles:
  - id: skin.custom
    search_window: "1200"
    results_control: "50"
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))
	t.Setenv("KODI_PORT", "9090")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "livingroom.lan", cfg.Kodi.Host)
	assert.Equal(t, 9090, cfg.Kodi.Port, "env should override file")
	assert.Equal(t, DefaultEventPort, cfg.Kodi.EventPort, "unset keys keep defaults")
	assert.Equal(t, model.MethodGlobal, cfg.Method())
	assert.Equal(t, 5, cfg.Timings.FocusAttempts)
	assert.Equal(t, 100, cfg.Timings.PollIntervalMs)

	reg := cfg.Registry()
	assert.True(t, reg.Has("skin.custom"))
	assert.True(t, reg.Has(model.SkinArcticFuse2))
}

func TestLoad_DefaultPathFile(t *testing.T) {
	home := isolate(t)
	dir := filepath.Join(home, ".kodi-search")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("kodi:\n  host: bedroom\n"), 0o644))

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "bedroom", cfg.Kodi.Host)
}

func TestLoad_InvalidYAML(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("kodi: [unterminated"), 0o644))

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid YAML")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"empty host", func(c *Config) { c.Kodi.Host = " " }},
		{"bad port", func(c *Config) { c.Kodi.Port = 0 }},
		{"bad event port", func(c *Config) { c.Kodi.EventPort = 70000 }},
		{"bad method", func(c *Config) { c.SearchMethod = "voodoo" }},
		{"zero attempts", func(c *Config) { c.Timings.FocusAttempts = 0 }},
		{"zero poll", func(c *Config) { c.Timings.PollIntervalMs = 0 }},
		{"negative pause", func(c *Config) { c.Timings.FocusPauseMs = -1 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
	assert.NoError(t, Default().Validate())
}

func TestConnectOptions(t *testing.T) {
	cfg := Default()
	opts := cfg.ConnectOptions()
	assert.Equal(t, "localhost", opts.Host)
	assert.Equal(t, 10*time.Second, opts.Timeout)
	assert.Equal(t, DefaultUsername, opts.Username)
}
