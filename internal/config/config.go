package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/mj1618/kodi-search/internal/model"
	"github.com/mj1618/kodi-search/internal/platform"
	"gopkg.in/yaml.v3"
)

// Kodi holds the media center connection settings.
type Kodi struct {
	Host      string `yaml:"host"`
	Port      int    `yaml:"port"`
	EventPort int    `yaml:"event_port"`
	Username  string `yaml:"username"`
	Password  string `yaml:"password"`
	TimeoutMs int    `yaml:"timeout_ms"`
	Retries   int    `yaml:"retries"`
}

// Timings bound every wait the search sequence performs.
type Timings struct {
	ReadyTimeoutMs int `yaml:"ready_timeout_ms"`
	PollIntervalMs int `yaml:"poll_interval_ms"`
	FocusAttempts  int `yaml:"focus_attempts"`
	FocusPauseMs   int `yaml:"focus_pause_ms"`
}

// Config is built once at start and passed explicitly; nothing mutates it
// afterwards.
type Config struct {
	Kodi              Kodi                `yaml:"kodi"`
	SearchMethod      string              `yaml:"search_method"`
	GlobalSearchAddon string              `yaml:"global_search_addon"`
	Timings           Timings             `yaml:"timings"`
	Profiles          []model.SkinProfile `yaml:"profiles,omitempty"`
	LogLevel          string              `yaml:"log_level,omitempty"`
}

// Defaults.
const (
	DefaultPort              = 8080
	DefaultEventPort         = 9777
	DefaultUsername          = "kodi"
	DefaultPassword          = "kodi"
	DefaultGlobalSearchAddon = "script.globalsearch"
)

// Default returns the configuration used when nothing else is set.
func Default() *Config {
	return &Config{
		Kodi: Kodi{
			Host:      "localhost",
			Port:      DefaultPort,
			EventPort: DefaultEventPort,
			Username:  DefaultUsername,
			Password:  DefaultPassword,
			TimeoutMs: 10000,
			Retries:   2,
		},
		SearchMethod:      string(model.MethodSkin),
		GlobalSearchAddon: DefaultGlobalSearchAddon,
		Timings: Timings{
			ReadyTimeoutMs: 5000,
			PollIntervalMs: 100,
			FocusAttempts:  3,
			FocusPauseMs:   200,
		},
		LogLevel: "info",
	}
}

// Dir returns the absolute path to ~/.kodi-search/.
func Dir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine home directory: %w", err)
	}
	return filepath.Join(home, ".kodi-search"), nil
}

// DefaultPath returns the absolute path to ~/.kodi-search/config.yaml.
func DefaultPath() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.yaml"), nil
}

// Load builds a Config from defaults, the YAML file at path, and the
// environment, in that order. An empty path uses DefaultPath and tolerates a
// missing file; an explicit path must exist.
func Load(path string) (*Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		p, err := DefaultPath()
		if err != nil {
			return nil, err
		}
		path = p
	}

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("invalid YAML in %s: %w", path, err)
		}
	case errors.Is(err, os.ErrNotExist) && !explicit:
	default:
		return nil, fmt.Errorf("cannot read config %s: %w", path, err)
	}

	applyEnv(cfg)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func applyEnv(cfg *Config) {
	cfg.Kodi.Host = GetEnv("KODI_HOST", cfg.Kodi.Host)
	cfg.Kodi.Port = GetEnvInt("KODI_PORT", cfg.Kodi.Port)
	cfg.Kodi.EventPort = GetEnvInt("KODI_EVENT_PORT", cfg.Kodi.EventPort)
	cfg.Kodi.Username = GetEnv("KODI_USERNAME", cfg.Kodi.Username)
	cfg.Kodi.Password = GetEnv("KODI_PASSWORD", cfg.Kodi.Password)
	cfg.SearchMethod = GetEnv("KODI_SEARCH_METHOD", cfg.SearchMethod)
	cfg.LogLevel = GetEnv("LOG_LEVEL", cfg.LogLevel)
}

// Validate checks values that would otherwise fail later in confusing ways.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Kodi.Host) == "" {
		return fmt.Errorf("kodi.host must not be empty")
	}
	if c.Kodi.Port <= 0 || c.Kodi.Port > 65535 {
		return fmt.Errorf("kodi.port out of range: %d", c.Kodi.Port)
	}
	if c.Kodi.EventPort <= 0 || c.Kodi.EventPort > 65535 {
		return fmt.Errorf("kodi.event_port out of range: %d", c.Kodi.EventPort)
	}
	if _, err := model.ParseSearchMethod(c.SearchMethod); err != nil {
		return err
	}
	if c.Timings.FocusAttempts < 1 {
		return fmt.Errorf("timings.focus_attempts must be at least 1, got %d", c.Timings.FocusAttempts)
	}
	if c.Timings.PollIntervalMs <= 0 {
		return fmt.Errorf("timings.poll_interval_ms must be positive, got %d", c.Timings.PollIntervalMs)
	}
	if c.Timings.ReadyTimeoutMs < 0 || c.Timings.FocusPauseMs < 0 {
		return fmt.Errorf("timings must not be negative")
	}
	return nil
}

// Method returns the parsed search method. Validate has already checked it.
func (c *Config) Method() model.SearchMethod {
	m, _ := model.ParseSearchMethod(c.SearchMethod)
	return m
}

// Registry builds the skin registry from built-ins plus configured profiles.
func (c *Config) Registry() *model.Registry {
	return model.NewRegistry(c.Profiles...)
}

// ConnectOptions converts the Kodi section for the platform layer.
func (c *Config) ConnectOptions() platform.ConnectOptions {
	return platform.ConnectOptions{
		Host:      c.Kodi.Host,
		Port:      c.Kodi.Port,
		EventPort: c.Kodi.EventPort,
		Username:  c.Kodi.Username,
		Password:  c.Kodi.Password,
		Timeout:   time.Duration(c.Kodi.TimeoutMs) * time.Millisecond,
		Retries:   c.Kodi.Retries,
	}
}

// ReadyTimeout bounds the wait for a skin's readiness condition.
func (t Timings) ReadyTimeout() time.Duration {
	return time.Duration(t.ReadyTimeoutMs) * time.Millisecond
}

// PollInterval is the cadence of readiness polling.
func (t Timings) PollInterval() time.Duration {
	return time.Duration(t.PollIntervalMs) * time.Millisecond
}

// FocusPause is the settle pause between a focus command and its check.
func (t Timings) FocusPause() time.Duration {
	return time.Duration(t.FocusPauseMs) * time.Millisecond
}
