package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/gofrs/flock"

	"github.com/mj1618/kodi-search/internal/config"
	"github.com/mj1618/kodi-search/internal/platform"
	"github.com/mj1618/kodi-search/internal/search"
)

// connect opens the media center transports described by cfg.
func connect(c *config.Config) (*platform.Provider, error) {
	provider, err := platform.NewProvider(c.ConnectOptions())
	if err != nil {
		return nil, fmt.Errorf("connect to kodi at %s: %w", c.Kodi.Host, err)
	}
	return provider, nil
}

// settingsFromConfig converts the configured timings for the search package.
func settingsFromConfig(c *config.Config) search.Settings {
	return search.Settings{
		ReadyTimeout:  c.Timings.ReadyTimeout(),
		PollInterval:  c.Timings.PollInterval(),
		FocusAttempts: c.Timings.FocusAttempts,
		FocusPause:    c.Timings.FocusPause(),
	}
}

func newSearcher(c *config.Config, provider *platform.Provider) *search.Searcher {
	return search.NewSearcher(provider.Commander, provider.Inspector, search.Options{
		Library:     provider.Library,
		Registry:    c.Registry(),
		Method:      c.Method(),
		GlobalAddon: c.GlobalSearchAddon,
		Settings:    settingsFromConfig(c),
		Log:         logger,
	})
}

// acquireSearchLock serialises searches on this machine. It polls until the
// lock is free or timeout passes.
func acquireSearchLock(lockPath string, timeout time.Duration) (func(), error) {
	if err := os.MkdirAll(filepath.Dir(lockPath), 0o755); err != nil {
		return func() {}, fmt.Errorf("cannot create lock directory: %w", err)
	}
	l := flock.New(lockPath)
	deadline := time.Now().Add(timeout)
	for {
		locked, err := l.TryLock()
		if err != nil {
			return func() {}, fmt.Errorf("cannot acquire search lock: %w", err)
		}
		if locked {
			return func() { _ = l.Unlock() }, nil
		}
		if time.Now().After(deadline) {
			return func() {}, fmt.Errorf("another search is in progress (lock: %s)", lockPath)
		}
		time.Sleep(100 * time.Millisecond)
	}
}

// searchLockPath is the per-user lock file used by search --lock.
func searchLockPath() (string, error) {
	dir, err := config.Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "search.lock"), nil
}
