package platform

import (
	"context"

	"github.com/mj1618/kodi-search/internal/model"
)

// Commander sends fire-and-forget builtin commands to the media center.
// A nil error means the command was sent, not that it took effect.
type Commander interface {
	Execute(ctx context.Context, builtin string) error
}

// Inspector answers boolean UI queries and identifies the active skin.
type Inspector interface {
	// Condition evaluates a boolean info expression such as
	// "Window.IsVisible(11185)".
	Condition(ctx context.Context, expr string) (bool, error)

	// Skin returns the identifier of the active skin, e.g. "skin.estuary".
	Skin(ctx context.Context) (string, error)
}

// Diagnostics reports connectivity and addon availability.
type Diagnostics interface {
	Ping(ctx context.Context) error
	AddonVersion(ctx context.Context, addonID string) (string, error)
}

// Library looks up video library entries by title and opens their pages.
type Library interface {
	TVShows(ctx context.Context, title string) ([]model.MediaItem, error)
	Movies(ctx context.Context, title string) ([]model.MediaItem, error)
	OpenTVShow(ctx context.Context, id int) error
}
