package model

import (
	"fmt"
	"strings"
)

// MediaType restricts which library sections a pull-up looks in.
type MediaType string

const (
	MediaAll   MediaType = "all"
	MediaTV    MediaType = "tv"
	MediaMovie MediaType = "movie"
)

// ParseMediaType accepts the canonical names plus a few spoken variants.
// An empty string means MediaAll.
func ParseMediaType(s string) (MediaType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "all", "any":
		return MediaAll, nil
	case "tv", "show", "shows", "tvshow", "tvshows", "series":
		return MediaTV, nil
	case "movie", "movies", "film", "films":
		return MediaMovie, nil
	default:
		return "", fmt.Errorf("unknown media type %q (use all, tv or movie)", s)
	}
}

// IncludesTV reports whether TV shows are searched.
func (m MediaType) IncludesTV() bool { return m == MediaAll || m == MediaTV }

// IncludesMovies reports whether movies are searched.
func (m MediaType) IncludesMovies() bool { return m == MediaAll || m == MediaMovie }

// MediaKind is the library section an item came from.
type MediaKind string

const (
	KindTVShow MediaKind = "tvshow"
	KindMovie  MediaKind = "movie"
)

// MediaItem is one video library entry matched by title.
type MediaItem struct {
	Kind      MediaKind `yaml:"kind"                json:"kind"`
	ID        int       `yaml:"id"                  json:"id"`
	Title     string    `yaml:"title"               json:"title"`
	Year      int       `yaml:"year,omitempty"      json:"year,omitempty"`
	Thumbnail string    `yaml:"thumbnail,omitempty" json:"thumbnail,omitempty"`
}
