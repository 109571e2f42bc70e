package kodi

import (
	"context"
	"fmt"

	"github.com/mj1618/kodi-search/internal/model"
)

var libraryProperties = []string{"title", "year", "thumbnail"}

// titleFilter matches library entries whose title contains title. Kodi
// applies it server side.
func titleFilter(title string) map[string]interface{} {
	return map[string]interface{}{
		"properties": libraryProperties,
		"filter": map[string]interface{}{
			"field":    "title",
			"operator": "contains",
			"value":    title,
		},
	}
}

type libraryEntry struct {
	TVShowID  int    `json:"tvshowid"`
	MovieID   int    `json:"movieid"`
	Title     string `json:"title"`
	Label     string `json:"label"`
	Year      int    `json:"year"`
	Thumbnail string `json:"thumbnail"`
}

func (e libraryEntry) item(kind model.MediaKind) model.MediaItem {
	item := model.MediaItem{Kind: kind, Title: e.Title, Year: e.Year, Thumbnail: e.Thumbnail}
	if item.Title == "" {
		item.Title = e.Label
	}
	if kind == model.KindTVShow {
		item.ID = e.TVShowID
	} else {
		item.ID = e.MovieID
	}
	return item
}

// TVShows returns library TV shows whose title contains title.
func (c *Client) TVShows(ctx context.Context, title string) ([]model.MediaItem, error) {
	var out struct {
		TVShows []libraryEntry `json:"tvshows"`
	}
	if err := c.Call(ctx, "VideoLibrary.GetTVShows", titleFilter(title), &out); err != nil {
		return nil, err
	}
	items := make([]model.MediaItem, 0, len(out.TVShows))
	for _, e := range out.TVShows {
		items = append(items, e.item(model.KindTVShow))
	}
	return items, nil
}

// Movies returns library movies whose title contains title.
func (c *Client) Movies(ctx context.Context, title string) ([]model.MediaItem, error) {
	var out struct {
		Movies []libraryEntry `json:"movies"`
	}
	if err := c.Call(ctx, "VideoLibrary.GetMovies", titleFilter(title), &out); err != nil {
		return nil, err
	}
	items := make([]model.MediaItem, 0, len(out.Movies))
	for _, e := range out.Movies {
		items = append(items, e.item(model.KindMovie))
	}
	return items, nil
}

// ActivateWindow opens window with optional parameters such as a
// videodb:// path.
func (c *Client) ActivateWindow(ctx context.Context, window string, parameters ...string) error {
	params := map[string]interface{}{"window": window}
	if len(parameters) > 0 {
		params["parameters"] = parameters
	}
	var reply string
	if err := c.Call(ctx, "GUI.ActivateWindow", params, &reply); err != nil {
		return err
	}
	if reply != "OK" {
		return fmt.Errorf("GUI.ActivateWindow: unexpected reply %q", reply)
	}
	return nil
}

// TVShowPath is the video library path listing a show's seasons.
func TVShowPath(id int) string {
	return fmt.Sprintf("videodb://tvshows/titles/%d/", id)
}

// TVShows looks up TV shows by title.
func (h *Host) TVShows(ctx context.Context, title string) ([]model.MediaItem, error) {
	return h.rpc.TVShows(ctx, title)
}

// Movies looks up movies by title.
func (h *Host) Movies(ctx context.Context, title string) ([]model.MediaItem, error) {
	return h.rpc.Movies(ctx, title)
}

// OpenTVShow opens the videos window on the show's page.
func (h *Host) OpenTVShow(ctx context.Context, id int) error {
	return h.rpc.ActivateWindow(ctx, "videos", TVShowPath(id))
}
