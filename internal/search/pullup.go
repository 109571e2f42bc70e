package search

import (
	"context"
	"fmt"

	"github.com/mj1618/kodi-search/internal/logging"
	"github.com/mj1618/kodi-search/internal/model"
)

// PullUpOutcome says how a pull-up ended.
type PullUpOutcome string

const (
	PulledUpNone     PullUpOutcome = "not_found"
	PulledUpOpened   PullUpOutcome = "opened"
	PulledUpSearched PullUpOutcome = "searched"
	PulledUpFailed   PullUpOutcome = "failed"
)

// PullUpResult describes a pull-up. Message is phrased for a voice reply.
type PullUpResult struct {
	OK        bool              `yaml:"ok"                json:"ok"`
	Action    string            `yaml:"action"            json:"action"`
	Query     string            `yaml:"query"             json:"query"`
	MediaType model.MediaType   `yaml:"media_type"        json:"media_type"`
	Outcome   PullUpOutcome     `yaml:"outcome"           json:"outcome"`
	Message   string            `yaml:"message"           json:"message"`
	Matches   []model.MediaItem `yaml:"matches,omitempty" json:"matches,omitempty"`
	Search    *Report           `yaml:"search,omitempty"  json:"search,omitempty"`
	Errors    []string          `yaml:"errors,omitempty"  json:"errors,omitempty"`
}

// PullUp looks query up in the video library and shows it:
// a single TV show opens its library page, a single movie runs a search for
// its exact title, and several matches run a search for query. Lookup
// errors are treated as no matches for that section.
func (s *Searcher) PullUp(ctx context.Context, query string, media model.MediaType) PullUpResult {
	if media == "" {
		media = model.MediaAll
	}
	res := PullUpResult{Action: "pullup", Query: query, MediaType: media}
	log := s.log.WithFields(logging.Fields{"query": query, "media_type": media})

	if query == "" {
		res.Outcome = PulledUpNone
		res.Message = "I didn't catch what you said."
		return res
	}
	if s.library == nil {
		res.Outcome = PulledUpFailed
		res.Message = "Library lookup is not available"
		return res
	}

	if media.IncludesTV() {
		shows, err := s.library.TVShows(ctx, query)
		if err != nil {
			log.WithError(err).Warn("tv show lookup failed")
			res.Errors = append(res.Errors, err.Error())
		}
		res.Matches = append(res.Matches, shows...)
	}
	if media.IncludesMovies() {
		movies, err := s.library.Movies(ctx, query)
		if err != nil {
			log.WithError(err).Warn("movie lookup failed")
			res.Errors = append(res.Errors, err.Error())
		}
		res.Matches = append(res.Matches, movies...)
	}
	log.WithField("matches", len(res.Matches)).Debug("library lookup done")

	switch {
	case len(res.Matches) == 0:
		res.Outcome = PulledUpNone
		res.Message = fmt.Sprintf("I couldn't find %s in your library", query)

	case len(res.Matches) == 1 && res.Matches[0].Kind == model.KindTVShow:
		show := res.Matches[0]
		log.WithFields(logging.Fields{"title": show.Title, "tvshowid": show.ID}).Info("opening tv show")
		if err := s.library.OpenTVShow(ctx, show.ID); err != nil {
			log.WithError(err).Error("could not open tv show")
			res.Errors = append(res.Errors, err.Error())
			res.Outcome = PulledUpFailed
			res.Message = fmt.Sprintf("Failed to open %s", show.Title)
			return res
		}
		res.OK = true
		res.Outcome = PulledUpOpened
		res.Message = fmt.Sprintf("Opening %s", show.Title)

	case len(res.Matches) == 1:
		// Movies have no library page worth opening; search the exact title.
		movie := res.Matches[0]
		log.WithFields(logging.Fields{"title": movie.Title, "movieid": movie.ID}).Info("searching for movie")
		report := s.Search(ctx, model.Params{Query: movie.Title})
		res.Search = &report
		res.OK = report.OK
		if report.OK {
			res.Outcome = PulledUpSearched
			res.Message = fmt.Sprintf("Showing %s", movie.Title)
		} else {
			res.Outcome = PulledUpFailed
			res.Message = fmt.Sprintf("Failed to show %s", movie.Title)
		}

	default:
		log.Debug("several matches; searching instead")
		report := s.Search(ctx, model.Params{Query: query})
		res.Search = &report
		res.OK = report.OK
		if report.OK {
			res.Outcome = PulledUpSearched
			res.Message = fmt.Sprintf("Found multiple matches for %s", query)
		} else {
			res.Outcome = PulledUpFailed
			res.Message = "Failed to search"
		}
	}
	return res
}
