package search

import (
	"context"

	"github.com/mj1618/kodi-search/internal/logging"
	"github.com/mj1618/kodi-search/internal/model"
	"github.com/mj1618/kodi-search/internal/platform"
)

// Searcher resolves the search method and skin profile for a request and
// runs it.
type Searcher struct {
	inspector   platform.Inspector
	library     platform.Library
	registry    *model.Registry
	orch        *Orchestrator
	method      model.SearchMethod
	globalAddon string
	log         logging.Logger
}

// Options configure a Searcher.
type Options struct {
	// Library backs PullUp. May be nil when only Search is used.
	Library     platform.Library
	Registry    *model.Registry
	Method      model.SearchMethod
	GlobalAddon string
	Settings    Settings
	Clock       Clock
	Log         logging.Logger
}

// NewSearcher wires a Searcher against a host.
func NewSearcher(commander platform.Commander, inspector platform.Inspector, opts Options) *Searcher {
	if opts.Registry == nil {
		opts.Registry = model.NewRegistry()
	}
	if opts.Method == "" {
		opts.Method = model.MethodSkin
	}
	if opts.GlobalAddon == "" {
		opts.GlobalAddon = "script.globalsearch"
	}
	if opts.Log == nil {
		opts.Log = logging.Discard()
	}
	if opts.Settings == (Settings{}) {
		opts.Settings = DefaultSettings()
	}
	return &Searcher{
		inspector:   inspector,
		library:     opts.Library,
		registry:    opts.Registry,
		orch:        NewOrchestrator(commander, inspector, opts.Clock, opts.Settings, opts.Log),
		method:      opts.Method,
		globalAddon: opts.GlobalAddon,
		log:         opts.Log,
	}
}

// Search runs one search described by decoded launch parameters.
func (s *Searcher) Search(ctx context.Context, params model.Params) Report {
	method := s.resolveMethod(params.Method)
	log := s.log.WithFields(logging.Fields{"query": params.Query, "method": method})

	if method == model.MethodGlobal {
		log.WithField("addon", s.globalAddon).Info("delegating to global search")
		return s.orch.Delegate(ctx, s.globalAddon, params.Query)
	}

	var skin string
	profile := s.registry.Default()
	if method == model.MethodSkin {
		skin = s.DetectSkin(ctx)
		profile = s.registry.Lookup(skin)
		if profile.ID != skin {
			log.WithField("skin", skin).Debug("no profile for skin; using default")
		}
	}
	log.WithFields(logging.Fields{"skin": skin, "profile": profile.ID}).Info("running search")

	report := s.orch.Run(ctx, model.SearchRequest{
		Query:          params.Query,
		Method:         method,
		Profile:        profile,
		WindowOverride: params.Window,
		Properties:     params.Properties,
	})
	report.Skin = skin
	return report
}

// DetectSkin returns the active skin id, or "" when it cannot be read.
func (s *Searcher) DetectSkin(ctx context.Context) string {
	skin, err := s.inspector.Skin(ctx)
	if err != nil {
		s.log.WithError(err).Warn("could not detect skin")
		return ""
	}
	return skin
}

// Profile returns the profile the registry would use for skin.
func (s *Searcher) Profile(skin string) model.SkinProfile {
	return s.registry.Lookup(skin)
}

// Profiles lists every registered profile.
func (s *Searcher) Profiles() []model.SkinProfile {
	return s.registry.Profiles()
}

func (s *Searcher) resolveMethod(param string) model.SearchMethod {
	if param == "" {
		return s.method
	}
	m, err := model.ParseSearchMethod(param)
	if err != nil {
		s.log.WithError(err).Warn("ignoring method parameter")
		return s.method
	}
	return m
}
