// Package server exposes the search operations as MCP tools so a voice
// pipeline can drive Kodi without spawning a process per request.
package server

import (
	"fmt"
	"sync"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/mj1618/kodi-search/internal/logging"
	"github.com/mj1618/kodi-search/internal/model"
	"github.com/mj1618/kodi-search/internal/platform"
	"github.com/mj1618/kodi-search/internal/search"
	"github.com/mj1618/kodi-search/internal/version"
)

// Config holds MCP server configuration.
type Config struct {
	Transport   string
	Port        int
	SkinTTL     time.Duration
	Registry    *model.Registry
	Method      model.SearchMethod
	GlobalAddon string
	Settings    search.Settings
	Clock       search.Clock
	Log         logging.Logger
}

// Server wraps the MCP server with the platform provider and skin cache.
// Tool calls share one provider and run one at a time.
type Server struct {
	provider   *platform.Provider
	skins      *SkinCache
	searcher   *search.Searcher
	waiter     *search.Waiter
	focus      *search.FocusAcquirer
	settings   search.Settings
	addon      string
	providerMu sync.Mutex
	mcp        *mcpserver.MCPServer
	log        logging.Logger
}

// New creates and configures an MCP server with all tools registered.
func New(provider *platform.Provider, cfg Config) *Server {
	if cfg.Log == nil {
		cfg.Log = logging.Discard()
	}
	if cfg.Settings == (search.Settings{}) {
		cfg.Settings = search.DefaultSettings()
	}
	skins := NewSkinCache(provider.Inspector, cfg.SkinTTL)
	searcher := search.NewSearcher(provider.Commander, skins, search.Options{
		Library:     provider.Library,
		Registry:    cfg.Registry,
		Method:      cfg.Method,
		GlobalAddon: cfg.GlobalAddon,
		Settings:    cfg.Settings,
		Clock:       cfg.Clock,
		Log:         cfg.Log,
	})

	s := &Server{
		provider: provider,
		skins:    skins,
		searcher: searcher,
		waiter:   search.NewWaiter(skins, cfg.Clock, cfg.Log),
		focus:    search.NewFocusAcquirer(provider.Commander, skins, cfg.Clock, cfg.Settings.FocusPause, cfg.Log),
		settings: cfg.Settings,
		addon:    cfg.GlobalAddon,
		log:      cfg.Log,
	}

	s.mcp = mcpserver.NewMCPServer("kodi-search", version.Version)
	s.registerTools()
	return s
}

// Serve starts the MCP server with the configured transport.
func (s *Server) Serve(cfg Config) error {
	switch cfg.Transport {
	case "stdio":
		s.log.Info("serving MCP over stdio")
		return mcpserver.ServeStdio(s.mcp)
	case "streamable-http":
		addr := fmt.Sprintf(":%d", cfg.Port)
		s.log.WithField("addr", addr).Info("serving MCP over streamable HTTP")
		httpServer := mcpserver.NewStreamableHTTPServer(s.mcp)
		return httpServer.Start(addr)
	default:
		return fmt.Errorf("unsupported transport: %s (use stdio or streamable-http)", cfg.Transport)
	}
}

func (s *Server) registerTools() {
	// search
	s.mcp.AddTool(
		mcp.NewTool("search",
			mcp.WithDescription("Search the Kodi library using the active skin's search window and leave focus on the results"),
			mcp.WithString("query", mcp.Description("Search text")),
			mcp.WithString("params", mcp.Description("Raw launch parameters, e.g. 'search=Dune&method=global'")),
			mcp.WithString("method", mcp.Description("skin_specific, default, or global_search")),
			mcp.WithString("window", mcp.Description("Override the profile's search window")),
		),
		s.handleSearch,
	)

	// pullup
	s.mcp.AddTool(
		mcp.NewTool("pullup",
			mcp.WithDescription("Find a title in the video library and show it: open a single TV show, or search for a single movie or several matches"),
			mcp.WithString("query", mcp.Description("Title to look up"), mcp.Required()),
			mcp.WithString("media_type", mcp.Description("all, tv, or movie (default all)")),
		),
		s.handlePullUp,
	)

	// wait
	s.mcp.AddTool(
		mcp.NewTool("wait",
			mcp.WithDescription("Poll a boolean Kodi info expression until it is true or a timeout elapses"),
			mcp.WithString("condition", mcp.Description("Info expression, e.g. 'Window.IsVisible(10025)'"), mcp.Required()),
			mcp.WithNumber("timeout", mcp.Description("Max milliseconds to wait")),
			mcp.WithNumber("interval", mcp.Description("Polling interval in ms")),
		),
		s.handleWait,
	)

	// focus
	s.mcp.AddTool(
		mcp.NewTool("focus",
			mcp.WithDescription("Move focus to a control in the active window, retrying and optionally falling back to an alternate control"),
			mcp.WithString("control", mcp.Description("Control id"), mcp.Required()),
			mcp.WithString("alternate", mcp.Description("Alternate control id tried once after the retries")),
			mcp.WithNumber("attempts", mcp.Description("Attempts on the primary control")),
		),
		s.handleFocus,
	)

	// skin
	s.mcp.AddTool(
		mcp.NewTool("skin",
			mcp.WithDescription("Detect the active skin and the search profile it maps to"),
			mcp.WithBoolean("refresh", mcp.Description("Ignore the cached skin")),
		),
		s.handleSkin,
	)

	// skins
	s.mcp.AddTool(
		mcp.NewTool("skins",
			mcp.WithDescription("List the known skin search profiles"),
		),
		s.handleSkins,
	)

	// status
	s.mcp.AddTool(
		mcp.NewTool("status",
			mcp.WithDescription("Check that Kodi is reachable and the global search addon is installed"),
		),
		s.handleStatus,
	)
}
