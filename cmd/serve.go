package cmd

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/mj1618/kodi-search/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start an MCP server exposing kodi-search tools",
	Long: `Start a Model Context Protocol (MCP) server that exposes search, wait,
focus, skin, skins and status as tools. Voice pipelines and agents can call
them directly without spawning a process per request.

Supported transports:
  stdio             Standard I/O (default, for MCP clients)
  streamable-http   Streamable HTTP transport (for remote agents)

Examples:
  kodi-search serve
  kodi-search serve --transport streamable-http --port 8765
  kodi-search serve --skin-ttl 0`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().String("transport", "stdio", "Transport: stdio, streamable-http")
	serveCmd.Flags().Int("port", 8765, "HTTP port for streamable-http transport")
	serveCmd.Flags().Int("skin-ttl", 30000, "Active skin cache TTL in milliseconds (0 to disable)")
}

func runServe(cmd *cobra.Command, args []string) error {
	transport, _ := cmd.Flags().GetString("transport")
	port, _ := cmd.Flags().GetInt("port")
	skinTTLMs, _ := cmd.Flags().GetInt("skin-ttl")

	provider, err := connect(cfg)
	if err != nil {
		return err
	}
	defer provider.Shutdown()

	srvCfg := server.Config{
		Transport:   transport,
		Port:        port,
		SkinTTL:     time.Duration(skinTTLMs) * time.Millisecond,
		Registry:    cfg.Registry(),
		Method:      cfg.Method(),
		GlobalAddon: cfg.GlobalSearchAddon,
		Settings:    settingsFromConfig(cfg),
		Log:         logger,
	}
	return server.New(provider, srvCfg).Serve(srvCfg)
}
