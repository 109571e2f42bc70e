package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mj1618/kodi-search/internal/output"
	"github.com/mj1618/kodi-search/internal/search"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Check that Kodi is reachable",
	Long:  "Ping Kodi's JSON-RPC interface, show the active skin, and check the global search addon.",
	RunE:  runStatus,
}

func init() {
	rootCmd.AddCommand(statusCmd)
	statusCmd.Flags().String("addon", "", "Addon to check (default: global_search_addon)")
}

func runStatus(cmd *cobra.Command, args []string) error {
	addon, _ := cmd.Flags().GetString("addon")
	if addon == "" {
		addon = cfg.GlobalSearchAddon
	}

	provider, err := connect(cfg)
	if err != nil {
		return err
	}
	defer provider.Shutdown()

	res := search.Status(cmd.Context(), provider.Diagnostics, provider.Inspector, addon)
	if !res.Reachable {
		_ = output.Print(res)
		return fmt.Errorf("kodi at %s:%d is not reachable", cfg.Kodi.Host, cfg.Kodi.Port)
	}
	return output.Print(res)
}
