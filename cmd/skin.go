package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mj1618/kodi-search/internal/output"
)

var skinCmd = &cobra.Command{
	Use:   "skin",
	Short: "Show the active skin and the profile it maps to",
	RunE:  runSkin,
}

func init() {
	rootCmd.AddCommand(skinCmd)
}

func runSkin(cmd *cobra.Command, args []string) error {
	provider, err := connect(cfg)
	if err != nil {
		return err
	}
	defer provider.Shutdown()

	return output.Print(newSearcher(cfg, provider).DescribeSkin(cmd.Context()))
}
