package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mj1618/kodi-search/internal/model"
	"github.com/mj1618/kodi-search/internal/output"
)

var skinsCmd = &cobra.Command{
	Use:   "skins",
	Short: "List the known skin search profiles",
	Long:  "List the built-in skin profiles merged with the profiles from the config file.",
	RunE:  runSkins,
}

func init() {
	rootCmd.AddCommand(skinsCmd)
	skinsCmd.Flags().Bool("ids", false, "Print only the skin identifiers")
}

func runSkins(cmd *cobra.Command, args []string) error {
	profiles := cfg.Registry().Profiles()

	if ids, _ := cmd.Flags().GetBool("ids"); ids {
		out := make([]string, 0, len(profiles))
		for _, p := range profiles {
			out = append(out, p.ID)
		}
		return output.Print(out)
	}

	if profiles == nil {
		profiles = []model.SkinProfile{}
	}
	return output.Print(profiles)
}
