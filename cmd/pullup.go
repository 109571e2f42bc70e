package cmd

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/mj1618/kodi-search/internal/model"
	"github.com/mj1618/kodi-search/internal/output"
	"github.com/mj1618/kodi-search/internal/search"
)

var pullupCmd = &cobra.Command{
	Use:   "pullup <title...>",
	Short: "Find a title in the library and show it",
	Long: `Look a title up in the Kodi video library and bring it on screen.

  one TV show      open the show's library page
  one movie        search for the movie's exact title
  several matches  search for the title as given
  no matches       nothing happens; the result says so

Like search, the command exits 0 once configuration is valid.`,
	Example: `  kodi-search pullup breaking bad
  kodi-search pullup --type movie dune`,
	Args: cobra.MinimumNArgs(1),
	RunE: runPullUp,
}

func init() {
	rootCmd.AddCommand(pullupCmd)
	pullupCmd.Flags().String("type", "all", "Library section to search: all, tv, movie")
}

func runPullUp(cmd *cobra.Command, args []string) error {
	query := strings.TrimSpace(strings.Join(args, " "))
	typeFlag, _ := cmd.Flags().GetString("type")
	media, err := model.ParseMediaType(typeFlag)
	if err != nil {
		return err
	}

	provider, err := connect(cfg)
	if err != nil {
		logger.WithError(err).Warn("skipping pull-up")
		return output.Print(search.PullUpResult{
			Action:    "pullup",
			Query:     query,
			MediaType: media,
			Outcome:   search.PulledUpFailed,
			Message:   "Kodi is not reachable",
		})
	}
	defer provider.Shutdown()

	res := newSearcher(cfg, provider).PullUp(cmd.Context(), query, media)
	return output.Print(res)
}
