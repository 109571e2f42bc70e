package cmd

import (
	"errors"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/mj1618/kodi-search/internal/model"
	"github.com/mj1618/kodi-search/internal/output"
	"github.com/mj1618/kodi-search/internal/search"
)

var searchCmd = &cobra.Command{
	Use:   "search [key=value...]",
	Short: "Run a search and focus the results",
	Long: `Run a search on the connected Kodi using the active skin's profile.

Arguments are key=value tokens separated by '&' or '|||' (use '|||' when the
query itself contains '&'). Recognised keys:

  search=<text>            the query (required; without it nothing happens)
  method=<name>            skin_specific, default, or global_search
  window=<id>              override the profile's search window
  property=<name>,<value>  extra Home window property set before searching

The command always exits 0 once configuration is valid; failures are logged
and described in the printed report.

Examples:
  kodi-search search 'search=Breaking Bad'
  kodi-search search 'search=Tom & Jerry|||method=global'
  kodi-search search --query "The Office" --lock`,
	RunE: runSearch,
}

func init() {
	rootCmd.AddCommand(searchCmd)
	searchCmd.Flags().String("query", "", "Search text (alternative to search=<text>)")
	searchCmd.Flags().String("method", "", "Search method for this run: skin_specific, default, global_search")
	searchCmd.Flags().String("window", "", "Override the profile's search window")
	searchCmd.Flags().Bool("lock", false, "Serialise with other searches on this machine")
	searchCmd.Flags().Int("lock-timeout", 10000, "Max milliseconds to wait for the search lock")
}

func runSearch(cmd *cobra.Command, args []string) error {
	params, err := model.ParseParams(args)
	if q, _ := cmd.Flags().GetString("query"); strings.TrimSpace(q) != "" {
		params.Query = strings.TrimSpace(q)
		err = nil
	}
	if errors.Is(err, model.ErrNoQuery) {
		logger.Info("no search parameter; nothing to do")
		return output.Print(search.Report{OK: true, Action: "search"})
	}
	if m, _ := cmd.Flags().GetString("method"); m != "" {
		params.Method = m
	}
	if w, _ := cmd.Flags().GetString("window"); w != "" {
		params.Window = w
	}

	if useLock, _ := cmd.Flags().GetBool("lock"); useLock {
		timeoutMs, _ := cmd.Flags().GetInt("lock-timeout")
		lockPath, err := searchLockPath()
		if err != nil {
			return err
		}
		unlock, err := acquireSearchLock(lockPath, time.Duration(timeoutMs)*time.Millisecond)
		if err != nil {
			logger.WithError(err).Warn("skipping search")
			return output.Print(search.Report{Action: "search", Query: params.Query})
		}
		defer unlock()
	}

	provider, err := connect(cfg)
	if err != nil {
		logger.WithError(err).Warn("skipping search")
		return output.Print(search.Report{Action: "search", Query: params.Query})
	}
	defer provider.Shutdown()

	report := newSearcher(cfg, provider).Search(cmd.Context(), params)
	return output.Print(report)
}
