package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/mj1618/kodi-search/internal/output"
	"github.com/mj1618/kodi-search/internal/search"
)

var waitCmd = &cobra.Command{
	Use:   "wait",
	Short: "Wait for a Kodi condition to be met",
	Long:  "Poll a boolean Kodi info expression until it is true or the timeout is reached.",
	Example: `  kodi-search wait --for 'Window.IsVisible(11185)'
  kodi-search wait --for 'Control.HasFocus(5000)' --timeout 2000 --interval 50`,
	RunE: runWait,
}

func init() {
	rootCmd.AddCommand(waitCmd)
	waitCmd.Flags().String("for", "", "Info expression to wait for, e.g. Window.IsVisible(10025)")
	waitCmd.Flags().Int("timeout", 0, "Max milliseconds to wait (default: timings.ready_timeout_ms)")
	waitCmd.Flags().Int("interval", 0, "Polling interval in milliseconds (default: timings.poll_interval_ms)")
}

func runWait(cmd *cobra.Command, args []string) error {
	expr, _ := cmd.Flags().GetString("for")
	if expr == "" {
		return fmt.Errorf("specify a condition with --for")
	}

	timeout := cfg.Timings.ReadyTimeout()
	if ms, _ := cmd.Flags().GetInt("timeout"); ms > 0 {
		timeout = time.Duration(ms) * time.Millisecond
	}
	interval := cfg.Timings.PollInterval()
	if ms, _ := cmd.Flags().GetInt("interval"); ms > 0 {
		interval = time.Duration(ms) * time.Millisecond
	}

	provider, err := connect(cfg)
	if err != nil {
		return err
	}
	defer provider.Shutdown()

	w := search.NewWaiter(provider.Inspector, nil, logger)
	res := w.Wait(cmd.Context(), expr, timeout, interval)
	if !res.OK {
		// Print the result, then return an error for non-zero exit code
		_ = output.Print(res)
		return fmt.Errorf("timed out waiting for condition: %s", expr)
	}
	return output.Print(res)
}
