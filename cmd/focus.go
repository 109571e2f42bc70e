package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/mj1618/kodi-search/internal/output"
	"github.com/mj1618/kodi-search/internal/search"
)

var focusCmd = &cobra.Command{
	Use:   "focus",
	Short: "Move focus to a control in the active Kodi window",
	Long:  "Send SetFocus to a control, retrying a bounded number of times and optionally trying an alternate control once.",
	RunE:  runFocus,
}

func init() {
	rootCmd.AddCommand(focusCmd)
	focusCmd.Flags().String("control", "", "Control id to focus")
	focusCmd.Flags().String("alternate", "", "Control id tried once after the retries fail")
	focusCmd.Flags().Int("attempts", 0, "Attempts on the primary control (default: timings.focus_attempts)")
	focusCmd.Flags().Int("pause", -1, "Milliseconds between a focus command and its check (default: timings.focus_pause_ms)")
}

func runFocus(cmd *cobra.Command, args []string) error {
	control, _ := cmd.Flags().GetString("control")
	alternate, _ := cmd.Flags().GetString("alternate")
	attempts, _ := cmd.Flags().GetInt("attempts")
	pauseMs, _ := cmd.Flags().GetInt("pause")

	if control == "" {
		return fmt.Errorf("specify --control")
	}
	if attempts <= 0 {
		attempts = cfg.Timings.FocusAttempts
	}
	pause := cfg.Timings.FocusPause()
	if pauseMs >= 0 {
		pause = time.Duration(pauseMs) * time.Millisecond
	}

	provider, err := connect(cfg)
	if err != nil {
		return err
	}
	defer provider.Shutdown()

	f := search.NewFocusAcquirer(provider.Commander, provider.Inspector, nil, pause, logger)
	res := f.Focus(cmd.Context(), control, alternate, attempts)
	if !res.OK {
		_ = output.Print(res)
		return fmt.Errorf("could not focus control %s", control)
	}
	return output.Print(res)
}
