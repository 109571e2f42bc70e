package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mj1618/kodi-search/internal/config"
	"github.com/mj1618/kodi-search/internal/logging"
	"github.com/mj1618/kodi-search/internal/output"
	"github.com/mj1618/kodi-search/internal/version"
)

// Set by the root command before any subcommand runs.
var (
	cfg    *config.Config
	logger logging.Logger
)

var rootCmd = &cobra.Command{
	Use:   "kodi-search",
	Short: "Run skin-aware searches on a Kodi media center",
	Long: `Drive Kodi's search UI from a single search string: detect the active skin,
open its search window, wait for it, and leave focus on the results list.

Meant to be launched by a voice pipeline or home automation with the same
key=value parameters the addon receives, e.g.

  kodi-search search 'search=Breaking Bad'`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.Version = fmt.Sprintf("%s (commit: %s, built: %s)", version.Version, version.Commit, version.BuildDate)
	rootCmd.PersistentFlags().String("format", "yaml", "Output format: yaml, json")
	rootCmd.PersistentFlags().Bool("pretty", false, "Pretty-print JSON output")
	rootCmd.PersistentFlags().String("config", "", "Config file (default ~/.kodi-search/config.yaml)")
	rootCmd.PersistentFlags().String("host", "", "Kodi host, overrides config and KODI_HOST")
	rootCmd.PersistentFlags().String("log-level", "", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().String("log-format", "text", "Log format: text, json")
	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		format, _ := rootCmd.PersistentFlags().GetString("format")
		f, err := output.ParseFormat(format)
		if err != nil {
			return err
		}
		output.OutputFormat = f
		output.PrettyOutput, _ = rootCmd.PersistentFlags().GetBool("pretty")

		levelFlag, _ := rootCmd.PersistentFlags().GetString("log-level")
		logFormat, _ := rootCmd.PersistentFlags().GetString("log-format")
		level := levelFlag
		if level == "" {
			level = config.GetEnv("LOG_LEVEL", "info")
		}
		logger = logging.NewLogger(level, logFormat)
		config.LoadEnv(logger)

		path, _ := rootCmd.PersistentFlags().GetString("config")
		loaded, err := config.Load(path)
		if err != nil {
			return err
		}
		if host, _ := rootCmd.PersistentFlags().GetString("host"); host != "" {
			loaded.Kodi.Host = host
		}
		if levelFlag != "" {
			loaded.LogLevel = levelFlag
		}
		logger.SetLevel(logging.ParseLevel(loaded.LogLevel))
		cfg = loaded
		return nil
	}
}
