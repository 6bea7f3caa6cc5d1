// Package cli implements the hippotools command line interface.
package cli

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/Braden-Griebel/hippotools/internal/config"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string
)

var (
	flagConfig   string
	flagLogLevel string

	log zerolog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "hippotools",
	Short: "Constraint-based metabolic modeling toolkit",
	Long: `hippotools analyzes genome-scale metabolic models: flux balance
analysis and variants, expression-integrated (iMAT) context-specific
models, flux sampling, enumeration of alternative optima, and consensus
gene essentiality.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := config.Load(flagConfig); err != nil {
			return err
		}

		level := config.LogLevel()
		if cmd.Flags().Changed("log-level") {
			level = flagLogLevel
		}
		parsed, err := zerolog.ParseLevel(level)
		if err != nil {
			return err
		}
		log = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
			Level(parsed).
			With().Timestamp().Logger()

		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to YAML config file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level (trace, debug, info, warn, error)")
}

// Execute runs the root command with build info injected via ldflags.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date

	if err := rootCmd.Execute(); err != nil {
		log.Error().Err(err).Msg("command failed")
		return err
	}

	return nil
}
