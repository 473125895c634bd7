// Package cli wires the hancore subcommands.
package cli

import (
	"github.com/spf13/cobra"

	"hancore/internal/config"
	"hancore/internal/logger"
)

var (
	flagConfig string
	flagLayout string
)

var rootCmd = &cobra.Command{
	Use:   "hancore",
	Short: "Korean text-processing core: Hangul codec and IME",
	Long: `hancore is a Korean text-processing toolbox built on the hancore
composition engine. It decomposes and recomposes Hangul text and drives
an interactive terminal IME for the Dubeolsik and Sebeolsik 390 layouts.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "path to an INI config file")
}

// Execute runs the command tree.
func Execute() error {
	return rootCmd.Execute()
}

func resolveConfig(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.Resolve(flagConfig)
	if err != nil {
		return cfg, err
	}
	if flagLayout != "" && cmd.Flags().Changed("layout") {
		cfg.Layout = flagLayout
	}
	logger.Init(cfg.LogLevel)
	return cfg, nil
}
