// Package cmd implements the CLI commands for the hela-notan server.
package cmd

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/donaldgifford/hela-notan/internal/config"
	"github.com/donaldgifford/hela-notan/pkg/logger"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:           "hela-notan",
	Short:         "Used-car listing explorer with price regression and TCO",
	Long:          "An API-first service that ranks used-car listings against per-model price regressions, classifies deals, and estimates total cost of ownership.",
	SilenceUsage:  true,
	SilenceErrors: false,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "config.yaml", "config file path")
	rootCmd.AddCommand(versionCommand())
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// loadConfig reads the config file and builds the process logger from it.
func loadConfig() (*config.Config, *slog.Logger, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, nil, fmt.Errorf("loading config: %w", err)
	}

	log := logger.New(cfg.Logging.Level, cfg.Logging.Format)
	slog.SetDefault(log)
	return cfg, log, nil
}
