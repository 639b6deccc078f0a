package cmd

import (
	"context"
	"log/slog"

	"github.com/spf13/cobra"

	"AccidentAtlas/internal/config"
	"AccidentAtlas/internal/logging"
	"AccidentAtlas/pkg/logger"
)

var (
	configPath string
	logLevel   string
)

var rootCmd = &cobra.Command{
	Use:   "accidentatlas",
	Short: "Reconciles department boundaries with workplace-accident mortality statistics",
	Long: `accidentatlas joins a department boundary feature collection to a
workplace-accident mortality table. It normalizes the two name columns
into a canonical key, aggregates deaths per department, joins the sources,
and publishes the joined dataset and a summary report for rendering
consumers.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the CLI with the given context.
func Execute(ctx context.Context) error {
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		logger.New("accidentatlas").Printf("error: %v", err)
		return err
	}
	return nil
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to YAML configuration")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "override log level (debug, info, warn, error)")
}

func loadConfig() config.Config {
	var cfg config.Config
	if configPath != "" {
		cfg = config.LoadPath(configPath)
	} else {
		cfg = config.Load()
	}
	if logLevel != "" {
		cfg.Logging.Level = logLevel
	}
	return cfg
}

func newLogger(cfg config.Config) *slog.Logger {
	return logging.New(cfg.Logging.Level, cfg.Logging.Format)
}
