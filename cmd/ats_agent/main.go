// Package main provides the ats_agent command-line interface for scoring resumes.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jonathan/resume-ats/internal/ats"
	"github.com/jonathan/resume-ats/internal/config"
	"github.com/jonathan/resume-ats/internal/observability"
)

var rootCmd = &cobra.Command{
	Use:   "ats_agent",
	Short: "ATS resume scoring and suggestion engine",
	Long: "ats_agent scores structured resumes the way applicant tracking systems read them, " +
		"reports per-section results and keyword coverage, and suggests the highest-impact fixes.",
	SilenceUsage:       true,
	SilenceErrors:      true,
	PersistentPreRunE:  setup,
	PersistentPostRunE: teardown,
}

var (
	configPath  string
	verbose     bool
	logLevel    string
	metricsFile string
)

// Shared state built by setup for the running command
var (
	appCfg  *config.Config
	logger  *zap.Logger
	metrics *observability.Metrics
	engine  *ats.Engine
)

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to YAML or JSON config file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&metricsFile, "metrics-file", "", "Write Prometheus metrics to this textfile after the run")
}

// setup loads configuration, applies persistent flag overrides and builds the engine.
func setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("log-level") {
		cfg.LogLevel = logLevel
	}
	if verbose {
		cfg.LogLevel = "debug"
	}
	if cmd.Flags().Changed("metrics-file") {
		cfg.MetricsFile = metricsFile
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	log, err := observability.NewLogger(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		return err
	}

	appCfg = cfg
	logger = log
	metrics = observability.NewMetrics()
	engine = ats.New(
		ats.WithLogger(logger),
		ats.WithRecorder(metrics),
		ats.WithCacheSize(cfg.CacheSize),
	)
	return nil
}

// teardown persists metrics when configured.
func teardown(_ *cobra.Command, _ []string) error {
	defer func() { _ = logger.Sync() }()

	if appCfg.MetricsFile == "" {
		return nil
	}
	if err := metrics.WriteTextfile(appCfg.MetricsFile); err != nil {
		return err
	}
	hits, misses := engine.CacheStats()
	logger.Debug("Wrote metrics",
		zap.String("path", appCfg.MetricsFile),
		zap.Int("cache_hits", hits),
		zap.Int("cache_misses", misses),
	)
	return nil
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
