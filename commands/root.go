// Package commands wires the tasktally CLI: reports over the interval log,
// activity and log management, and a live watch mode.
package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/penwyp/tasktally/internal/config"
	"github.com/penwyp/tasktally/internal/report"
	"github.com/penwyp/tasktally/internal/store"
	"github.com/penwyp/tasktally/internal/util"
)

var (
	// Configuration sources
	cfgFile  string
	dbPath   string
	timezone string

	// Logging related
	debug bool

	rootCmd = &cobra.Command{
		Use:   "tasktally",
		Short: "Personal productivity time log",
		Long: `tasktally keeps a persisted log of activity intervals, categorized by
task, and reports daily, weekly, and monthly totals over it.

Examples:
  tasktally activity add writing "deep work"   # register an activity
  tasktally log add --activity writing --minutes 45
  tasktally report --grain daily               # day-by-day totals
  tasktally report --grain weekly --output csv
  tasktally chart --days 7                     # hour buckets for the last week
  tasktally watch                              # live-refreshing daily report`,
		SilenceUsage: true,
	}
)

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "",
		"Config file path (default: ./tasktally.yaml, ~/.config/tasktally/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "",
		"Database file path (overrides config)")
	rootCmd.PersistentFlags().StringVar(&timezone, "timezone", "",
		"Timezone for date bucketing (e.g., UTC, Europe/London; overrides config)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false,
		"Enable debug mode")
}

// setup loads configuration and initializes logging and the time provider.
func setup() (*config.Config, error) {
	cfg, err := config.NewLoader(cfgFile).Load()
	if err != nil {
		return nil, err
	}

	if dbPath != "" {
		cfg.Storage.DBPath = dbPath
	}
	if timezone != "" {
		cfg.Timezone = timezone
	}

	logLevel := cfg.Logging.Level
	if debug {
		logLevel = "debug"
	}
	if cfg.Logging.File != "" {
		ensureDir(filepath.Dir(cfg.Logging.File))
	}
	util.InitLogger(logLevel, cfg.Logging.File, debug)

	if err := util.InitializeTimeProvider(cfg.Timezone); err != nil {
		return nil, err
	}
	return cfg, nil
}

// withEngine opens the store, runs fn with an engine over it, and closes the
// store afterwards.
func withEngine(fn func(*report.Engine, store.Store) error) error {
	cfg, err := setup()
	if err != nil {
		return err
	}

	st, err := store.Open(cfg.Storage.DBPath)
	if err != nil {
		return err
	}
	defer st.Close()

	return fn(report.New(st, util.GetTimeProvider()), st)
}

// withStore opens the store and runs fn against it.
func withStore(fn func(store.Store) error) error {
	cfg, err := setup()
	if err != nil {
		return err
	}

	st, err := store.Open(cfg.Storage.DBPath)
	if err != nil {
		return err
	}
	defer st.Close()

	return fn(st)
}

func ensureDir(dir string) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to create directory %s: %v\n", dir, err)
	}
}
