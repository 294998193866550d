package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/opsdeck/opsdeck/config"
	"github.com/opsdeck/opsdeck/services"
	"github.com/opsdeck/opsdeck/storage"
)

var rootCmd = &cobra.Command{
	Use:   "opsdeck",
	Short: "Opsdeck CLI - embedded business-management data store",
	Long: `Opsdeck manages the client/project/task/user/timesheet collections of a
business-management dashboard without a server: collections live in a local
slot store (JSON files or a single SQLite file) and start from built-in demo
data when a slot is empty.

Examples:
  # List active clients sorted by name
  opsdeck clients list --filter status=Active --sort name

  # Create a task from a JSON payload
  opsdeck tasks create --data '{"title":"Ship telemetry feed","projectId":"f0a2c4e6-..."}'

  # Approve a timesheet
  opsdeck timesheets approve 8a0c2e4b-6d7f-4a93-b2ce-913d5f7a8c06`,
	SilenceUsage:       true,
	PersistentPreRunE:  setup,
	PersistentPostRunE: teardown,
}

var (
	flagDataDir  string
	flagBackend  string
	flagFormat   string
	flagLogLevel string
	flagLatency  time.Duration

	cfg          *config.Config
	svc          *services.Services
	dataBackend  storage.Backend
	closeBackend func() error
)

func init() {
	rootCmd.PersistentFlags().StringVar(&flagDataDir, "data-dir", "", "data directory (default from config)")
	rootCmd.PersistentFlags().StringVar(&flagBackend, "backend", "", "storage backend: file|sqlite|memory")
	rootCmd.PersistentFlags().StringVarP(&flagFormat, "format", "f", "", "output format: table|json|yaml")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "log level: debug|info|warn|error")
	rootCmd.PersistentFlags().DurationVar(&flagLatency, "latency", 0, "artificial per-operation delay")

	rootCmd.AddCommand(
		newClientsCmd(),
		newProjectsCmd(),
		newTasksCmd(),
		newUsersCmd(),
		newTimesheetsCmd(),
		newRolesCmd(),
		newSettingsCmd(),
		newSeedCmd(),
		newMigrateCmd(),
	)
}

func setup(cmd *cobra.Command, _ []string) error {
	var err error
	cfg, err = config.Load()
	if err != nil {
		return err
	}

	// Flags override config-file and environment values.
	if cmd.Flags().Changed("data-dir") {
		cfg.DataDir = flagDataDir
	}
	if cmd.Flags().Changed("backend") {
		cfg.Backend = flagBackend
	}
	if cmd.Flags().Changed("format") {
		cfg.Format = flagFormat
	}
	if cmd.Flags().Changed("log-level") {
		cfg.LogLevel = flagLogLevel
	}
	if cmd.Flags().Changed("latency") {
		cfg.Latency = flagLatency
	}

	if err := initLogging(cfg.LogLevel); err != nil {
		return err
	}

	backend, closer, err := openBackend(cfg)
	if err != nil {
		return err
	}
	dataBackend = backend
	closeBackend = closer
	svc = services.New(backend, services.WithLatency(cfg.Latency))
	return nil
}

func teardown(_ *cobra.Command, _ []string) error {
	if closeBackend != nil {
		return closeBackend()
	}
	return nil
}

func openBackend(cfg *config.Config) (storage.Backend, func() error, error) {
	switch cfg.Backend {
	case "memory":
		return storage.NewMemory(), nil, nil
	case "sqlite":
		if err := os.MkdirAll(cfg.DataDir, 0o755); err != nil {
			return nil, nil, fmt.Errorf("failed to create data directory: %w", err)
		}
		b, err := storage.NewSQLite(filepath.Join(cfg.DataDir, "opsdeck.db"))
		if err != nil {
			return nil, nil, err
		}
		return b, b.Close, nil
	case "file", "":
		b, err := storage.NewFile(cfg.DataDir)
		if err != nil {
			return nil, nil, err
		}
		return b, nil, nil
	default:
		return nil, nil, fmt.Errorf("unknown backend %q (want file, sqlite or memory)", cfg.Backend)
	}
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
