package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/pders01/tmr/internal/config"
	"github.com/pders01/tmr/internal/debuglog"
	"github.com/pders01/tmr/internal/storage"
	"github.com/pders01/tmr/internal/tui"
	"github.com/pders01/tmr/internal/validation"
)

// Version is the version of the application, set at build time
var Version = "dev"

var (
	configPath string
	statePath  string
	logLevel   string
	quiet      bool
	noRestore  bool
)

var rootCmd = &cobra.Command{
	Use:           "tmr",
	Short:         "Countdown timer for the terminal",
	Long:          "tmr is a countdown timer: add time with preset keys, start, pause and reset it.",
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTUI()
	},
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&configPath, "config", "", "Path to configuration file")
	flags.StringVar(&statePath, "state", "", "Path to state database (overrides config)")
	flags.StringVar(&logLevel, "log-level", "", "Log level: debug, info, warn, error, off (overrides config)")
	rootCmd.Flags().BoolVar(&quiet, "quiet", false, "Skip startup banner")
	rootCmd.Flags().BoolVar(&noRestore, "no-restore", false, "Start from zero instead of the saved timer")

	rootCmd.AddCommand(versionCmd, countCmd, configCmd, stateCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// loadConfig reads the config file and applies command-line overrides.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	if statePath != "" {
		cfg.State.Path = statePath
	}
	if logLevel != "" {
		cfg.Log.Level = logLevel
	}
	return cfg, nil
}

func setupLogging(cfg *config.Config) error {
	level := debuglog.ParseLogLevel(cfg.Log.Level)
	if err := debuglog.Setup(level, cfg.Log.Path); err != nil {
		return fmt.Errorf("setting up logging: %w", err)
	}
	return nil
}

func openStore(cfg *config.Config) (*storage.Store, error) {
	path, err := validation.PrepareFilePath(cfg.State.Path)
	if err != nil {
		return nil, fmt.Errorf("state path: %w", err)
	}
	store, err := storage.NewStore(path, cfg.State.Timeout)
	if err != nil {
		return nil, fmt.Errorf("opening state: %w", err)
	}
	return store, nil
}

func runTUI() error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if noRestore {
		cfg.State.Restore = false
	}
	if err := setupLogging(cfg); err != nil {
		return err
	}
	defer debuglog.Close()

	if !quiet {
		tui.ShowBanner(Version)
	}

	store, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer store.Close()

	debuglog.WithFields(map[string]interface{}{
		"state":   store.Path(),
		"version": Version,
	}).Infof("starting")

	app := tui.NewApp(store, cfg)
	p := tea.NewProgram(app, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return err
	}
	return nil
}
