package main

import (
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"

	"github.com/pders01/tmr/internal/config"
	"github.com/pders01/tmr/internal/debuglog"
	"github.com/pders01/tmr/internal/headless"
	"github.com/pders01/tmr/internal/storage"
	"github.com/pders01/tmr/internal/timer"
	"github.com/pders01/tmr/internal/validation"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("tmr %s\n", Version)
		fmt.Println("Countdown timer")
		fmt.Println("github.com/pders01/tmr")
	},
}

var (
	countInterval time.Duration
	countLines    bool
)

var countCmd = &cobra.Command{
	Use:   "count DURATION...",
	Short: "Count down without the interactive screen",
	Long: `Count down the sum of the given durations, printing the clock as it runs.
Durations use Go syntax (90s, 1m30s, 2h); a bare number is seconds.`,
	Example: "  tmr count 5m\n  tmr count 30 30 1m",
	Args:    cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		durations, err := validation.ParseDurations(args)
		if err != nil {
			return err
		}
		if err := validation.ValidateInterval(countInterval); err != nil {
			return fmt.Errorf("interval: %w", err)
		}

		cfg, err := loadConfig()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if err := setupLogging(cfg); err != nil {
			return err
		}
		defer debuglog.Close()

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		runner := headless.NewRunner(timer.NewEngine(), cmd.OutOrStdout(), headless.Options{
			Interval: countInterval,
			Inline:   !countLines,
		})
		finished, err := runner.Run(ctx, durations...)
		if err != nil {
			return err
		}
		if !finished {
			return errors.New("interrupted")
		}
		return nil
	},
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage configuration",
}

var configGenCmd = &cobra.Command{
	Use:   "generate",
	Short: "Write the default configuration file",
	Run: func(cmd *cobra.Command, args []string) {
		path := configPath
		if path == "" {
			path = config.DefaultConfigPath()
		}
		if err := config.GenerateDefaultConfig(path); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to generate config: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Generated default configuration at: %s\n", path)
	},
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration as TOML",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		out, err := toml.Marshal(config.Document(cfg))
		if err != nil {
			return fmt.Errorf("encoding config: %w", err)
		}
		_, err = cmd.OutOrStdout().Write(out)
		return err
	},
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the configuration file location",
	Run: func(cmd *cobra.Command, args []string) {
		path := configPath
		if path == "" {
			path = config.DefaultConfigPath()
		}
		fmt.Fprintln(cmd.OutOrStdout(), path)
	},
}

var stateCmd = &cobra.Command{
	Use:   "state",
	Short: "Inspect or clear the saved timer",
}

var stateShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the saved timer and recent sessions",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		store, err := openStore(cfg)
		if err != nil {
			return err
		}
		defer store.Close()
		return printState(cmd, store, cfg.State.HistoryLimit)
	},
}

var keepHistory bool

var stateClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Forget the saved timer and session history",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		store, err := openStore(cfg)
		if err != nil {
			return err
		}
		defer store.Close()

		if err := store.ClearSnapshot(); err != nil {
			return err
		}
		if !keepHistory {
			if err := store.ClearSessions(); err != nil {
				return err
			}
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Cleared saved state.")
		return nil
	},
}

func init() {
	countCmd.Flags().DurationVar(&countInterval, "interval", 100*time.Millisecond, "Redraw interval")
	countCmd.Flags().BoolVar(&countLines, "lines", false, "Print one line per change instead of rewriting one line")
	stateClearCmd.Flags().BoolVar(&keepHistory, "keep-history", false, "Only clear the saved timer")

	configCmd.AddCommand(configGenCmd, configShowCmd, configPathCmd)
	stateCmd.AddCommand(stateShowCmd, stateClearCmd)
}

// printState writes the saved snapshot followed by up to limit sessions.
func printState(cmd *cobra.Command, store *storage.Store, limit int) error {
	out := cmd.OutOrStdout()

	snap, err := store.LoadSnapshot()
	switch {
	case errors.Is(err, storage.ErrNotFound):
		fmt.Fprintln(out, "No saved timer.")
	case err != nil:
		return err
	default:
		status := "paused"
		if snap.Running {
			status = "running"
		}
		remaining := timer.Project(time.Duration(snap.RemainingMillis) * time.Millisecond)
		fmt.Fprintf(out, "Saved timer: %s (%s), saved %s\n",
			remaining, status, snap.SavedAt.Local().Format(time.DateTime))
	}

	sessions, err := store.RecentSessions(limit)
	if err != nil {
		return err
	}
	if len(sessions) == 0 {
		return nil
	}
	fmt.Fprintln(out, "\nRecent sessions:")
	for _, s := range sessions {
		fmt.Fprintf(out, "  %s  counted %s  left %s  %s\n",
			s.EndedAt.Local().Format(time.DateTime),
			timer.Project(time.Duration(s.CountedMS())*time.Millisecond),
			timer.Project(time.Duration(s.EndRemainingMS)*time.Millisecond),
			s.Reason)
	}
	return nil
}
