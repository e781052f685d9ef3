// Package main provides the entry point for the fuzzy-clock CLI tool.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sgaunet/bullets"
	"github.com/sgaunet/fuzzy-clock/internal/logger"
	"github.com/sgaunet/fuzzy-clock/internal/timeutil"
	"github.com/sgaunet/fuzzy-clock/internal/ui"
	"github.com/sgaunet/fuzzy-clock/pkg/config"
	"github.com/sgaunet/fuzzy-clock/pkg/fuzzyclock"
	"github.com/spf13/cobra"
)

var (
	logLevel      string
	resolution    int
	interactive   bool
	copyPhrase    bool
	noColor       bool
	watchInterval time.Duration
	log           *bullets.Logger
)

// now is swapped in tests.
var now = time.Now

var rootCmd = &cobra.Command{
	Use:   "fuzzy-clock [HH:MM]",
	Short: "Tell the time the way people say it",
	Long: `fuzzy-clock prints a clock time as a fuzzy phrase such as
"quarter past three" or "ten till noon". Without an argument the current
local time is used.`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if err := runFuzzyClock(cmd, args); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	},
}

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Keep printing the fuzzy time until interrupted",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, _ []string) {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		if err := runWatch(ctx, cmd); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&logLevel, "log-level", "l", "info",
		"Set log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().IntVarP(&resolution, "resolution", "r", 0,
		"Minute resolution (5, 10 or 15), overrides the config file")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")
	rootCmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "Choose the resolution interactively")
	rootCmd.Flags().BoolVarP(&copyPhrase, "copy", "c", false, "Copy the phrase to the clipboard")
	watchCmd.Flags().DurationVar(&watchInterval, "interval", 0,
		"Refresh interval, overrides the config file")
	rootCmd.AddCommand(watchCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func runFuzzyClock(cmd *cobra.Command, args []string) error {
	cfg, err := setup(cmd)
	if err != nil {
		return err
	}

	r := cfg.FuzzyResolution()
	if interactive {
		selector := ui.NewResolutionSelector()
		selector.SetLogger(log)
		if r, err = selector.SelectResolution(r); err != nil {
			return fmt.Errorf("failed to select resolution: %w", err)
		}
	}

	hour, minute, err := clockFromArgs(args)
	if err != nil {
		return err
	}

	phrase, err := render(hour, minute, r)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), ui.FormatPhrase(phrase))

	if copyPhrase || cfg.Copy {
		if err := ui.CopyToClipboard(phrase); err != nil {
			log.Warnf("Failed to copy phrase: %v", err)
		} else {
			log.Debug("Phrase copied to clipboard")
		}
	}
	return nil
}

func runWatch(ctx context.Context, cmd *cobra.Command) error {
	cfg, err := setup(cmd)
	if err != nil {
		return err
	}

	if cmd.Flags().Changed("interval") {
		cfg.Watch.Interval = watchInterval
		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("invalid --interval: %w", err)
		}
	}
	r := cfg.FuzzyResolution()

	t := now()
	phrase, err := render(t.Hour(), t.Minute(), r)
	if err != nil {
		return err
	}

	updatable := bullets.NewUpdatable(os.Stdout)
	handle := updatable.InfoHandle(ui.FormatPhrase(phrase))
	log.Debug("Watching every " + cfg.Watch.Interval.String())

	ticker := time.NewTicker(cfg.Watch.Interval)
	defer ticker.Stop()

	last, err := watchLoop(ctx, ticker.C, r, phrase, func(p string) {
		handle.Update(bullets.InfoLevel, ui.FormatPhrase(p))
	})
	if err != nil {
		return err
	}
	handle.Success(ui.FormatPhrase(last))
	return nil
}

// watchLoop re-renders the current time on every tick and calls show when the
// phrase changes. It returns the last phrase once ctx is done.
func watchLoop(
	ctx context.Context,
	ticks <-chan time.Time,
	r fuzzyclock.Resolution,
	phrase string,
	show func(string),
) (string, error) {
	for {
		select {
		case <-ctx.Done():
			return phrase, nil
		case <-ticks:
			t := now()
			next, err := render(t.Hour(), t.Minute(), r)
			if err != nil {
				return phrase, err
			}
			if next != phrase {
				phrase = next
				show(phrase)
			}
		}
	}
}

// setup initializes logging and color, then loads the configuration with
// command line overrides applied.
func setup(cmd *cobra.Command) (*config.Config, error) {
	log = logger.NewLogger(logLevel)

	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	log.Debug("Configuration loaded successfully")

	if cmd.Flags().Changed("resolution") {
		r, err := fuzzyclock.ParseResolution(resolution)
		if err != nil {
			return nil, fmt.Errorf("invalid --resolution: %w", err)
		}
		cfg.Resolution = int(r)
	}

	if noColor || !cfg.Color {
		ui.DisableColor()
	}
	return cfg, nil
}

func clockFromArgs(args []string) (int, int, error) {
	if len(args) == 0 {
		t := now()
		return t.Hour(), t.Minute(), nil
	}
	hour, minute, err := timeutil.ParseClock(args[0])
	if err != nil {
		return 0, 0, fmt.Errorf("failed to parse time: %w", err)
	}
	return hour, minute, nil
}

func render(hour, minute int, r fuzzyclock.Resolution) (string, error) {
	phrase, err := fuzzyclock.ToFuzzyTime(hour, minute, r)
	if err != nil {
		return "", fmt.Errorf("failed to render fuzzy time: %w", err)
	}
	log.Debug(fmt.Sprintf("%s at %s-minute resolution: %s", timeutil.FormatClock(hour, minute), r, phrase))
	return phrase, nil
}
