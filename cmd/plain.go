package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/inovacc/tickr/internal/cli"
	"github.com/inovacc/tickr/internal/clock"
	"github.com/inovacc/tickr/internal/format"
	"github.com/inovacc/tickr/internal/logging"
	"github.com/spf13/cobra"
)

var (
	plainCount    int
	plainInterval = cli.ClockInterval
	plainClock    = clock.System()
)

func init() {
	rootCmd.AddCommand(plainCmd)

	plainCmd.Flags().IntVarP(&plainCount, "count", "n", 0, "Stop after printing this many lines (0 runs until interrupted)")
}

var plainCmd = &cobra.Command{
	Use:   "plain",
	Short: "Print the clock line by line without the interactive view",
	Long: `Print the current time and date once per second to stdout.
Useful when no terminal is attached or for piping into other tools.

Examples:
  tickr plain              # Print until Ctrl+C
  tickr plain -n 1 --24h   # Print a single 24-hour line`,
	Args: cobra.NoArgs,
	RunE: runPlain,
}

func runPlain(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	logger, closer, err := logging.New(cfg.LogFile, cfg.LogLevel)
	if err != nil {
		return err
	}

	defer func() { _ = closer.Close() }()

	parent := cmd.Context()
	if parent == nil {
		parent = context.Background()
	}

	ctx, stop := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
	defer stop()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	out := cmd.OutOrStdout()
	printed := 0

	printLine := func(now time.Time) {
		if plainCount > 0 && printed >= plainCount {
			return
		}

		_, _ = fmt.Fprintf(out, "%s  %s\n", format.Clock(now, cfg.Is24Hour), format.DateIn(now, cfg.Locale))

		printed++
		if plainCount > 0 && printed >= plainCount {
			cancel()
		}
	}

	printLine(plainClock.Now())

	if ctx.Err() != nil {
		return nil
	}

	ticker := clock.NewTicker(ctx, plainInterval, func(time.Time) {
		printLine(plainClock.Now())
	})

	<-ticker.Done()
	logger.Debug("plain output stopped", "lines", printed)

	return nil
}
