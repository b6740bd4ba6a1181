package cmd

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/inovacc/tickr/internal/application"
	"github.com/inovacc/tickr/internal/cli"
	"github.com/inovacc/tickr/internal/clock"
	"github.com/inovacc/tickr/internal/logging"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   application.AppName,
	Short: "A terminal clock and stopwatch",
	Long: `Tickr shows a live digital clock with the current date and a
stopwatch with lap recording.

Keys:
  space, s   start/pause the stopwatch
  l          record a lap while running
  r          reset the stopwatch
  h          toggle 12/24-hour clock
  t          toggle dark/light theme
  q          quit`,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE:         runClock,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// GetRootCmd returns the root command for introspection purposes.
func GetRootCmd() *cobra.Command {
	return rootCmd
}

func init() {
	addDisplayFlags(rootCmd)
	rootCmd.PersistentFlags().StringVar(&flagConfigPath, "config", "", "Path to the INI config file (default: <config dir>/tickr/config.ini)")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error")
	rootCmd.Flags().BoolVar(&flagNoAltScreen, "no-alt-screen", false, "Render inline instead of in the alternate screen")
}

func runClock(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	logger, closer, err := logging.New(cfg.LogFile, cfg.LogLevel)
	if err != nil {
		return err
	}

	defer func() { _ = closer.Close() }()

	logger.Info("starting", "version", application.Version, "24h", cfg.Is24Hour, "theme", cfg.Theme, "locale", cfg.Locale)

	m := cli.NewClockModel(cli.Options{
		Config: cfg,
		Clock:  clock.System(),
		Logger: logger,
	})

	opts := []tea.ProgramOption{
		tea.WithContext(cmd.Context()),
		tea.WithInput(cmd.InOrStdin()),
		tea.WithOutput(cmd.OutOrStdout()),
	}

	if cfg.AltScreen {
		opts = append(opts, tea.WithAltScreen())
	}

	if _, err := tea.NewProgram(m, opts...).Run(); err != nil {
		return fmt.Errorf("failed to run clock: %w", err)
	}

	logger.Info("stopped")

	return nil
}
