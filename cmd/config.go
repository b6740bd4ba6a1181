package cmd

import (
	"github.com/inovacc/tickr/internal/application"
	"github.com/inovacc/tickr/internal/model"
	"github.com/spf13/cobra"
)

var (
	flagConfigPath  string
	flagLogFile     string
	flagLogLevel    string
	flagNoAltScreen bool
	flag24Hour      bool
	flagLight       bool
	flagLocale      string
)

func addDisplayFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().BoolVar(&flag24Hour, "24h", false, "Start in 24-hour format")
	cmd.PersistentFlags().BoolVar(&flagLight, "light", false, "Start with the light theme")
	cmd.PersistentFlags().StringVar(&flagLocale, "locale", "", "Locale for the long date (e.g. en, en-GB, fr, de, es)")
}

// loadConfig layers defaults, the INI file and explicitly set flags.
func loadConfig(cmd *cobra.Command) (model.Config, error) {
	path := flagConfigPath
	if path == "" {
		if p, err := application.DefaultConfigPath(); err == nil {
			path = p
		}
	}

	cfg, err := model.LoadConfig(path)
	if err != nil {
		return cfg, err
	}

	flags := cmd.Flags()

	if flags.Changed("24h") {
		cfg.Is24Hour = flag24Hour
	}

	if flags.Changed("light") {
		cfg.Theme = model.ThemeDark
		if flagLight {
			cfg.Theme = model.ThemeLight
		}
	}

	if flags.Changed("locale") {
		cfg.Locale = flagLocale
	}

	if flags.Changed("log-file") {
		cfg.LogFile = flagLogFile
	}

	if flags.Changed("log-level") {
		cfg.LogLevel = flagLogLevel
	}

	if flags.Changed("no-alt-screen") {
		cfg.AltScreen = !flagNoAltScreen
	}

	return cfg, nil
}
