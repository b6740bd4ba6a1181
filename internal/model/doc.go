// Package model defines the configuration read at startup.
//
// # Config
//
// The [Config] struct holds the initial display preferences and logging
// destination:
//
//	type Config struct {
//	    Is24Hour  bool   // 24-hour clock instead of 12-hour with AM/PM
//	    Theme     Theme  // dark or light
//	    Locale    string // locale for the long date
//	    AltScreen bool   // use the terminal alternate screen
//	    LogFile   string // log destination, empty discards
//	    LogLevel  string // debug, info, warn, error
//	}
//
// Values come from [DefaultConfig], then an optional INI file via
// [LoadConfig], then command-line flags. Nothing is written back.
package model
