package application

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sync"
)

const (
	// AppName is the application name used for directories and identification
	AppName = "tickr"

	// ConfigFileName is the optional INI file read from the application directory
	ConfigFileName = "config.ini"
)

// Version is overridden at build time with -ldflags "-X ...application.Version=..."
var Version = "0.1.0"

var (
	once   sync.Once
	appDir string
	errDir error
)

// GetApplicationDirectory returns the tickr configuration directory path.
// Linux: ~/.config/tickr (via os.UserConfigDir)
// Windows: C:\Users\{username}\AppData\Local\tickr (via os.UserCacheDir)
func GetApplicationDirectory() (string, error) {
	once.Do(lazyLoad)

	if errDir != nil {
		return "", errDir
	}

	return appDir, nil
}

// DefaultConfigPath returns the path of the config file inside the application directory.
func DefaultConfigPath() (string, error) {
	dir, err := GetApplicationDirectory()
	if err != nil {
		return "", err
	}

	return filepath.Join(dir, ConfigFileName), nil
}

func lazyLoad() {
	var (
		baseDir string
		err     error
	)

	switch runtime.GOOS {
	case "windows":
		baseDir, err = os.UserCacheDir()
	default:
		baseDir, err = os.UserConfigDir()
	}

	if err != nil {
		errDir = fmt.Errorf("failed to get config directory: %w", err)
		return
	}

	appDir = filepath.Join(baseDir, AppName)
}
