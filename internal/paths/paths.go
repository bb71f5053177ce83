package paths

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
)

// AppName names the config subdirectory.
const AppName = "koagen"

// ConfigFileName is the base name of the config file.
const ConfigFileName = "config.yaml"

// EnvConfigDir overrides the config directory when set.
const EnvConfigDir = "KOAGEN_CONFIG_DIR"

// ConfigHome returns the XDG config home directory.
// On Linux: ~/.config
// On macOS: ~/Library/Application Support
// On Windows: %LOCALAPPDATA%
func ConfigHome() string {
	return xdg.ConfigHome
}

// ConfigDir returns the directory holding koagen's config file.
// KOAGEN_CONFIG_DIR takes precedence over <ConfigHome>/koagen.
func ConfigDir() string {
	if dir := os.Getenv(EnvConfigDir); dir != "" {
		return dir
	}
	return filepath.Join(ConfigHome(), AppName)
}

// ConfigFile returns the default config file path.
func ConfigFile() string {
	return filepath.Join(ConfigDir(), ConfigFileName)
}
