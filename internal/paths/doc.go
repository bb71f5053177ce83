// Package paths resolves the locations koagen reads its own configuration
// from. It wraps github.com/adrg/xdg so the config directory follows the XDG
// Base Directory conventions on Linux and the platform equivalents on macOS
// and Windows.
//
//	paths.ConfigDir()  // ~/.config/koagen
//	paths.ConfigFile() // ~/.config/koagen/config.yaml
package paths
