package config

import (
	"github.com/spf13/viper"

	"github.com/thoreinstein/koagen/internal/errors"
	"github.com/thoreinstein/koagen/internal/paths"
)

// Stub policies for README.md and .npmrc.
const (
	StubPolicyEmpty  = "empty"
	StubPolicyFilled = "filled"
)

// CurrentVersion is the only supported config schema version.
const CurrentVersion = 1

// Config represents the top-level configuration structure.
type Config struct {
	Version    int    `mapstructure:"version" yaml:"version" json:"version" toml:"version"`
	StubPolicy string `mapstructure:"stub_policy" yaml:"stub_policy" json:"stub_policy" toml:"stub_policy"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		Version:    CurrentVersion,
		StubPolicy: StubPolicyEmpty,
	}
}

// Init resets Viper and registers search paths, env binding and defaults.
// Call it once at startup before Load.
func Init() {
	viper.Reset()

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	viper.AddConfigPath(".")
	viper.AddConfigPath(paths.ConfigDir())

	viper.SetEnvPrefix("KOAGEN")
	viper.AutomaticEnv()

	def := Default()
	viper.SetDefault("version", def.Version)
	viper.SetDefault("stub_policy", def.StubPolicy)
}

// Load reads the configuration file and validates the result.
// An empty path searches the default locations and falls back to defaults
// when nothing is found; an explicit path must exist.
func Load(path string) (*Config, error) {
	if path != "" {
		viper.SetConfigFile(path)
	}

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		switch {
		case errors.As(err, &notFound) && path == "":
			// defaults apply
		case errors.As(err, &notFound):
			return nil, errors.Wrapf(err, "config file not found at %s", path)
		default:
			return nil, errors.Wrap(err, "reading config file")
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "unmarshaling config")
	}

	if errs := Validate(&cfg); len(errs) > 0 {
		return nil, errors.Wrap(errs[0], "validating config")
	}

	return &cfg, nil
}

// Set overrides a key for the remainder of the process, taking precedence
// over file and environment values. Used for flag overrides.
func Set(key string, value any) {
	viper.Set(key, value)
}

// FileUsed returns the config file Viper loaded, or "" if none.
func FileUsed() string {
	return viper.ConfigFileUsed()
}
