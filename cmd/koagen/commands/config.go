package commands

import (
	"encoding/json"
	"fmt"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/thoreinstein/koagen/internal/config"
	"github.com/thoreinstein/koagen/internal/errors"
	"github.com/thoreinstein/koagen/internal/paths"
	"github.com/thoreinstein/koagen/pkg/fileutil"
)

var (
	configShowFormat string
	configInitForce  bool
)

func init() {
	configShowCmd.Flags().StringVarP(&configShowFormat, "format", "f", "yaml", "output format: yaml, json, toml")
	configInitCmd.Flags().BoolVar(&configInitForce, "force", false, "overwrite an existing config file")

	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configPathCmd)
	rootCmd.AddCommand(configCmd)
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage koagen configuration",
	Long: `Manage koagen's own configuration, stored in
$XDG_CONFIG_HOME/koagen/config.yaml.

Without a subcommand, shows the effective configuration.`,
	Example: `  koagen config
  koagen config show --format toml
  koagen config init
  koagen config path`,
	Args: cobra.NoArgs,
	RunE: runConfigShow,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration",
	Long:  `Print the configuration after defaults, file, environment and flags are applied.`,
	Args:  cobra.NoArgs,
	RunE:  runConfigShow,
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a default config file",
	Long: `Write a config file holding the default values to the koagen config
directory. Refuses to overwrite an existing file unless --force is given.`,
	Args: cobra.NoArgs,
	RunE: runConfigInit,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the config file location",
	Args:  cobra.NoArgs,
	RunE:  runConfigPath,
}

func runConfigShow(cmd *cobra.Command, _ []string) error {
	data, err := renderConfig(loadedCfg, configShowFormat)
	if err != nil {
		return err
	}
	_, err = cmd.OutOrStdout().Write(data)
	return err
}

func renderConfig(cfg *config.Config, format string) ([]byte, error) {
	switch format {
	case "yaml":
		data, err := yaml.Marshal(cfg)
		return data, errors.Wrap(err, "marshaling YAML")
	case "json":
		data, err := json.MarshalIndent(cfg, "", "  ")
		if err != nil {
			return nil, errors.Wrap(err, "marshaling JSON")
		}
		return append(data, '\n'), nil
	case "toml":
		data, err := toml.Marshal(cfg)
		return data, errors.Wrap(err, "marshaling TOML")
	}
	return nil, errors.NewUserError(
		errors.Wrapf(errors.ErrInvalidArgument, "unknown format %q", format),
		"Use --format yaml, json or toml",
	)
}

func runConfigInit(cmd *cobra.Command, _ []string) error {
	path := configFile
	if path == "" {
		path = paths.ConfigFile()
	}

	exists, err := afero.Exists(appFs, path)
	if err != nil {
		return errors.NewSystemError(errors.Wrapf(err, "checking %s", path), "")
	}
	if exists && !configInitForce {
		return errors.NewUserError(errors.Newf("config file already exists at %s", path), "Use --force to overwrite")
	}

	if err := appFs.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return errors.NewSystemError(errors.Wrap(err, "creating config directory"), "")
	}
	if err := fileutil.AtomicWriteYAML(appFs, path, config.Default(), 0o644); err != nil {
		return errors.NewSystemError(errors.Wrap(err, "writing config file"), "")
	}

	if !quiet {
		fmt.Fprintf(cmd.OutOrStdout(), "Created %s\n", path)
	}
	return nil
}

func runConfigPath(cmd *cobra.Command, _ []string) error {
	path := config.FileUsed()
	if path == "" {
		path = paths.ConfigFile()
	}
	fmt.Fprintln(cmd.OutOrStdout(), path)
	return nil
}
