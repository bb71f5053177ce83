// Package commands implements the CLI commands for koagen.
package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/thoreinstein/koagen/cmd"
	"github.com/thoreinstein/koagen/internal/config"
	"github.com/thoreinstein/koagen/internal/errors"
	"github.com/thoreinstein/koagen/internal/logging"
)

// appFs is the filesystem every command works against. Tests swap it.
var appFs afero.Fs = afero.NewOsFs()

var (
	configFile  string
	stubPolicy  string
	verbosity   int
	quiet       bool
	logFormat   string
	logFile     string
	loadedCfg   *config.Config
	logFileSink io.Closer
)

func init() {
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "",
		"config file (default: $XDG_CONFIG_HOME/koagen/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&stubPolicy, "stub-policy", "",
		`README.md/.npmrc content: "empty" or "filled" (overrides config)`)
	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v",
		"increase verbosity level (e.g., -v, -vv)")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false,
		"suppress non-error output")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "text",
		"log format: text, json")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "",
		"also write logs to file in JSON format")

	rootCmd.Version = cmd.Version
	rootCmd.SetVersionTemplate(fmt.Sprintf("koagen version {{.Version}}\n  commit: %s\n  built:  %s\n", cmd.Commit, cmd.Date))

	// Silence errors and usage so main controls error output
	rootCmd.SilenceErrors = true
	rootCmd.SilenceUsage = true
}

var rootCmd = &cobra.Command{
	Use:   "koagen <path>",
	Short: "Generate a minimal Koa project skeleton",
	Long: `koagen creates a new directory at <path> holding a minimal Koa
project: package.json, README.md, .npmrc, a server entry point and an app
module answering "Hello World", plus empty build, docs, configs and
terraform directories.

<path> must not exist yet and its parent directory must. Nothing is
removed when a step fails.

A path that collides with a subcommand name must be written with a
leading ./ (for example ./verify).`,
	Example: `  # Generate a project
  koagen ./hello

  # Give README.md and .npmrc starter content
  koagen ./hello --stub-policy filled

  # Check an existing project against the template
  koagen verify ./hello

  See Also: koagen verify, koagen config`,
	Args:              cobra.ExactArgs(1),
	PersistentPreRunE: preRun,
	PersistentPostRun: func(_ *cobra.Command, _ []string) {
		closeLogFile()
	},
	RunE: runGenerate,
}

func preRun(cmd *cobra.Command, _ []string) error {
	if err := setupLogging(cmd); err != nil {
		return err
	}
	return loadConfig(cmd)
}

// setupLogging configures the default logger based on verbosity flags.
func setupLogging(cmd *cobra.Command) error {
	if quiet && verbosity > 0 {
		return errors.NewUserError(errors.New("cannot use --quiet and --verbose together"), "Pick one of -q or -v")
	}
	if !logging.ValidFormat(logFormat) {
		return errors.NewUserError(errors.Newf("invalid log format %q", logFormat), "Use --log-format text or --log-format json")
	}

	var level slog.Level
	if quiet {
		level = slog.LevelError
	} else {
		v := verbosity
		// flags win over the environment
		if v == 0 {
			switch os.Getenv("KOAGEN_DEBUG") {
			case "1", "true":
				v = 2
			case "2":
				v = 3
			}
		}
		level = logging.LevelFromVerbosity(v)
	}

	handler := logging.New(logging.Config{
		Level:  level,
		Format: logging.Format(logFormat),
		Output: cmd.ErrOrStderr(),
	}).Handler()

	closeLogFile()
	if logFile != "" {
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return errors.NewUserError(errors.Wrap(err, "opening log file"), "Check the --log-file path")
		}
		logFileSink = f
		handler = logging.NewMultiHandler(handler, slog.NewJSONHandler(f, &slog.HandlerOptions{Level: level}))
	}

	logger := slog.New(handler)
	slog.SetDefault(logger)

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	cmd.SetContext(logging.NewContext(ctx, logger))

	return nil
}

func closeLogFile() {
	if logFileSink != nil {
		_ = logFileSink.Close()
		logFileSink = nil
	}
}

// loadConfig reads the tool configuration, applying flag overrides.
// `config path`, `config init` and `doctor` tolerate a missing or broken
// config so users can find, replace or diagnose the file.
func loadConfig(cmd *cobra.Command) error {
	config.Init()
	if stubPolicy != "" {
		config.Set("stub_policy", stubPolicy)
	}

	cfg, err := config.Load(configFile)
	if err != nil {
		if cmd == configPathCmd || cmd == configInitCmd || cmd == doctorCmd {
			loadedCfg = config.Default()
			return nil
		}
		return errors.NewConfigError(errors.Wrap(err, "loading config"))
	}

	logging.FromContext(cmd.Context()).Debug("config loaded", "file", config.FileUsed(), "stub_policy", cfg.StubPolicy)
	loadedCfg = cfg
	return nil
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// ReportError prints err (and its suggestion, if any) to w and returns the
// process exit code for it.
func ReportError(w io.Writer, err error) int {
	label := "Error:"
	if logging.SupportsColor(w) {
		label = color.New(color.FgRed, color.Bold).Sprint(label)
	}
	fmt.Fprintf(w, "%s %v\n", label, err)
	if s := errors.SuggestionOf(err); s != "" {
		fmt.Fprintf(w, "Suggestion: %s\n", s)
	}
	return errors.CodeOf(err)
}
