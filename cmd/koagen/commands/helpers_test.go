package commands

import (
	"bytes"
	"os"
	"testing"

	"github.com/spf13/afero"

	"github.com/thoreinstein/koagen/internal/paths"
)

// resetFlags restores every package-level flag variable; cobra only
// assigns flags that appear on the command line.
func resetFlags() {
	configFile = ""
	stubPolicy = ""
	verbosity = 0
	quiet = false
	logFormat = "text"
	logFile = ""
	configShowFormat = "yaml"
	configInitForce = false
	doctorJSON = false
	loadedCfg = nil
	if f := rootCmd.Flags().Lookup("version"); f != nil {
		_ = f.Value.Set("false")
	}
}

// isolateConfig keeps real user configuration and KOAGEN_* variables out of
// the test.
func isolateConfig(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv(paths.EnvConfigDir, dir)
	for _, key := range []string{"KOAGEN_STUB_POLICY", "KOAGEN_VERSION", "KOAGEN_DEBUG"} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
	t.Chdir(t.TempDir())
	return dir
}

// execute runs the root command with args against fsys and returns stdout,
// stderr and the error.
func execute(t *testing.T, fsys afero.Fs, args ...string) (string, string, error) {
	t.Helper()
	resetFlags()

	orig := appFs
	appFs = fsys
	t.Cleanup(func() {
		appFs = orig
		resetFlags()
	})

	var stdout, stderr bytes.Buffer
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})

	err := rootCmd.Execute()
	return stdout.String(), stderr.String(), err
}
