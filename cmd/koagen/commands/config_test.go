package commands

import (
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/thoreinstein/koagen/internal/config"
	"github.com/thoreinstein/koagen/internal/errors"
)

func TestConfigShow_Formats(t *testing.T) {
	tests := []struct {
		format    string
		unmarshal func([]byte, any) error
	}{
		{"yaml", yaml.Unmarshal},
		{"json", json.Unmarshal},
		{"toml", toml.Unmarshal},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			isolateConfig(t)

			stdout, _, err := execute(t, afero.NewMemMapFs(), "config", "show", "--format", tt.format, "--stub-policy", "filled")
			require.NoError(t, err)

			var got config.Config
			require.NoError(t, tt.unmarshal([]byte(stdout), &got), "output: %s", stdout)
			assert.Equal(t, config.Config{Version: 1, StubPolicy: "filled"}, got)
		})
	}
}

func TestConfigShow_Default(t *testing.T) {
	isolateConfig(t)

	stdout, _, err := execute(t, afero.NewMemMapFs(), "config")
	require.NoError(t, err)
	assert.Equal(t, "version: 1\nstub_policy: empty\n", stdout)
}

func TestConfigShow_UnknownFormat(t *testing.T) {
	isolateConfig(t)

	_, _, err := execute(t, afero.NewMemMapFs(), "config", "show", "--format", "ini")
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrInvalidArgument))
}

func TestConfigInit(t *testing.T) {
	dir := isolateConfig(t)
	fsys := afero.NewOsFs()
	path := filepath.Join(dir, "config.yaml")

	stdout, _, err := execute(t, fsys, "config", "init")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Created "+path)

	data, err := afero.ReadFile(fsys, path)
	require.NoError(t, err)
	assert.Equal(t, "version: 1\nstub_policy: empty\n", string(data))

	_, _, err = execute(t, fsys, "config", "init")
	require.Error(t, err, "second init without --force")
	assert.Equal(t, "Use --force to overwrite", errors.SuggestionOf(err))

	_, _, err = execute(t, fsys, "config", "init", "--force")
	assert.NoError(t, err)
}

func TestConfigInit_ExplicitPath(t *testing.T) {
	isolateConfig(t)
	fsys := afero.NewMemMapFs()

	path := "/etc/koagen/custom.yaml"
	_, _, err := execute(t, fsys, "config", "init", "--config", path)
	require.NoError(t, err)

	exists, err := afero.Exists(fsys, path)
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestConfigShow_MissingExplicitConfig(t *testing.T) {
	isolateConfig(t)

	_, _, err := execute(t, afero.NewMemMapFs(), "config", "show", "--config", filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
	assert.Equal(t, errors.ExitUser, errors.CodeOf(err))
}

func TestConfigPath(t *testing.T) {
	dir := isolateConfig(t)

	stdout, _, err := execute(t, afero.NewMemMapFs(), "config", "path")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "config.yaml")+"\n", stdout)
}

func TestConfigPath_ToleratesBrokenConfig(t *testing.T) {
	dir := isolateConfig(t)
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, afero.WriteFile(afero.NewOsFs(), path, []byte("version: 9\n"), 0o600))

	stdout, _, err := execute(t, afero.NewMemMapFs(), "config", "path")
	require.NoError(t, err)
	assert.Equal(t, path+"\n", stdout)
}
