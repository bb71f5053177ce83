package doctor

import (
	"fmt"
	"io/fs"
	"os"
	"os/exec"
	"strings"

	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"

	"github.com/thoreinstein/koagen/internal/config"
	"github.com/thoreinstein/koagen/internal/errors"
	"github.com/thoreinstein/koagen/pkg/fileutil"
)

// ConfigCheck parses and validates the koagen config file.
type ConfigCheck struct {
	fs   afero.Fs
	path string
}

var _ Check = (*ConfigCheck)(nil)

// NewConfigCheck creates a check for the config file at path.
func NewConfigCheck(fsys afero.Fs, path string) *ConfigCheck {
	return &ConfigCheck{fs: fsys, path: path}
}

// Name returns the unique identifier for this check.
func (c *ConfigCheck) Name() string {
	return "config-file"
}

// Category returns the grouping for this check.
func (c *ConfigCheck) Category() string {
	return "config"
}

// Run reads the file, decodes it and applies config validation.
func (c *ConfigCheck) Run() *CheckResult {
	result := &CheckResult{
		Name:     c.Name(),
		Category: c.Category(),
		Status:   SeverityPass,
		Details:  map[string]any{"path": c.path},
	}

	data, err := fileutil.ReadFileWithLimit(c.fs, c.path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		result.Status = SeverityInfo
		result.Message = "no config file, defaults apply"
		result.FixHint = "koagen config init"
		return result
	case err != nil:
		result.Status = SeverityError
		result.Message = fmt.Sprintf("cannot read config file: %v", err)
		return result
	}

	cfg := config.Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		result.Status = SeverityError
		result.Message = fmt.Sprintf("syntax error: %v", err)
		result.FixHint = "fix the YAML syntax in " + c.path
		return result
	}

	if errs := config.Validate(cfg); len(errs) > 0 {
		msgs := make([]string, 0, len(errs))
		for _, e := range errs {
			msgs = append(msgs, e.Error())
		}
		result.Status = SeverityError
		result.Message = fmt.Sprintf("%d invalid value(s)", len(errs))
		result.Details["errors"] = msgs
		result.FixHint = "koagen config init --force"
		return result
	}

	result.Message = "config valid (stub_policy=" + cfg.StubPolicy + ")"
	return result
}

// ConfigDirCheck validates the config directory and file permissions.
type ConfigDirCheck struct {
	fs   afero.Fs
	dir  string
	file string
}

var _ Check = (*ConfigDirCheck)(nil)

// NewConfigDirCheck creates a check for dir and the config file inside it.
func NewConfigDirCheck(fsys afero.Fs, dir, file string) *ConfigDirCheck {
	return &ConfigDirCheck{fs: fsys, dir: dir, file: file}
}

// Name returns the unique identifier for this check.
func (c *ConfigDirCheck) Name() string {
	return "config-permissions"
}

// Category returns the grouping for this check.
func (c *ConfigDirCheck) Category() string {
	return "filesystem"
}

// Run executes the directory and permission check.
func (c *ConfigDirCheck) Run() *CheckResult {
	result := &CheckResult{
		Name:     c.Name(),
		Category: c.Category(),
		Status:   SeverityPass,
		Details:  map[string]any{"path": c.dir},
	}

	info, err := c.fs.Stat(c.dir)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		result.Status = SeverityInfo
		result.Message = "config directory does not exist"
		result.FixHint = "koagen config init"
		return result
	case err != nil:
		result.Status = SeverityError
		result.Message = fmt.Sprintf("cannot access config directory: %v", err)
		return result
	case !info.IsDir():
		result.Status = SeverityError
		result.Message = "config path is not a directory"
		result.FixHint = "remove " + c.dir
		return result
	}

	var problems, hints []string
	if info.Mode().Perm()&0o002 != 0 {
		problems = append(problems, "directory is world-writable")
		hints = append(hints, "chmod 755 "+c.dir)
	}
	if !c.writable() {
		problems = append(problems, "directory is not writable")
		hints = append(hints, "check ownership of "+c.dir)
	}
	if fi, err := c.fs.Stat(c.file); err == nil && fi.Mode().Perm()&0o002 != 0 {
		problems = append(problems, "config file is world-writable")
		hints = append(hints, "chmod 644 "+c.file)
	}

	if len(problems) == 0 {
		result.Message = "config directory is writable with safe permissions"
		return result
	}

	result.Status = SeverityWarning
	result.Message = strings.Join(problems, "; ")
	result.Details["permissions"] = formatPermissions(info.Mode())
	result.FixHint = strings.Join(hints, "; ")
	return result
}

// writable tests the directory by creating and removing a temp file.
func (c *ConfigDirCheck) writable() bool {
	f, err := afero.TempFile(c.fs, c.dir, ".koagen-doctor-*")
	if err != nil {
		return false
	}
	name := f.Name()
	_ = f.Close()
	_ = c.fs.Remove(name)
	return true
}

// formatPermissions returns a permission string such as "0755".
func formatPermissions(mode os.FileMode) string {
	return fmt.Sprintf("%04o", mode.Perm())
}

// Tools a generated project needs to install and start.
var requiredTools = []string{"node", "npm"}

// ToolchainCheck looks for the Node.js toolchain on PATH.
type ToolchainCheck struct {
	lookPath func(string) (string, error)
}

var _ Check = (*ToolchainCheck)(nil)

// NewToolchainCheck creates a toolchain check. A nil lookPath uses
// exec.LookPath.
func NewToolchainCheck(lookPath func(string) (string, error)) *ToolchainCheck {
	if lookPath == nil {
		lookPath = exec.LookPath
	}
	return &ToolchainCheck{lookPath: lookPath}
}

// Name returns the unique identifier for this check.
func (c *ToolchainCheck) Name() string {
	return "node-toolchain"
}

// Category returns the grouping for this check.
func (c *ToolchainCheck) Category() string {
	return "toolchain"
}

// Run reports which required tools are missing. Generation itself never
// needs them, so a missing tool is a warning.
func (c *ToolchainCheck) Run() *CheckResult {
	found := make(map[string]any, len(requiredTools))
	var missing []string
	for _, tool := range requiredTools {
		path, err := c.lookPath(tool)
		if err != nil {
			missing = append(missing, tool)
			continue
		}
		found[tool] = path
	}

	result := &CheckResult{
		Name:     c.Name(),
		Category: c.Category(),
		Status:   SeverityPass,
		Details:  found,
	}
	if len(missing) > 0 {
		result.Status = SeverityWarning
		result.Message = strings.Join(missing, ", ") + " not found on PATH"
		result.FixHint = "install Node.js to run generated projects"
		return result
	}
	result.Message = "node and npm found"
	return result
}
