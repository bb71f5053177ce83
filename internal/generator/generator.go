package generator

import (
	"context"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"

	"github.com/thoreinstein/koagen/internal/errors"
	"github.com/thoreinstein/koagen/internal/logging"
	"github.com/thoreinstein/koagen/internal/manifest"
	"github.com/thoreinstein/koagen/pkg/fileutil"
)

// Permissions for created entries.
const (
	DirPerm  os.FileMode = 0o755
	FilePerm os.FileMode = 0o644
)

// Generator writes the project skeleton. It holds no state between runs.
type Generator struct {
	fs     afero.Fs
	policy Policy
	logger *slog.Logger
}

// Option configures a Generator.
type Option func(*Generator)

// WithStubPolicy sets the README.md/.npmrc policy. Defaults to PolicyEmpty.
func WithStubPolicy(p Policy) Option {
	return func(g *Generator) { g.policy = p }
}

// WithLogger sets the logger. Without it Generate uses the context logger.
func WithLogger(l *slog.Logger) Option {
	return func(g *Generator) { g.logger = l }
}

// New returns a Generator writing to fsys.
func New(fsys afero.Fs, opts ...Option) *Generator {
	g := &Generator{fs: fsys, policy: PolicyEmpty}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Result lists what a run created, in creation order. On failure it holds
// whatever was created before the failing step.
type Result struct {
	Root  string
	Dirs  []string
	Files []string
}

// Generate creates the full project under root.
// ctx is checked between steps; a step in progress always completes.
func (g *Generator) Generate(ctx context.Context, root string) (*Result, error) {
	log := g.logger
	if log == nil {
		log = logging.FromContext(ctx)
	}
	log = log.With("root", root)

	res := &Result{Root: root}
	if err := ctx.Err(); err != nil {
		return res, errors.Wrapf(err, "generating %s", root)
	}

	dirs, err := g.createRoot(root)
	for _, d := range dirs {
		log.Log(ctx, logging.LevelTrace, "created directory", "path", d)
	}
	res.Dirs = dirs
	if err != nil {
		return res, err
	}

	writes := []struct {
		rel   string
		write func(string) error
	}{
		{PackageFile, g.WritePackage},
		{ReadmeFile, g.WriteReadme},
		{NpmrcFile, g.WriteNpmrc},
		{ServerFile, g.WriteServer},
		{AppFile, g.WriteApp},
	}

	for _, w := range writes {
		if err := ctx.Err(); err != nil {
			return res, errors.Wrapf(err, "generating %s", root)
		}
		if err := w.write(root); err != nil {
			log.Debug("write failed", "file", w.rel, "error", err)
			return res, err
		}
		path := join(root, w.rel)
		res.Files = append(res.Files, path)
		log.Debug("wrote file", "path", path)
	}

	log.Info("project generated", "dirs", len(res.Dirs), "files", len(res.Files), "stub_policy", string(g.policy))
	return res, nil
}

// CreateRoot creates root and the fixed subdirectories beneath it.
func (g *Generator) CreateRoot(root string) error {
	_, err := g.createRoot(root)
	return err
}

func (g *Generator) createRoot(root string) ([]string, error) {
	if err := validateRoot(root); err != nil {
		return nil, err
	}
	if err := g.checkParent(root); err != nil {
		return nil, err
	}

	var created []string
	if err := g.fs.Mkdir(root, DirPerm); err != nil {
		return created, newPathError("mkdir", root, err)
	}
	created = append(created, root)

	for _, rel := range directories {
		dir := join(root, rel)
		if err := g.fs.Mkdir(dir, DirPerm); err != nil {
			return created, newPathError("mkdir", dir, err)
		}
		created = append(created, dir)
	}
	return created, nil
}

// checkParent fails before anything is created when root's parent is
// missing, so the run leaves no trace.
func (g *Generator) checkParent(root string) error {
	parent := filepath.Dir(filepath.Clean(root))
	info, err := g.fs.Stat(parent)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return &PathError{Op: "stat", Path: parent, Kind: ErrMissingParent, Err: err}
		}
		return newPathError("stat", parent, err)
	}
	if !info.IsDir() {
		return &PathError{Op: "stat", Path: parent, Kind: ErrMissingParent, Err: errors.New("not a directory")}
	}
	return nil
}

func validateRoot(root string) error {
	if strings.TrimSpace(root) == "" {
		return &PathError{Op: "validate", Path: root, Kind: ErrInvalidPath, Err: errors.New("path is empty")}
	}
	if strings.ContainsRune(root, '\x00') {
		return &PathError{Op: "validate", Path: root, Kind: ErrInvalidPath, Err: errors.New("path contains NUL byte")}
	}
	return nil
}

// WritePackage writes <root>/package.json.
func (g *Generator) WritePackage(root string) error {
	path := join(root, PackageFile)
	data, err := manifest.Marshal(manifest.Default())
	if err != nil {
		return &PathError{Op: "encode", Path: path, Kind: ErrSerialize, Err: err}
	}
	return g.write(path, data)
}

// WriteReadme writes <root>/README.md according to the stub policy.
func (g *Generator) WriteReadme(root string) error {
	return g.write(join(root, ReadmeFile), g.policy.Readme())
}

// WriteNpmrc writes <root>/.npmrc according to the stub policy.
func (g *Generator) WriteNpmrc(root string) error {
	return g.write(join(root, NpmrcFile), g.policy.Npmrc())
}

// WriteServer writes <root>/src/server.js.
func (g *Generator) WriteServer(root string) error {
	return g.write(join(root, ServerFile), []byte(ServerJS))
}

// WriteApp writes <root>/src/modules/app.js.
func (g *Generator) WriteApp(root string) error {
	return g.write(join(root, AppFile), []byte(AppJS))
}

func (g *Generator) write(path string, data []byte) error {
	if err := fileutil.AtomicWriteFile(g.fs, path, data, FilePerm); err != nil {
		return newPathError("write", path, err)
	}
	return nil
}
