package generator

import (
	"path/filepath"

	"github.com/thoreinstein/koagen/internal/manifest"
)

// Paths of generated files, relative to the project root, slash-separated.
const (
	PackageFile = manifest.FileName
	ReadmeFile  = "README.md"
	NpmrcFile   = ".npmrc"
	ServerFile  = "src/server.js"
	AppFile     = "src/modules/app.js"
)

// directories are created in this order; each one's parent precedes it.
var directories = []string{
	"src",
	"src/modules",
	"src/modules/common",
	"build",
	"docs",
	"configs",
	"terraform",
}

var files = []string{
	PackageFile,
	ReadmeFile,
	NpmrcFile,
	ServerFile,
	AppFile,
}

// Layout describes the generated tree relative to its root.
type Layout struct {
	Dirs  []string
	Files []string
}

// DefaultLayout returns the fixed project layout.
func DefaultLayout() Layout {
	return Layout{
		Dirs:  append([]string(nil), directories...),
		Files: append([]string(nil), files...),
	}
}

func join(root, rel string) string {
	return filepath.Join(root, filepath.FromSlash(rel))
}
