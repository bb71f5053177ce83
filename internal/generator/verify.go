package generator

import (
	"bytes"
	"fmt"
	"maps"

	"github.com/spf13/afero"

	"github.com/thoreinstein/koagen/internal/manifest"
	"github.com/thoreinstein/koagen/pkg/fileutil"
)

// Problem describes one way a tree differs from the generated layout.
type Problem struct {
	Path   string
	Reason string
}

func (p *Problem) Error() string {
	return p.Path + ": " + p.Reason
}

// Verify checks the tree under root against the layout and payloads a
// Generator with policy would have produced. It returns every problem found.
func Verify(fsys afero.Fs, root string, policy Policy) []error {
	var errs []error
	add := func(path, format string, args ...any) {
		errs = append(errs, &Problem{Path: path, Reason: fmt.Sprintf(format, args...)})
	}

	for _, dir := range append([]string{""}, directories...) {
		path := join(root, dir)
		info, err := fsys.Stat(path)
		switch {
		case err != nil:
			add(path, "missing directory")
		case !info.IsDir():
			add(path, "not a directory")
		}
	}

	want := map[string][]byte{
		ReadmeFile: policy.Readme(),
		NpmrcFile:  policy.Npmrc(),
		ServerFile: []byte(ServerJS),
		AppFile:    []byte(AppJS),
	}

	for _, rel := range files {
		path := join(root, rel)
		data, err := fileutil.ReadFileWithLimit(fsys, path)
		if err != nil {
			add(path, "unreadable: %v", err)
			continue
		}

		if rel == PackageFile {
			for _, reason := range checkManifest(data) {
				add(path, "%s", reason)
			}
			continue
		}

		if !bytes.Equal(data, want[rel]) {
			add(path, "content differs from template (%d bytes, want %d)", len(data), len(want[rel]))
		}
	}

	return errs
}

func checkManifest(data []byte) []string {
	m, err := manifest.Parse(data)
	if err != nil {
		return []string{err.Error()}
	}

	var reasons []string
	if got := m.Start(); got != manifest.StartScript {
		reasons = append(reasons, fmt.Sprintf("scripts.start = %q, want %q", got, manifest.StartScript))
	}
	wantDeps := manifest.Default().Dependencies
	if !maps.Equal(m.Dependencies, wantDeps) {
		reasons = append(reasons, fmt.Sprintf("dependencies = %v, want %v", m.Dependencies, wantDeps))
	}
	return reasons
}
