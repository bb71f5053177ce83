// Package fileutil provides file system utilities including atomic write operations.
// All functions operate on an afero.Fs so callers can swap the OS filesystem
// for an in-memory one.
package fileutil

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"

	"github.com/thoreinstein/koagen/internal/errors"
)

// tempPattern names in-flight temp files; the leading dot keeps them hidden.
const tempPattern = ".koagen-atomic-*.tmp"

// AtomicWriteFile writes data to path using a temp file + rename so an
// interrupted write leaves either the old file or nothing. An existing file is
// replaced, which gives create-or-truncate semantics.
//
// The caller is responsible for ensuring the parent directory exists.
func AtomicWriteFile(fsys afero.Fs, path string, data []byte, perm os.FileMode) error {
	tmp, err := afero.TempFile(fsys, filepath.Dir(path), tempPattern)
	if err != nil {
		return errors.Wrap(err, "creating temp file")
	}

	tmpName := tmp.Name()
	renamed := false
	defer func() {
		if !renamed {
			_ = fsys.Remove(tmpName)
		}
	}()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return errors.Wrap(err, "writing temp file")
	}

	if err := tmp.Close(); err != nil {
		return errors.Wrap(err, "closing temp file")
	}

	if err := fsys.Chmod(tmpName, perm); err != nil {
		return errors.Wrap(err, "setting file permissions")
	}

	if err := fsys.Rename(tmpName, path); err != nil {
		return errors.Wrap(err, "renaming temp file")
	}
	renamed = true

	return nil
}

// AtomicWriteJSON writes v as compact JSON (no indentation, no trailing
// newline) to path atomically.
func AtomicWriteJSON(fsys afero.Fs, path string, v any, perm os.FileMode) error {
	data, err := json.Marshal(v)
	if err != nil {
		return errors.Wrap(err, "marshaling JSON")
	}
	return AtomicWriteFile(fsys, path, data, perm)
}

// AtomicWriteYAML writes v as YAML to path atomically.
func AtomicWriteYAML(fsys afero.Fs, path string, v any, perm os.FileMode) (err error) {
	// yaml.Marshal panics on unmarshalable types
	defer func() {
		if r := recover(); r != nil {
			err = errors.Newf("marshaling YAML: %v", r)
		}
	}()

	data, err := yaml.Marshal(v)
	if err != nil {
		return errors.Wrap(err, "marshaling YAML")
	}

	return AtomicWriteFile(fsys, path, data, perm)
}
