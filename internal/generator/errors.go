package generator

import (
	"io/fs"

	"github.com/thoreinstein/koagen/internal/errors"
)

// Error kinds. Every error returned by this package matches exactly one.
var (
	ErrAlreadyExists = errors.New("already exists")
	ErrMissingParent = errors.New("parent directory does not exist")
	ErrPermission    = errors.New("permission denied")
	ErrSerialize     = errors.New("serialization failed")
	ErrInvalidPath   = errors.New("invalid path")
	ErrIO            = errors.New("i/o failure")
)

// PathError records a failed filesystem step and the path it touched.
type PathError struct {
	Op   string
	Path string
	Kind error
	Err  error
}

func newPathError(op, path string, err error) *PathError {
	return &PathError{Op: op, Path: path, Kind: kindOf(err), Err: err}
}

func (e *PathError) Error() string {
	return e.Op + " " + e.Path + ": " + e.Err.Error()
}

func (e *PathError) Unwrap() error {
	return e.Err
}

// Is matches the error's kind, so errors.Is(err, ErrAlreadyExists) works
// without the underlying OS error having to be one of ours.
func (e *PathError) Is(target error) bool {
	return target == e.Kind
}

func kindOf(err error) error {
	switch {
	case errors.Is(err, fs.ErrExist):
		return ErrAlreadyExists
	case errors.Is(err, fs.ErrNotExist):
		return ErrMissingParent
	case errors.Is(err, fs.ErrPermission):
		return ErrPermission
	default:
		return ErrIO
	}
}
