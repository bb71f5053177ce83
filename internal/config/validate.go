package config

import (
	"fmt"

	"github.com/thoreinstein/koagen/internal/errors"
)

// Validation errors for configuration fields.
var (
	// ErrUnsupportedVersion indicates a schema version this build cannot read.
	ErrUnsupportedVersion = errors.New("unsupported config version")

	// ErrInvalidStubPolicy indicates an unrecognized stub_policy value.
	ErrInvalidStubPolicy = errors.New("invalid stub policy")
)

// ValidStubPolicy reports whether p is a recognized stub policy.
func ValidStubPolicy(p string) bool {
	return p == StubPolicyEmpty || p == StubPolicyFilled
}

// Validate checks a Config for validity.
// Returns nil if valid, or every validation error found.
func Validate(cfg *Config) []error {
	if cfg == nil {
		return []error{errors.New("config is nil")}
	}

	var errs []error

	if cfg.Version != CurrentVersion {
		errs = append(errs, &FieldError{
			Field: "version",
			Value: fmt.Sprint(cfg.Version),
			Err:   ErrUnsupportedVersion,
		})
	}

	if !ValidStubPolicy(cfg.StubPolicy) {
		errs = append(errs, &FieldError{
			Field: "stub_policy",
			Value: cfg.StubPolicy,
			Err:   ErrInvalidStubPolicy,
		})
	}

	return errs
}

// FieldError reports an invalid value for a single config key.
type FieldError struct {
	Field string
	Value string
	Err   error
}

func (e *FieldError) Error() string {
	return e.Err.Error() + ": " + e.Field + "=" + e.Value
}

func (e *FieldError) Unwrap() error {
	return e.Err
}
