// Package config manages koagen's own configuration using Viper.
//
// The configuration file lives at ~/.config/koagen/config.yaml (see package
// paths) and may be overridden with --config. Every key can also be set from
// the environment with the KOAGEN_ prefix:
//
//	version: 1
//	stub_policy: empty   # or "filled"
//
// stub_policy decides whether README.md and .npmrc are left empty in
// generated projects or given fixed starter content.
//
// Loaded configurations are validated; [Validate] returns every problem
// found rather than stopping at the first.
package config
