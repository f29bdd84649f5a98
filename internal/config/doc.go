// Package config loads deptree's user configuration.
//
// Configuration lives in a single YAML file, config.yaml, inside the
// configuration directory (default ~/.config/deptree). Every field is
// optional; a missing file yields the defaults from GetDefaultConfig.
//
// # Example
//
//	logLevel: info
//	output: table
//	noColor: false
//	prompt: '{{ .Chevron }} '
//	history:
//	  file: /home/me/.deptree_history
//	  disabled: false
//
// Command-line flags take precedence over file values; cmd applies them
// after LoadConfig returns.
//
// # Validation
//
// Validate reports every invalid field at once as ValidationErrors. The same
// error types are used by the manifest package.
package config
