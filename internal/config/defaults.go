package config

import (
	"os"
	"path/filepath"
)

const (
	// DefaultLogLevel keeps system logs quiet so they do not mix with command output.
	DefaultLogLevel = "warn"

	// DefaultOutput is the default format for unit listings.
	DefaultOutput = "table"

	// DefaultPrompt renders e.g. "deptree [3/5] » ".
	DefaultPrompt = `deptree{{ if .Units }} [{{ .Installed }}/{{ .Units }}]{{ end }} {{ .Chevron }} `

	historyFileName = ".deptree_history"
)

// GetDefaultConfig returns the default configuration.
func GetDefaultConfig() Config {
	return Config{
		LogLevel: DefaultLogLevel,
		Output:   DefaultOutput,
		Prompt:   DefaultPrompt,
		History: HistoryConfig{
			File: filepath.Join(os.TempDir(), historyFileName),
		},
	}
}
