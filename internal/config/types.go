package config

// Config is the top-level configuration structure for deptree.
type Config struct {
	LogLevel string        `yaml:"logLevel,omitempty"` // debug, info, warn, error (default: warn)
	Output   string        `yaml:"output,omitempty"`   // table, console, json, yaml (default: table)
	NoColor  bool          `yaml:"noColor,omitempty"`  // Disable coloured output
	Prompt   string        `yaml:"prompt,omitempty"`   // REPL prompt template (text/template + sprig)
	History  HistoryConfig `yaml:"history,omitempty"`
}

// HistoryConfig controls the REPL command history file.
type HistoryConfig struct {
	File     string `yaml:"file,omitempty"`     // Path of the history file (default: <tmp>/.deptree_history)
	Disabled bool   `yaml:"disabled,omitempty"` // Do not read or write history
}
