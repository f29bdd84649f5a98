// Package logging provides the structured system log for deptree.
//
// It is a thin layer over Go's standard slog package: one process-wide text
// handler, level filtering, and a subsystem attribute on every entry so
// output can be grepped by component.
//
// # Log Levels
//   - **Debug**: graph traversal detail (edges added, units visited)
//   - **Info**: lifecycle messages (config loaded, manifest applied)
//   - **Warn**: recoverable problems (watch events that could not be handled)
//   - **Error**: failures, with the error attached as an attribute
//
// # Usage Examples
//
//	logging.InitForCLI(logging.LevelInfo, os.Stderr)
//	logging.SetSession(uuid.NewString())
//
//	logging.Info("Config", "Loaded configuration from %s", path)
//	logging.Debug("Dependency", "Installing %s", name)
//	logging.Error("Manifest", err, "Failed to apply %s", path)
//
// # Subsystem Organization
//
//   - **Dependency**: graph mutations and traversals
//   - **Shell**: REPL and script sessions
//   - **Manifest**: manifest loading, applying and watching
//   - **Config**: configuration loading
//
// Until InitForCLI is called every log call is dropped, which keeps library
// packages silent in tests.
//
// System logs are separate from command output: user-facing status lines are
// printed by the shell, not through this package.
package logging
