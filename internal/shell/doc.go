// Package shell runs deptree commands against a dependency graph.
//
// A Session owns one graph and the registry of commands that operate on it.
// Lines are executed with Session.Execute, either one at a time from the
// interactive REPL (line editing, history and tab completion through
// chzyer/readline) or in bulk from a script with Session.RunScript.
//
// User-facing output goes through Logger, a small writer-backed printer that
// satisfies commands.OutputLogger. System logging stays in pkg/logging.
package shell
