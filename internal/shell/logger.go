package shell

import (
	"fmt"
	"io"
	"os"

	"github.com/jedib0t/go-pretty/v6/text"
)

// Logger prints user-facing shell output
type Logger struct {
	verbose  bool
	useColor bool
	writer   io.Writer
}

// NewLogger creates a logger writing to stdout
func NewLogger(verbose, useColor bool) *Logger {
	return NewLoggerWithWriter(verbose, useColor, os.Stdout)
}

// NewLoggerWithWriter creates a logger with a custom writer
func NewLoggerWithWriter(verbose, useColor bool, writer io.Writer) *Logger {
	return &Logger{
		verbose:  verbose,
		useColor: useColor,
		writer:   writer,
	}
}

// NewDevNullLogger creates a logger that discards everything
func NewDevNullLogger() *Logger {
	return NewLoggerWithWriter(false, false, io.Discard)
}

// SetVerbose sets the verbose mode
func (l *Logger) SetVerbose(verbose bool) {
	l.verbose = verbose
}

// SetWriter sets a custom writer for the logger
func (l *Logger) SetWriter(w io.Writer) {
	l.writer = w
}

// Writer returns the destination of all output
func (l *Logger) Writer() io.Writer {
	return l.writer
}

// UseColor reports whether output is coloured
func (l *Logger) UseColor() bool {
	return l.useColor
}

// Output writes user-facing output without a trailing newline
func (l *Logger) Output(format string, args ...interface{}) {
	fmt.Fprintf(l.writer, format, args...)
}

// OutputLine writes user-facing output with a newline
func (l *Logger) OutputLine(format string, args ...interface{}) {
	fmt.Fprintf(l.writer, format+"\n", args...)
}

// colorize applies color to text if colors are enabled
func (l *Logger) colorize(s string, c text.Color) string {
	if !l.useColor {
		return s
	}
	return c.Sprint(s)
}

// Info prints an informational message
func (l *Logger) Info(format string, args ...interface{}) {
	fmt.Fprintln(l.writer, fmt.Sprintf(format, args...))
}

// Debug prints a message in verbose mode only
func (l *Logger) Debug(format string, args ...interface{}) {
	if !l.verbose {
		return
	}
	fmt.Fprintln(l.writer, l.colorize(fmt.Sprintf(format, args...), text.FgHiBlack))
}

// Error prints an error message
func (l *Logger) Error(format string, args ...interface{}) {
	fmt.Fprintln(l.writer, l.colorize(fmt.Sprintf(format, args...), text.FgRed))
}

// Success prints a success message
func (l *Logger) Success(format string, args ...interface{}) {
	fmt.Fprintln(l.writer, l.colorize(fmt.Sprintf(format, args...), text.FgGreen))
}
