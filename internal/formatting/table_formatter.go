package formatting

import (
	"fmt"
	"sort"

	"github.com/giantswarm/deptree/internal/dependency"
	pkgstrings "github.com/giantswarm/deptree/pkg/strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// TableFormatter provides rich table output formatting
type TableFormatter struct {
	options Options
}

// NewTableFormatter creates a new table formatter
func NewTableFormatter(options Options) Formatter {
	return &TableFormatter{
		options: options,
	}
}

// FormatUnits renders one row per unit with its state and edges.
func (f *TableFormatter) FormatUnits(nodes []dependency.Node) error {
	if len(nodes) == 0 {
		f.printEmptyMessage("No units registered")
		return nil
	}

	t := f.createTable()
	t.AppendHeader(table.Row{
		f.header("UNIT"),
		f.header("STATE"),
		f.header("DEPENDS ON"),
		f.header("REQUIRED BY"),
	})

	installed := 0
	for _, n := range nodes {
		if n.Installed {
			installed++
		}
		t.AppendRow(table.Row{
			n.Name,
			f.state(n.Installed),
			pkgstrings.JoinNames(n.DependsOn, pkgstrings.DefaultCellMaxLen),
			pkgstrings.JoinNames(n.Dependents, pkgstrings.DefaultCellMaxLen),
		})
	}

	if !f.options.Quiet {
		t.AppendFooter(table.Row{"", fmt.Sprintf("%d/%d installed", installed, len(nodes)), "", ""})
	}
	t.Render()
	return nil
}

// FormatUnit renders a single unit as key/value rows.
func (f *TableFormatter) FormatUnit(node dependency.Node) error {
	t := f.createTable()
	t.AppendHeader(table.Row{f.header("PROPERTY"), f.header("VALUE")})
	t.AppendRows([]table.Row{
		{f.key("Name"), node.Name},
		{f.key("State"), f.state(node.Installed)},
		{f.key("Depends on"), listOrNone(node.DependsOn)},
		{f.key("Required by"), listOrNone(node.Dependents)},
	})
	t.Render()
	return nil
}

// FormatData formats generic data using table logic
func (f *TableFormatter) FormatData(data interface{}) error {
	switch d := data.(type) {
	case map[string]interface{}:
		return f.formatObjectData(d)
	case []interface{}:
		return f.formatArrayData(d)
	case string:
		_, err := fmt.Fprintln(f.options.writer(), d)
		return err
	default:
		_, err := fmt.Fprintf(f.options.writer(), "%v\n", d)
		return err
	}
}

// SetOptions updates the formatter options
func (f *TableFormatter) SetOptions(options Options) {
	f.options = options
}

// GetOptions returns the current formatter options
func (f *TableFormatter) GetOptions() Options {
	return f.options
}

// Helper methods

// createTable creates a new table with standard styling
func (f *TableFormatter) createTable() table.Writer {
	t := table.NewWriter()
	t.SetOutputMirror(f.options.writer())
	style := table.StyleRounded
	style.Format.Footer = text.FormatDefault
	t.SetStyle(style)
	return t
}

func (f *TableFormatter) colorize(c text.Color, s string) string {
	if !f.options.Color {
		return s
	}
	return c.Sprint(s)
}

func (f *TableFormatter) header(s string) string {
	return f.colorize(text.FgHiCyan, s)
}

func (f *TableFormatter) key(s string) string {
	return f.colorize(text.FgHiCyan, s)
}

func (f *TableFormatter) state(installed bool) string {
	if installed {
		return f.colorize(text.FgGreen, "● "+stateLabel(true))
	}
	return f.colorize(text.FgHiBlack, "○ "+stateLabel(false))
}

// printEmptyMessage prints empty result messages
func (f *TableFormatter) printEmptyMessage(message string) {
	fmt.Fprintln(f.options.writer(), f.colorize(text.FgYellow, message))
}

// formatObjectData formats object data as key-value pairs, sorted by key
func (f *TableFormatter) formatObjectData(data map[string]interface{}) error {
	t := f.createTable()
	t.AppendHeader(table.Row{f.header("KEY"), f.header("VALUE")})

	keys := make([]string, 0, len(data))
	for k := range data {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, key := range keys {
		valueStr := pkgstrings.Truncate(fmt.Sprintf("%v", data[key]), pkgstrings.DefaultCellMaxLen)
		t.AppendRow(table.Row{f.key(key), valueStr})
	}

	t.Render()
	return nil
}

// formatArrayData formats array data as a single-column table
func (f *TableFormatter) formatArrayData(data []interface{}) error {
	if len(data) == 0 {
		f.printEmptyMessage("No items found")
		return nil
	}

	t := f.createTable()
	t.AppendHeader(table.Row{f.header("#"), f.header("VALUE")})
	for i, item := range data {
		t.AppendRow(table.Row{i + 1, pkgstrings.Truncate(fmt.Sprintf("%v", item), pkgstrings.DefaultCellMaxLen)})
	}
	t.Render()
	return nil
}
