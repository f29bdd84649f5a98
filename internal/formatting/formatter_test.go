package formatting

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/giantswarm/deptree/internal/dependency"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func sampleNodes() []dependency.Node {
	return []dependency.Node{
		{Name: "Http", Installed: true, DependsOn: []string{"TCP"}, Dependents: []string{"Chrome"}},
		{Name: "TCP", Installed: true, Dependents: []string{"Http"}},
		{Name: "Chrome", DependsOn: []string{"Http"}},
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		input    string
		expected OutputFormat
		wantErr  bool
	}{
		{"", FormatTable, false},
		{"table", FormatTable, false},
		{"JSON", FormatJSON, false},
		{"yaml", FormatYAML, false},
		{"console", FormatConsole, false},
		{"xml", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseFormat(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "valid: table, console, json, yaml")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestNew_SelectsFormatter(t *testing.T) {
	assert.IsType(t, &TableFormatter{}, New(Options{Format: FormatTable}))
	assert.IsType(t, &JSONFormatter{}, New(Options{Format: FormatJSON}))
	assert.IsType(t, &YAMLFormatter{}, New(Options{Format: FormatYAML}))
	assert.IsType(t, &ConsoleFormatter{}, New(Options{Format: FormatConsole}))
	assert.IsType(t, &ConsoleFormatter{}, New(Options{Format: "bogus"}))
}

func TestOptionsRoundTrip(t *testing.T) {
	f := New(Options{Format: FormatJSON})
	f.SetOptions(Options{Format: FormatJSON, Quiet: true})
	assert.True(t, f.GetOptions().Quiet)
}

func TestConsoleFormatter_FormatUnits(t *testing.T) {
	var buf bytes.Buffer
	f := NewConsoleFormatter(Options{Out: &buf})

	require.NoError(t, f.FormatUnits(sampleNodes()))
	out := buf.String()
	assert.Contains(t, out, "Units (3):")
	assert.Contains(t, out, "Http")
	assert.Contains(t, out, "-> TCP")
	assert.Contains(t, out, "not installed")

	buf.Reset()
	require.NoError(t, f.FormatUnits(nil))
	assert.Equal(t, "No units registered.\n", buf.String())
}

func TestConsoleFormatter_FormatUnit(t *testing.T) {
	var buf bytes.Buffer
	f := NewConsoleFormatter(Options{Out: &buf})

	require.NoError(t, f.FormatUnit(sampleNodes()[1]))
	assert.Equal(t, "Unit: TCP\nState: installed\nDepends on: (none)\nRequired by: Http\n", buf.String())
}

func TestJSONFormatter_FormatUnits(t *testing.T) {
	var buf bytes.Buffer
	f := NewJSONFormatter(Options{Out: &buf})
	require.NoError(t, f.FormatUnits(sampleNodes()))

	var decoded struct {
		Units []dependency.Node `json:"units"`
		Count int               `json:"count"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, 3, decoded.Count)
	assert.Equal(t, "Http", decoded.Units[0].Name)
	assert.True(t, decoded.Units[0].Installed)
}

func TestJSONFormatter_EmptyListIsArray(t *testing.T) {
	var buf bytes.Buffer
	f := NewJSONFormatter(Options{Out: &buf, Quiet: true})
	require.NoError(t, f.FormatUnits(nil))
	assert.Equal(t, "{\"units\":[],\"count\":0}\n", buf.String())
}

func TestJSONFormatter_Unmarshalable(t *testing.T) {
	var buf bytes.Buffer
	f := NewJSONFormatter(Options{Out: &buf})
	err := f.FormatData(make(chan int))
	require.Error(t, err)
	assert.Empty(t, buf.String())
}

func TestYAMLFormatter_FormatUnit(t *testing.T) {
	var buf bytes.Buffer
	f := NewYAMLFormatter(Options{Out: &buf})
	require.NoError(t, f.FormatUnit(sampleNodes()[0]))

	var decoded dependency.Node
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, sampleNodes()[0], decoded)
}

func TestTableFormatter_FormatUnits(t *testing.T) {
	var buf bytes.Buffer
	f := NewTableFormatter(Options{Out: &buf})
	require.NoError(t, f.FormatUnits(sampleNodes()))

	out := buf.String()
	assert.Contains(t, out, "UNIT")
	assert.Contains(t, out, "DEPENDS ON")
	assert.Contains(t, out, "● installed")
	assert.Contains(t, out, "○ not installed")
	assert.Contains(t, out, "2/3 installed")
	assert.NotContains(t, out, "2/3 INSTALLED")
	assert.NotContains(t, out, "\x1b[", "no colour codes when colour is off")
}

func TestTableFormatter_Empty(t *testing.T) {
	var buf bytes.Buffer
	f := NewTableFormatter(Options{Out: &buf})
	require.NoError(t, f.FormatUnits(nil))
	assert.Equal(t, "No units registered\n", buf.String())
}

func TestTableFormatter_FormatData(t *testing.T) {
	var buf bytes.Buffer
	f := NewTableFormatter(Options{Out: &buf})
	require.NoError(t, f.FormatData(map[string]interface{}{"b": 2, "a": 1}))

	out := buf.String()
	assert.Less(t, bytes.Index(buf.Bytes(), []byte(" a ")), bytes.Index(buf.Bytes(), []byte(" b ")), "keys are sorted")
	assert.Contains(t, out, "KEY")

	buf.Reset()
	require.NoError(t, f.FormatData("plain"))
	assert.Equal(t, "plain\n", buf.String())
}
