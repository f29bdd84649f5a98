package manifest

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const browserManifest = `units:
  - name: Http
    dependsOn: [TCP]
  - name: Https
    dependsOn: [TCP]
  - name: Chrome
    dependsOn: [Http, Https, GLib]
install: [Chrome]
uninstall: [TCP, Chrome]
`

func writeManifest(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "manifest.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoad(t *testing.T) {
	m, err := Load(writeManifest(t, browserManifest))
	require.NoError(t, err)

	require.Len(t, m.Units, 3)
	assert.Equal(t, Unit{Name: "Chrome", DependsOn: []string{"Http", "Https", "GLib"}}, m.Units[2])
	assert.Equal(t, []string{"Chrome"}, m.Install)
	assert.Equal(t, []string{"TCP", "Chrome"}, m.Uninstall)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestParse_Empty(t *testing.T) {
	m, err := Parse(nil)
	require.NoError(t, err)
	assert.Empty(t, m.Units)
}

func TestParse_UnknownField(t *testing.T) {
	_, err := Parse([]byte("units:\n  - name: a\n    depends_on: [b]\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error parsing manifest")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name     string
		manifest Manifest
		fields   []string
	}{
		{
			name:     "valid",
			manifest: Manifest{Units: []Unit{{Name: "a", DependsOn: []string{"b"}}}, Install: []string{"b"}},
		},
		{
			name:     "empty unit name",
			manifest: Manifest{Units: []Unit{{Name: ""}}},
			fields:   []string{"units[0].name"},
		},
		{
			name:     "whitespace in dependency",
			manifest: Manifest{Units: []Unit{{Name: "a", DependsOn: []string{"b c"}}}},
			fields:   []string{"units[0].dependsOn[0]"},
		},
		{
			name:     "duplicate unit",
			manifest: Manifest{Units: []Unit{{Name: "a"}, {Name: "a"}}},
			fields:   []string{"units[1].name"},
		},
		{
			name:     "unknown targets",
			manifest: Manifest{Units: []Unit{{Name: "a"}}, Install: []string{"x"}, Uninstall: []string{"a", "y"}},
			fields:   []string{"install[0]", "uninstall[1]"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.manifest.Validate()
			if len(tt.fields) == 0 {
				assert.NoError(t, err)
				return
			}

			var verrs ValidationErrors
			require.True(t, errors.As(err, &verrs))
			var fields []string
			for _, e := range verrs {
				fields = append(fields, e.Field)
			}
			assert.Equal(t, tt.fields, fields)
		})
	}
}
