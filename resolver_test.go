package scopedcss

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapResolver(t *testing.T) {
	r := MapResolver{"bg": "#fff", "empty": ""}

	got, err := r.Resolve("  bg\t")
	require.NoError(t, err)
	assert.Equal(t, "#fff", got)

	got, err = r.Resolve("empty")
	require.NoError(t, err)
	assert.Equal(t, "", got)

	_, err = r.Resolve("fg")
	assert.True(t, errors.Is(err, ErrNoValue))
	assert.Contains(t, err.Error(), `"fg"`)
}

func TestMapResolverMerge(t *testing.T) {
	base := MapResolver{"a": "1", "b": "2"}
	merged := base.Merge(map[string]string{"b": "3", "c": "4"})

	assert.Equal(t, MapResolver{"a": "1", "b": "3", "c": "4"}, merged)
	assert.Equal(t, "2", base["b"], "merge must not modify the receiver")
}

func TestResolverFunc(t *testing.T) {
	r := ResolverFunc(func(expr string) (string, error) {
		return strings.ToUpper(expr), nil
	})

	res, err := CompileWith("& { color: [[red]]; }", r)
	require.NoError(t, err)
	assert.Contains(t, res.Stylesheet, "color:RED")
}

func TestLoadValues(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
		want    MapResolver
	}{
		{
			name: "yaml",
			file: "values.yaml",
			content: `
primary: "#4ecdc4"
radius: 4px
columns: 12
ratio: 1.5
enabled: true
unset:
`,
			want: MapResolver{
				"primary": "#4ecdc4",
				"radius":  "4px",
				"columns": "12",
				"ratio":   "1.5",
				"enabled": "true",
				"unset":   "",
			},
		},
		{
			name: "json with comments",
			file: "values.jsonc",
			content: `{
  // brand colors
  "primary": "#4ecdc4",
  "columns": 12,
}`,
			want: MapResolver{"primary": "#4ecdc4", "columns": "12"},
		},
		{
			name:    "yml extension",
			file:    "values.YML",
			content: "gap: 8px\n",
			want:    MapResolver{"gap": "8px"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), tt.file)
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0644))

			got, err := LoadValues(path)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLoadValuesErrors(t *testing.T) {
	dir := t.TempDir()

	nested := filepath.Join(dir, "nested.yaml")
	require.NoError(t, os.WriteFile(nested, []byte("colors:\n  primary: red\n"), 0644))
	_, err := LoadValues(nested)
	assert.ErrorContains(t, err, `"colors" must be a scalar`)

	toml := filepath.Join(dir, "values.toml")
	require.NoError(t, os.WriteFile(toml, []byte("a = 1\n"), 0644))
	_, err = LoadValues(toml)
	assert.ErrorContains(t, err, "unsupported extension")

	broken := filepath.Join(dir, "broken.json")
	require.NoError(t, os.WriteFile(broken, []byte("{"), 0644))
	_, err = LoadValues(broken)
	assert.Error(t, err)

	_, err = LoadValues(filepath.Join(dir, "missing.yaml"))
	assert.ErrorContains(t, err, "read values file")
}
