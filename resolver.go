package scopedcss

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"
)

// ErrNoValue is returned by resolvers that have no value for an expression.
var ErrNoValue = errors.New("no value for expression")

// Resolver supplies the value for a placeholder expression. How the
// expression is interpreted is up to the implementation.
type Resolver interface {
	Resolve(expr string) (string, error)
}

// ResolverFunc adapts a function to the Resolver interface.
type ResolverFunc func(expr string) (string, error)

// Resolve calls f(expr).
func (f ResolverFunc) Resolve(expr string) (string, error) {
	return f(expr)
}

// MapResolver looks expressions up by name after trimming surrounding
// whitespace, so [[ bg ]] and [[bg]] resolve the same way.
type MapResolver map[string]string

// Resolve implements Resolver.
func (m MapResolver) Resolve(expr string) (string, error) {
	key := strings.TrimSpace(expr)
	if v, ok := m[key]; ok {
		return v, nil
	}
	return "", fmt.Errorf("%w %q", ErrNoValue, key)
}

// Merge returns a new MapResolver with other's entries layered over m.
func (m MapResolver) Merge(other map[string]string) MapResolver {
	out := make(MapResolver, len(m)+len(other))
	for k, v := range m {
		out[k] = v
	}
	for k, v := range other {
		out[k] = v
	}
	return out
}

// LoadValues reads a flat name → value map from a YAML (.yaml, .yml) or
// JSON (.json, .jsonc) file. Non-string scalars are formatted with %v.
func LoadValues(path string) (MapResolver, error) {
	// #nosec G304 - path comes from trusted configuration
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read values file: %w", err)
	}

	raw := make(map[string]any)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
	case ".json", ".jsonc":
		if err := json.Unmarshal(jsonc.ToJSON(data), &raw); err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
	default:
		return nil, fmt.Errorf("values file %s: unsupported extension %q", path, filepath.Ext(path))
	}

	values := make(MapResolver, len(raw))
	for k, v := range raw {
		switch v := v.(type) {
		case string:
			values[k] = v
		case map[string]any, []any:
			return nil, fmt.Errorf("values file %s: %q must be a scalar", path, k)
		case nil:
			values[k] = ""
		default:
			values[k] = fmt.Sprintf("%v", v)
		}
	}
	return values, nil
}
