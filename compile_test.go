package scopedcss

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yacobolo/scopedcss/internal/normalize"
)

func TestCompile(t *testing.T) {
	tests := []struct {
		name     string
		template string
		values   []string
		class    string
		css      string
	}{
		{
			name:     "static rule",
			template: "& { color: red; }",
			class:    "css-2aa469ad",
			css:      ".css-2aa469ad{color:red}",
		},
		{
			name:     "placeholder value",
			template: "& { background: [[bg]]; }",
			values:   []string{"#4ecdc4"},
			class:    "css-ae44d218",
			css:      ".css-ae44d218{background:#4ecdc4}",
		},
		{
			name:     "nested selector in media query",
			template: "@media (max-width: [[bp]]px) { & { font-size: 14px; } }",
			values:   []string{"768"},
			class:    "css-996ca2e6",
			css:      "@media (max-width:768px){.css-996ca2e6{font-size:14px}}",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := Compile(tt.template, tt.values...)
			require.NoError(t, err)
			assert.Equal(t, tt.class, res.Class)
			assert.Equal(t, tt.css, res.Stylesheet)
			assert.Equal(t, "."+tt.class, res.Selector())
			assert.NotContains(t, res.Stylesheet, ScopeMarker)
		})
	}
}

func TestCompileClassDependsOnResolvedValues(t *testing.T) {
	red, err := Compile("& { color: [[c]]; }", "red")
	require.NoError(t, err)
	blue, err := Compile("& { color: [[c]]; }", "blue")
	require.NoError(t, err)

	assert.NotEqual(t, red.Class, blue.Class)

	// The class matches a template with the value written inline.
	inline, err := Compile("& { color: red; }")
	require.NoError(t, err)
	assert.Equal(t, inline.Class, red.Class)
}

func TestCompileIsDeterministic(t *testing.T) {
	template := "& { padding: [[p]]; } &:hover { opacity: 0.8; }"
	first, err := Compile(template, "4px")
	require.NoError(t, err)

	for i := 0; i < 5; i++ {
		again, err := Compile(template, "4px")
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

func TestCompileWith(t *testing.T) {
	values := MapResolver{"bg": "#4ecdc4"}

	res, err := CompileWith("& { background: [[ bg ]]; }", values)
	require.NoError(t, err)
	assert.Contains(t, res.Stylesheet, "4ecdc4")
	assert.True(t, strings.HasPrefix(res.Stylesheet, res.Selector()+"{"))

	positional, err := Compile("& { background: [[ bg ]]; }", "#4ecdc4")
	require.NoError(t, err)
	assert.Equal(t, positional, res)
}

func TestCompileFormatted(t *testing.T) {
	c := New(Options{Minify: false})

	res, err := c.Compile("& { color: red; }", nil)
	require.NoError(t, err)
	assert.Equal(t, "css-2aa469ad", res.Class)
	assert.Equal(t, ".css-2aa469ad {\n  color: red;\n}\n", res.Stylesheet)
}

func TestCompileErrors(t *testing.T) {
	tests := []struct {
		name     string
		template string
		values   []string
		kind     error
		line     int
		column   int
	}{
		{
			name:     "unclosed placeholder",
			template: "& { color: [[fg; }",
			kind:     ErrUnclosedPlaceholder,
			line:     1,
			column:   12,
		},
		{
			name:     "missing value",
			template: "& { color: [[fg]]; }",
			kind:     ErrUnresolvedPlaceholder,
		},
		{
			name:     "unclosed block",
			template: "& { color: red;",
			kind:     ErrCSSSyntax,
			line:     1,
			column:   15,
		},
		{
			name:     "value breaks the grammar",
			template: "& { color: [[fg]]; }",
			values:   []string{"red; } }"},
			kind:     ErrCSSSyntax,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Compile(tt.template, tt.values...)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.kind), "got %v", err)

			var ce *CompileError
			require.True(t, errors.As(err, &ce))
			if tt.line > 0 {
				assert.Equal(t, tt.line, ce.Line)
				assert.Equal(t, tt.column, ce.Column)
			}
		})
	}
}

func TestCompileErrorKindsAreDistinct(t *testing.T) {
	_, err := Compile("& { color: [[fg; }")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnclosedPlaceholder))
	assert.False(t, errors.Is(err, ErrUnresolvedPlaceholder))
	assert.False(t, errors.Is(err, ErrCSSSyntax))
	assert.False(t, errors.Is(err, ErrCSSPrint))
	assert.Equal(t, `unclosed placeholder at 1:12: "[[" has no matching "]]"`, err.Error())
}

func TestCompileWithUnresolvedExpression(t *testing.T) {
	_, err := CompileWith("& {\n  color: [[ fg ]];\n}", MapResolver{"bg": "red"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnresolvedPlaceholder))
	assert.True(t, errors.Is(err, ErrNoValue))

	var ce *CompileError
	require.True(t, errors.As(err, &ce))
	assert.Equal(t, " fg ", ce.Expr)
	assert.Equal(t, 2, ce.Line)
	assert.Equal(t, 10, ce.Column)
	assert.Contains(t, ce.Msg, `no value for [[ fg ]]`)
}

type stubNormalizer struct {
	err error
}

func (s stubNormalizer) Normalize(content string) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	return content, nil
}

func TestCompileCustomNormalizer(t *testing.T) {
	c := New(Options{Normalizer: stubNormalizer{}})

	res, err := c.Compile("& { content: [[v]]; }", []string{`"&"`})
	require.NoError(t, err)
	// Markers introduced by values are rewritten like any other.
	assert.Equal(t, "."+res.Class+` { content: "`+"."+res.Class+`"; }`, res.Stylesheet)
}

func TestCompileNormalizerFailures(t *testing.T) {
	tests := []struct {
		name string
		err  error
		kind error
	}{
		{"plain error is a syntax rejection", errors.New("bad input"), ErrCSSSyntax},
		{"print failure", &normalize.PrintError{Err: errors.New("disk full")}, ErrCSSPrint},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New(Options{Normalizer: stubNormalizer{err: tt.err}})
			_, err := c.Compile("& { color: red; }", nil)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.kind))
			assert.ErrorIs(t, err, tt.err)
		})
	}
}
