package scopedcss

import (
	"errors"
	"strconv"
	"strings"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/yacobolo/scopedcss/internal/normalize"
)

func newProperties() *gopter.Properties {
	parameters := gopter.DefaultTestParameters()
	parameters.Rng.Seed(4187)
	parameters.MinSuccessfulTests = 200
	return gopter.NewProperties(parameters)
}

// TestTemplateProperties checks scanning and assembly on arbitrary text.
func TestTemplateProperties(t *testing.T) {
	properties := newProperties()

	// Property: putting every expression back between markers rebuilds the
	// template, whatever braces the literals contain.
	properties.Property("scan and assemble round trip", prop.ForAll(
		func(template string) bool {
			scanned, err := Scan(template)
			if err != nil {
				return errors.Is(err, ErrUnclosedPlaceholder)
			}

			spans := scanned.Spans()
			values := make([]string, len(spans))
			for i, span := range spans {
				values[i] = OpenMarker + span.Expr + CloseMarker
			}

			got, err := Assemble(scanned, values)
			return err == nil && got == template
		},
		gen.OneGenOf(
			gen.AnyString(),
			gen.RegexMatch(`^([a-z{}& ;:]{0,6}(\[\[[a-z ]{0,4}\]\])?){0,5}$`),
		),
	))

	// Property: plain values leave no markers behind.
	properties.Property("no leftover placeholders", prop.ForAll(
		func(literals []string, value string) bool {
			var b strings.Builder
			var want strings.Builder
			values := make([]string, 0, len(literals))
			for _, lit := range literals {
				b.WriteString(lit)
				b.WriteString("[[v]]")
				want.WriteString(lit)
				want.WriteString(value)
				values = append(values, value)
			}

			scanned, err := Scan(b.String())
			if err != nil {
				return false
			}
			got, err := Assemble(scanned, values)
			return err == nil &&
				got == want.String() &&
				!strings.Contains(got, OpenMarker)
		},
		gen.SliceOfN(4, gen.AlphaString()),
		gen.AlphaString(),
	))

	properties.TestingRun(t)
}

// TestIdentifierProperties checks identifier derivation and scope rewriting.
func TestIdentifierProperties(t *testing.T) {
	properties := newProperties()

	properties.Property("identifier is deterministic and well formed", prop.ForAll(
		func(content string) bool {
			id := GenerateID(content)
			return id == GenerateID(content) && IsClassID(id)
		},
		gen.AnyString(),
	))

	properties.Property("appending a byte changes the identifier", prop.ForAll(
		func(content string) bool {
			// 32-bit identifiers can collide, just not at this sample size.
			return GenerateID(content) != GenerateID(content+" ")
		},
		gen.AlphaString(),
	))

	properties.Property("every scope marker is rewritten", prop.ForAll(
		func(content string) bool {
			id := GenerateID(content)
			scoped := RewriteScope(content, id)
			return !strings.Contains(scoped, ScopeMarker) &&
				strings.Count(scoped, "."+id) >= strings.Count(content, ScopeMarker)
		},
		gen.RegexMatch(`^[a-z&{}:;. ]{0,40}$`),
	))

	properties.TestingRun(t)
}

// TestCompileProperties checks whole-pipeline behavior.
func TestCompileProperties(t *testing.T) {
	properties := newProperties()
	minify := normalize.New(normalize.Options{Minify: true})

	properties.Property("compile is deterministic", prop.ForAll(
		func(color, size string) bool {
			template := "& { color: [[c]]; } @media (max-width: [[s]]px) { & { margin: 0; } }"
			first, err1 := Compile(template, color, size)
			second, err2 := Compile(template, color, size)
			return err1 == nil && err2 == nil && first == second
		},
		gen.Identifier(),
		gen.IntRange(1, 4096).Map(strconv.Itoa),
	))

	properties.Property("minified output is a normalizer fixed point", prop.ForAll(
		func(color string) bool {
			res, err := Compile("& { color: [[c]]; } &:hover, & > .x { opacity: 0.5; }", color)
			if err != nil {
				return false
			}
			again, err := minify.Normalize(res.Stylesheet)
			return err == nil && again == res.Stylesheet
		},
		gen.Identifier(),
	))

	properties.Property("failures are deterministic", prop.ForAll(
		func(tail string) bool {
			template := "& { color: [[" + tail
			_, err1 := Compile(template)
			_, err2 := Compile(template)

			var ce1, ce2 *CompileError
			if !errors.As(err1, &ce1) || !errors.As(err2, &ce2) {
				return false
			}
			return errors.Is(err1, ErrUnclosedPlaceholder) && *ce1 == *ce2
		},
		gen.AlphaString(),
	))

	properties.TestingRun(t)
}
