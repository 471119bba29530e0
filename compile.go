package scopedcss

import (
	"go.uber.org/zap"

	"github.com/yacobolo/scopedcss/internal/normalize"
)

// Normalizer validates scoped content and prints the final stylesheet.
// Implementations must be safe for concurrent use.
//
// A returned error that wraps *normalize.PrintError becomes a KindCSSPrint
// CompileError; every other error is a KindCSSSyntax rejection.
type Normalizer interface {
	Normalize(content string) (string, error)
}

// Options configures a Compiler.
type Options struct {
	// Minify selects compact output from the built-in normalizer. Ignored
	// when Normalizer is set.
	Minify bool

	// Normalizer overrides the built-in CSS engine.
	Normalizer Normalizer

	// Logger receives debug output. Nil means no logging.
	Logger *zap.Logger
}

// DefaultOptions returns options with minified output.
func DefaultOptions() Options {
	return Options{Minify: true}
}

// Result is the output of a successful compile.
type Result struct {
	Class      string // Generated class identifier, e.g. "css-1a2b3c4d"
	Stylesheet string // Normalized stylesheet bound to Class
}

// Selector returns the class selector for the result, e.g. ".css-1a2b3c4d".
func (r Result) Selector() string {
	return "." + r.Class
}

// Compiler turns style templates into scoped stylesheets. A Compiler holds no
// per-call state, so one value may serve concurrent callers.
type Compiler struct {
	normalizer Normalizer
	logger     *zap.Logger
}

// New creates a Compiler from options.
func New(opts Options) *Compiler {
	n := opts.Normalizer
	if n == nil {
		n = normalize.New(normalize.Options{Minify: opts.Minify})
	}
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Compiler{normalizer: n, logger: logger}
}

var defaultCompiler = New(DefaultOptions())

// Compile compiles template with positional values using DefaultOptions.
func Compile(template string, values ...string) (Result, error) {
	return defaultCompiler.Compile(template, values)
}

// CompileWith compiles template, resolving each placeholder through r,
// using DefaultOptions.
func CompileWith(template string, r Resolver) (Result, error) {
	return defaultCompiler.CompileWith(template, r)
}

// Compile scans template, fills its placeholders with values in order,
// derives the class identifier from the assembled content, rewrites the
// scope marker and normalizes the result.
func (c *Compiler) Compile(template string, values []string) (Result, error) {
	scanned, err := Scan(template)
	if err != nil {
		return Result{}, err
	}
	return c.compileScanned(scanned, values)
}

// CompileWith is Compile with values supplied by a Resolver.
func (c *Compiler) CompileWith(template string, r Resolver) (Result, error) {
	scanned, err := Scan(template)
	if err != nil {
		return Result{}, err
	}

	spans := scanned.Spans()
	values := make([]string, len(spans))
	for i, span := range spans {
		v, err := r.Resolve(span.Expr)
		if err != nil {
			return Result{}, newUnresolvedExprError(template, span, err)
		}
		values[i] = v
	}

	return c.compileScanned(scanned, values)
}

func (c *Compiler) compileScanned(scanned Scanned, values []string) (Result, error) {
	content, err := Assemble(scanned, values)
	if err != nil {
		return Result{}, err
	}

	// The identifier is taken from the content before the marker is
	// rewritten.
	id := GenerateID(content)
	scoped := RewriteScope(content, id)

	css, err := c.normalizer.Normalize(scoped)
	if err != nil {
		c.logger.Debug("normalizer rejected scoped content",
			zap.String("class", id),
			zap.Error(err))
		return Result{}, cssError(err)
	}

	c.logger.Debug("compiled scoped style",
		zap.String("class", id),
		zap.Int("placeholders", len(values)),
		zap.Int("content_bytes", len(content)),
		zap.Int("css_bytes", len(css)))

	return Result{Class: id, Stylesheet: css}, nil
}
