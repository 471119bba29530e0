package scopedcss

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode"

	"go.uber.org/zap"
)

// GeneratedFileName is the file Generate writes into Config.OutputDir.
const GeneratedFileName = "styles.gen.go"

// Config holds batch generation settings.
type Config struct {
	SourceDir   string      // "web/styles"
	OutputDir   string      // "internal/web/ui"
	PackageName string      // "ui"
	Includes    []string    // ["**/*.scoped.css"]
	Minify      bool        // Minified stylesheets in the generated file
	Values      MapResolver // Placeholder values shared by every template
	Logger      *zap.Logger
}

// Style is one compiled template.
type Style struct {
	Name       string // Template name without extension, "button"
	GoName     string // "Button"
	SourceFile string
	Class      string
	Stylesheet string
}

// GenerateResult contains generation stats.
type GenerateResult struct {
	FilesScanned     int
	FilesSkipped     int
	StylesGenerated  int
	DuplicatesMerged int // Templates whose class matched an earlier one
	OutputFile       string
	Styles           []Style
	Issues           []Issue
	Warnings         []string
}

// HasErrors reports whether any template failed to compile.
func (r *GenerateResult) HasErrors() bool {
	for _, issue := range r.Issues {
		if issue.Severity == SeverityError {
			return true
		}
	}
	return false
}

// Generate compiles every template matched by config and writes a Go file of
// constants. Templates that fail are reported as issues; the rest are still
// written.
func Generate(config Config) (*GenerateResult, error) {
	logger := config.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	result := &GenerateResult{}

	// 1. Discover templates
	files, stats, err := discoverTemplates(config.SourceDir, config.Includes)
	if err != nil {
		return nil, fmt.Errorf("scan failed: %w", err)
	}
	result.FilesScanned = len(files)
	result.FilesSkipped = stats.FilesSkipped
	logger.Info("discovered templates",
		zap.Int("files", len(files)),
		zap.Int("skipped", stats.FilesSkipped))

	// 2. Compile each template
	compiler := New(Options{Minify: config.Minify, Logger: logger})
	resolver := config.Values
	if resolver == nil {
		resolver = MapResolver{}
	}

	var styles []Style
	for _, file := range files {
		style, issue, err := compileFile(compiler, resolver, file)
		if err != nil {
			return nil, err
		}
		if issue != nil {
			logger.Debug("template failed", zap.String("file", file), zap.String("error", issue.Text))
			result.Issues = append(result.Issues, *issue)
			continue
		}
		logger.Debug("compiled template", zap.String("file", file), zap.String("class", style.Class))
		styles = append(styles, style)
	}

	// 3. Assign Go names
	assignGoNames(styles)
	result.Styles = styles
	result.StylesGenerated = len(styles)

	// 4. Write Go file
	outputFile := filepath.Join(config.OutputDir, GeneratedFileName)
	merged, err := WriteGoFile(outputFile, config.PackageName, styles)
	if err != nil {
		return nil, fmt.Errorf("write failed: %w", err)
	}
	result.OutputFile = outputFile
	result.DuplicatesMerged = merged
	if merged > 0 {
		result.Warnings = append(result.Warnings,
			fmt.Sprintf("%d templates share a class with an earlier template; their stylesheet is emitted once", merged))
	}

	return result, nil
}

// compileFile reads and compiles one template. Read failures are returned as
// errors; compile failures as an issue.
func compileFile(c *Compiler, r Resolver, path string) (Style, *Issue, error) {
	// #nosec G304 - path comes from glob expansion of trusted configuration
	data, err := os.ReadFile(path)
	if err != nil {
		return Style{}, nil, fmt.Errorf("read template: %w", err)
	}
	template := string(data)

	res, err := c.CompileWith(template, r)
	if err != nil {
		issue := NewIssue(path, template, err)
		return Style{}, &issue, nil
	}

	return Style{
		Name:       templateName(path),
		SourceFile: path,
		Class:      res.Class,
		Stylesheet: res.Stylesheet,
	}, nil, nil
}

// templateName strips every extension: button.scoped.css → button.
func templateName(path string) string {
	base := filepath.Base(path)
	if i := strings.IndexByte(base, '.'); i > 0 {
		return base[:i]
	}
	return base
}

// assignGoNames sets GoName on each style. Names taken directly from a file
// win; later repeats get the lowest free numeric suffix in file order.
func assignGoNames(styles []Style) {
	used := make(map[string]bool, len(styles))
	var repeats []int
	for i := range styles {
		name := toGoName(styles[i].Name)
		if name == "" || !unicode.IsLetter([]rune(name)[0]) {
			name = "Style" + name
		}
		styles[i].GoName = name
		if used[name] {
			repeats = append(repeats, i)
			continue
		}
		used[name] = true
	}

	for _, i := range repeats {
		base := styles[i].GoName
		for n := 2; ; n++ {
			name := fmt.Sprintf("%s%d", base, n)
			if !used[name] {
				styles[i].GoName = name
				used[name] = true
				break
			}
		}
	}
}

// toGoName converts kebab-case or snake_case to PascalCase, dropping any
// rune that cannot appear in an identifier.
func toGoName(name string) string {
	parts := strings.FieldsFunc(name, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})

	for i, part := range parts {
		runes := []rune(part)
		runes[0] = unicode.ToUpper(runes[0])
		parts[i] = string(runes)
	}

	return strings.Join(parts, "")
}
