// Package report prints compile diagnostics and generation summaries.
package report

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/yacobolo/scopedcss"
)

// Config controls reporter output.
type Config struct {
	UseColors       bool // Force colors; otherwise auto-detected
	PrintLines      bool // Show the template line under each issue
	PrintLinterName bool // Show the (scopedcss) suffix
}

// Reporter formats issues in golangci-lint style.
type Reporter struct {
	w               io.Writer
	useColors       bool
	printLines      bool
	printLinterName bool
}

// NewReporter creates a reporter writing to w.
func NewReporter(w io.Writer, config Config) *Reporter {
	return &Reporter{
		w:               w,
		useColors:       ShouldUseColors(config.UseColors),
		printLines:      config.PrintLines,
		printLinterName: config.PrintLinterName,
	}
}

// ShouldUseColors decides whether output gets colors: an explicit request,
// FORCE_COLOR, GitHub Actions, or a terminal on stdout.
func ShouldUseColors(force bool) bool {
	if force {
		return true
	}
	if os.Getenv("FORCE_COLOR") != "" {
		return true
	}
	if os.Getenv("GITHUB_ACTIONS") == "true" {
		return true
	}
	if fileInfo, err := os.Stdout.Stat(); err == nil && (fileInfo.Mode()&os.ModeCharDevice) != 0 {
		return true
	}
	return false
}

// UseColors returns whether colors are enabled.
func (r *Reporter) UseColors() bool {
	return r.useColors
}

// PrintIssues prints issues sorted by file, line and column.
func (r *Reporter) PrintIssues(issues []scopedcss.Issue) {
	sorted := make([]scopedcss.Issue, len(issues))
	copy(sorted, issues)
	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := sorted[i].Pos, sorted[j].Pos
		if a.Filename != b.Filename {
			return a.Filename < b.Filename
		}
		if a.Line != b.Line {
			return a.Line < b.Line
		}
		return a.Column < b.Column
	})

	for _, issue := range sorted {
		r.printIssue(issue)
	}
}

// printIssue prints file:line:col: message (linter), then the source line
// and a caret.
func (r *Reporter) printIssue(issue scopedcss.Issue) {
	location := issue.Pos.Filename + ":"
	if issue.Pos.Line > 0 {
		location = fmt.Sprintf("%s:%d:%d:", issue.Pos.Filename, issue.Pos.Line, issue.Pos.Column)
	}

	linterSuffix := ""
	if r.printLinterName {
		linterSuffix = fmt.Sprintf(" (%s)", issue.FromLinter)
	}

	fmt.Fprintf(r.w, "%s %s%s\n",
		RenderStyle(StyleCyan, location, r.useColors),
		issue.Text,
		RenderStyle(StyleGray, linterSuffix, r.useColors))

	if r.printLines && len(issue.SourceLines) > 0 {
		for _, line := range issue.SourceLines {
			fmt.Fprintf(r.w, "\t%s\n", line)
		}
		caret := r.buildCaretIndicator(issue.SourceLines[0], issue.Pos.Column)
		fmt.Fprintf(r.w, "\t%s\n", RenderStyle(StyleYellow, caret, r.useColors))
	}
}

// buildCaretIndicator returns a "^" under column, copying tabs from the
// source line so the caret lines up.
func (r *Reporter) buildCaretIndicator(sourceLine string, column int) string {
	if column <= 0 {
		return "^"
	}

	prefixLen := column - 1
	if prefixLen > len(sourceLine) {
		prefixLen = len(sourceLine)
	}

	var padding strings.Builder
	for _, ch := range sourceLine[:prefixLen] {
		if ch == '\t' {
			padding.WriteRune('\t')
		} else {
			padding.WriteRune(' ')
		}
	}

	return padding.String() + "^"
}

// PrintSummary prints the issue count line for a generation run.
func (r *Reporter) PrintSummary(result *scopedcss.GenerateResult) {
	var errors, warnings int
	for _, issue := range result.Issues {
		switch issue.Severity {
		case scopedcss.SeverityError:
			errors++
		case scopedcss.SeverityWarning:
			warnings++
		}
	}

	if len(result.Issues) == 0 {
		return
	}

	fmt.Fprintln(r.w, "")
	summary := fmt.Sprintf("%s (%s, %s)",
		pluralizeCount(len(result.Issues), "issue", "issues"),
		pluralizeCount(errors, "error", "errors"),
		pluralizeCount(warnings, "warning", "warnings"))
	style := StyleYellow
	if errors > 0 {
		style = StyleRed
	}
	fmt.Fprintln(r.w, RenderStyle(style, summary, r.useColors))
}

// pluralizeCount formats count with the singular or plural noun.
func pluralizeCount(count int, singular, plural string) string {
	if count == 1 {
		return fmt.Sprintf("%d %s", count, singular)
	}
	return fmt.Sprintf("%d %s", count, plural)
}
