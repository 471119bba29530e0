package scopedcss

import (
	"errors"
	"strings"
)

// Issue is a compile diagnostic in golangci-lint shape.
type Issue struct {
	FromLinter  string   `json:"FromLinter"`  // "scopedcss"
	Text        string   `json:"Text"`        // "unclosed placeholder: \"[[\" has no matching \"]]\""
	Severity    string   `json:"Severity"`    // "error", "warning"
	SourceLines []string `json:"SourceLines"` // Template line the issue points at
	Pos         IssuePos `json:"Pos"`
}

// IssuePos is the location of an issue.
type IssuePos struct {
	Filename string `json:"Filename"`
	Line     int    `json:"Line"`
	Column   int    `json:"Column"` // 1-based
}

// Issue severities.
const (
	SeverityError   = "error"
	SeverityWarning = "warning"
)

// LinterName tags issues produced by this package.
const LinterName = "scopedcss"

// NewIssue converts a compile error for the template at filename into an
// Issue. CSS errors carry positions in the scoped content; placeholder
// values rarely add lines, so the line is used against the template as is.
func NewIssue(filename, template string, err error) Issue {
	issue := Issue{
		FromLinter: LinterName,
		Text:       err.Error(),
		Severity:   SeverityError,
		Pos:        IssuePos{Filename: filename},
	}

	var ce *CompileError
	if !errors.As(err, &ce) {
		return issue
	}

	issue.Text = ce.Kind.String()
	if ce.Msg != "" {
		issue.Text += ": " + ce.Msg
	}
	issue.Pos.Line = ce.Line
	issue.Pos.Column = ce.Column

	if ce.Line > 0 {
		lines := strings.Split(template, "\n")
		if ce.Line <= len(lines) {
			issue.SourceLines = []string{lines[ce.Line-1]}
		}
	}
	return issue
}
