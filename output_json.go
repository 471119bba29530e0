package scopedcss

import (
	"encoding/json"
	"io"
)

// JSONResult is the JSON shape of a compile result.
type JSONResult struct {
	Class    string `json:"class"`
	Selector string `json:"selector"`
	CSS      string `json:"css"`
}

// JSONGenerateOutput is the JSON shape of a generation run.
type JSONGenerateOutput struct {
	Summary JSONSummary `json:"summary"`
	Styles  []JSONStyle `json:"styles"`
	Issues  []JSONIssue `json:"issues"`
}

// JSONSummary contains high-level generation counts.
type JSONSummary struct {
	FilesScanned     int    `json:"files_scanned"`
	StylesGenerated  int    `json:"styles_generated"`
	DuplicatesMerged int    `json:"duplicates_merged"`
	Errors           int    `json:"errors"`
	OutputFile       string `json:"output_file,omitempty"`
}

// JSONStyle is one compiled template.
type JSONStyle struct {
	Name   string `json:"name"`
	GoName string `json:"go_name"`
	File   string `json:"file"`
	Class  string `json:"class"`
}

// JSONIssue is a single compile diagnostic.
type JSONIssue struct {
	File     string `json:"file"`
	Line     int    `json:"line"`
	Column   int    `json:"column"`
	Severity string `json:"severity"`
	Message  string `json:"message"`
	Source   string `json:"source,omitempty"`
}

// WriteJSON writes a compile result as indented JSON.
func WriteJSON(w io.Writer, res Result) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(JSONResult{
		Class:    res.Class,
		Selector: res.Selector(),
		CSS:      res.Stylesheet,
	})
}

// WriteGenerateJSON writes a generation result as indented JSON.
func WriteGenerateJSON(w io.Writer, result *GenerateResult) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(buildGenerateJSON(result))
}

func buildGenerateJSON(result *GenerateResult) JSONGenerateOutput {
	out := JSONGenerateOutput{
		Summary: JSONSummary{
			FilesScanned:     result.FilesScanned,
			StylesGenerated:  result.StylesGenerated,
			DuplicatesMerged: result.DuplicatesMerged,
			OutputFile:       result.OutputFile,
		},
		Styles: make([]JSONStyle, 0, len(result.Styles)),
		Issues: make([]JSONIssue, 0, len(result.Issues)),
	}

	for _, s := range result.Styles {
		out.Styles = append(out.Styles, JSONStyle{
			Name:   s.Name,
			GoName: s.GoName,
			File:   s.SourceFile,
			Class:  s.Class,
		})
	}

	for _, issue := range result.Issues {
		if issue.Severity == SeverityError {
			out.Summary.Errors++
		}
		ji := JSONIssue{
			File:     issue.Pos.Filename,
			Line:     issue.Pos.Line,
			Column:   issue.Pos.Column,
			Severity: issue.Severity,
			Message:  issue.Text,
		}
		if len(issue.SourceLines) > 0 {
			ji.Source = issue.SourceLines[0]
		}
		out.Issues = append(out.Issues, ji)
	}

	return out
}
