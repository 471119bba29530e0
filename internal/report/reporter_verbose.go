package report

import (
	"fmt"
	"io"

	"github.com/yacobolo/scopedcss"
)

// VerboseReporter prints generation statistics and the generated styles.
type VerboseReporter struct {
	w         io.Writer
	useColors bool
}

// NewVerboseReporter creates a verbose reporter.
func NewVerboseReporter(w io.Writer, useColors bool) *VerboseReporter {
	return &VerboseReporter{
		w:         w,
		useColors: useColors,
	}
}

// PrintStatistics outputs generation counts.
func (r *VerboseReporter) PrintStatistics(result *scopedcss.GenerateResult) {
	fmt.Fprintln(r.w, RenderStyle(StyleGreen, "Generated "+result.OutputFile, r.useColors))
	fmt.Fprintf(r.w, "  Files scanned:     %d\n", result.FilesScanned)
	if result.FilesSkipped > 0 {
		fmt.Fprintf(r.w, "  Files ignored:     %d\n", result.FilesSkipped)
	}
	fmt.Fprintf(r.w, "  Styles generated:  %d\n", result.StylesGenerated)
	if result.DuplicatesMerged > 0 {
		fmt.Fprintf(r.w, "  Duplicates merged: %d\n", result.DuplicatesMerged)
	}
}

// PrintStyles lists each generated constant with its class.
func (r *VerboseReporter) PrintStyles(result *scopedcss.GenerateResult) {
	if len(result.Styles) == 0 {
		return
	}

	fmt.Fprintln(r.w, "")
	fmt.Fprintln(r.w, RenderStyle(StyleCyan, "Styles", r.useColors))
	fmt.Fprintln(r.w, "------")
	for _, s := range result.Styles {
		fmt.Fprintf(r.w, "%-24s %s  %s\n",
			s.GoName+"Class",
			RenderStyle(StyleGray, s.Class, r.useColors),
			s.SourceFile)
	}
}

// PrintWarnings shows generation warnings.
func (r *VerboseReporter) PrintWarnings(result *scopedcss.GenerateResult) {
	if len(result.Warnings) == 0 {
		return
	}

	fmt.Fprintln(r.w, "")
	fmt.Fprintln(r.w, RenderStyle(StyleYellow, "Warnings", r.useColors))
	fmt.Fprintln(r.w, "--------")

	for _, warning := range result.Warnings {
		fmt.Fprintf(r.w, "• %s\n", warning)
	}
}
