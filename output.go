package scopedcss

import (
	"fmt"
	"io"
)

// OutputFormat selects how a compile result is written.
type OutputFormat string

const (
	// OutputCSS writes the stylesheet only.
	OutputCSS OutputFormat = "css"
	// OutputText writes the class on the first line, then the stylesheet.
	OutputText OutputFormat = "text"
	// OutputJSON writes {"class", "selector", "css"}.
	OutputJSON OutputFormat = "json"
)

// DetermineOutputFormat maps a flag value to an OutputFormat. Unknown values
// fall back to text.
func DetermineOutputFormat(formatFlag string) OutputFormat {
	switch formatFlag {
	case "css":
		return OutputCSS
	case "json":
		return OutputJSON
	case "text", "":
		return OutputText
	default:
		return OutputText
	}
}

// WriteResult writes res to w in the given format.
func WriteResult(w io.Writer, res Result, format OutputFormat) error {
	switch format {
	case OutputCSS:
		_, err := fmt.Fprintln(w, res.Stylesheet)
		return err
	case OutputJSON:
		return WriteJSON(w, res)
	default:
		_, err := fmt.Fprintf(w, "class: %s\n%s\n", res.Class, res.Stylesheet)
		return err
	}
}
