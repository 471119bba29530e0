package scopedcss

import "strings"

// Template delimiters and the reserved scope marker.
const (
	OpenMarker  = "[["
	CloseMarker = "]]"
	ScopeMarker = "&"
)

// Span is a placeholder found in a template: the text between [[ and ]].
type Span struct {
	Start int    // Offset of the opening [[
	End   int    // Offset just past the closing ]]
	Expr  string // Verbatim expression text, opaque to the compiler
}

// Segment is one piece of a scanned template. Exactly one of Literal or
// Span is meaningful; IsSpan tells which.
type Segment struct {
	Literal string
	Span    Span
	IsSpan  bool
}

// Scanned is the ordered result of scanning a template.
type Scanned struct {
	Segments []Segment
}

// Spans returns the placeholder spans in left-to-right order.
func (s Scanned) Spans() []Span {
	var spans []Span
	for _, seg := range s.Segments {
		if seg.IsSpan {
			spans = append(spans, seg.Span)
		}
	}
	return spans
}

// Scan splits a template into literal chunks and placeholder spans.
// An opening [[ with no later ]] is an UnclosedPlaceholder error.
func Scan(template string) (Scanned, error) {
	var out Scanned
	pos := 0

	for {
		start := strings.Index(template[pos:], OpenMarker)
		if start == -1 {
			break
		}
		start += pos

		exprStart := start + len(OpenMarker)
		end := strings.Index(template[exprStart:], CloseMarker)
		if end == -1 {
			return Scanned{}, newUnclosedError(template, start)
		}
		end += exprStart

		if start > pos {
			out.Segments = append(out.Segments, Segment{Literal: template[pos:start]})
		}
		out.Segments = append(out.Segments, Segment{
			IsSpan: true,
			Span: Span{
				Start: start,
				End:   end + len(CloseMarker),
				Expr:  template[exprStart:end],
			},
		})

		pos = end + len(CloseMarker)
	}

	if pos < len(template) {
		out.Segments = append(out.Segments, Segment{Literal: template[pos:]})
	}

	return out, nil
}
