package scopedcss

import (
	"fmt"
	"strings"
)

// Assemble joins the literal chunks of a scanned template with the resolved
// values, filling spans strictly in scan order. The number of values must
// equal the number of spans.
//
// Values are spliced through a small slot grammar where "{}" marks a slot and
// "{{" / "}}" stand for literal braces. Literal chunks are escaped before
// expansion so that CSS rule braces come out exactly as written.
func Assemble(s Scanned, values []string) (string, error) {
	spans := s.Spans()
	if len(spans) != len(values) {
		return "", newUnresolvedCountError(len(spans), len(values))
	}

	return fillSlots(slotFormat(s.Segments), values)
}

// slotFormat renders segments into the slot grammar.
func slotFormat(segments []Segment) string {
	var b strings.Builder
	for _, seg := range segments {
		if seg.IsSpan {
			b.WriteString("{}")
			continue
		}
		b.WriteString(escapeBraces(seg.Literal))
	}
	return b.String()
}

// escapeBraces doubles every { and } in a literal chunk.
func escapeBraces(s string) string {
	if !strings.ContainsAny(s, "{}") {
		return s
	}
	var b strings.Builder
	b.Grow(len(s) + 8)
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c == '{' || c == '}' {
			b.WriteByte(c)
		}
		b.WriteByte(c)
	}
	return b.String()
}

// fillSlots expands a slot-grammar string with values in order.
func fillSlots(format string, values []string) (string, error) {
	var b strings.Builder
	b.Grow(len(format))
	next := 0

	for i := 0; i < len(format); i++ {
		c := format[i]
		switch c {
		case '{':
			if i+1 >= len(format) {
				return "", fmt.Errorf("slot format: dangling '{' at offset %d", i)
			}
			switch format[i+1] {
			case '{':
				b.WriteByte('{')
			case '}':
				if next >= len(values) {
					return "", fmt.Errorf("slot format: slot %d has no value", next)
				}
				b.WriteString(values[next])
				next++
			default:
				return "", fmt.Errorf("slot format: unescaped '{' at offset %d", i)
			}
			i++
		case '}':
			if i+1 >= len(format) || format[i+1] != '}' {
				return "", fmt.Errorf("slot format: unescaped '}' at offset %d", i)
			}
			b.WriteByte('}')
			i++
		default:
			b.WriteByte(c)
		}
	}

	if next != len(values) {
		return "", fmt.Errorf("slot format: %d values supplied, %d slots filled", len(values), next)
	}
	return b.String(), nil
}
