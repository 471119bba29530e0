package scopedcss

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScan(t *testing.T) {
	tests := []struct {
		name     string
		template string
		want     []Segment
	}{
		{
			name:     "no placeholders",
			template: "& { color: red; }",
			want:     []Segment{{Literal: "& { color: red; }"}},
		},
		{
			name:     "placeholder between literals",
			template: "a [[x]] b",
			want: []Segment{
				{Literal: "a "},
				{IsSpan: true, Span: Span{Start: 2, End: 7, Expr: "x"}},
				{Literal: " b"},
			},
		},
		{
			name:     "adjacent placeholders",
			template: "[[a]][[ b ]]",
			want: []Segment{
				{IsSpan: true, Span: Span{Start: 0, End: 5, Expr: "a"}},
				{IsSpan: true, Span: Span{Start: 5, End: 12, Expr: " b "}},
			},
		},
		{
			name:     "first closing marker ends the span",
			template: "[[ [[x]] ]]",
			want: []Segment{
				{IsSpan: true, Span: Span{Start: 0, End: 8, Expr: " [[x"}},
				{Literal: " ]]"},
			},
		},
		{
			name:     "stray closing marker is literal",
			template: "a ]] b",
			want:     []Segment{{Literal: "a ]] b"}},
		},
		{
			name:     "empty expression",
			template: "[[]]",
			want:     []Segment{{IsSpan: true, Span: Span{Start: 0, End: 4, Expr: ""}}},
		},
		{
			name:     "empty template",
			template: "",
			want:     nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Scan(tt.template)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.Segments)
		})
	}
}

func TestScanSpans(t *testing.T) {
	got, err := Scan("& { color: [[fg]]; background: [[bg]]; }")
	require.NoError(t, err)

	spans := got.Spans()
	require.Len(t, spans, 2)
	assert.Equal(t, "fg", spans[0].Expr)
	assert.Equal(t, "bg", spans[1].Expr)
	assert.Less(t, spans[0].End, spans[1].Start)
}

func TestScanUnclosed(t *testing.T) {
	tests := []struct {
		name     string
		template string
		offset   int
		line     int
		column   int
	}{
		{
			name:     "single line",
			template: "& { color: [[fg; }",
			offset:   11,
			line:     1,
			column:   12,
		},
		{
			name:     "second line",
			template: "& {\n  color: [[fg;\n}",
			offset:   13,
			line:     2,
			column:   10,
		},
		{
			name:     "after a closed placeholder",
			template: "[[a]] [[b",
			offset:   6,
			line:     1,
			column:   7,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Scan(tt.template)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrUnclosedPlaceholder))

			var ce *CompileError
			require.True(t, errors.As(err, &ce))
			assert.Equal(t, tt.offset, ce.Offset)
			assert.Equal(t, tt.line, ce.Line)
			assert.Equal(t, tt.column, ce.Column)
		})
	}
}
