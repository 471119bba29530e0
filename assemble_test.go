package scopedcss

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAssemble(t *testing.T) {
	tests := []struct {
		name     string
		template string
		values   []string
		want     string
	}{
		{
			name:     "literal only",
			template: "& { color: red; }",
			want:     "& { color: red; }",
		},
		{
			name:     "values fill in order",
			template: "& { color: [[fg]]; background: [[bg]]; }",
			values:   []string{"red", "blue"},
			want:     "& { color: red; background: blue; }",
		},
		{
			name:     "value braces are not slots",
			template: "& { content: [[v]]; }",
			values:   []string{"{}{{}}"},
			want:     "& { content: {}{{}}; }",
		},
		{
			name:     "doubled braces in literals survive",
			template: "{{ [[x]] }}",
			values:   []string{"y"},
			want:     "{{ y }}",
		},
		{
			name:     "empty value",
			template: "a[[x]]b",
			values:   []string{""},
			want:     "ab",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			scanned, err := Scan(tt.template)
			require.NoError(t, err)

			got, err := Assemble(scanned, tt.values)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAssembleValueCountMismatch(t *testing.T) {
	scanned, err := Scan("& { color: [[fg]]; }")
	require.NoError(t, err)

	_, err = Assemble(scanned, nil)
	assert.True(t, errors.Is(err, ErrUnresolvedPlaceholder))
	assert.Contains(t, err.Error(), "1 placeholders but 0 values")

	_, err = Assemble(scanned, []string{"red", "blue"})
	assert.True(t, errors.Is(err, ErrUnresolvedPlaceholder))
}

func TestEscapeBraces(t *testing.T) {
	assert.Equal(t, "plain", escapeBraces("plain"))
	assert.Equal(t, "& {{ a: b }}", escapeBraces("& { a: b }"))
	assert.Equal(t, "{{{{", escapeBraces("{{"))
}

func TestFillSlotsErrors(t *testing.T) {
	tests := []struct {
		name   string
		format string
		values []string
		errMsg string
	}{
		{"dangling open", "a{", nil, "dangling '{'"},
		{"unescaped open", "{a", nil, "unescaped '{'"},
		{"unescaped close", "a}b", nil, "unescaped '}'"},
		{"missing value", "{}{}", []string{"x"}, "slot 1 has no value"},
		{"extra value", "{}", []string{"x", "y"}, "2 values supplied, 1 slots filled"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := fillSlots(tt.format, tt.values)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}
