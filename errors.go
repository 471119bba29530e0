package scopedcss

import (
	"errors"
	"fmt"
	"strings"

	"github.com/yacobolo/scopedcss/internal/normalize"
)

// ErrorKind classifies a CompileError.
type ErrorKind int

// Error kinds. Every kind is fatal for the invocation that produced it.
const (
	KindUnclosedPlaceholder ErrorKind = iota + 1
	KindUnresolvedPlaceholder
	KindCSSSyntax
	KindCSSPrint
)

// String returns the kind name used in diagnostics.
func (k ErrorKind) String() string {
	switch k {
	case KindUnclosedPlaceholder:
		return "unclosed placeholder"
	case KindUnresolvedPlaceholder:
		return "unresolved placeholder"
	case KindCSSSyntax:
		return "css syntax error"
	case KindCSSPrint:
		return "css print error"
	default:
		return "unknown error"
	}
}

// Sentinels for errors.Is. They match any CompileError of the same kind.
var (
	ErrUnclosedPlaceholder   = &CompileError{Kind: KindUnclosedPlaceholder}
	ErrUnresolvedPlaceholder = &CompileError{Kind: KindUnresolvedPlaceholder}
	ErrCSSSyntax             = &CompileError{Kind: KindCSSSyntax}
	ErrCSSPrint              = &CompileError{Kind: KindCSSPrint}
)

// CompileError is the single failure type returned by the compiler.
type CompileError struct {
	Kind ErrorKind

	// Offset is a byte offset into the template for placeholder errors, or
	// into the scoped content for CSS errors. -1 when unknown.
	Offset int
	Line   int // 1-based, 0 when unknown
	Column int // 1-based, 0 when unknown

	Expr string // Placeholder expression, when one is involved
	Msg  string
	Err  error // Underlying normalizer error, if any
}

// Error implements the error interface.
func (e *CompileError) Error() string {
	var b strings.Builder
	b.WriteString(e.Kind.String())
	if e.Line > 0 {
		fmt.Fprintf(&b, " at %d:%d", e.Line, e.Column)
	}
	if e.Msg != "" {
		b.WriteString(": ")
		b.WriteString(e.Msg)
	}
	return b.String()
}

// Unwrap returns the normalizer cause.
func (e *CompileError) Unwrap() error {
	return e.Err
}

// Is matches CompileErrors by kind.
func (e *CompileError) Is(target error) bool {
	var t *CompileError
	if errors.As(target, &t) {
		return e.Kind == t.Kind
	}
	return false
}

func newUnclosedError(template string, offset int) *CompileError {
	line, col := lineColumn(template, offset)
	return &CompileError{
		Kind:   KindUnclosedPlaceholder,
		Offset: offset,
		Line:   line,
		Column: col,
		Msg:    fmt.Sprintf("%q has no matching %q", OpenMarker, CloseMarker),
	}
}

func newUnresolvedCountError(spans, values int) *CompileError {
	return &CompileError{
		Kind:   KindUnresolvedPlaceholder,
		Offset: -1,
		Msg:    fmt.Sprintf("template has %d placeholders but %d values were supplied", spans, values),
	}
}

func newUnresolvedExprError(template string, span Span, cause error) *CompileError {
	line, col := lineColumn(template, span.Start)
	msg := fmt.Sprintf("no value for %s%s%s", OpenMarker, span.Expr, CloseMarker)
	if cause != nil {
		msg += ": " + cause.Error()
	}
	return &CompileError{
		Kind:   KindUnresolvedPlaceholder,
		Offset: span.Start,
		Line:   line,
		Column: col,
		Expr:   span.Expr,
		Msg:    msg,
		Err:    cause,
	}
}

// cssError classifies an error returned by a Normalizer. Errors that are not
// print failures count as syntax rejections.
func cssError(err error) *CompileError {
	var printErr *normalize.PrintError
	if errors.As(err, &printErr) {
		return &CompileError{Kind: KindCSSPrint, Offset: -1, Msg: printErr.Error(), Err: err}
	}

	ce := &CompileError{Kind: KindCSSSyntax, Offset: -1, Msg: err.Error(), Err: err}
	var syntaxErr *normalize.SyntaxError
	if errors.As(err, &syntaxErr) {
		ce.Offset = syntaxErr.Offset
		ce.Line = syntaxErr.Line
		ce.Column = syntaxErr.Column
		ce.Msg = syntaxErr.Msg
	}
	return ce
}

// lineColumn converts a byte offset into a 1-based line and column.
func lineColumn(text string, offset int) (int, int) {
	if offset < 0 {
		return 0, 0
	}
	if offset > len(text) {
		offset = len(text)
	}
	prefix := text[:offset]
	line := strings.Count(prefix, "\n") + 1
	col := offset - strings.LastIndexByte(prefix, '\n')
	return line, col
}
