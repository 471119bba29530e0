package normalize

import "fmt"

// SyntaxError reports content the normalizer refused to accept.
type SyntaxError struct {
	Offset int // Byte offset into the input, -1 when unknown
	Line   int
	Column int
	Msg    string
}

func (e *SyntaxError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("%d:%d: %s", e.Line, e.Column, e.Msg)
	}
	return e.Msg
}

// PrintError reports a failure while serializing content that passed
// validation.
type PrintError struct {
	Err error
}

func (e *PrintError) Error() string {
	return "print: " + e.Err.Error()
}

func (e *PrintError) Unwrap() error {
	return e.Err
}
