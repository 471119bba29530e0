package normalize

import (
	"fmt"
	"io"

	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
)

// opener is an unclosed block on the validation stack.
type opener struct {
	closer byte
	offset int
}

// validate lexes the whole input and rejects unbalanced blocks, bad strings
// and bad urls. The lexer returns every byte of input, so summing token
// lengths tracks the offset.
func validate(content string) error {
	lexer := css.NewLexer(parse.NewInputString(content))
	var stack []opener
	offset := 0

	for {
		tt, text := lexer.Next()
		start := offset
		offset += len(text)

		switch tt {
		case css.ErrorToken:
			if err := lexer.Err(); err != nil && err != io.EOF {
				return syntaxErrorAt(content, start, err.Error())
			}
			if len(stack) > 0 {
				top := stack[len(stack)-1]
				return syntaxErrorAt(content, top.offset,
					fmt.Sprintf("unclosed block, expected %q before end of input", top.closer))
			}
			return nil
		case css.BadStringToken:
			return syntaxErrorAt(content, start, "unterminated string")
		case css.BadURLToken:
			return syntaxErrorAt(content, start, "malformed url()")
		case css.LeftBraceToken:
			stack = append(stack, opener{closer: '}', offset: start})
		case css.LeftBracketToken:
			stack = append(stack, opener{closer: ']', offset: start})
		case css.LeftParenthesisToken, css.FunctionToken:
			stack = append(stack, opener{closer: ')', offset: start})
		case css.RightBraceToken, css.RightBracketToken, css.RightParenthesisToken:
			closer := text[0]
			if len(stack) == 0 || stack[len(stack)-1].closer != closer {
				return syntaxErrorAt(content, start, fmt.Sprintf("unexpected %q", closer))
			}
			stack = stack[:len(stack)-1]
		}
	}
}

func syntaxErrorAt(content string, offset int, msg string) *SyntaxError {
	line, col := position(content, offset)
	return &SyntaxError{Offset: offset, Line: line, Column: col, Msg: msg}
}

// position converts a byte offset into a 1-based line and column.
func position(content string, offset int) (int, int) {
	if offset > len(content) {
		offset = len(content)
	}
	line, col := 1, 1
	for i := 0; i < offset; i++ {
		if content[i] == '\n' {
			line++
			col = 1
			continue
		}
		col++
	}
	return line, col
}
