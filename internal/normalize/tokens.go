package normalize

import (
	"strings"

	"github.com/tdewolff/parse/v2/css"
)

type tokenContext int

const (
	selectorContext tokenContext = iota
	valueContext
	preludeContext
)

// join prints a run of component tokens. Whitespace collapses to one space
// and is dropped next to delimiters where CSS does not need it. Semicolons
// left in front of a selector by a stray top-level ';' are dropped.
func (p *printer) join(tokens []css.Token, ctx tokenContext) string {
	toks := make([]css.Token, 0, len(tokens))
	for _, tok := range tokens {
		if tok.TokenType == css.CommentToken {
			continue
		}
		toks = append(toks, tok)
	}
	for len(toks) > 0 && (toks[0].TokenType == css.WhitespaceToken ||
		ctx == selectorContext && toks[0].TokenType == css.SemicolonToken) {
		toks = toks[1:]
	}
	for len(toks) > 0 && toks[len(toks)-1].TokenType == css.WhitespaceToken {
		toks = toks[:len(toks)-1]
	}

	var b strings.Builder
	parens := 0
	var prev *css.Token

	for i := range toks {
		tok := &toks[i]

		if tok.TokenType == css.WhitespaceToken {
			if prev != nil && prev.TokenType == css.WhitespaceToken {
				continue
			}
			next := nextSolid(toks, i)
			if next == nil || p.dropSpace(prev, next, ctx, parens) {
				continue
			}
			b.WriteByte(' ')
			prev = tok
			continue
		}

		if !p.minify && spacedDelimiter(tok, ctx, parens) {
			if b.Len() > 0 && !strings.HasSuffix(b.String(), " ") {
				b.WriteByte(' ')
			}
			b.Write(tok.Data)
			b.WriteByte(' ')
			prev = &css.Token{TokenType: css.WhitespaceToken, Data: []byte(" ")}
			continue
		}

		switch tok.TokenType {
		case css.LeftParenthesisToken, css.FunctionToken:
			parens++
		case css.RightParenthesisToken:
			if parens > 0 {
				parens--
			}
		}

		b.WriteString(p.tokenText(tok, ctx))
		if !p.minify && (tok.TokenType == css.CommaToken || featureColon(tok, ctx, parens)) {
			b.WriteByte(' ')
			prev = &css.Token{TokenType: css.WhitespaceToken, Data: []byte(" ")}
			continue
		}
		prev = tok
	}

	return strings.TrimSpace(b.String())
}

// tokenText applies minify rewrites to value tokens.
func (p *printer) tokenText(tok *css.Token, ctx tokenContext) string {
	text := string(tok.Data)
	if !p.minify || ctx != valueContext {
		return text
	}
	switch tok.TokenType {
	case css.HashToken:
		return compactHex(text)
	case css.NumberToken, css.DimensionToken, css.PercentageToken:
		return trimLeadingZero(text)
	}
	return text
}

// dropSpace reports whether a whitespace run between prev and next can go.
func (p *printer) dropSpace(prev, next *css.Token, ctx tokenContext, parens int) bool {
	if prev == nil {
		return true
	}
	if prev.TokenType == css.WhitespaceToken {
		return true
	}
	if prev.TokenType == css.CommaToken || next.TokenType == css.CommaToken {
		return true
	}
	if prev.TokenType == css.LeftParenthesisToken || prev.TokenType == css.FunctionToken {
		return true
	}
	if next.TokenType == css.RightParenthesisToken {
		return true
	}
	if featureColon(next, ctx, parens) {
		return true
	}
	if !p.minify {
		return false
	}
	switch ctx {
	case selectorContext:
		return parens == 0 && (isCombinator(prev) || isCombinator(next))
	case valueContext:
		return isDelim(next, '!')
	case preludeContext:
		return prev.TokenType == css.ColonToken || next.TokenType == css.ColonToken
	}
	return false
}

// spacedDelimiter reports tokens the formatted printer surrounds with spaces.
func spacedDelimiter(tok *css.Token, ctx tokenContext, parens int) bool {
	return ctx == selectorContext && parens == 0 && isCombinator(tok)
}

// featureColon reports the colon of a media feature such as (max-width: 1px).
// Colons outside parentheses, as in @page :first, start a pseudo-class.
func featureColon(tok *css.Token, ctx tokenContext, parens int) bool {
	return ctx == preludeContext && parens > 0 && tok.TokenType == css.ColonToken
}

func nextSolid(toks []css.Token, i int) *css.Token {
	for j := i + 1; j < len(toks); j++ {
		if toks[j].TokenType != css.WhitespaceToken {
			return &toks[j]
		}
	}
	return nil
}

func isCombinator(tok *css.Token) bool {
	return isDelim(tok, '>') || isDelim(tok, '+') || isDelim(tok, '~')
}

func isDelim(tok *css.Token, c byte) bool {
	return tok != nil && tok.TokenType == css.DelimToken && len(tok.Data) == 1 && tok.Data[0] == c
}

// trimLeadingZero shortens 0.5 to .5 and -0.5 to -.5.
func trimLeadingZero(num string) string {
	sign := ""
	rest := num
	if strings.HasPrefix(rest, "-") || strings.HasPrefix(rest, "+") {
		sign, rest = rest[:1], rest[1:]
	}
	if len(rest) > 2 && rest[0] == '0' && rest[1] == '.' {
		return sign + rest[1:]
	}
	return num
}
