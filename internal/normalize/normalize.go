// Package normalize validates scoped CSS and prints it either minified or
// formatted for humans.
package normalize

import (
	"bytes"
	"errors"
	"io"
	"strings"

	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
)

// Options configures a Normalizer.
type Options struct {
	// Minify prints compact output with no optional whitespace. When false,
	// output uses two-space indentation and one declaration per line.
	Minify bool
}

// Normalizer validates and prints CSS. It holds no mutable state and is safe
// for concurrent use.
type Normalizer struct {
	opts Options
}

// New returns a Normalizer for the given options.
func New(opts Options) *Normalizer {
	return &Normalizer{opts: opts}
}

// Minify reports whether the normalizer emits compact output.
func (n *Normalizer) Minify() bool {
	return n.opts.Minify
}

// Normalize validates content and returns its printed form.
func (n *Normalizer) Normalize(content string) (string, error) {
	if err := validate(content); err != nil {
		return "", err
	}

	p := &printer{minify: n.opts.Minify, counts: []int{0}}
	if err := p.run(content); err != nil {
		return "", err
	}
	return p.buf.String(), nil
}

// WriteTo normalizes content and writes the result to w.
func (n *Normalizer) WriteTo(w io.Writer, content string) error {
	out, err := n.Normalize(content)
	if err != nil {
		return err
	}
	if _, err := io.WriteString(w, out); err != nil {
		return &PrintError{Err: err}
	}
	return nil
}

// printer walks the grammar stream of the css parser and writes output.
type printer struct {
	buf       bytes.Buffer
	minify    bool
	depth     int
	counts    []int    // Items printed per open block, index 0 is top level
	semi      bool     // Minify: a ';' is owed before the next item
	selectors []string // Selectors of a list awaiting its ruleset
}

func (p *printer) run(content string) error {
	parser := css.NewParser(parse.NewInputString(content), false)

	for {
		gt, _, data := parser.Next()
		switch gt {
		case css.ErrorGrammar:
			err := parser.Err()
			if err == nil || errors.Is(err, io.EOF) {
				if p.depth != 0 {
					return &PrintError{Err: errors.New("input ended inside an open block")}
				}
				return nil
			}
			return &SyntaxError{Offset: -1, Msg: err.Error()}

		case css.CommentGrammar:
			if bytes.HasPrefix(data, []byte("/*!")) {
				p.item(string(data))
				p.endLine()
			}

		case css.AtRuleGrammar:
			p.item(p.atRule(data, parser.Values()))
			if p.minify {
				p.semi = true
			} else {
				p.buf.WriteString(";\n")
			}

		case css.BeginAtRuleGrammar:
			p.item(p.atRule(data, parser.Values()))
			p.open()

		case css.QualifiedRuleGrammar:
			p.selectors = append(p.selectors, p.join(parser.Values(), selectorContext))

		case css.BeginRulesetGrammar:
			p.selectors = append(p.selectors, p.join(parser.Values(), selectorContext))
			sep := ", "
			if p.minify {
				sep = ","
			}
			p.item(strings.Join(p.selectors, sep))
			p.selectors = p.selectors[:0]
			p.open()

		case css.EndRulesetGrammar, css.EndAtRuleGrammar:
			if err := p.close(); err != nil {
				return err
			}

		case css.DeclarationGrammar:
			p.declaration(string(data), p.join(parser.Values(), valueContext))

		case css.CustomPropertyGrammar:
			var raw strings.Builder
			for _, tok := range parser.Values() {
				raw.Write(tok.Data)
			}
			p.declaration(string(data), strings.TrimSpace(raw.String()))

		case css.TokenGrammar:
			// Stray top-level semicolons separate nothing.
			if len(bytes.Trim(data, "; \t\r\n\f")) > 0 {
				p.item(string(data))
				p.endLine()
			}
		}
	}
}

// item starts a new statement at the current depth.
func (p *printer) item(text string) {
	if p.minify {
		if p.semi {
			p.buf.WriteByte(';')
			p.semi = false
		}
	} else {
		if p.depth == 0 && p.counts[0] > 0 {
			p.buf.WriteByte('\n')
		}
		p.indent()
	}
	p.counts[p.depth]++
	p.buf.WriteString(text)
}

func (p *printer) endLine() {
	if !p.minify {
		p.buf.WriteByte('\n')
	}
}

func (p *printer) declaration(name, value string) {
	if p.minify {
		p.item(name + ":" + value)
		p.semi = true
		return
	}
	p.item(name + ": " + value + ";")
	p.buf.WriteByte('\n')
}

func (p *printer) atRule(name []byte, prelude []css.Token) string {
	text := p.join(prelude, preludeContext)
	if text == "" {
		return string(name)
	}
	return string(name) + " " + text
}

func (p *printer) open() {
	if p.minify {
		p.buf.WriteByte('{')
	} else {
		p.buf.WriteString(" {\n")
	}
	p.depth++
	p.counts = append(p.counts, 0)
}

func (p *printer) close() error {
	if p.depth == 0 {
		return &PrintError{Err: errors.New("block closed at top level")}
	}
	p.depth--
	p.counts = p.counts[:len(p.counts)-1]
	p.semi = false
	if p.minify {
		p.buf.WriteByte('}')
		return nil
	}
	p.indent()
	p.buf.WriteString("}\n")
	return nil
}

func (p *printer) indent() {
	for i := 0; i < p.depth; i++ {
		p.buf.WriteString("  ")
	}
}
