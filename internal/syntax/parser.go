// Package syntax implements the Fluent text parser: it turns `.ftl` source
// into the pkg/ast entry tree the resolver and Context consume.
// TypeScript original code: n/a — grounded in structure (a cursor-based
// scanner that collects syntax errors onto an out-list instead of aborting,
// mirroring kaptinlin/messageformat-go's internal/cst.ParseContext/OnError)
// and in grammar specifics on other_examples/lus-fluent.go's AST shapes
// (Identifier, StringLiteral, NumberLiteral, MessageReference,
// TermReference, VariableReference, FunctionReference, SelectExpression).
package syntax

import (
	"strconv"
	"strings"
	"unicode"

	"github.com/projectfluent/fluent-go/pkg/ast"
	"github.com/projectfluent/fluent-go/pkg/ferrors"
)

// parser scans Fluent source with a single rune cursor shared by both the
// entry-level (indentation-sensitive) grammar and the placeable-level
// (brace-depth-driven) grammar.
type parser struct {
	src    []rune
	pos    int
	errors []*ferrors.ResolutionError
}

// Parse parses a complete Fluent resource. Malformed entries are recorded
// as Junk with a syntax error and do not prevent well-formed entries
// elsewhere in the source from being parsed, per §4.3's "parse errors are
// reported but do not abort installation of well-formed entries".
func Parse(source string) (*ast.Resource, []*ferrors.ResolutionError) {
	p := &parser{src: []rune(source)}
	res := &ast.Resource{}

	for !p.eof() {
		p.skipBlankLines()
		if p.eof() {
			break
		}

		start := p.pos
		switch {
		case p.peek() == '#':
			p.skipCommentLine()
		case p.peek() == '-' && isIdentStart(p.peekAt(1)):
			if term, ok := p.parseTerm(); ok {
				res.Entries = append(res.Entries, term)
			} else if j := p.recoverAsJunk(start); j != nil {
				res.Junk = append(res.Junk, j)
			}
		case isIdentStart(p.peek()):
			if msg, ok := p.parseMessage(); ok {
				res.Entries = append(res.Entries, msg)
			} else if j := p.recoverAsJunk(start); j != nil {
				res.Junk = append(res.Junk, j)
			}
		default:
			if j := p.recoverAsJunk(start); j != nil {
				res.Junk = append(res.Junk, j)
			}
		}
	}

	return res, p.errors
}

// recoverAsJunk consumes up to the next line that starts at column 0 with an
// identifier, '-' or '#' (blank lines in between are consumed too),
// recording the skipped text as Junk with a syntax error.
func (p *parser) recoverAsJunk(start int) *ast.Junk {
	err := ferrors.NewSyntaxError("could not parse entry")
	p.addError(err)
	for !p.eof() {
		if p.peek() == '\n' {
			p.advance()
			col, ch, _ := p.peekNextSignificant()
			if col == 0 && (isIdentStart(ch) || ch == '-' || ch == '#') {
				break
			}
			continue
		}
		p.advance()
	}
	text := strings.TrimSpace(string(p.src[start:p.pos]))
	if text == "" {
		return nil
	}
	return &ast.Junk{Content: text, Errors: []string{err.Error()}}
}

func (p *parser) skipCommentLine() {
	for !p.eof() && p.peek() != '\n' {
		p.advance()
	}
}

func (p *parser) skipBlankLines() {
	for !p.eof() {
		save := p.pos
		for !p.eof() && (p.peek() == ' ' || p.peek() == '\t') {
			p.advance()
		}
		if p.eof() || p.peek() == '\n' {
			if !p.eof() {
				p.advance()
			}
			continue
		}
		p.pos = save
		return
	}
}

func (p *parser) parseMessage() (*ast.Message, bool) {
	id := p.parseIdentifier()
	if id == nil {
		return nil, false
	}
	p.skipInlineWS()
	if !p.consumeRune('=') {
		p.addError(ferrors.NewSyntaxError("expected '=' after message identifier %q", id.Name))
		return nil, false
	}
	p.skipInlineWS()

	msg := &ast.Message{ID: id}
	msg.Value = p.parsePattern(p.stopAtEntryOrAttribute)
	if len(msg.Value.Elements) == 0 {
		msg.Value = nil
	}
	msg.Attributes = p.parseAttributes()
	return msg, true
}

func (p *parser) parseTerm() (*ast.Term, bool) {
	p.advance() // '-'
	id := p.parseIdentifier()
	if id == nil {
		return nil, false
	}
	p.skipInlineWS()
	if !p.consumeRune('=') {
		p.addError(ferrors.NewSyntaxError("expected '=' after term identifier %q", id.Name))
		return nil, false
	}
	p.skipInlineWS()

	term := &ast.Term{ID: id}
	term.Value = p.parsePattern(p.stopAtEntryOrAttribute)
	term.Attributes = p.parseAttributes()
	return term, true
}

func (p *parser) parseAttributes() []*ast.Attribute {
	var attrs []*ast.Attribute
	for {
		save := p.pos
		col, ch, next := p.peekNextSignificant()
		if ch != '.' || col == 0 {
			p.pos = save
			break
		}
		p.pos = next - col // start of the attribute's line
		p.skipToColumn(col)
		p.advance() // '.'
		id := p.parseIdentifier()
		if id == nil {
			p.pos = save
			break
		}
		p.skipInlineWS()
		if !p.consumeRune('=') {
			p.addError(ferrors.NewSyntaxError("expected '=' after attribute %q", id.Name))
			break
		}
		p.skipInlineWS()
		attrs = append(attrs, &ast.Attribute{
			ID:    id,
			Value: p.parsePattern(p.stopAtEntryOrAttribute),
		})
	}
	return attrs
}

func (p *parser) parseIdentifier() *ast.Identifier {
	if !isIdentStart(p.peek()) {
		return nil
	}
	start := p.pos
	for !p.eof() && isIdentChar(p.peek()) {
		p.advance()
	}
	return &ast.Identifier{Name: string(p.src[start:p.pos])}
}

func isIdentStart(r rune) bool {
	return unicode.IsLetter(r)
}

func isIdentChar(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' || r == '-'
}

func (p *parser) addError(err *ferrors.ResolutionError) {
	if err.Source == "" {
		err.Source = p.errorSnippet()
	}
	p.errors = append(p.errors, err)
}

// errorSnippet returns a short run of source text around the cursor, for
// ResolutionError.Source, trimmed to a single line and capped in length so
// a junk span deep in a malformed entry doesn't balloon the error.
func (p *parser) errorSnippet() string {
	end := p.pos + 20
	if end > len(p.src) {
		end = len(p.src)
	}
	snippet := string(p.src[p.pos:end])
	if i := strings.IndexByte(snippet, '\n'); i >= 0 {
		snippet = snippet[:i]
	}
	return strings.TrimSpace(snippet)
}

// --- cursor primitives ---

func (p *parser) eof() bool { return p.pos >= len(p.src) }

func (p *parser) peek() rune {
	if p.eof() {
		return 0
	}
	return p.src[p.pos]
}

func (p *parser) peekAt(offset int) rune {
	i := p.pos + offset
	if i < 0 || i >= len(p.src) {
		return 0
	}
	return p.src[i]
}

func (p *parser) advance() rune {
	r := p.peek()
	p.pos++
	return r
}

func (p *parser) consumeRune(r rune) bool {
	if p.peek() == r {
		p.advance()
		return true
	}
	return false
}

func (p *parser) skipInlineWS() {
	for !p.eof() && (p.peek() == ' ' || p.peek() == '\t') {
		p.advance()
	}
}

// peekNextSignificant looks past the current line (assumed already fully
// consumed up to just before or just after its trailing '\n') to report the
// indentation column and first non-space rune of upcoming lines, skipping
// any wholly blank lines in between. It does not move the cursor.
func (p *parser) peekNextSignificant() (col int, ch rune, pos int) {
	i := p.pos
	for i < len(p.src) {
		lineStart := i
		col = 0
		for i < len(p.src) && (p.src[i] == ' ' || p.src[i] == '\t') {
			col++
			i++
		}
		if i >= len(p.src) {
			return col, 0, i
		}
		if p.src[i] == '\n' {
			i++
			continue
		}
		_ = lineStart
		return col, p.src[i], i
	}
	return 0, 0, i
}

// skipToColumn advances the cursor through the current blank run of inline
// whitespace (used after peekNextSignificant has already validated what
// follows), landing exactly at the reported column.
func (p *parser) skipToColumn(col int) {
	for col > 0 && !p.eof() && (p.peek() == ' ' || p.peek() == '\t') {
		p.advance()
		col--
	}
}

// stopAtEntryOrAttribute is the stop predicate for a message/term/attribute
// value pattern: the pattern ends at EOF, at a column-0 line (a new entry
// or comment), or at an indented line that starts with '.' (an attribute).
func (p *parser) stopAtEntryOrAttribute() bool {
	if p.eof() {
		return true
	}
	if p.peek() != '\n' {
		return false
	}
	save := p.pos
	p.advance()
	col, ch, _ := p.peekNextSignificant()
	p.pos = save
	if ch == 0 {
		return true
	}
	if col == 0 {
		return true
	}
	if ch == '.' {
		return true
	}
	return false
}

func parseNumberLiteral(raw string) (float64, bool) {
	v, err := strconv.ParseFloat(raw, 64)
	return v, err == nil
}
