package syntax

import (
	"github.com/projectfluent/fluent-go/pkg/ast"
	"github.com/projectfluent/fluent-go/pkg/ferrors"
)

// parsePattern reads TextElements and Placeables until stop reports true or
// the source is exhausted, matching §3's "ordered sequence of literal
// fragments and expressions."
func (p *parser) parsePattern(stop func() bool) *ast.Pattern {
	pattern := &ast.Pattern{}
	var text []rune

	flush := func() {
		if len(text) > 0 {
			pattern.Elements = append(pattern.Elements, &ast.TextElement{Value: string(text)})
			text = nil
		}
	}

	for {
		if stop() || p.eof() {
			break
		}
		if p.peek() == '{' {
			flush()
			expr, ok := p.parsePlaceable()
			if ok {
				pattern.Elements = append(pattern.Elements, &ast.Placeable{Expression: expr})
			}
			continue
		}
		text = append(text, p.advance())
	}
	flush()
	return pattern
}

// parsePlaceable parses a `{ expression }` and returns its inner
// expression, consuming the enclosing braces.
func (p *parser) parsePlaceable() (ast.Expression, bool) {
	if !p.consumeRune('{') {
		return nil, false
	}
	p.skipExpressionWS()
	expr := p.parseExpression()
	p.skipExpressionWS()
	if !p.consumeRune('}') {
		p.addError(ferrors.NewSyntaxError("expected closing '}'"))
	}
	if expr == nil {
		return nil, false
	}
	return expr, true
}

// skipExpressionWS skips whitespace freely, including newlines, since once
// inside a placeable the grammar is brace-depth driven rather than
// indentation driven (select expressions always span multiple lines).
func (p *parser) skipExpressionWS() {
	for !p.eof() {
		switch p.peek() {
		case ' ', '\t', '\n', '\r':
			p.advance()
		default:
			return
		}
	}
}
