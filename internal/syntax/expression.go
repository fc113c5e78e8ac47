package syntax

import (
	"strings"
	"unicode"

	"github.com/projectfluent/fluent-go/pkg/ast"
	"github.com/projectfluent/fluent-go/pkg/ferrors"
)

// parseExpression parses one placeable's contents: a literal, a reference,
// a function/term call, or a select expression (when the primary expression
// is followed by `->`). Grounded in grammar on other_examples/lus-fluent.go's
// resolveExpression dispatch over StringLiteral/NumberLiteral/
// MessageReference/TermReference/VariableReference/FunctionReference/
// SelectExpression.
func (p *parser) parseExpression() ast.Expression {
	if p.peek() == '*' || p.peek() == '[' {
		return p.parseSelectExpression(nil)
	}

	primary := p.parsePrimaryExpression()
	if primary == nil {
		return nil
	}

	p.skipExpressionWS()
	if p.peek() == '-' && p.peekAt(1) == '>' {
		p.advance()
		p.advance()
		return p.parseSelectExpression(primary)
	}
	return primary
}

func (p *parser) parsePrimaryExpression() ast.Expression {
	switch {
	case p.peek() == '"':
		return p.parseStringLiteral()
	case isDigit(p.peek()) || (p.peek() == '-' && isDigit(p.peekAt(1))):
		return p.parseNumberLiteral()
	case p.peek() == '$':
		p.advance()
		id := p.parseIdentifier()
		if id == nil {
			p.addError(ferrors.NewSyntaxError("expected identifier after '$'"))
			return nil
		}
		return &ast.VariableReference{ID: id}
	case p.peek() == '-' && isIdentStart(p.peekAt(1)):
		p.advance()
		return p.parseTermOrFunctionTail(nil)
	case isIdentStart(p.peek()):
		id := p.parseIdentifier()
		if id == nil {
			return nil
		}
		return p.parseReferenceTail(id)
	default:
		p.addError(ferrors.NewSyntaxError("unexpected character %q in expression", p.peek()))
		return nil
	}
}

func (p *parser) parseStringLiteral() ast.Expression {
	p.advance() // opening quote
	var b strings.Builder
	for !p.eof() && p.peek() != '"' {
		r := p.advance()
		if r == '\\' && !p.eof() {
			b.WriteRune(p.advance())
			continue
		}
		b.WriteRune(r)
	}
	if !p.consumeRune('"') {
		p.addError(ferrors.NewSyntaxError("unterminated string literal"))
	}
	return &ast.StringLiteral{Value: b.String()}
}

func (p *parser) parseNumberLiteral() ast.Expression {
	start := p.pos
	if p.peek() == '-' {
		p.advance()
	}
	for isDigit(p.peek()) {
		p.advance()
	}
	if p.peek() == '.' && isDigit(p.peekAt(1)) {
		p.advance()
		for isDigit(p.peek()) {
			p.advance()
		}
	}
	raw := string(p.src[start:p.pos])
	val, _ := parseNumberLiteral(raw)
	return &ast.NumberLiteral{Raw: raw, Value: val}
}

// parseReferenceTail handles what can follow a bare identifier: an
// attribute (`.attr`), a variant index (`[key]`), or a bare function call
// when the identifier is itself a callable name (`NUMBER(...)`).
func (p *parser) parseReferenceTail(id *ast.Identifier) ast.Expression {
	if p.peek() == '(' {
		args := p.parseCallArguments()
		return &ast.FunctionReference{ID: id, Arguments: args}
	}
	ref := &ast.MessageReference{ID: id}
	if p.peek() == '.' {
		p.advance()
		attr := p.parseIdentifier()
		ref.Attribute = attr
		return ref
	}
	if p.peek() == '[' {
		p.advance()
		p.skipExpressionWS()
		key := p.parseVariantKey()
		p.skipExpressionWS()
		p.consumeRune(']')
		return &ast.VariantReference{ID: id, Key: key}
	}
	return ref
}

// parseTermOrFunctionTail handles everything after a leading '-' that
// introduces a term reference: `-name`, `-name.attr`, `-name(args)`.
func (p *parser) parseTermOrFunctionTail(_ *ast.Identifier) ast.Expression {
	id := p.parseIdentifier()
	if id == nil {
		p.addError(ferrors.NewSyntaxError("expected term identifier after '-'"))
		return nil
	}
	if p.peek() == '[' {
		p.advance()
		p.skipExpressionWS()
		key := p.parseVariantKey()
		p.skipExpressionWS()
		p.consumeRune(']')
		return &ast.VariantReference{ID: id, Key: key, IsTerm: true}
	}
	term := &ast.TermReference{ID: id}
	if p.peek() == '.' {
		p.advance()
		term.Attribute = p.parseIdentifier()
	}
	if p.peek() == '(' {
		term.Arguments = p.parseCallArguments()
	}
	return term
}

func (p *parser) parseCallArguments() *ast.CallArguments {
	p.advance() // '('
	args := &ast.CallArguments{}
	p.skipExpressionWS()
	for !p.eof() && p.peek() != ')' {
		if isIdentStart(p.peek()) {
			save := p.pos
			id := p.parseIdentifier()
			p.skipExpressionWS()
			if id != nil && p.peek() == ':' {
				p.advance()
				p.skipExpressionWS()
				val := p.parsePrimaryExpression()
				args.Named = append(args.Named, &ast.NamedArgument{Name: id, Value: val})
				p.skipExpressionWS()
				p.consumeRune(',')
				p.skipExpressionWS()
				continue
			}
			p.pos = save
		}
		expr := p.parseExpression()
		if expr != nil {
			args.Positional = append(args.Positional, expr)
		}
		p.skipExpressionWS()
		p.consumeRune(',')
		p.skipExpressionWS()
	}
	p.consumeRune(')')
	return args
}

func (p *parser) parseVariantKey() ast.VariantKey {
	if isDigit(p.peek()) || (p.peek() == '-' && isDigit(p.peekAt(1))) {
		n := p.parseNumberLiteral()
		return n.(*ast.NumberLiteral)
	}
	return p.parseIdentifier()
}

// parseSelectExpression consumes the variant list of `selector -> variants`,
// terminated by the placeable's closing `}`.
func (p *parser) parseSelectExpression(selector ast.Expression) ast.Expression {
	sel := &ast.SelectExpression{Selector: selector}
	p.skipExpressionWS()

	for {
		p.skipToNextVariantOrClose()
		if p.eof() || p.peek() == '}' {
			break
		}
		isDefault := false
		if p.peek() == '*' {
			isDefault = true
			p.advance()
		}
		if !p.consumeRune('[') {
			break
		}
		p.skipExpressionWS()
		key := p.parseVariantKey()
		p.skipExpressionWS()
		p.consumeRune(']')
		p.skipInlineWS()
		value := p.parsePattern(p.stopAtVariantOrClose)
		sel.Variants = append(sel.Variants, &ast.Variant{Key: key, Value: value, Default: isDefault})
	}

	if len(sel.Variants) > 0 && !sel.Variants[anyDefault(sel.Variants)].Default {
		sel.Variants[len(sel.Variants)-1].Default = true
	}
	return sel
}

func anyDefault(variants []*ast.Variant) int {
	for i, v := range variants {
		if v.Default {
			return i
		}
	}
	return 0
}

// skipToNextVariantOrClose advances past blank/whitespace lines until the
// cursor sits on the next variant marker (`[` or `*[`) or the closing `}`.
func (p *parser) skipToNextVariantOrClose() {
	for !p.eof() {
		switch p.peek() {
		case ' ', '\t', '\n', '\r':
			p.advance()
		default:
			return
		}
	}
}

// stopAtVariantOrClose is the stop predicate for a variant's own pattern:
// it ends at the select expression's closing brace on the same line, or at
// the next line whose first non-space content starts a new variant marker
// or the closing brace.
func (p *parser) stopAtVariantOrClose() bool {
	if p.eof() {
		return true
	}
	if p.peek() == '}' {
		return true
	}
	if p.peek() != '\n' {
		return false
	}
	save := p.pos
	p.advance()
	p.skipToNextVariantOrClose()
	ch := p.peek()
	p.pos = save
	return ch == '}' || ch == '[' || ch == '*'
}

func isDigit(r rune) bool { return unicode.IsDigit(r) }
