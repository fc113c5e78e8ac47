package resolve

import (
	"fmt"
	"unicode/utf8"

	"github.com/projectfluent/fluent-go/pkg/ast"
	"github.com/projectfluent/fluent-go/pkg/bidi"
	"github.com/projectfluent/fluent-go/pkg/ferrors"
	"github.com/projectfluent/fluent-go/pkg/logger"
	"github.com/projectfluent/fluent-go/pkg/value"
)

// ResolvePattern implements §4.4.2: cycle-guarded, length-capped expansion
// of a pattern into a Parts value.
func ResolvePattern(env *Env, pat *ast.Pattern) value.Value {
	if pat == nil {
		return value.Parts{}
	}
	if env.dirty[pat] {
		env.addError(ferrors.NewCyclicReferenceError())
		return value.None{}
	}
	env.dirty[pat] = true
	defer delete(env.dirty, pat)

	var parts []value.Value
	for _, el := range pat.Elements {
		switch e := el.(type) {
		case *ast.TextElement:
			parts = append(parts, value.String{Text: e.Value})
		case *ast.Placeable:
			parts = append(parts, resolvePlaceable(env, e)...)
		}
	}
	return value.Parts{List: parts}
}

// resolvePlaceable resolves one `{ expr }` and returns the list of runtime
// values it contributes to the parent pattern, applying the nested-Parts
// splice-or-reject rule and bidi isolation wrapping.
func resolvePlaceable(env *Env, p *ast.Placeable) []value.Value {
	v := ResolveExpression(env, p.Expression)

	if nested, ok := v.(value.Parts); ok {
		length := 0
		for _, part := range nested.List {
			s, _ := part.ValueOf(env.runtimeCtx())
			length += utf8.RuneCountInString(s)
		}
		if length > MaxPlaceableLength {
			env.addError(ferrors.NewTooLongError(MaxPlaceableLength))
			return []value.Value{value.None{}}
		}
		if env.UseIsolating {
			wrapped := make([]value.Value, 0, len(nested.List)+2)
			wrapped = append(wrapped, value.String{Text: string(bidi.FSI)})
			wrapped = append(wrapped, nested.List...)
			wrapped = append(wrapped, value.String{Text: string(bidi.PDI)})
			return wrapped
		}
		return nested.List
	}

	if env.UseIsolating {
		s, _ := v.ValueOf(env.runtimeCtx())
		return []value.Value{value.String{Text: bidi.Wrap(s)}}
	}
	return []value.Value{v}
}

// ResolveExpression is the central dispatcher of §4.4.1, Type(env, expr).
func ResolveExpression(env *Env, expr ast.Expression) value.Value {
	switch e := expr.(type) {
	case nil:
		return value.None{}
	case *ast.Identifier:
		// A KeywordLiteral: a bare identifier used directly as an
		// expression (a variant key resolved as a selector value).
		return value.Keyword{Name: e.Name}
	case *ast.StringLiteral:
		return value.String{Text: e.Value}
	case *ast.NumberLiteral:
		return value.Number{Text: e.Raw, Value: e.Value}
	case *ast.VariableReference:
		return resolveExternalArg(env, e.ID.Name)
	case *ast.MessageReference:
		return resolveMessageReference(env, e)
	case *ast.TermReference:
		return resolveTermReference(env, e)
	case *ast.VariantReference:
		return resolveVariantReference(env, e)
	case *ast.FunctionReference:
		return resolveFunctionReference(env, e)
	case *ast.SelectExpression:
		return resolveSelectExpression(env, e)
	case *ast.Placeable:
		return ResolveExpression(env, e.Expression)
	default:
		logger.Warn("fluent: unsupported expression type in dispatch", "type", fmt.Sprintf("%T", expr))
		return value.None{}
	}
}
