package resolve

import (
	"github.com/projectfluent/fluent-go/pkg/ast"
	"github.com/projectfluent/fluent-go/pkg/value"
)

// resolveSelectExpression implements §4.4.6.
func resolveSelectExpression(env *Env, sel *ast.SelectExpression) value.Value {
	def := defaultVariant(sel)
	if sel.Selector == nil {
		return ResolvePattern(env, def.Value)
	}

	selector := ResolveExpression(env, sel.Selector)
	if _, isNone := selector.(value.None); isNone {
		return ResolvePattern(env, def.Value)
	}

	for _, v := range sel.Variants {
		key := ResolveExpression(env, v.Key.(ast.Expression))
		if selector.Match(env.runtimeCtx(), key) {
			return ResolvePattern(env, v.Value)
		}
	}
	return ResolvePattern(env, def.Value)
}

// defaultVariant returns the variant marked default, falling back to the
// last variant if none is marked (defensive: the parser always marks one).
func defaultVariant(sel *ast.SelectExpression) *ast.Variant {
	for _, v := range sel.Variants {
		if v.Default {
			return v
		}
	}
	if len(sel.Variants) == 0 {
		return &ast.Variant{Value: &ast.Pattern{}}
	}
	return sel.Variants[len(sel.Variants)-1]
}
