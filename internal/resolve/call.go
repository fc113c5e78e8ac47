package resolve

import (
	"github.com/projectfluent/fluent-go/pkg/ast"
	"github.com/projectfluent/fluent-go/pkg/ferrors"
	"github.com/projectfluent/fluent-go/pkg/functions"
	"github.com/projectfluent/fluent-go/pkg/value"
)

// resolveFunctionReference implements §4.4.4 (lookup) and §4.4.5 (call)
// together, since this module's ast.FunctionReference already carries its
// call arguments (a FunctionRef and its CallExpr are a single parsed node
// here rather than two, per DESIGN.md's adaptation notes).
func resolveFunctionReference(env *Env, ref *ast.FunctionReference) value.Value {
	fn, ok := env.Functions.Lookup(ref.ID.Name)
	if !ok {
		env.addError(ferrors.NewReferenceError("unknown function: %s", ref.ID.Name).WithSource(ref.ID.Name))
		return value.None{Hint: ref.ID.Name + "()"}
	}

	var positional []value.Value
	named := map[string]value.Value{}
	if ref.Arguments != nil {
		for _, arg := range ref.Arguments.Positional {
			positional = append(positional, ResolveExpression(env, arg))
		}
		for _, na := range ref.Arguments.Named {
			named[na.Name.Name] = ResolveExpression(env, na.Value)
		}
	}

	callCtx := &functions.Context{Locale: env.Locale, Rt: env.runtimeCtx()}
	return fn(callCtx, positional, named)
}
