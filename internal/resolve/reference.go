package resolve

import (
	"strconv"
	"time"

	"github.com/projectfluent/fluent-go/pkg/ast"
	"github.com/projectfluent/fluent-go/pkg/ferrors"
	"github.com/projectfluent/fluent-go/pkg/value"
)

// resolveExternalArg implements §4.4.3.
func resolveExternalArg(env *Env, name string) value.Value {
	raw, ok := env.Args[name]
	if !ok {
		env.addError(ferrors.NewReferenceError("unknown variable: $%s", name).WithSource(name))
		return value.None{Hint: name}
	}
	switch v := raw.(type) {
	case value.Value:
		return v
	case string:
		return value.String{Text: v}
	case int:
		return value.Number{Text: intText(v), Value: float64(v)}
	case int64:
		return value.Number{Text: intText(int(v)), Value: float64(v)}
	case float64:
		return value.Number{Text: floatText(v), Value: v}
	case time.Time:
		return value.DateTime{Instant: v}
	default:
		env.addError(ferrors.NewTypeError("unsupported variable type for $%s", name).WithSource(name))
		return value.None{Hint: name}
	}
}

// resolveMessageReference implements the MessageRef and (when Attribute is
// set) AttributeRef branches of §4.4.1.
func resolveMessageReference(env *Env, ref *ast.MessageReference) value.Value {
	entry, ok := env.Messages.GetMessage(ref.ID.Name)
	if !ok {
		env.addError(ferrors.NewReferenceError("unknown message: %s", ref.ID.Name).WithSource(ref.ID.Name))
		return value.None{Hint: ref.ID.Name}
	}
	if ref.Attribute != nil {
		return resolveAttribute(env, entry, ref.ID.Name, ref.Attribute.Name)
	}
	return resolveEntryValue(env, entry, ref.ID.Name)
}

// resolveTermReference implements the private-entry equivalent of
// resolveMessageReference, additionally opening a local argument scope
// when the reference carries call arguments (§12's supplement).
func resolveTermReference(env *Env, ref *ast.TermReference) value.Value {
	entry, ok := env.Messages.GetTerm(ref.ID.Name)
	if !ok {
		env.addError(ferrors.NewReferenceError("unknown term: -%s", ref.ID.Name).WithSource("-" + ref.ID.Name))
		return value.None{Hint: "-" + ref.ID.Name}
	}

	callEnv := env
	if ref.Arguments != nil && len(ref.Arguments.Named) > 0 {
		localArgs := make(map[string]interface{}, len(ref.Arguments.Named))
		for _, na := range ref.Arguments.Named {
			localArgs[na.Name.Name] = ResolveExpression(env, na.Value)
		}
		callEnv = env.withArgs(localArgs)
	}

	if ref.Attribute != nil {
		return resolveAttribute(callEnv, entry, "-"+ref.ID.Name, ref.Attribute.Name)
	}
	return resolveEntryValue(callEnv, entry, "-"+ref.ID.Name)
}

func resolveEntryValue(env *Env, entry ast.Entry, displayName string) value.Value {
	pat := entry.GetValue()
	if pat == nil {
		env.addError(ferrors.NewRangeError("%s has no value", displayName).WithSource(displayName))
		return value.None{}
	}
	return ResolvePattern(env, pat)
}

func resolveAttribute(env *Env, entry ast.Entry, displayName, attrName string) value.Value {
	for _, attr := range entry.GetAttributes() {
		if attr.ID.Name == attrName {
			return ResolvePattern(env, attr.Value)
		}
	}
	env.addError(ferrors.NewReferenceError("unknown attribute: %s.%s", displayName, attrName).WithSource(displayName + "." + attrName))
	return resolveEntryValue(env, entry, displayName)
}

// resolveVariantReference implements the VariantRef branch of §4.4.1.
func resolveVariantReference(env *Env, ref *ast.VariantReference) value.Value {
	var entry ast.Entry
	var ok bool
	displayName := ref.ID.Name
	if ref.IsTerm {
		entry, ok = env.Messages.GetTerm(ref.ID.Name)
		displayName = "-" + displayName
	} else {
		entry, ok = env.Messages.GetMessage(ref.ID.Name)
	}
	if !ok {
		env.addError(ferrors.NewReferenceError("unknown entry: %s", displayName).WithSource(displayName))
		return value.None{Hint: displayName}
	}

	pat := entry.GetValue()
	sel := variantListSelect(pat)
	if sel == nil {
		env.addError(ferrors.NewReferenceError("%s is not a variant list", displayName).WithSource(displayName))
		return resolveEntryValue(env, entry, displayName)
	}

	keyValue := ResolveExpression(env, ref.Key.(ast.Expression))
	for _, v := range sel.Variants {
		declared := ResolveExpression(env, v.Key.(ast.Expression))
		if keyValue.Match(env.runtimeCtx(), declared) {
			return ResolvePattern(env, v.Value)
		}
	}
	env.addError(ferrors.NewReferenceError("no variant %v on %s", ref.Key, displayName).WithSource(displayName))
	return ResolvePattern(env, defaultVariant(sel).Value)
}

// variantListSelect reports the SelectExpression a value-less selector
// pattern holds, per §4.4.1's "pattern whose single element is a SelectExpr
// with absent selector."
func variantListSelect(pat *ast.Pattern) *ast.SelectExpression {
	if pat == nil || len(pat.Elements) != 1 {
		return nil
	}
	placeable, ok := pat.Elements[0].(*ast.Placeable)
	if !ok {
		return nil
	}
	sel, ok := placeable.Expression.(*ast.SelectExpression)
	if !ok || sel.Selector != nil {
		return nil
	}
	return sel
}

func intText(n int) string {
	return strconv.Itoa(n)
}

func floatText(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
