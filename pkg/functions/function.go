// Package functions provides the Fluent built-in function registry: the
// fixed name→callable map (at minimum NUMBER and DATETIME) that CallExpr
// resolution dispatches into, plus the registry type user-supplied
// functions are merged into.
// TypeScript original code: n/a — grounded on kaptinlin/messageformat-go's
// pkg/functions package for the overall shape (a MessageFunction callable
// type plus a FunctionContext parameter object, a RWMutex-guarded
// registry), adapted from MF2's options/operand signature to Fluent's
// positional/named CallExpr arguments.
package functions

import "github.com/projectfluent/fluent-go/pkg/value"

// Context carries the ambient information a built-in function needs beyond
// its arguments: the active locale and the formatter cache it formats
// through.
type Context struct {
	Locale string
	Rt     *value.RuntimeContext
}

// Function is the callable shape every built-in and user-registered
// function implements. Positional holds the CallExpr's positional
// arguments in source order; Named holds its named arguments keyed by
// name. Fluent's NUMBER/DATETIME take their operand as the first
// positional argument and their formatting options as named arguments,
// mirroring the teacher's MessageFunction(ctx, options, operand) shape
// with operand and options swapped into this single args pair.
type Function func(ctx *Context, positional []value.Value, named map[string]value.Value) value.Value
