// Package resolve implements the resolution engine: the recursive
// evaluator described in SPEC_FULL.md §4.4 that turns a pattern or
// expression, together with an argument bag, into a runtime Value,
// detecting cycles and appending non-fatal errors along the way.
// TypeScript original code: n/a — grounded in shape (an env/context object
// threaded through recursive resolution, a central dispatcher keyed on node
// tag) on kaptinlin/messageformat-go's internal/resolve package, and in
// Fluent-specific semantics (message/term/attribute/variant resolution,
// plural-category selection) on other_examples/lus-fluent.go's resolver.
package resolve

import (
	"github.com/projectfluent/fluent-go/pkg/ast"
	"github.com/projectfluent/fluent-go/pkg/cache"
	"github.com/projectfluent/fluent-go/pkg/ferrors"
	"github.com/projectfluent/fluent-go/pkg/functions"
	"github.com/projectfluent/fluent-go/pkg/value"
)

// MaxPlaceableLength is §6's MAX_PLACEABLE_LENGTH: the cap, in scalar
// characters, on a single nested-pattern placeable's flattened length.
const MaxPlaceableLength = 2500

// MessageStore is the message/term lookup surface the resolver needs from
// the owning Context. It is a narrow interface rather than a direct
// dependency on the top-level fluent package, so this package does not
// import it and create a cycle.
type MessageStore interface {
	GetMessage(name string) (ast.Entry, bool)
	GetTerm(name string) (ast.Entry, bool)
}

// FunctionLookup is the function resolution surface the resolver needs:
// user-supplied functions first, falling back to built-ins, per §4.4.4.
type FunctionLookup interface {
	Lookup(name string) (functions.Function, bool)
}

// Env is the per-call environment §3's Lifecycles section describes:
// "each call allocates a fresh environment (context ref, args ref, errors
// ref, dirty set)."
type Env struct {
	Locale       string
	Cache        *cache.Cache
	Messages     MessageStore
	Functions    FunctionLookup
	UseIsolating bool
	Args         map[string]interface{}

	errors *[]*ferrors.ResolutionError
	dirty  map[*ast.Pattern]bool
}

// NewEnv creates a fresh environment for one top-level resolve call.
func NewEnv(locale string, c *cache.Cache, messages MessageStore, fns FunctionLookup, useIsolating bool, args map[string]interface{}) *Env {
	errs := make([]*ferrors.ResolutionError, 0)
	return &Env{
		Locale:       locale,
		Cache:        c,
		Messages:     messages,
		Functions:    fns,
		UseIsolating: useIsolating,
		Args:         args,
		errors:       &errs,
		dirty:        make(map[*ast.Pattern]bool),
	}
}

// withArgs returns a shallow copy of env with Args replaced, used when a
// term reference's call arguments open a local scope for the term's
// pattern, per §12's "named/positional call arguments" supplement.
func (e *Env) withArgs(args map[string]interface{}) *Env {
	clone := *e
	clone.Args = args
	return &clone
}

// Errors returns every error appended during this environment's lifetime.
func (e *Env) Errors() []*ferrors.ResolutionError {
	return *e.errors
}

func (e *Env) addError(err *ferrors.ResolutionError) {
	*e.errors = append(*e.errors, err)
}

func (e *Env) runtimeCtx() *value.RuntimeContext {
	return &value.RuntimeContext{Locale: e.Locale, Cache: e.Cache}
}
