// Package fluent implements a Fluent message resolver: a Context that owns
// a locale, a message/term store, a function registry, and a formatter
// cache, and resolves parsed entries into localized strings.
package fluent

import (
	"log/slog"

	"github.com/projectfluent/fluent-go/pkg/functions"
)

// Option configures a Context at construction time.
// TypeScript original code: n/a — grounded on kaptinlin/messageformat-go's
// options.go functional-options pattern (WithBidiIsolation, WithFunctions,
// WithErrorHandler), adapted to the knobs §6's public contract names:
// useIsolating, functions, and (ambient) a logger override.
type Option func(*contextOptions)

type contextOptions struct {
	useIsolating *bool
	functions    map[string]functions.Function
	logger       *slog.Logger
}

// WithUseIsolating overrides the default (true, per §6) bidi-isolation
// behavior described in §4.4.2.
func WithUseIsolating(enabled bool) Option {
	return func(o *contextOptions) {
		o.useIsolating = &enabled
	}
}

// WithFunctions registers user-supplied functions, which override built-ins
// of the same name per §4.5.
func WithFunctions(fns map[string]functions.Function) Option {
	return func(o *contextOptions) {
		if o.functions == nil {
			o.functions = make(map[string]functions.Function, len(fns))
		}
		for name, fn := range fns {
			o.functions[name] = fn
		}
	}
}

// WithLogger replaces the package-level logger (§10.1) when the Context is
// constructed; the logger is global, so it also applies to every other
// Context.
func WithLogger(logger *slog.Logger) Option {
	return func(o *contextOptions) {
		o.logger = logger
	}
}

func applyOptions(opts ...Option) *contextOptions {
	o := &contextOptions{}
	for _, opt := range opts {
		opt(o)
	}
	return o
}
