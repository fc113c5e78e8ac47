package fluent

import (
	"fmt"
	"sync"

	"github.com/projectfluent/fluent-go/internal/resolve"
	"github.com/projectfluent/fluent-go/internal/syntax"
	"github.com/projectfluent/fluent-go/pkg/ast"
	"github.com/projectfluent/fluent-go/pkg/cache"
	"github.com/projectfluent/fluent-go/pkg/ferrors"
	"github.com/projectfluent/fluent-go/pkg/functions"
	"github.com/projectfluent/fluent-go/pkg/logger"
	"github.com/projectfluent/fluent-go/pkg/value"
)

// Context owns one locale's worth of messages and terms, a function
// registry, and a formatter cache, and resolves parsed entries into
// localized strings. It satisfies internal/resolve's MessageStore and
// FunctionLookup interfaces directly, so the resolver never imports this
// package.
// TypeScript original code: n/a — grounded on kaptinlin/messageformat-go's
// MessageFormat type (pkg/messageformat.go): a locale, an options bag, and a
// Format/FormatToParts entry point, adapted to Fluent's multi-message,
// mutable-store shape (AddMessages installs into a running Context rather
// than building one immutable formatter per message).
type Context struct {
	locale       string
	useIsolating bool
	functions    *functions.Registry
	cache        *cache.Cache

	mu       sync.RWMutex
	messages map[string]*ast.Message
	terms    map[string]*ast.Term
}

// New creates a Context for locale, ready to have messages installed via
// AddMessages. useIsolating defaults to true, per §6/§10.3's documented
// divergence from the teacher's MF2 default — Fluent resolves many more
// cross-message references per format call, so bidi isolation is on by
// default rather than opt-in.
func New(locale string, opts ...Option) *Context {
	o := applyOptions(opts...)

	useIsolating := true
	if o.useIsolating != nil {
		useIsolating = *o.useIsolating
	}

	if o.logger != nil {
		logger.SetLogger(o.logger)
	}

	return &Context{
		locale:       locale,
		useIsolating: useIsolating,
		functions:    functions.Merge(functions.Default(), o.functions),
		cache:        cache.New(),
		messages:     make(map[string]*ast.Message),
		terms:        make(map[string]*ast.Term),
	}
}

// AddMessages parses source as a Fluent resource and installs every
// well-formed entry, per §4.3. A message or term that duplicates an
// already-installed name overwrites it, last write wins — consistent with
// Fluent's own "later resources override earlier ones" bundle semantics.
// Returns one error per parse failure (syntax errors and junk spans); a
// non-empty return does not mean no entries were installed; it means some
// of the source did not parse cleanly.
func (c *Context) AddMessages(source string) []error {
	res, syntaxErrs := syntax.Parse(source)

	c.mu.Lock()
	for _, entry := range res.Entries {
		switch e := entry.(type) {
		case *ast.Message:
			c.messages[e.ID.Name] = e
		case *ast.Term:
			c.terms[e.ID.Name] = e
		}
	}
	c.mu.Unlock()

	var errs []error
	for _, se := range syntaxErrs {
		errs = append(errs, se)
	}
	for _, j := range res.Junk {
		logger.Warn("fluent: skipped unparseable entry", "content", j.Content)
		errs = append(errs, fmt.Errorf("junk entry: %s", j.Content))
	}
	return errs
}

// HasMessage reports whether name is installed as a public message.
func (c *Context) HasMessage(name string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	_, ok := c.messages[name]
	return ok
}

// HasAttribute reports whether message name carries an attribute attr.
func (c *Context) HasAttribute(name, attr string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	msg, ok := c.messages[name]
	if !ok {
		return false
	}
	for _, a := range msg.Attributes {
		if a.ID.Name == attr {
			return true
		}
	}
	return false
}

// Messages returns a snapshot of the installed public messages, keyed by
// name. Mutating the returned map does not affect the Context.
func (c *Context) Messages() map[string]*ast.Message {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make(map[string]*ast.Message, len(c.messages))
	for k, v := range c.messages {
		out[k] = v
	}
	return out
}

// GetMessage implements internal/resolve.MessageStore.
func (c *Context) GetMessage(name string) (ast.Entry, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	m, ok := c.messages[name]
	if !ok {
		return nil, false
	}
	return m, true
}

// GetTerm implements internal/resolve.MessageStore.
func (c *Context) GetTerm(name string) (ast.Entry, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	t, ok := c.terms[name]
	if !ok {
		return nil, false
	}
	return t, true
}

// Lookup implements internal/resolve.FunctionLookup.
func (c *Context) Lookup(name string) (functions.Function, bool) {
	return c.functions.Get(name)
}

// Format resolves the named message's value pattern against args, per
// §4.3. A nil pattern (a message with only attributes) formats to nil with
// no errors, matching the
// Fluent reference runtime's "no value" convention. Any errors produced
// during resolution (missing references, cycles, oversized placeables) are
// appended to errs rather than returned, since a partial result is still
// produced and returned alongside them.
func (c *Context) Format(name string, args map[string]interface{}, errs *[]*ferrors.ResolutionError) *string {
	c.mu.RLock()
	msg, ok := c.messages[name]
	c.mu.RUnlock()
	if !ok {
		if errs != nil {
			*errs = append(*errs, ferrors.NewReferenceError("unknown message: %s", name))
		}
		return nil
	}
	if msg.Value == nil {
		return nil
	}

	env := resolve.NewEnv(c.locale, c.cache, c, c, c.useIsolating, args)
	result := resolve.ResolvePattern(env, msg.Value)
	s, _ := result.ValueOf(&value.RuntimeContext{Locale: c.locale, Cache: c.cache})

	if errs != nil {
		*errs = append(*errs, env.Errors()...)
	}
	return &s
}

// FormatAttribute resolves one attribute of message name, mirroring Format
// for the `name.attr` addressing form.
func (c *Context) FormatAttribute(name, attr string, args map[string]interface{}, errs *[]*ferrors.ResolutionError) *string {
	c.mu.RLock()
	msg, ok := c.messages[name]
	c.mu.RUnlock()
	if !ok {
		if errs != nil {
			*errs = append(*errs, ferrors.NewReferenceError("unknown message: %s", name))
		}
		return nil
	}

	var pat *ast.Pattern
	for _, a := range msg.Attributes {
		if a.ID.Name == attr {
			pat = a.Value
			break
		}
	}
	if pat == nil {
		if errs != nil {
			*errs = append(*errs, ferrors.NewReferenceError("unknown attribute: %s.%s", name, attr))
		}
		return nil
	}

	env := resolve.NewEnv(c.locale, c.cache, c, c, c.useIsolating, args)
	result := resolve.ResolvePattern(env, pat)
	s, _ := result.ValueOf(&value.RuntimeContext{Locale: c.locale, Cache: c.cache})

	if errs != nil {
		*errs = append(*errs, env.Errors()...)
	}
	return &s
}
