// Package value implements the Fluent runtime value set: the closed list of
// types a resolved Pattern can produce or that a FunctionRef/CallExpr can
// return — String, Number, DateTime, Keyword, None, and Parts.
// TypeScript original code: n/a — grounded on kaptinlin/messageformat-go's
// pkg/messagevalue package for the per-type-per-responsibility shape
// (Type/ToString/SelectKeys as the closed interface surface, NFC-normalized
// string comparison in SelectKeys) and on other_examples/lus-fluent.go's
// matchesVariant for the selector Match semantics this package implements
// directly as methods instead of a free function.
package value

import (
	"time"

	"golang.org/x/text/unicode/norm"

	"github.com/projectfluent/fluent-go/pkg/cache"
)

// RuntimeContext carries the pieces of the owning Context that value
// formatting and matching need, without pulling in the top-level fluent
// package and creating an import cycle.
type RuntimeContext struct {
	Locale string
	Cache  *cache.Cache
}

func (rc *RuntimeContext) cache() *cache.Cache {
	if rc == nil || rc.Cache == nil {
		return cache.New()
	}
	return rc.Cache
}

func (rc *RuntimeContext) locale() string {
	if rc == nil || rc.Locale == "" {
		return "en"
	}
	return rc.Locale
}

// Value is implemented by every member of the resolver's runtime value set.
// ValueOf renders the value to display text, per §4. Match reports whether
// the receiver, used as a select expression's selector, matches a variant
// key value — the receiver is always the selector and other is always the
// candidate key, per the §4.1 Match column ("match(ctx, other)").
type Value interface {
	ValueOf(ctx *RuntimeContext) (string, error)
	Match(ctx *RuntimeContext, other Value) bool
}

// String is a plain string runtime value: a StringLiteral, resolved
// ExternalArg, or the result of a string-returning function.
type String struct {
	Text string
}

func (s String) ValueOf(*RuntimeContext) (string, error) { return s.Text, nil }

func (s String) Match(_ *RuntimeContext, other Value) bool {
	switch o := other.(type) {
	case Keyword:
		return normalize(s.Text) == normalize(o.Name)
	case String:
		return normalize(s.Text) == normalize(o.Text)
	default:
		return false
	}
}

// Keyword is the runtime value of a KeywordLiteral, e.g. a bare identifier
// variant key such as `other` or `masculine`.
type Keyword struct {
	Name string
}

func (k Keyword) ValueOf(*RuntimeContext) (string, error) { return k.Name, nil }

func (k Keyword) Match(_ *RuntimeContext, other Value) bool {
	switch o := other.(type) {
	case Keyword:
		return normalize(k.Name) == normalize(o.Name)
	case String:
		return normalize(k.Name) == normalize(o.Text)
	default:
		return false
	}
}

// Number is the runtime value of a NumberLiteral, a resolved numeric
// ExternalArg, or a number-returning function result. Text preserves the
// original literal's formatting (e.g. "01") for exact-match comparisons
// against a non-plural-category keyword key; numeric keys are compared by
// Value.
type Number struct {
	Text  string
	Value float64
	Opts  map[string]interface{}
}

func (n Number) ValueOf(ctx *RuntimeContext) (string, error) {
	f := ctx.cache().NumberFormatter(ctx.locale(), n.Opts)
	return f.Format(n.Value), nil
}

// Match implements §4.1's Number row: a variant keyed by a bare number
// matches on exact numeric equality; a variant keyed by a plural-category
// keyword matches when that keyword names the CLDR plural category of the
// receiver's value in the active locale.
func (n Number) Match(ctx *RuntimeContext, other Value) bool {
	switch o := other.(type) {
	case Number:
		return n.Value == o.Value
	case Keyword:
		if isPluralCategory(o.Name) {
			rules := ctx.cache().PluralRules(ctx.locale(), false)
			return rules.Category(n.Value) == o.Name
		}
		return n.Text == o.Name
	default:
		return false
	}
}

func isPluralCategory(s string) bool {
	switch s {
	case "zero", "one", "two", "few", "many", "other":
		return true
	default:
		return false
	}
}

// DateTime is the runtime value of a DATETIME() function result. It never
// participates in selection: §4.1 has no Match row for DateTime, so it
// always reports no match when used as a selector.
type DateTime struct {
	Instant time.Time
	Opts    map[string]interface{}
}

func (d DateTime) ValueOf(ctx *RuntimeContext) (string, error) {
	f := ctx.cache().DateTimeFormatter(ctx.locale(), d.Opts)
	return f.Format(d.Instant), nil
}

func (d DateTime) Match(*RuntimeContext, Value) bool { return false }

// None is the fallback value produced when resolution of an expression
// fails; Hint, when set, is the bare name or text that stands in for the
// unresolved reference in the rendered output per §7's
// fallback-to-source-text behavior.
type None struct {
	Hint string
}

func (n None) ValueOf(*RuntimeContext) (string, error) {
	if n.Hint == "" {
		return "???", nil
	}
	return n.Hint, nil
}

func (n None) Match(*RuntimeContext, Value) bool { return false }

// Parts is the sequence of already-resolved values that resolving a Pattern
// produces; ValueOf flattens it to a single string. It never participates
// in selection.
type Parts struct {
	List []Value
}

func (p Parts) ValueOf(ctx *RuntimeContext) (string, error) {
	var out string
	for _, v := range p.List {
		s, err := v.ValueOf(ctx)
		if err != nil {
			return "", err
		}
		out += s
	}
	return out, nil
}

func (p Parts) Match(*RuntimeContext, Value) bool { return false }

func normalize(s string) string {
	return norm.NFC.String(s)
}
