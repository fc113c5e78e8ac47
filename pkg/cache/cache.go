// Package cache implements the formatter cache: per-context memoization of
// locale-sensitive number, date-time, and plural-rules formatters.
// TypeScript original code: n/a — grounded on kaptinlin/messageformat-go's
// pkg/functions/registry.go (sync.RWMutex-guarded map as the concurrency
// pattern for a shared, growing registry) and on its v1/plurals.go and
// pkg/messagevalue/{number,datetime}.go (the concrete formatters memoized
// here: golang.org/x/text plural rules, golang.org/x/text + go-money number
// formatting, dromara/carbon date-time formatting).
package cache

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	money "github.com/Rhymond/go-money"
	"github.com/dromara/carbon/v2"
	"golang.org/x/text/feature/plural"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"github.com/projectfluent/fluent-go/pkg/logger"
)

// Kind identifies the family of formatter memoized under a cache key.
type Kind string

const (
	KindNumber      Kind = "number"
	KindDateTime    Kind = "datetime"
	KindPluralRules Kind = "plural"
)

// Cache memoizes one formatter per distinct (kind, locale, options) triple.
// It grows monotonically for the lifetime of the owning Context; a Context
// is the cache's natural eviction boundary, matching §4.2 and §5 of the
// resolver spec ("write-through with read-before-write; duplicates are
// benign").
type Cache struct {
	mu      sync.Mutex
	entries map[string]any
}

// New creates an empty formatter cache.
func New() *Cache {
	return &Cache{entries: make(map[string]any)}
}

// canonicalKey builds a stable cache key from a formatter kind, locale, and
// an options map compared by canonicalized (sorted) key order, per §4.2.
func canonicalKey(kind Kind, locale string, opts map[string]interface{}) string {
	var b strings.Builder
	b.WriteString(string(kind))
	b.WriteByte('|')
	b.WriteString(locale)
	if len(opts) > 0 {
		keys := make([]string, 0, len(opts))
		for k := range opts {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			fmt.Fprintf(&b, "|%s=%v", k, opts[k])
		}
	}
	return b.String()
}

// NumberFormatter returns the memoized number formatter for locale+opts,
// creating it on first use.
func (c *Cache) NumberFormatter(locale string, opts map[string]interface{}) *NumberFormatter {
	key := canonicalKey(KindNumber, locale, opts)
	c.mu.Lock()
	defer c.mu.Unlock()
	if v, ok := c.entries[key]; ok {
		return v.(*NumberFormatter)
	}
	logger.Debug("fluent: cache fill", "kind", KindNumber, "locale", locale)
	f := newNumberFormatter(locale, opts)
	c.entries[key] = f
	return f
}

// DateTimeFormatter returns the memoized date-time formatter for locale+opts.
func (c *Cache) DateTimeFormatter(locale string, opts map[string]interface{}) *DateTimeFormatter {
	key := canonicalKey(KindDateTime, locale, opts)
	c.mu.Lock()
	defer c.mu.Unlock()
	if v, ok := c.entries[key]; ok {
		return v.(*DateTimeFormatter)
	}
	logger.Debug("fluent: cache fill", "kind", KindDateTime, "locale", locale)
	f := newDateTimeFormatter(locale, opts)
	c.entries[key] = f
	return f
}

// PluralRules returns the memoized plural-rules formatter for locale+ordinal.
func (c *Cache) PluralRules(locale string, ordinal bool) *PluralRules {
	kind := "cardinal"
	if ordinal {
		kind = "ordinal"
	}
	key := canonicalKey(KindPluralRules, locale, map[string]interface{}{"form": kind})
	c.mu.Lock()
	defer c.mu.Unlock()
	if v, ok := c.entries[key]; ok {
		return v.(*PluralRules)
	}
	logger.Debug("fluent: cache fill", "kind", KindPluralRules, "locale", locale)
	f := newPluralRules(locale, ordinal)
	c.entries[key] = f
	return f
}

// PluralRules wraps golang.org/x/text/feature/plural to map a number to its
// CLDR plural category ("zero", "one", "two", "few", "many", "other") in a
// given locale. Grounded on the teacher's v1/plurals.go getPluralRules.
type PluralRules struct {
	tag  language.Tag
	rule plural.Rule
}

func newPluralRules(locale string, ordinal bool) *PluralRules {
	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.English
	}
	rule := plural.Cardinal
	if ordinal {
		rule = plural.Ordinal
	}
	return &PluralRules{tag: tag, rule: rule}
}

// Category returns the plural category name for n, e.g. "one" or "other".
// Grounded on the teacher's v1/plurals.go getPluralRules, including its
// panic-recovery guard around MatchPlural.
func (p *PluralRules) Category(n float64) (category string) {
	defer func() {
		if r := recover(); r != nil {
			category = "other"
		}
	}()

	if n < 0 {
		n = -n
	}

	form := p.rule.MatchPlural(p.tag, int(n), 0, 0, 0, 0)
	return pluralFormName(form)
}

func pluralFormName(f plural.Form) string {
	switch f {
	case plural.Zero:
		return "zero"
	case plural.One:
		return "one"
	case plural.Two:
		return "two"
	case plural.Few:
		return "few"
	case plural.Many:
		return "many"
	default:
		return "other"
	}
}

// NumberFormatter formats a decimal number per a Fluent NUMBER() options
// bag, using golang.org/x/text/number for the plain-decimal path and
// github.com/Rhymond/go-money for the currency path. Grounded on the
// teacher's pkg/messagevalue/number.go formatNumber/formatCurrency.
type NumberFormatter struct {
	locale string
	tag    language.Tag
	opts   map[string]interface{}
}

func newNumberFormatter(locale string, opts map[string]interface{}) *NumberFormatter {
	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.English
	}
	return &NumberFormatter{locale: locale, tag: tag, opts: opts}
}

// Format renders v according to the formatter's options.
func (f *NumberFormatter) Format(v float64) string {
	if style, _ := f.opts["style"].(string); style == "currency" {
		if formatted, ok := f.formatCurrency(v); ok {
			return formatted
		}
	}

	minFrac := intOption(f.opts, "minimumFractionDigits", 0)
	maxFrac := intOption(f.opts, "maximumFractionDigits", -1)
	if maxFrac < 0 {
		if v == math.Trunc(v) && minFrac == 0 {
			maxFrac = 0
		} else {
			maxFrac = 3
		}
	}
	if maxFrac < minFrac {
		maxFrac = minFrac
	}

	useGrouping := boolOption(f.opts, "useGrouping", true)
	if !useGrouping {
		return strconv.FormatFloat(v, 'f', maxFrac, 64)
	}

	p := message.NewPrinter(f.tag)
	var b strings.Builder
	dec := number.Decimal(v, number.MaxFractionDigits(maxFrac), number.MinFractionDigits(minFrac))
	if _, err := p.Fprintf(&b, "%v", dec); err != nil {
		return strconv.FormatFloat(v, 'f', maxFrac, 64)
	}
	return b.String()
}

func (f *NumberFormatter) formatCurrency(v float64) (string, bool) {
	code, _ := f.opts["currency"].(string)
	if code == "" {
		return "", false
	}
	m := money.NewFromFloat(v, strings.ToUpper(code))
	if m == nil {
		return "", false
	}
	if sign, _ := f.opts["currencySign"].(string); sign == "accounting" && m.IsNegative() {
		return fmt.Sprintf("(%s)", m.Absolute().Display()), true
	}
	return m.Display(), true
}

func intOption(opts map[string]interface{}, key string, def int) int {
	v, ok := opts[key]
	if !ok {
		return def
	}
	switch n := v.(type) {
	case int:
		return n
	case int64:
		return int(n)
	case float64:
		return int(n)
	default:
		return def
	}
}

func boolOption(opts map[string]interface{}, key string, def bool) bool {
	v, ok := opts[key]
	if !ok {
		return def
	}
	switch b := v.(type) {
	case bool:
		return b
	case string:
		return b != "never" && b != "false"
	default:
		return def
	}
}

// DateTimeFormatter formats a time.Time per a Fluent DATETIME() options bag
// using github.com/dromara/carbon/v2. Grounded on the teacher's
// pkg/messagevalue/datetime.go formatDateTime / GetDateFormat / GetTimeFormat.
type DateTimeFormatter struct {
	locale string
	opts   map[string]interface{}
}

func newDateTimeFormatter(locale string, opts map[string]interface{}) *DateTimeFormatter {
	return &DateTimeFormatter{locale: locale, opts: opts}
}

// Format renders t according to the formatter's options.
func (f *DateTimeFormatter) Format(t time.Time) string {
	c := carbon.CreateFromStdTime(t)

	dateStyle, hasDateStyle := f.opts["dateStyle"].(string)
	timeStyle, hasTimeStyle := f.opts["timeStyle"].(string)

	switch {
	case hasDateStyle && hasTimeStyle:
		return c.Format(dateFormat(dateStyle) + " " + timeFormat(timeStyle))
	case hasDateStyle:
		return c.Format(dateFormat(dateStyle))
	case hasTimeStyle:
		return c.Format(timeFormat(timeStyle))
	default:
		return c.ToDateTimeString()
	}
}

func dateFormat(style string) string {
	switch style {
	case "full":
		return "l, F j, Y"
	case "long":
		return "F j, Y"
	case "short":
		return "n/j/y"
	default: // medium
		return "M j, Y"
	}
}

func timeFormat(style string) string {
	switch style {
	case "full", "long":
		return "g:i:s A T"
	case "medium":
		return "g:i:s A"
	default: // short
		return "g:i A"
	}
}
