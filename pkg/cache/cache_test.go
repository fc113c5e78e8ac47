package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNumberFormatterIsMemoized(t *testing.T) {
	c := New()
	f1 := c.NumberFormatter("en", nil)
	f2 := c.NumberFormatter("en", nil)
	assert.Same(t, f1, f2)
}

func TestNumberFormatterKeyedByOptions(t *testing.T) {
	c := New()
	f1 := c.NumberFormatter("en", map[string]interface{}{"maximumFractionDigits": 2})
	f2 := c.NumberFormatter("en", map[string]interface{}{"maximumFractionDigits": 3})
	assert.NotSame(t, f1, f2)
}

func TestNumberFormatterFormatsInteger(t *testing.T) {
	c := New()
	f := c.NumberFormatter("en", nil)
	assert.Equal(t, "1,234", f.Format(1234))
}

func TestNumberFormatterFormatsCurrency(t *testing.T) {
	c := New()
	f := c.NumberFormatter("en", map[string]interface{}{"style": "currency", "currency": "USD"})
	out := f.Format(10)
	assert.NotEmpty(t, out)
}

func TestNumberFormatterAccountingSign(t *testing.T) {
	c := New()
	f := c.NumberFormatter("en", map[string]interface{}{
		"style": "currency", "currency": "USD", "currencySign": "accounting",
	})
	out := f.Format(-10)
	assert.Contains(t, out, "(")
}

func TestDateTimeFormatterIsMemoized(t *testing.T) {
	c := New()
	f1 := c.DateTimeFormatter("en", nil)
	f2 := c.DateTimeFormatter("en", nil)
	assert.Same(t, f1, f2)
}

func TestDateTimeFormatterFormatsWithStyle(t *testing.T) {
	c := New()
	f := c.DateTimeFormatter("en", map[string]interface{}{"dateStyle": "short"})
	out := f.Format(time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC))
	assert.NotEmpty(t, out)
}

func TestPluralRulesMemoizedSeparatelyForOrdinal(t *testing.T) {
	c := New()
	cardinal := c.PluralRules("en", false)
	ordinal := c.PluralRules("en", true)
	assert.NotSame(t, cardinal, ordinal)
}

func TestPluralRulesCategoryEnglish(t *testing.T) {
	c := New()
	rules := c.PluralRules("en", false)
	assert.Equal(t, "one", rules.Category(1))
	assert.Equal(t, "other", rules.Category(2))
	assert.Equal(t, "other", rules.Category(0))
}

func TestPluralRulesFallsBackOnUnknownLocale(t *testing.T) {
	c := New()
	rules := c.PluralRules("not-a-locale", false)
	assert.NotPanics(t, func() { rules.Category(5) })
}
