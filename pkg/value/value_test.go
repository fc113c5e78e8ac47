package value

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/projectfluent/fluent-go/pkg/cache"
)

func testCtx(locale string) *RuntimeContext {
	return &RuntimeContext{Locale: locale, Cache: cache.New()}
}

func TestStringValueOf(t *testing.T) {
	s := String{Text: "hello"}
	out, err := s.ValueOf(testCtx("en"))
	assert.NoError(t, err)
	assert.Equal(t, "hello", out)
}

func TestStringMatchKeyword(t *testing.T) {
	s := String{Text: "café"}
	assert.True(t, s.Match(testCtx("en"), Keyword{Name: "café"}))
	assert.False(t, s.Match(testCtx("en"), Keyword{Name: "other"}))
}

func TestKeywordMatchString(t *testing.T) {
	k := Keyword{Name: "masculine"}
	assert.True(t, k.Match(testCtx("en"), String{Text: "masculine"}))
	assert.False(t, k.Match(testCtx("en"), Number{Value: 1}))
}

func TestNumberMatchExact(t *testing.T) {
	n := Number{Text: "1", Value: 1}
	assert.True(t, n.Match(testCtx("en"), Number{Value: 1}))
	assert.False(t, n.Match(testCtx("en"), Number{Value: 2}))
}

func TestNumberMatchPluralCategory(t *testing.T) {
	n := Number{Text: "1", Value: 1}
	assert.True(t, n.Match(testCtx("en"), Keyword{Name: "one"}))

	n2 := Number{Text: "2", Value: 2}
	assert.True(t, n2.Match(testCtx("en"), Keyword{Name: "other"}))
	assert.False(t, n2.Match(testCtx("en"), Keyword{Name: "one"}))
}

func TestNumberMatchLiteralKeyword(t *testing.T) {
	n := Number{Text: "01", Value: 1}
	assert.True(t, n.Match(testCtx("en"), Keyword{Name: "01"}))
}

func TestNumberValueOfFormatsWithLocale(t *testing.T) {
	n := Number{Text: "1234", Value: 1234}
	out, err := n.ValueOf(testCtx("en"))
	assert.NoError(t, err)
	assert.NotEmpty(t, out)
}

func TestDateTimeNeverMatches(t *testing.T) {
	d := DateTime{}
	assert.False(t, d.Match(testCtx("en"), Keyword{Name: "other"}))
}

func TestNoneValueOf(t *testing.T) {
	n := None{}
	out, err := n.ValueOf(testCtx("en"))
	assert.NoError(t, err)
	assert.Equal(t, "???", out)

	n2 := None{Hint: "user"}
	out2, err := n2.ValueOf(testCtx("en"))
	assert.NoError(t, err)
	assert.Equal(t, "user", out2)
}

func TestPartsValueOfConcatenates(t *testing.T) {
	p := Parts{List: []Value{String{Text: "Hello, "}, String{Text: "world"}}}
	out, err := p.ValueOf(testCtx("en"))
	assert.NoError(t, err)
	assert.Equal(t, "Hello, world", out)
}
