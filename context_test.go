package fluent

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/projectfluent/fluent-go/pkg/ferrors"
	"github.com/projectfluent/fluent-go/pkg/functions"
	"github.com/projectfluent/fluent-go/pkg/value"
)

func formatOrFail(t *testing.T, ctx *Context, name string, args map[string]interface{}) string {
	t.Helper()
	var errs []*ferrors.ResolutionError
	s := ctx.Format(name, args, &errs)
	require.NotNil(t, s)
	return *s
}

func TestFormatSimpleMessage(t *testing.T) {
	ctx := New("en")
	errs := ctx.AddMessages("greeting = Hello, world!\n")
	require.Empty(t, errs)

	assert.Equal(t, "Hello, world!", formatOrFail(t, ctx, "greeting", nil))
}

func TestFormatWithVariableReference(t *testing.T) {
	ctx := New("en", WithUseIsolating(false))
	errs := ctx.AddMessages("welcome = Welcome, { $name }!\n")
	require.Empty(t, errs)

	got := formatOrFail(t, ctx, "welcome", map[string]interface{}{"name": "Anna"})
	assert.Equal(t, "Welcome, Anna!", got)
}

func TestFormatWithTermReference(t *testing.T) {
	ctx := New("en", WithUseIsolating(false))
	errs := ctx.AddMessages(`
-brand-name = Firefox
about = About { -brand-name }
`)
	require.Empty(t, errs)

	assert.Equal(t, "About Firefox", formatOrFail(t, ctx, "about", nil))
}

func TestFormatSelectExpression(t *testing.T) {
	ctx := New("en", WithUseIsolating(false))
	errs := ctx.AddMessages(`
emails = { $count ->
    [one] You have one new email
   *[other] You have { $count } new emails
}
`)
	require.Empty(t, errs)

	assert.Equal(t, "You have one new email", formatOrFail(t, ctx, "emails", map[string]interface{}{"count": 1}))
	assert.Equal(t, "You have 5 new emails", formatOrFail(t, ctx, "emails", map[string]interface{}{"count": 5}))
}

func TestFormatAttribute(t *testing.T) {
	ctx := New("en", WithUseIsolating(false))
	errs := ctx.AddMessages(`
login-input = Predefined value
    .placeholder = email@example.com
`)
	require.Empty(t, errs)
	require.True(t, ctx.HasAttribute("login-input", "placeholder"))

	var errs2 []*ferrors.ResolutionError
	s := ctx.FormatAttribute("login-input", "placeholder", nil, &errs2)
	require.NotNil(t, s)
	assert.Equal(t, "email@example.com", *s)
}

func TestFormatMissingAttributeReturnsNilAndReportsError(t *testing.T) {
	ctx := New("en", WithUseIsolating(false))
	errs := ctx.AddMessages("login-input = Predefined value\n")
	require.Empty(t, errs)

	var resolveErrs []*ferrors.ResolutionError
	s := ctx.FormatAttribute("login-input", "placeholder", nil, &resolveErrs)
	assert.Nil(t, s)
	require.Len(t, resolveErrs, 1)
}

func TestFormatUnknownMessageReportsReferenceError(t *testing.T) {
	ctx := New("en")
	var errs []*ferrors.ResolutionError
	s := ctx.Format("does-not-exist", nil, &errs)
	assert.Nil(t, s)
	require.Len(t, errs, 1)
	assert.Equal(t, ferrors.KindReference, errs[0].Kind)
}

func TestAddMessagesOverwritesDuplicateNames(t *testing.T) {
	ctx := New("en")
	errs := ctx.AddMessages("greeting = Hello\n")
	require.Empty(t, errs)
	errs = ctx.AddMessages("greeting = Howdy\n")
	require.Empty(t, errs)

	assert.Equal(t, "Howdy", formatOrFail(t, ctx, "greeting", nil))
}

func TestFormatCyclicReferenceIsReportedAndDoesNotHang(t *testing.T) {
	ctx := New("en", WithUseIsolating(false))
	errs := ctx.AddMessages(`
a = { b }
b = { a }
`)
	require.Empty(t, errs)

	var resolveErrs []*ferrors.ResolutionError
	s := ctx.Format("a", nil, &resolveErrs)
	require.NotNil(t, s)
	require.NotEmpty(t, resolveErrs)
}

func TestFormatTermWithVariantIndex(t *testing.T) {
	ctx := New("en", WithUseIsolating(false))
	errs := ctx.AddMessages(`
-brand-name = {
   *[nominative] Firefox
    [genitive] Firefox's
}
about = About { -brand-name[genitive] }
`)
	require.Empty(t, errs)

	assert.Equal(t, "About Firefox's", formatOrFail(t, ctx, "about", nil))
}

func TestWithFunctionsRegistersCustomFunction(t *testing.T) {
	calls := 0
	ctx := New("en", WithUseIsolating(false), WithFunctions(map[string]functions.Function{
		"SHOUT": func(fctx *functions.Context, positional []value.Value, named map[string]value.Value) value.Value {
			calls++
			s, _ := positional[0].ValueOf(fctx.Rt)
			return value.String{Text: s + "!!!"}
		},
	}))
	errs := ctx.AddMessages(`greeting = { SHOUT("hi") }` + "\n")
	require.Empty(t, errs)

	assert.Equal(t, "hi!!!", formatOrFail(t, ctx, "greeting", nil))
	assert.Equal(t, 1, calls)
}
