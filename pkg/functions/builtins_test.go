package functions

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/projectfluent/fluent-go/pkg/cache"
	"github.com/projectfluent/fluent-go/pkg/value"
)

func testContext() *Context {
	return &Context{Locale: "en", Rt: &value.RuntimeContext{Locale: "en", Cache: cache.New()}}
}

func TestDefaultRegistryHasNumberAndDateTime(t *testing.T) {
	r := Default()
	_, ok := r.Get("NUMBER")
	assert.True(t, ok)
	_, ok = r.Get("DATETIME")
	assert.True(t, ok)
}

func TestNumberFunctionWrapsOperandWithOptions(t *testing.T) {
	r := Default()
	fn, _ := r.Get("NUMBER")

	result := fn(testContext(), []value.Value{value.Number{Text: "1234", Value: 1234}}, map[string]value.Value{
		"minimumFractionDigits": value.Number{Value: 2},
	})

	num, ok := result.(value.Number)
	require.True(t, ok)
	assert.Equal(t, 1234.0, num.Value)
	assert.Equal(t, 2.0, num.Opts["minimumFractionDigits"])
}

func TestNumberFunctionWithoutOperandReturnsNone(t *testing.T) {
	r := Default()
	fn, _ := r.Get("NUMBER")
	result := fn(testContext(), nil, nil)
	_, ok := result.(value.None)
	assert.True(t, ok)
}

func TestNumberFunctionAcceptsPreStringifiedOperand(t *testing.T) {
	r := Default()
	fn, _ := r.Get("NUMBER")

	result := fn(testContext(), []value.Value{value.String{Text: "42.5"}}, nil)

	num, ok := result.(value.Number)
	require.True(t, ok)
	assert.Equal(t, 42.5, num.Value)
}

func TestNumberFunctionRejectsUnparseableString(t *testing.T) {
	r := Default()
	fn, _ := r.Get("NUMBER")

	result := fn(testContext(), []value.Value{value.String{Text: "not-a-number"}}, nil)

	_, ok := result.(value.None)
	assert.True(t, ok)
}

func TestRegistryRegisterAndGet(t *testing.T) {
	r := NewRegistry()
	r.Register("SHOUT", func(ctx *Context, positional []value.Value, named map[string]value.Value) value.Value {
		return value.String{Text: "SHOUTED"}
	})
	fn, ok := r.Get("SHOUT")
	require.True(t, ok)
	result := fn(testContext(), nil, nil)
	assert.Equal(t, value.String{Text: "SHOUTED"}, result)
}

func TestMergeOverridesBuiltins(t *testing.T) {
	base := Default()
	overridden := Merge(base, map[string]Function{
		"NUMBER": func(ctx *Context, positional []value.Value, named map[string]value.Value) value.Value {
			return value.String{Text: "overridden"}
		},
	})

	fn, ok := overridden.Get("NUMBER")
	require.True(t, ok)
	result := fn(testContext(), nil, nil)
	assert.Equal(t, value.String{Text: "overridden"}, result)

	baseFn, _ := base.Get("NUMBER")
	baseResult := baseFn(testContext(), nil, nil)
	_, isNone := baseResult.(value.None)
	assert.True(t, isNone, "base registry must be unaffected by Merge")
}
