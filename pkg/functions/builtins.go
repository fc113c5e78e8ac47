package functions

import (
	"strconv"

	"github.com/projectfluent/fluent-go/pkg/value"
)

// Default builds the fixed built-in registry §4.5 requires at minimum:
// NUMBER and DATETIME. Grounded on the teacher's pkg/functions/number.go
// and pkg/functions/datetime.go readNumericOperand/mergeNumberOptions
// pattern, adapted to Fluent's positional-operand/named-options call shape.
func Default() *Registry {
	r := NewRegistry()
	r.Register("NUMBER", numberFunction)
	r.Register("DATETIME", dateTimeFunction)
	return r
}

func numberFunction(ctx *Context, positional []value.Value, named map[string]value.Value) value.Value {
	operand, ok := numericOperand(positional)
	if !ok {
		return value.None{Hint: "NUMBER()"}
	}
	opts := mergeOptions(operand.Opts, optionsToMap(named))
	return value.Number{Text: operand.Text, Value: operand.Value, Opts: opts}
}

func dateTimeFunction(ctx *Context, positional []value.Value, named map[string]value.Value) value.Value {
	if len(positional) == 0 {
		return value.None{Hint: "DATETIME()"}
	}
	dt, ok := positional[0].(value.DateTime)
	if !ok {
		return value.None{Hint: "DATETIME()"}
	}
	opts := mergeOptions(dt.Opts, optionsToMap(named))
	return value.DateTime{Instant: dt.Instant, Opts: opts}
}

// mergeOptions layers the call's named options over the operand's existing
// options; a named option wins over an operand option of the same name.
func mergeOptions(base, overrides map[string]interface{}) map[string]interface{} {
	if len(base) == 0 {
		return overrides
	}
	merged := make(map[string]interface{}, len(base)+len(overrides))
	for k, v := range base {
		merged[k] = v
	}
	for k, v := range overrides {
		merged[k] = v
	}
	return merged
}

// numericOperand extracts a Number from NUMBER()'s first positional
// argument; a String operand parseable as a number is also accepted, since
// external args commonly arrive pre-stringified.
func numericOperand(positional []value.Value) (value.Number, bool) {
	if len(positional) == 0 {
		return value.Number{}, false
	}
	switch v := positional[0].(type) {
	case value.Number:
		return v, true
	case value.String:
		f, err := strconv.ParseFloat(v.Text, 64)
		if err != nil {
			return value.Number{}, false
		}
		return value.Number{Text: v.Text, Value: f}, true
	default:
		return value.Number{}, false
	}
}

// optionsToMap flattens a named-argument value map into the
// map[string]interface{} shape the formatter cache keys on and the
// underlying formatters (x/text, go-money, carbon) accept.
func optionsToMap(named map[string]value.Value) map[string]interface{} {
	if len(named) == 0 {
		return nil
	}
	opts := make(map[string]interface{}, len(named))
	for k, v := range named {
		switch val := v.(type) {
		case value.String:
			opts[k] = val.Text
		case value.Keyword:
			opts[k] = val.Name
		case value.Number:
			opts[k] = val.Value
		}
	}
	return opts
}
