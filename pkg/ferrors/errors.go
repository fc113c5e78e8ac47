// Package ferrors provides the error taxonomy raised during Fluent message
// resolution and parsing.
// TypeScript original code: errors.ts module (kaptinlin/messageformat-go pkg/errors), adapted
// from MessageFormat 2.0's error hierarchy to the four-kind taxonomy fluent.js uses
// (reference / range / type / syntax).
package ferrors

import "fmt"

// Kind classifies a ResolutionError. These four kinds are exhaustive: every
// error the resolver or parser can raise falls into exactly one of them.
type Kind string

const (
	// KindReference is raised for unknown messages, externals, attributes,
	// variants, or functions.
	KindReference Kind = "reference"
	// KindRange is raised for a value-less message with no default, a cyclic
	// reference, or a placeable that exceeds the length cap.
	KindRange Kind = "range"
	// KindType is raised for an external argument of unsupported kind, or a
	// callable slot that turns out not to be callable.
	KindType Kind = "type"
	// KindSyntax is raised by the parser while installing messages.
	KindSyntax Kind = "syntax"
)

// ResolutionError is the single error type produced by this module. It
// carries a Kind so callers can filter the error list by classification,
// and a free-form Message describing the specific failure.
// TypeScript original code:
//
//	export class MessageError extends Error {
//	  type: 'not-formattable' | 'unknown-function' | ...;
//	  constructor(type, message) { super(message); this.type = type; }
//	}
//
// Source names the offending reference, identifier, or source-text snippet
// the error pertains to — the variable/message/term/function name for a
// resolution-time error, or the nearby source text for a parse-time one. It
// is informational only: callers that just want a message should use Error().
type ResolutionError struct {
	Kind    Kind
	Message string
	Source  string
}

func (e *ResolutionError) Error() string {
	return e.Message
}

// Is reports whether target is a *ResolutionError of the same Kind, so
// errors.Is(err, &ResolutionError{Kind: KindReference}) matches any
// reference error regardless of its Message or Source.
func (e *ResolutionError) Is(target error) bool {
	t, ok := target.(*ResolutionError)
	if !ok {
		return false
	}
	return e.Kind == t.Kind
}

// WithSource sets Source on e and returns e, for chaining onto a freshly
// constructed error at its call site.
func (e *ResolutionError) WithSource(source string) *ResolutionError {
	e.Source = source
	return e
}

func newf(kind Kind, format string, args ...interface{}) *ResolutionError {
	return &ResolutionError{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// NewReferenceError reports an unknown message, term, external argument,
// attribute, variant, or function reference.
func NewReferenceError(format string, args ...interface{}) *ResolutionError {
	return newf(KindReference, format, args...)
}

// NewRangeError reports a value-less message with no default, a cyclic
// reference, or an oversized placeable.
func NewRangeError(format string, args ...interface{}) *ResolutionError {
	return newf(KindRange, format, args...)
}

// NewTypeError reports an external argument of unsupported kind, or a
// non-callable function slot.
func NewTypeError(format string, args ...interface{}) *ResolutionError {
	return newf(KindType, format, args...)
}

// NewSyntaxError reports a parse failure raised while installing messages.
func NewSyntaxError(format string, args ...interface{}) *ResolutionError {
	return newf(KindSyntax, format, args...)
}

// NewCyclicReferenceError is the specific range error §4.4.2 names by text:
// "Cyclic reference".
func NewCyclicReferenceError() *ResolutionError {
	return newf(KindRange, "Cyclic reference")
}

// NewTooLongError is the specific range error for a placeable whose
// flattened length exceeds MAX_PLACEABLE_LENGTH.
func NewTooLongError(limit int) *ResolutionError {
	return newf(KindRange, "Too many characters in placeable (%d max)", limit)
}
