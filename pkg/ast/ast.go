// Package ast defines the Fluent syntax tree: the Resource, Entry (Message
// and Term), Pattern, and Expression node shapes the parser builds and the
// resolver consumes.
// TypeScript original code: n/a — grounded on kaptinlin/messageformat-go's
// pkg/datamodel/types.go for the tagged-node idiom (a Node interface with a
// Type() string discriminator, one concrete struct per variant, built as a
// struct literal with no separate constructor) and on other_examples/lus-fluent.go for the concrete Fluent
// grammar shapes (Message/Term/Attribute, MessageReference/TermReference
// with optional attribute, SelectExpression/Variant).
package ast

// Node is implemented by every syntax-tree node. Type returns the node's
// discriminator, letting callers dispatch on the concrete shape without a
// type switch at every call site.
type Node interface {
	Type() string
}

// Resource is a parsed Fluent file: an ordered list of entries, interleaved
// with junk for any text the parser could not make sense of.
type Resource struct {
	Entries []Entry
	Junk    []*Junk
}

// Entry is implemented by Message and Term, the two top-level declarations
// a Fluent resource can contain.
type Entry interface {
	Node
	GetID() *Identifier
	GetValue() *Pattern
	GetAttributes() []*Attribute
}

// Message is a public entry, referencable from another message's pattern
// by its bare identifier.
type Message struct {
	ID         *Identifier
	Value      *Pattern
	Attributes []*Attribute
	Comment    string
}

func (m *Message) Type() string               { return "Message" }
func (m *Message) GetID() *Identifier         { return m.ID }
func (m *Message) GetValue() *Pattern         { return m.Value }
func (m *Message) GetAttributes() []*Attribute { return m.Attributes }

// Term is a private entry, referencable only via a TermRef (`-name`), never
// directly from external code.
type Term struct {
	ID         *Identifier
	Value      *Pattern
	Attributes []*Attribute
	Comment    string
}

func (t *Term) Type() string               { return "Term" }
func (t *Term) GetID() *Identifier         { return t.ID }
func (t *Term) GetValue() *Pattern         { return t.Value }
func (t *Term) GetAttributes() []*Attribute { return t.Attributes }

// Junk is a span of source the parser could not parse as an entry, kept so
// a caller can report it without aborting the whole resource.
type Junk struct {
	Content string
	Errors  []string
}

func (j *Junk) Type() string { return "Junk" }

// Identifier is a bare name: a message or term name, an attribute name, a
// function name, or a variant key's keyword form.
type Identifier struct {
	Name string
}

func (i *Identifier) Type() string { return "Identifier" }

// Attribute is a named sub-pattern attached to a Message or Term, addressed
// as `-name.attr` or `name.attr`.
type Attribute struct {
	ID    *Identifier
	Value *Pattern
}

func (a *Attribute) Type() string { return "Attribute" }

// Pattern is an ordered sequence of text fragments and placeables that
// concatenate to form a message's resolved value.
type Pattern struct {
	Elements []PatternElement
}

func (p *Pattern) Type() string { return "Pattern" }

// PatternElement is implemented by TextElement and Placeable, the two kinds
// of content a Pattern can be built from.
type PatternElement interface {
	Node
}

// TextElement is a literal run of text copied verbatim into the resolved
// pattern.
type TextElement struct {
	Value string
}

func (t *TextElement) Type() string { return "TextElement" }

// Placeable is a `{ ... }` expression embedded inside a Pattern.
type Placeable struct {
	Expression Expression
}

func (p *Placeable) Type() string { return "Placeable" }

// Expression is implemented by every expression node a Placeable, a
// SelectExpression's selector, or a CallArguments entry can hold.
type Expression interface {
	Node
}

// StringLiteral is a quoted string literal expression.
type StringLiteral struct {
	Value string
}

func (s *StringLiteral) Type() string { return "StringLiteral" }

// NumberLiteral is a numeric literal expression. Raw preserves the literal's
// original text (e.g. leading zeros); Value is its parsed float64 form, which
// is what numeric variant keys are compared by.
type NumberLiteral struct {
	Raw   string
	Value float64
}

func (n *NumberLiteral) Type() string { return "NumberLiteral" }

// VariableReference is an external argument reference, `$name`.
type VariableReference struct {
	ID *Identifier
}

func (v *VariableReference) Type() string { return "VariableReference" }

// MessageReference is a reference to a public message, optionally to one
// of its attributes: `name` or `name.attr`.
type MessageReference struct {
	ID        *Identifier
	Attribute *Identifier // nil when referencing the message's own value
}

func (m *MessageReference) Type() string { return "MessageReference" }

// TermReference is a reference to a private term, optionally to one of its
// attributes, and optionally with call arguments: `-name`, `-name.attr`, or
// `-name(args)`.
type TermReference struct {
	ID        *Identifier
	Attribute *Identifier
	Arguments *CallArguments // nil when the reference has no argument list
}

func (t *TermReference) Type() string { return "TermReference" }

// VariantReference addresses one explicit variant of a referenced message
// or term, e.g. `brand[gen]` or `-brand[gen]`, per §3's `VariantRef(id, key)`.
type VariantReference struct {
	ID     *Identifier
	Key    VariantKey
	IsTerm bool
}

func (v *VariantReference) Type() string { return "VariantReference" }

// FunctionReference invokes a built-in or user-registered function by name,
// e.g. `NUMBER($count)`.
type FunctionReference struct {
	ID        *Identifier
	Arguments *CallArguments
}

func (f *FunctionReference) Type() string { return "FunctionReference" }

// CallArguments holds the positional and named arguments of a term
// reference or function reference call.
type CallArguments struct {
	Positional []Expression
	Named      []*NamedArgument
}

func (c *CallArguments) Type() string { return "CallArguments" }

// NamedArgument is a `name: value` entry inside a CallArguments list. Value
// is the primary expression the parser read after the colon; the parser does
// not restrict it to literals.
type NamedArgument struct {
	Name  *Identifier
	Value Expression
}

func (n *NamedArgument) Type() string { return "NamedArgument" }

// SelectExpression chooses one of its Variants' patterns by matching its
// Selector against each variant's Key in declaration order, falling back to
// the variant marked Default.
type SelectExpression struct {
	Selector Expression
	Variants []*Variant
}

func (s *SelectExpression) Type() string { return "SelectExpression" }

// Variant is one arm of a SelectExpression: a key (a NumberLiteral or an
// Identifier used as a bare keyword) paired with the pattern to resolve
// when that key matches the selector.
type Variant struct {
	Key     VariantKey
	Value   *Pattern
	Default bool
}

func (v *Variant) Type() string { return "Variant" }

// VariantKey is implemented by Identifier (a keyword key, also used for the
// catch-all `*[other]` variant) and NumberLiteral (an exact numeric key).
type VariantKey interface {
	Node
}
