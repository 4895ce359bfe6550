// Package api defines the types shared by the tokenizers: the position-tagged Token, its Span and the errors
// a tokenizer can return.
// It's kept apart from the engine to break the cyclic dependency between `tokenize`, `english` and `highlight`.
package api

import "github.com/samber/lo"

// Span represents the byte span of a token in the original text.
// Start and End are byte offsets (not rune offsets), suitable for slicing
// Go strings directly: originalText[span.Start:span.End].
type Span struct {
	Start int // start byte position (inclusive)
	End   int // end byte position (exclusive)
}

// Len returns the number of bytes covered by the span.
func (s Span) Len() int {
	return s.End - s.Start
}

// Fields holds the extra payload attached to a token by annotators (e.g.: a rule type).
// It never affects the position of the token.
type Fields map[string]any

// Clone returns a shallow copy of the fields, or nil if there are none.
func (f Fields) Clone() Fields {
	if len(f) == 0 {
		return nil
	}
	return Fields(lo.Assign(f))
}

// Token is a value plus its absolute position in the original top-level text.
//
// Index is the byte offset of the token's first byte in the original text, and Offset is the length in bytes of
// the region of the original text it claims. Offset is usually len(Value), but a transform that rewrites Value
// (e.g. a Unicode normalization) keeps Offset equal to the span it was derived from.
type Token struct {
	Value  string
	Index  int
	Offset int
	Fields Fields
}

// End returns the absolute byte position right after the token.
func (t Token) End() int {
	return t.Index + t.Offset
}

// Span returns the byte span of the token in the original text.
func (t Token) Span() Span {
	return Span{Start: t.Index, End: t.End()}
}

// Get returns the annotation stored under key, if any.
func (t Token) Get(key string) (any, bool) {
	v, ok := t.Fields[key]
	return v, ok
}

// Clone returns a copy of the token that doesn't share its Fields with t.
func (t Token) Clone() Token {
	t.Fields = t.Fields.Clone()
	return t
}
