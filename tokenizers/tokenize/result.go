package tokenize

import "github.com/gomlx/go-prose/tokenizers/api"

type resultKind int

const (
	kindNone resultKind = iota
	kindValue
	kindTokens
)

// Result is what a TransformFunc returns for one input token: no token, a bare value, or one or more tokens.
//
// Tokens in a Result are positioned locally: their Index is relative to the value the transform was given, and
// the engine rebases them to the original text. An Offset of 0 means len(Value).
type Result struct {
	kind   resultKind
	value  string
	tokens []api.Token
}

// None drops the input token.
func None() Result {
	return Result{}
}

// Value emits one token with the given value at the start of the input token.
// An empty value is the same as None.
func Value(v string) Result {
	if v == "" {
		return None()
	}
	return Result{kind: kindValue, value: v}
}

// One emits a single token.
func One(tok api.Token) Result {
	return Result{kind: kindTokens, tokens: []api.Token{tok}}
}

// Many emits the given tokens, in order. No tokens is the same as None.
func Many(tokens ...api.Token) Result {
	if len(tokens) == 0 {
		return None()
	}
	return Result{kind: kindTokens, tokens: tokens}
}

// IsNone returns whether the result emits no token.
func (r Result) IsNone() bool {
	return r.kind == kindNone
}

// Tokens returns the result normalized to a list of locally positioned tokens.
func (r Result) Tokens() []api.Token {
	switch r.kind {
	case kindValue:
		return []api.Token{{Value: r.value, Offset: len(r.value)}}
	case kindTokens:
		return r.tokens
	default:
		return nil
	}
}
