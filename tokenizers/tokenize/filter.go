package tokenize

import "github.com/gomlx/go-prose/tokenizers/api"

// Predicate decides whether a token is kept. prev is the token before tok in the input sequence, or nil.
type Predicate func(value string, tok api.Token, prev *api.Token) bool

// FilterFunc returns a TransformFunc that keeps the tokens for which keep returns true, unchanged, and drops the
// others.
func FilterFunc(keep Predicate) TransformFunc {
	return func(value string, tok api.Token, prev *api.Token) (Result, error) {
		if keep(value, tok, prev) {
			return One(local(tok)), nil
		}
		return None(), nil
	}
}

// Filter creates a Tokenizer that keeps only the tokens for which keep returns true.
func Filter(keep Predicate) Tokenizer {
	return New(FilterFunc(keep))
}
