// Package tokenize builds tokenizers: functions that turn text, or tokens produced by a previous tokenizer, into
// new tokens that keep their absolute position in the original text.
//
// A tokenizer is created from a TransformFunc with New, or with one of the builders:
//
//   - Regexp and Pattern: one token per match of a regular expression.
//   - Define: attach Fields to tokens without moving them.
//   - Filter: keep or drop tokens.
//   - Flow: chain tokenizers into a pipeline.
//
// And the presets Sentences, Words, Whitespace and Punctuation.
//
// Example: find repeated words, and tag them.
//
//	repeated := tokenize.Flow(
//		tokenize.Words(),
//		tokenize.Filter(func(value string, _ api.Token, prev *api.Token) bool {
//			return prev != nil && prev.Value == value
//		}),
//		tokenize.Define(api.Fields{"type": "lexical-illusion"}))
//	tokens, err := repeated.Text("the the")
//
// All positions are byte offsets into the original text.
package tokenize

import (
	"github.com/gomlx/go-prose/tokenizers/api"
	"github.com/samber/lo"
	"k8s.io/klog/v2"
)

// TransformFunc converts one input token into zero, one or many tokens.
//
// value is tok.Value, tok is the input token (with its absolute position) and prev is the input token preceding it,
// or nil for the first one. Tokens returned in the Result are positioned relative to value.
//
// A non-nil error aborts the whole tokenization.
type TransformFunc func(value string, tok api.Token, prev *api.Token) (Result, error)

// Tokenizer converts a sequence of tokens into a new sequence of tokens.
// The input is never modified.
type Tokenizer func(tokens []api.Token) ([]api.Token, error)

// Seed wraps text into the sequence with one token covering it all, the input of the first stage of a pipeline.
// Empty text yields an empty sequence.
func Seed(text string) []api.Token {
	if text == "" {
		return nil
	}
	return []api.Token{{Value: text, Index: 0, Offset: len(text)}}
}

// Text tokenizes raw text.
func (tk Tokenizer) Text(text string) ([]api.Token, error) {
	return tk(Seed(text))
}

// New creates a Tokenizer that calls fn for each input token, in order, and concatenates the rebased results.
//
// If fn fails, the tokenizer returns an *api.TransformError with the position of the token, and no tokens.
// If fn emits a token that can't be positioned, it returns an *api.MalformedTokenError.
func New(fn TransformFunc) Tokenizer {
	return func(input []api.Token) ([]api.Token, error) {
		batches := make([][]api.Token, 0, len(input))
		var prev *api.Token
		for ii := range input {
			tok := input[ii].Clone()
			res, err := fn(tok.Value, tok, prev)
			if err != nil {
				return nil, api.NewTransformError(input[ii], err)
			}
			subTokens, err := rebase(input[ii], res.Tokens())
			if err != nil {
				return nil, err
			}
			batches = append(batches, subTokens)
			prev = &tok
		}
		output := lo.Flatten(batches)
		klog.V(4).Infof("tokenize: %d input tokens -> %d output tokens", len(input), len(output))
		return output, nil
	}
}

// rebase converts the locally positioned tokens emitted for parent to absolute positions.
func rebase(parent api.Token, local []api.Token) ([]api.Token, error) {
	if len(local) == 0 {
		return nil, nil
	}
	absolute := make([]api.Token, 0, len(local))
	for _, sub := range local {
		sub.Index += parent.Index
		if sub.Offset == 0 {
			sub.Offset = len(sub.Value)
		}
		switch {
		case sub.Value == "":
			return nil, &api.MalformedTokenError{Token: sub, Parent: parent, Reason: "empty value"}
		case sub.Index < 0:
			return nil, &api.MalformedTokenError{Token: sub, Parent: parent, Reason: "negative index"}
		case sub.Offset < 0:
			return nil, &api.MalformedTokenError{Token: sub, Parent: parent, Reason: "negative offset"}
		}
		absolute = append(absolute, sub)
	}
	return absolute, nil
}

// local returns a copy of tok positioned at the start of its own value, so that returning it from a TransformFunc
// keeps it in place.
func local(tok api.Token) api.Token {
	tok.Index = 0
	return tok
}
