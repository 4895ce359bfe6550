package tokenize

import (
	"regexp"
	"unicode/utf8"

	"github.com/gomlx/go-prose/tokenizers/api"
	"github.com/pkg/errors"
	"k8s.io/klog/v2"
)

// MatchFunc returns a TransformFunc that emits one token per match of re in the value of the input token.
// Text between matches is dropped.
//
// After each match the scan restarts on the remaining text, so anchors and word boundaries are evaluated against
// the unconsumed text. Empty matches never produce a token: the scan skips one rune past them instead.
func MatchFunc(re *regexp.Regexp) TransformFunc {
	return func(value string, _ api.Token, _ *api.Token) (Result, error) {
		if re == nil {
			return None(), errors.New("tokenize: nil regular expression")
		}
		return Many(scan(re, value)...), nil
	}
}

// Regexp creates a Tokenizer that emits one token per match of re.
// See MatchFunc.
func Regexp(re *regexp.Regexp) Tokenizer {
	return New(MatchFunc(re))
}

// Pattern compiles expr and returns a Regexp tokenizer for it.
func Pattern(expr string) (Tokenizer, error) {
	if expr == "" {
		return nil, errors.Errorf("tokenize: empty pattern")
	}
	re, err := regexp.Compile(expr)
	if err != nil {
		return nil, errors.Wrapf(err, "tokenize: can't compile pattern %q", expr)
	}
	return Regexp(re), nil
}

// scan returns the matches of re in text, positioned relative to text.
func scan(re *regexp.Regexp, text string) []api.Token {
	var tokens []api.Token
	cursor := 0
	remaining := text
	forcedAdvance := false
	for {
		loc := re.FindStringIndex(remaining)
		if loc == nil {
			break
		}
		start, end := loc[0], loc[1]
		if start == end {
			if start >= len(remaining) {
				break
			}
			_, size := utf8.DecodeRuneInString(remaining[start:])
			remaining = remaining[start+size:]
			cursor += start + size
			forcedAdvance = true
			continue
		}
		tokens = append(tokens, api.Token{
			Value:  remaining[start:end],
			Index:  cursor + start,
			Offset: end - start,
		})
		remaining = remaining[end:]
		cursor += end
	}
	if forcedAdvance {
		klog.V(2).Infof("tokenize: pattern %q matched the empty string, skipped ahead", re.String())
	}
	return tokens
}
