package tokenize

import (
	"unicode"
	"unicode/utf8"

	"github.com/gomlx/go-prose/tokenizers/api"
)

// Punctuation returns a tokenizer that splits on whitespace and emits every punctuation character as a token of
// its own, the way BERT pre-tokenizes text: "Hello, world!" -> "Hello" "," "world" "!".
func Punctuation() Tokenizer {
	return New(func(value string, _ api.Token, _ *api.Token) (Result, error) {
		return Many(splitPunctuation(value)...), nil
	})
}

func splitPunctuation(text string) []api.Token {
	var tokens []api.Token
	wordStart := -1
	flush := func(end int) {
		if wordStart >= 0 {
			tokens = append(tokens, api.Token{Value: text[wordStart:end], Index: wordStart, Offset: end - wordStart})
			wordStart = -1
		}
	}
	for pos, r := range text {
		switch {
		case unicode.IsSpace(r):
			flush(pos)
		case isPunctuation(r):
			flush(pos)
			size := utf8.RuneLen(r)
			tokens = append(tokens, api.Token{Value: text[pos : pos+size], Index: pos, Offset: size})
		default:
			if wordStart < 0 {
				wordStart = pos
			}
		}
	}
	flush(len(text))
	return tokens
}

func isPunctuation(r rune) bool {
	// ASCII punctuation
	if (r >= 33 && r <= 47) || (r >= 58 && r <= 64) ||
		(r >= 91 && r <= 96) || (r >= 123 && r <= 126) {
		return true
	}
	return unicode.IsPunct(r)
}
