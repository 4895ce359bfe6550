package tokenize

import (
	"strings"
	"unicode"

	"github.com/gomlx/go-prose/tokenizers/api"
	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"
)

// rewrite returns a TransformFunc that replaces each token's value by fn(value).
// The token keeps the Offset of the text it was derived from, and is dropped if fn returns "".
func rewrite(fn func(string) string) TransformFunc {
	return func(value string, tok api.Token, _ *api.Token) (Result, error) {
		rewritten := local(tok)
		rewritten.Value = fn(value)
		if rewritten.Value == "" {
			return None(), nil
		}
		rewritten.Offset = tok.Offset
		return One(rewritten), nil
	}
}

// Normalize returns a tokenizer that converts each token's value to the Unicode normalization form.
// Offsets still refer to the original text, so they may differ from len(Value).
func Normalize(form norm.Form) Tokenizer {
	return New(rewrite(form.String))
}

// StripAccents returns a tokenizer that removes combining marks from each token's value: "résumé" -> "resume".
// Offsets still refer to the original text.
func StripAccents() Tokenizer {
	return New(rewrite(removeAccents))
}

// Fold returns a tokenizer that case-folds each token's value, for case-insensitive comparisons.
// Offsets still refer to the original text.
func Fold() Tokenizer {
	return New(rewrite(fold))
}

// fold case-folds s. A cases.Caser is stateful, hence one per call.
func fold(s string) string {
	return cases.Fold().String(s)
}

func removeAccents(text string) string {
	var b strings.Builder
	for _, r := range norm.NFD.String(text) {
		if !unicode.Is(unicode.Mn, r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}
