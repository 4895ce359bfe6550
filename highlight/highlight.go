// Package highlight renders tokens over the text they were extracted from, e.g. to show the issues flagged by a
// rule in a terminal.
package highlight

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/gomlx/go-prose/tokenizers/api"
	"github.com/pkg/errors"
)

// RenderFunc returns text with the span of each token replaced by mark(span). Text outside the tokens is kept as is.
//
// Tokens must be sorted by Index, must not overlap and must lie within text, otherwise an error is returned.
// Marks are applied to the original text of the span, not to the token's Value.
func RenderFunc(text string, tokens []api.Token, mark func(string) string) (string, error) {
	var b strings.Builder
	b.Grow(len(text))
	cursor := 0
	for ii, tok := range tokens {
		if tok.Index < cursor {
			return "", errors.Errorf("token #%d %q at %d overlaps the previous token, which ends at %d",
				ii, tok.Value, tok.Index, cursor)
		}
		if tok.Offset < 0 || tok.End() > len(text) {
			return "", errors.Errorf("token #%d %q spans [%d:%d], out of the text of length %d",
				ii, tok.Value, tok.Index, tok.End(), len(text))
		}
		b.WriteString(text[cursor:tok.Index])
		b.WriteString(mark(text[tok.Index:tok.End()]))
		cursor = tok.End()
	}
	b.WriteString(text[cursor:])
	return b.String(), nil
}

// Render returns text with the span of each token rendered with style.
// See RenderFunc.
func Render(text string, tokens []api.Token, style lipgloss.Style) (string, error) {
	out, err := RenderFunc(text, tokens, func(span string) string {
		return style.Render(span)
	})
	if err != nil {
		return "", errors.WithMessage(err, "highlight")
	}
	return out, nil
}
