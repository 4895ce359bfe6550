package tokenize

import (
	"regexp"
	"testing"

	"github.com/gomlx/go-prose/tokenizers/api"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegexp(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
		input   string
		want    []api.Token
	}{
		{
			name:    "words",
			pattern: `\w+`,
			input:   "the the",
			want: []api.Token{
				{Value: "the", Index: 0, Offset: 3},
				{Value: "the", Index: 4, Offset: 3},
			},
		},
		{
			name:    "gaps are dropped",
			pattern: `[0-9]+`,
			input:   "a1bb22ccc333",
			want: []api.Token{
				{Value: "1", Index: 1, Offset: 1},
				{Value: "22", Index: 4, Offset: 2},
				{Value: "333", Index: 9, Offset: 3},
			},
		},
		{
			name:    "no match",
			pattern: `[0-9]+`,
			input:   "abc",
			want:    nil,
		},
		{
			name:    "empty matches are skipped",
			pattern: `a*`,
			input:   "baab",
			want:    []api.Token{{Value: "aa", Index: 1, Offset: 2}},
		},
		{
			name:    "only empty matches",
			pattern: `x*`,
			input:   "héllo",
			want:    nil,
		},
		{
			name:    "anchor applies to the remaining text",
			pattern: `^\s*\w+`,
			input:   "ab cd, ef",
			want: []api.Token{
				{Value: "ab", Index: 0, Offset: 2},
				{Value: " cd", Index: 2, Offset: 3},
			},
		},
		{
			name:    "byte offsets",
			pattern: `\w+`,
			input:   "café au lait",
			want: []api.Token{
				{Value: "caf", Index: 0, Offset: 3},
				{Value: "au", Index: 6, Offset: 2},
				{Value: "lait", Index: 9, Offset: 4},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tk, err := Pattern(tt.pattern)
			require.NoError(t, err)
			got, err := tk.Text(tt.input)
			require.NoError(t, err)
			if len(tt.want) == 0 {
				assert.Empty(t, got)
				return
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRegexp_RebasesOnParentTokens(t *testing.T) {
	input := []api.Token{
		{Value: "one two", Index: 100, Offset: 7},
		{Value: "three", Index: 200, Offset: 5},
	}
	got, err := Regexp(regexp.MustCompile(`\w+`))(input)
	require.NoError(t, err)
	assert.Equal(t, []api.Token{
		{Value: "one", Index: 100, Offset: 3},
		{Value: "two", Index: 104, Offset: 3},
		{Value: "three", Index: 200, Offset: 5},
	}, got)
}

func TestRegexp_NoOverlap(t *testing.T) {
	text := "aaa.bbb. ccc!! ddd? e;f\ng"
	for _, tk := range []Tokenizer{Sentences(), Words(), Whitespace(), Punctuation()} {
		tokens, err := tk.Text(text)
		require.NoError(t, err)
		for i := 1; i < len(tokens); i++ {
			assert.LessOrEqual(t, tokens[i-1].End(), tokens[i].Index, "tokens %v and %v overlap", tokens[i-1], tokens[i])
		}
		for _, tok := range tokens {
			assert.Equal(t, tok.Value, text[tok.Index:tok.End()])
		}
	}
}

func TestRegexp_NilRegexp(t *testing.T) {
	_, err := Regexp(nil).Text("abc")
	var transformErr *api.TransformError
	require.ErrorAs(t, err, &transformErr)
	assert.Equal(t, 0, transformErr.Index)
}

func TestPattern_Invalid(t *testing.T) {
	_, err := Pattern("")
	assert.Error(t, err)

	_, err = Pattern("(")
	assert.Error(t, err)
}
