package tokenize

import "regexp"

var (
	// A sentence starts on a non-space, non-terminal character, runs up to a newline or terminal punctuation,
	// and includes the run of terminal punctuation.
	sentenceRegexp = regexp.MustCompile(`(?i)[^\s.;!?][^\n.;!?]*[.;!?]*`)

	wordRegexp       = regexp.MustCompile(`\w+`)
	whitespaceRegexp = regexp.MustCompile(`\S+`)
)

// SentenceRegexp returns the regular expression used by Sentences.
// It is safe to use concurrently.
func SentenceRegexp() *regexp.Regexp {
	return sentenceRegexp
}

// Sentences returns a tokenizer that splits text on runs of `.`, `;`, `!` or `?` and on newlines.
// Each sentence includes its trailing punctuation.
//
// It knows nothing about abbreviations, decimals or URLs: see package english for a tokenizer that merges those
// false boundaries back.
func Sentences() Tokenizer {
	return Regexp(sentenceRegexp)
}

// Words returns a tokenizer that emits every maximal run of [0-9A-Za-z_].
func Words() Tokenizer {
	return Regexp(wordRegexp)
}

// Whitespace returns a tokenizer that splits on whitespace.
func Whitespace() Tokenizer {
	return Regexp(whitespaceRegexp)
}
