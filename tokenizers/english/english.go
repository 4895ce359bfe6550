// Package english implements an English sentence tokenizer that tolerates abbreviations, initials, decimal
// numbers, URLs and emails.
//
// It splits with tokenize.Sentences and then merges the fragments that don't really end a sentence:
//
//	"On Jan. 20, former Sen. Barack Obama became the 44th President of the U.S. Millions attended."
//
// yields two sentences.
package english

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/gomlx/go-prose/tokenizers/api"
	"github.com/gomlx/go-prose/tokenizers/tokenize"
	"github.com/samber/lo"
	"golang.org/x/text/cases"
	"k8s.io/klog/v2"
)

// DefaultAbbreviations are the words that, followed by a period, don't end a sentence.
// Lookups are case-insensitive.
var DefaultAbbreviations = []string{
	"mr", "mrs", "ms", "dr", "prof", "sr", "jr", "st", "mt",
	"sen", "rep", "gov", "pres", "gen", "col", "lt", "sgt", "capt", "cmdr", "adm", "hon", "rev",
	"jan", "feb", "mar", "apr", "jun", "jul", "aug", "sep", "sept", "oct", "nov", "dec",
	"vs", "approx", "dept", "fig", "vol", "ch", "al",
}

// Option configures Sentences.
type Option func(c *config)

type config struct {
	abbreviations map[string]struct{}
}

// WithAbbreviations replaces DefaultAbbreviations.
func WithAbbreviations(words ...string) Option {
	return func(c *config) {
		c.abbreviations = make(map[string]struct{}, len(words))
		c.add(words)
	}
}

// WithExtraAbbreviations adds words to the abbreviations.
func WithExtraAbbreviations(words ...string) Option {
	return func(c *config) {
		c.add(words)
	}
}

func newConfig(opts []Option) *config {
	c := &config{abbreviations: make(map[string]struct{}, len(DefaultAbbreviations))}
	c.add(DefaultAbbreviations)
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *config) add(words []string) {
	caser := cases.Fold()
	lo.ForEach(words, func(w string, _ int) {
		c.abbreviations[caser.String(strings.TrimSuffix(w, "."))] = struct{}{}
	})
}

func (c *config) isAbbreviation(word string) bool {
	_, found := c.abbreviations[cases.Fold().String(word)]
	return found
}

// SentencesFunc returns the tokenize.TransformFunc used by Sentences.
func SentencesFunc(opts ...Option) tokenize.TransformFunc {
	c := newConfig(opts)
	split := tokenize.MatchFunc(tokenize.SentenceRegexp())
	return func(value string, tok api.Token, prev *api.Token) (tokenize.Result, error) {
		fragments, err := split(value, tok, prev)
		if err != nil {
			return tokenize.None(), err
		}
		return tokenize.Many(c.merge(value, fragments.Tokens())...), nil
	}
}

// Sentences returns a tokenizer that splits text into sentences.
// Each sentence includes its trailing punctuation, and sentences never span a newline.
func Sentences(opts ...Option) tokenize.Tokenizer {
	return tokenize.New(SentencesFunc(opts...))
}

// merge joins the fragments of text (positioned relative to text) that continue the previous sentence.
func (c *config) merge(text string, fragments []api.Token) []api.Token {
	if len(fragments) == 0 {
		return nil
	}
	sentences := make([]api.Token, 0, len(fragments))
	sentences = append(sentences, fragments[0])
	for _, next := range fragments[1:] {
		last := &sentences[len(sentences)-1]
		if !c.continues(text, *last, next) {
			sentences = append(sentences, next)
			continue
		}
		end := next.End()
		klog.V(5).Infof("english: %q continues sentence %q", next.Value, last.Value)
		last.Value = text[last.Index:end]
		last.Offset = end - last.Index
	}
	return sentences
}

// continues returns whether next is part of the same sentence as current.
func (c *config) continues(text string, current, next api.Token) bool {
	if !strings.HasSuffix(current.Value, ".") {
		return false
	}
	gap := text[current.End():next.Index]
	if strings.ContainsRune(gap, '\n') {
		return false
	}
	first, _ := utf8.DecodeRuneInString(next.Value)
	if unicode.IsLower(first) || unicode.IsDigit(first) {
		// "www.google.fr", "gg@gggg.kk", "3.14", "Sen. of ...", "Jan. 20".
		return true
	}
	word := lastWord(current.Value)
	if gap == "" {
		// Initials: "U.S.".
		return utf8.RuneCountInString(word) == 1 && unicode.IsLetter(first)
	}
	return c.isAbbreviation(word)
}

// lastWord returns the run of letters and digits right before the terminal punctuation of sentence.
func lastWord(sentence string) string {
	s := strings.TrimRight(sentence, ".;!?")
	i := strings.LastIndexFunc(s, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	if i < 0 {
		return s
	}
	_, size := utf8.DecodeRuneInString(s[i:])
	return s[i+size:]
}
