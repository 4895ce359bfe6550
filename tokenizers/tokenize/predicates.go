package tokenize

import (
	"github.com/gomlx/go-prose/tokenizers/api"
	"github.com/samber/lo"
)

// InSet returns a Predicate that is true for tokens whose value is one of words, ignoring case.
func InSet(words ...string) Predicate {
	set := lo.SliceToMap(words, func(w string) (string, struct{}) {
		return fold(w), struct{}{}
	})
	return func(value string, _ api.Token, _ *api.Token) bool {
		_, found := set[fold(value)]
		return found
	}
}

// Not negates p.
func Not(p Predicate) Predicate {
	return func(value string, tok api.Token, prev *api.Token) bool {
		return !p(value, tok, prev)
	}
}
