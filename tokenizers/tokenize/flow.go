package tokenize

import "github.com/gomlx/go-prose/tokenizers/api"

// Flow chains tokenizers left to right: the output of each stage is the input of the next.
// Flow(f, g)(x) is g(f(x)). With no stages it returns its input.
//
// The first failing stage aborts the pipeline.
func Flow(stages ...Tokenizer) Tokenizer {
	return func(tokens []api.Token) ([]api.Token, error) {
		var err error
		for _, stage := range stages {
			tokens, err = stage(tokens)
			if err != nil {
				return nil, err
			}
		}
		return tokens, nil
	}
}
