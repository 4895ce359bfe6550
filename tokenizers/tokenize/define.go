package tokenize

import (
	"github.com/gomlx/go-prose/tokenizers/api"
	"github.com/samber/lo"
)

// DefineOption configures DefineFunc and Define.
type DefineOption func(d *definition)

type definition struct {
	value  *string
	offset *int
}

// OverrideValue makes the annotator replace the token's Value. The token keeps its position.
func OverrideValue(v string) DefineOption {
	return func(d *definition) {
		d.value = &v
	}
}

// OverrideOffset makes the annotator replace the token's Offset.
func OverrideOffset(offset int) DefineOption {
	return func(d *definition) {
		d.offset = &offset
	}
}

// DefineFunc returns a TransformFunc that keeps each token where it is and merges fields into its Fields.
// Keys in fields override existing ones, so applying the same annotation twice is the same as applying it once.
func DefineFunc(fields api.Fields, opts ...DefineOption) TransformFunc {
	var d definition
	for _, opt := range opts {
		opt(&d)
	}
	return func(_ string, tok api.Token, _ *api.Token) (Result, error) {
		annotated := local(tok)
		annotated.Fields = api.Fields(lo.Assign(api.Fields{}, tok.Fields, fields))
		if d.value != nil {
			annotated.Value = *d.value
		}
		if d.offset != nil {
			annotated.Offset = *d.offset
		}
		return One(annotated), nil
	}
}

// Define creates a Tokenizer that annotates every token with fields.
// See DefineFunc.
func Define(fields api.Fields, opts ...DefineOption) Tokenizer {
	return New(DefineFunc(fields, opts...))
}
