package api

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToken_Span(t *testing.T) {
	tok := Token{Value: "Second.", Index: 7, Offset: 7}
	assert.Equal(t, 14, tok.End())
	assert.Equal(t, Span{Start: 7, End: 14}, tok.Span())
	assert.Equal(t, 7, tok.Span().Len())
}

func TestToken_Clone(t *testing.T) {
	tok := Token{Value: "a", Offset: 1, Fields: Fields{"type": "adverb"}}
	clone := tok.Clone()
	clone.Fields["type"] = "passive"
	assert.Equal(t, "adverb", tok.Fields["type"])

	v, ok := clone.Get("type")
	require.True(t, ok)
	assert.Equal(t, "passive", v)
	_, ok = clone.Get("missing")
	assert.False(t, ok)

	assert.Nil(t, Token{Value: "b"}.Clone().Fields)
}

func TestTransformError(t *testing.T) {
	cause := errors.New("boom")
	err := NewTransformError(Token{Value: "bad", Index: 3, Offset: 3}, cause)
	assert.Equal(t, `transform failed on token "bad" at [3:6]: boom`, err.Error())
	assert.Equal(t, cause, errors.Cause(err))
	assert.ErrorIs(t, err, cause)
}

func TestMalformedTokenError(t *testing.T) {
	err := &MalformedTokenError{
		Token:  Token{Index: 5},
		Parent: Token{Value: "hello", Index: 4, Offset: 5},
		Reason: "empty value",
	}
	assert.Equal(t, `malformed token "" (index=5, offset=0) derived from token at [4:9]: empty value`, err.Error())
}
