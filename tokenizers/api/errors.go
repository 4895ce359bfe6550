package api

import "fmt"

// TransformError is returned by a tokenizer when the user-supplied transform failed on a token.
// It carries the position of the offending token, and the original error can be retrieved with
// errors.Cause or errors.Unwrap.
type TransformError struct {
	Value  string
	Index  int
	Offset int
	cause  error
}

// NewTransformError wraps err with the position of tok.
func NewTransformError(tok Token, err error) *TransformError {
	return &TransformError{Value: tok.Value, Index: tok.Index, Offset: tok.Offset, cause: err}
}

func (e *TransformError) Error() string {
	return fmt.Sprintf("transform failed on token %q at [%d:%d]: %v", e.Value, e.Index, e.Index+e.Offset, e.cause)
}

// Cause implements github.com/pkg/errors causer interface.
func (e *TransformError) Cause() error { return e.cause }

// Unwrap returns the error returned by the transform.
func (e *TransformError) Unwrap() error { return e.cause }

// MalformedTokenError is returned when a transform emits a token that can't be positioned: an empty Value, or a
// negative absolute Index or Offset.
type MalformedTokenError struct {
	// Token as emitted by the transform, after rebasing.
	Token Token
	// Parent is the input token the transform was called with.
	Parent Token
	Reason string
}

func (e *MalformedTokenError) Error() string {
	return fmt.Sprintf("malformed token %q (index=%d, offset=%d) derived from token at [%d:%d]: %s",
		e.Token.Value, e.Token.Index, e.Token.Offset, e.Parent.Index, e.Parent.End(), e.Reason)
}
