package collection

import (
	"errors"
	"fmt"
)

// Codec error codes (exported consts for IDE completion and type safety by convention)
const (
	CodeDepthExceeded = "depth_exceeded"
	CodeStateMismatch = "state_mismatch"
	CodeControlChar   = "control_char"
	CodeSyntax        = "syntax"
	CodeInvalidUTF8   = "invalid_utf8"
	CodeUnknown       = "unknown"
)

// ErrInvalidArgument reports a Merge source that is neither a plain mapping,
// a *Collection, nor a Structured value.
var ErrInvalidArgument = errors.New("invalid argument")

// codeMessages assigns each code a stable human-readable message so callers
// can tell failure classes apart without matching on encoder internals.
var codeMessages = map[string]string{
	CodeDepthExceeded: "maximum nesting depth exceeded",
	CodeStateMismatch: "underflow or encoder mode mismatch",
	CodeControlChar:   "unexpected control character found",
	CodeSyntax:        "syntax error, malformed JSON",
	CodeInvalidUTF8:   "malformed UTF-8 characters, possibly incorrectly encoded",
	CodeUnknown:       "unknown encoding error",
}

// CodecError is a classified encode/decode failure. Code is one of the
// consts above; Message is the fixed message for that code; Cause optionally
// carries the underlying encoder error.
type CodecError struct {
	Code    string
	Message string
	Cause   error
}

func (e *CodecError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *CodecError) Unwrap() error { return e.Cause }

func newCodecError(code string, cause error) *CodecError {
	msg, ok := codeMessages[code]
	if !ok {
		code, msg = CodeUnknown, codeMessages[CodeUnknown]
	}
	return &CodecError{Code: code, Message: msg, Cause: cause}
}

// AsCodecError extracts a *CodecError from err using errors.As internally.
func AsCodecError(err error) (*CodecError, bool) {
	if err == nil {
		return nil, false
	}
	var ce *CodecError
	if errors.As(err, &ce) {
		return ce, true
	}
	return nil, false
}
