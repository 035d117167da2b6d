package calc

import "fmt"

// ErrorCode classifies a lexical failure.
type ErrorCode int

const (
	// ErrUnrecognizedToken - no lexical rule matches at the current position.
	ErrUnrecognizedToken ErrorCode = iota
	// ErrUnterminatedString - a string literal never reaches its terminator.
	ErrUnterminatedString
	// ErrUnterminatedEscape - backslash at end of input inside a string.
	ErrUnterminatedEscape
	// ErrInvalidEscape - backslash followed by a character that is neither in
	// the escape table nor one of x/u/U.
	ErrInvalidEscape
	// ErrInvalidHexEscape - malformed, short or out-of-range hex digits for a
	// \x, \u or \U escape.
	ErrInvalidHexEscape
)

var errorCodeNames = map[ErrorCode]string{
	ErrUnrecognizedToken:  "unrecognized token",
	ErrUnterminatedString: "unterminated string",
	ErrUnterminatedEscape: "unterminated escape sequence",
	ErrInvalidEscape:      "invalid escape sequence",
	ErrInvalidHexEscape:   "invalid hex escape",
}

func (c ErrorCode) String() string {
	if name, ok := errorCodeNames[c]; ok {
		return name
	}
	return fmt.Sprintf("ErrorCode(%d)", int(c))
}

// Error represents a failure while tokenizing.
//
// Remainder holds the unconsumed input at the point of failure, so callers
// can show exactly where lexing stopped.
type Error struct {
	Code      ErrorCode
	Message   string
	Remainder string
	Pos       Position
}

// Errorf creates a new Error at the given position.
func Errorf(code ErrorCode, pos Position, remainder string, format string, args ...interface{}) *Error {
	return &Error{
		Code:      code,
		Message:   fmt.Sprintf(format, args...),
		Remainder: remainder,
		Pos:       pos,
	}
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Pos, e.Message)
}
