package types

import "fmt"

// ErrorCode identifies a gocalc failure kind.
type ErrorCode string

// Error codes, grouped by pipeline stage.
const (
	// R0xxx: Registry errors
	ErrInvalidSymbol   ErrorCode = "R0101" // operator symbol is not exactly one character
	ErrUnknownOperator ErrorCode = "R0102" // lookup of an unregistered operator

	// S0xxx: Lexer/Syntax errors
	ErrUnexpectedChar   ErrorCode = "S0101" // character matching no grammar rule
	ErrMismatchedParens ErrorCode = "S0201" // unbalanced parentheses

	// D0xxx: Evaluation errors
	ErrInsufficientOperands ErrorCode = "D1001" // operator applied with fewer than two values
	ErrInvalidExpression    ErrorCode = "D1002" // final value stack size is not exactly one
	ErrArithmetic           ErrorCode = "D2001" // operator function failed for its operands
)

// Error represents a structured gocalc error.
type Error struct {
	Code     ErrorCode
	Message  string
	Position int
	Token    string
	Err      error
}

// NewError creates a new gocalc error.
// Pass a negative position when the failure has no source location.
func NewError(code ErrorCode, message string, position int) *Error {
	return &Error{
		Code:     code,
		Message:  message,
		Position: position,
	}
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Position >= 0 {
		return fmt.Sprintf("%s at position %d: %s", e.Code, e.Position, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the wrapped error.
func (e *Error) Unwrap() error {
	return e.Err
}

// WithToken adds the offending token text to the error.
func (e *Error) WithToken(token string) *Error {
	e.Token = token
	return e
}

// WithCause wraps another error.
func (e *Error) WithCause(err error) *Error {
	e.Err = err
	return e
}
