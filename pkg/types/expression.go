// Package types defines the core type system for gocalc.
//
// This package contains type definitions for:
//   - Expression: compiled arithmetic expressions in postfix form
//   - Token: lexical tokens with source positions
//   - Error types: structured errors with codes
package types

// Expression represents a compiled arithmetic expression.
//
// The compiled form is a postfix (Reverse Polish Notation) token program
// containing only number and operator tokens, in evaluation order. An
// Expression can be evaluated multiple times and is safe for concurrent
// use by multiple goroutines.
type Expression struct {
	program []Token
	source  string
}

// NewExpression creates a new Expression from a postfix token program.
func NewExpression(program []Token, source string) *Expression {
	return &Expression{
		program: program,
		source:  source,
	}
}

// Program returns the postfix token program of the expression.
// The returned slice must not be modified.
func (e *Expression) Program() []Token {
	return e.program
}

// Source returns the original source text of the expression.
func (e *Expression) Source() string {
	return e.source
}

// String returns a string representation of the expression.
func (e *Expression) String() string {
	return e.source
}
