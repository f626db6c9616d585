package types

import (
	"fmt"
	"strconv"
)

// TokenType represents the type of a lexical token.
type TokenType uint8

const (
	// Special tokens
	TokenEOF TokenType = iota
	TokenError

	// Literals
	TokenNumber // 123, 3.14, .5

	// Operators and grouping
	TokenOperator   // any registered operator symbol, e.g. + - * / ^
	TokenParenOpen  // (
	TokenParenClose // )
)

// String returns a string representation of the token type.
func (tt TokenType) String() string {
	switch tt {
	case TokenEOF:
		return "(eof)"
	case TokenError:
		return "(error)"
	case TokenNumber:
		return "(number)"
	case TokenOperator:
		return "(operator)"
	case TokenParenOpen:
		return "("
	case TokenParenClose:
		return ")"
	}
	return "(unknown)"
}

// Token is an immutable lexical token produced by the lexer.
// Number tokens carry a parsed float64 in Value; operator tokens carry
// their symbol in Symbol. Position is the 0-based byte offset of the
// token in the source text.
type Token struct {
	Type     TokenType
	Value    float64 // set for TokenNumber
	Symbol   rune    // set for TokenOperator
	Position int
}

// String returns a human-readable representation of the token,
// used in diagnostics and test failure messages.
func (t Token) String() string {
	switch t.Type {
	case TokenNumber:
		return strconv.FormatFloat(t.Value, 'g', -1, 64)
	case TokenOperator:
		return string(t.Symbol)
	case TokenParenOpen, TokenParenClose, TokenEOF, TokenError:
		return t.Type.String()
	}
	return fmt.Sprintf("(invalid token type %d)", t.Type)
}
