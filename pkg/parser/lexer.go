package parser

import (
	"fmt"
	"strconv"
	"unicode"
	"unicode/utf8"

	"github.com/sandrolain/gocalc/pkg/operators"
	"github.com/sandrolain/gocalc/pkg/types"
)

const eof = -1

// Lexer converts an arithmetic expression into a sequence of tokens.
// The implementation is based on Rob Pike's "Lexical Scanning in Go"
// technique: an explicit cursor advanced rune by rune over the input.
//
// Operator characters are recognized through the registry, so operators
// registered by the embedding application are picked up without any
// lexer change.
type Lexer struct {
	input    string // input string being scanned
	length   int    // length of input string
	start    int    // start position of current token
	current  int    // current position in input
	width    int    // width of last rune read
	registry *operators.Registry
	err      error // first error encountered
}

// NewLexer creates a new lexer over input. The registry decides which
// characters are operator symbols; it must not be nil.
func NewLexer(input string, registry *operators.Registry) *Lexer {
	return &Lexer{
		input:    input,
		length:   len(input),
		registry: registry,
	}
}

// Next returns the next token from the input.
// When the end of the input is reached, Next returns TokenEOF for all
// subsequent calls. On a lexical error it returns a TokenError token
// and records the error, retrievable via Err.
func (l *Lexer) Next() types.Token {
	l.skipWhitespace()

	ch := l.nextRune()
	if ch == eof {
		return l.eofToken()
	}

	// Parentheses
	if ch == '(' {
		return l.newToken(types.TokenParenOpen)
	}
	if ch == ')' {
		return l.newToken(types.TokenParenClose)
	}

	// Number literals: a digit, or a dot immediately followed by a digit.
	if isDigit(ch) {
		l.backup()
		return l.scanNumber()
	}
	if ch == '.' && isDigit(l.peekRune()) {
		l.backup()
		return l.scanNumber()
	}

	// Registered operator symbols
	if l.registry.Has(ch) {
		t := l.newToken(types.TokenOperator)
		t.Symbol = ch
		return t
	}

	return l.errorToken(types.ErrUnexpectedChar,
		fmt.Sprintf("unexpected character %q", string(ch)))
}

// Err returns the first error encountered during lexing, if any.
func (l *Lexer) Err() error {
	return l.err
}

// Tokenize scans the whole input and returns the token sequence in
// source order. Empty input yields an empty sequence.
func Tokenize(input string, registry *operators.Registry) ([]types.Token, error) {
	l := NewLexer(input, registry)
	var tokens []types.Token
	for {
		t := l.Next()
		switch t.Type {
		case types.TokenEOF:
			return tokens, nil
		case types.TokenError:
			return nil, l.Err()
		}
		tokens = append(tokens, t)
	}
}

// scanNumber reads a number literal from the current position.
// It consumes contiguous digits and at most one dot. A second dot
// terminates the literal; the dot then starts a new token scan, which
// fails unless it can form a fresh literal.
func (l *Lexer) scanNumber() types.Token {
	hasDot := false
	for {
		ch := l.nextRune()
		if isDigit(ch) {
			continue
		}
		if ch == '.' && !hasDot {
			hasDot = true
			continue
		}
		if ch != eof {
			l.backup()
		}
		break
	}

	t := l.newToken(types.TokenNumber)
	text := l.input[t.Position:l.current]
	value, err := strconv.ParseFloat(text, 64)
	if err != nil {
		// Unreachable for literals matched by the rule above, but a
		// parse failure must not slip through as a zero value.
		return l.errorToken(types.ErrUnexpectedChar,
			fmt.Sprintf("invalid number literal %q", text))
	}
	t.Value = value
	return t
}

// Helper methods

func (l *Lexer) eofToken() types.Token {
	return types.Token{
		Type:     types.TokenEOF,
		Position: l.current,
	}
}

func (l *Lexer) errorToken(code types.ErrorCode, message string) types.Token {
	t := l.newToken(types.TokenError)
	l.err = types.NewError(code, message, t.Position).
		WithToken(l.input[t.Position:l.current])
	return t
}

func (l *Lexer) newToken(tt types.TokenType) types.Token {
	t := types.Token{
		Type:     tt,
		Position: l.start,
	}
	l.width = 0
	l.start = l.current
	return t
}

func (l *Lexer) nextRune() rune {
	if l.current >= l.length {
		l.width = 0
		return eof
	}

	r, w := utf8.DecodeRuneInString(l.input[l.current:])
	l.width = w
	l.current += w
	return r
}

func (l *Lexer) peekRune() rune {
	if l.current >= l.length {
		return eof
	}
	r, _ := utf8.DecodeRuneInString(l.input[l.current:])
	return r
}

func (l *Lexer) backup() {
	l.current -= l.width
	l.width = 0
}

func (l *Lexer) skipWhitespace() {
	for {
		ch := l.nextRune()
		if ch == eof {
			return
		}
		if !unicode.IsSpace(ch) {
			l.backup()
			l.start = l.current
			return
		}
		l.start = l.current
	}
}

func isDigit(ch rune) bool {
	return ch >= '0' && ch <= '9'
}
