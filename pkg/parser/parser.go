// Package parser implements the gocalc expression front end: a
// registry-driven lexer and an infix-to-postfix converter based on the
// shunting-yard algorithm.
//
// The grammar is deliberately small: floating point literals, single
// character binary operators taken from the registry, parentheses, and
// unary minus. Compile turns source text into a reusable
// [types.Expression] holding the postfix program.
//
// # Example
//
//	expr, err := parser.Compile("1 + 2 * 3")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	// expr.Program() is the token sequence 1 2 3 * +
package parser

import (
	"github.com/sandrolain/gocalc/pkg/operators"
	"github.com/sandrolain/gocalc/pkg/types"
)

// CompileOptions configures compilation.
type CompileOptions struct {
	// Registry decides which characters are operators and how they
	// bind. When nil, the default operator set is used.
	Registry *operators.Registry
}

// CompileOption modifies CompileOptions.
type CompileOption func(*CompileOptions)

// WithRegistry compiles against a custom operator registry.
// The same registry must be supplied to the evaluator so that
// recognized symbols can also be executed.
func WithRegistry(registry *operators.Registry) CompileOption {
	return func(o *CompileOptions) {
		o.Registry = registry
	}
}

// Compile tokenizes and converts an infix expression into a compiled
// postfix [types.Expression]. The result can be evaluated any number of
// times and is safe for concurrent use.
//
// Compilation fails with code S0101 on a character matching no grammar
// rule and S0201 on unbalanced parentheses. An empty input compiles to
// an empty program, which fails evaluation with code D1002.
func Compile(input string, opts ...CompileOption) (*types.Expression, error) {
	options := CompileOptions{}
	for _, opt := range opts {
		opt(&options)
	}
	registry := options.Registry
	if registry == nil {
		registry = operators.Default()
	}

	tokens, err := Tokenize(input, registry)
	if err != nil {
		return nil, err
	}

	program, err := ToPostfix(tokens, registry)
	if err != nil {
		return nil, err
	}

	return types.NewExpression(program, input), nil
}
