package parser

import (
	"github.com/sandrolain/gocalc/pkg/operators"
	"github.com/sandrolain/gocalc/pkg/types"
)

// ToPostfix converts an infix token sequence into postfix (Reverse
// Polish Notation) order using Dijkstra's shunting-yard algorithm.
//
// A '-' in a position where a binary operator cannot appear (expression
// start, after another operator, or after an opening parenthesis) is
// treated as unary minus: an implicit zero is emitted so that "-x"
// evaluates as "0 - x". Precedence handling is unchanged by the rewrite.
//
// The result contains only number and operator tokens, in evaluation
// order. Unbalanced parentheses fail with code S0201.
func ToPostfix(tokens []types.Token, registry *operators.Registry) ([]types.Token, error) {
	output := make([]types.Token, 0, len(tokens))
	stack := make([]types.Token, 0, 8)

	var prev *types.Token
	for i := range tokens {
		t := tokens[i]
		switch t.Type {
		case types.TokenNumber:
			output = append(output, t)

		case types.TokenOperator:
			if t.Symbol == '-' && isUnaryPosition(prev) {
				output = append(output, types.Token{
					Type:     types.TokenNumber,
					Value:    0,
					Position: t.Position,
				})
			}

			cur, err := registry.Get(t.Symbol)
			if err != nil {
				return nil, err
			}
			for len(stack) > 0 {
				top := stack[len(stack)-1]
				if top.Type != types.TokenOperator {
					break
				}
				topOp, err := registry.Get(top.Symbol)
				if err != nil {
					return nil, err
				}
				if topOp.Precedence > cur.Precedence ||
					(topOp.Precedence == cur.Precedence && cur.LeftAssoc) {
					output = append(output, top)
					stack = stack[:len(stack)-1]
					continue
				}
				break
			}
			stack = append(stack, t)

		case types.TokenParenOpen:
			stack = append(stack, t)

		case types.TokenParenClose:
			found := false
			for len(stack) > 0 {
				top := stack[len(stack)-1]
				stack = stack[:len(stack)-1]
				if top.Type == types.TokenParenOpen {
					found = true
					break
				}
				output = append(output, top)
			}
			if !found {
				return nil, types.NewError(types.ErrMismatchedParens,
					"unmatched closing parenthesis", t.Position)
			}

		default:
			return nil, types.NewError(types.ErrInvalidExpression,
				"unexpected token "+t.String(), t.Position)
		}
		prev = &tokens[i]
	}

	// Drain remaining operators; a leftover opening parenthesis means
	// the expression never closed it.
	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if top.Type == types.TokenParenOpen {
			return nil, types.NewError(types.ErrMismatchedParens,
				"unclosed opening parenthesis", top.Position)
		}
		output = append(output, top)
	}

	return output, nil
}

// isUnaryPosition reports whether a '-' at the current position cannot
// be a binary operator: nothing, an operator, or '(' precedes it.
func isUnaryPosition(prev *types.Token) bool {
	if prev == nil {
		return true
	}
	return prev.Type == types.TokenOperator || prev.Type == types.TokenParenOpen
}
