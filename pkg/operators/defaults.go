package operators

import (
	"math"

	"github.com/sandrolain/gocalc/pkg/types"
)

// ErrDivisionByZero returns the structured error raised by division
// style operators when the right operand is exactly zero.
func ErrDivisionByZero() *types.Error {
	return types.NewError(types.ErrArithmetic, "division by zero", -1)
}

// Default returns a registry pre-populated with the standard operator
// set:
//
//	addition       '+'  precedence 1
//	subtraction    '-'  precedence 1
//	multiplication '*'  precedence 2
//	division       '/'  precedence 2 (fails on a zero divisor)
//	exponentiation '^'  precedence 3 (left-associative)
//
// Addition, subtraction, multiplication and exponentiation are total
// over the float64 domain; extreme '^' inputs may produce infinities or
// NaN, which is accepted rather than special-cased.
func Default() *Registry {
	r := NewRegistry()
	// Registration of built-ins cannot fail: every symbol is one rune.
	_ = r.RegisterAll(
		Def{Symbol: "+", Precedence: 1, Fn: add},
		Def{Symbol: "-", Precedence: 1, Fn: subtract},
		Def{Symbol: "*", Precedence: 2, Fn: multiply},
		Def{Symbol: "/", Precedence: 2, Fn: safeDivide},
		Def{Symbol: "^", Precedence: 3, Fn: power},
	)
	return r
}

func add(left, right float64) (float64, error) {
	return left + right, nil
}

func subtract(left, right float64) (float64, error) {
	return left - right, nil
}

func multiply(left, right float64) (float64, error) {
	return left * right, nil
}

// safeDivide fails with code D2001 when the divisor is exactly zero.
func safeDivide(left, right float64) (float64, error) {
	if right == 0 {
		return 0, ErrDivisionByZero()
	}
	return left / right, nil
}

func power(left, right float64) (float64, error) {
	return math.Pow(left, right), nil
}
