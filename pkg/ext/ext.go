// Package ext provides optional operators beyond the default gocalc
// set of + - * / ^.
//
// The grammar admits only single-character binary operators, which
// keeps this package small:
//   - Modulo ('%'): floating point remainder
//   - IntDiv ('\'): division truncated toward zero
//
// # Integration, all extensions at once
//
//	calc := gocalc.New()
//	err := calc.RegisterAll(ext.All()...)
//
// # Integration, a single operator
//
//	err := calc.RegisterAll(ext.Modulo())
package ext

import (
	"math"

	"github.com/sandrolain/gocalc/pkg/operators"
)

// Modulo returns the '%' operator: the floating point remainder of
// left/right, at multiplication precedence. A zero divisor fails.
func Modulo() operators.Def {
	return operators.Def{
		Symbol:     "%",
		Precedence: 2,
		Fn: func(left, right float64) (float64, error) {
			if right == 0 {
				return 0, operators.ErrDivisionByZero()
			}
			return math.Mod(left, right), nil
		},
	}
}

// IntDiv returns the '\' operator: division truncated toward zero, at
// multiplication precedence. A zero divisor fails.
func IntDiv() operators.Def {
	return operators.Def{
		Symbol:     `\`,
		Precedence: 2,
		Fn: func(left, right float64) (float64, error) {
			if right == 0 {
				return 0, operators.ErrDivisionByZero()
			}
			return math.Trunc(left / right), nil
		},
	}
}

// All returns every extension operator definition.
func All() []operators.Def {
	return []operators.Def{
		Modulo(),
		IntDiv(),
	}
}
