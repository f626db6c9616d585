// Package operators implements the binary operator registry that drives
// the gocalc pipeline.
//
// Every pipeline stage consults the registry: the lexer to recognize
// operator characters, the shunting-yard converter for precedence
// comparisons, and the evaluator to execute an operator. Operators are
// looked up by their single-character symbol.
//
// # Example
//
//	reg := operators.Default()
//	err := reg.Register("%", 2, func(left, right float64) (float64, error) {
//	    return math.Mod(left, right), nil
//	})
package operators

import (
	"fmt"
	"unicode/utf8"

	"github.com/sandrolain/gocalc/pkg/types"
)

// BinaryFunc implements a binary arithmetic operation.
// It receives the left and right operands and returns the result,
// or an error when the operation is undefined for the operands.
type BinaryFunc func(left, right float64) (float64, error)

// Operator is a registered binary operator. Operators are immutable
// once registered; re-registering a symbol replaces the previous entry.
type Operator struct {
	// Symbol is the single-character operator symbol, e.g. '+'.
	Symbol rune
	// Precedence ranks binding tightness; higher binds tighter.
	Precedence int
	// LeftAssoc reports whether equal-precedence operators group
	// left-to-right. All default operators are left-associative,
	// including '^'.
	LeftAssoc bool
	// Fn is the implementation.
	Fn BinaryFunc
}

// Def describes an operator to register. The zero value of RightAssoc
// yields a left-associative operator, matching every default operator.
type Def struct {
	// Symbol is the operator symbol as it appears in expressions.
	// It must be exactly one character.
	Symbol string
	// Precedence ranks binding tightness; higher binds tighter.
	Precedence int
	// RightAssoc requests right-associative grouping for equal
	// precedence. Leave false for the conventional left grouping.
	RightAssoc bool
	// Fn is the implementation.
	Fn BinaryFunc
}

// Registry maps operator symbols to their definitions.
//
// Lookups (Has, Get, Apply) are safe for concurrent use as long as no
// registration is in progress. Registration is not synchronized: the
// embedding application registers all custom operators before spawning
// concurrent evaluations, or guards registration with its own lock.
type Registry struct {
	ops map[rune]*Operator
}

// NewRegistry creates an empty registry with no operators.
// Most callers want Default instead.
func NewRegistry() *Registry {
	return &Registry{ops: make(map[rune]*Operator, 8)}
}

// Register registers a left-associative binary operator.
// symbol must be exactly one character; anything else fails with
// code R0101. An existing operator with the same symbol is replaced.
func (r *Registry) Register(symbol string, precedence int, fn BinaryFunc) error {
	return r.RegisterDef(Def{Symbol: symbol, Precedence: precedence, Fn: fn})
}

// RegisterDef registers an operator from a full definition, including
// associativity. The symbol rule is the same as for Register.
func (r *Registry) RegisterDef(d Def) error {
	if utf8.RuneCountInString(d.Symbol) != 1 {
		return types.NewError(types.ErrInvalidSymbol,
			fmt.Sprintf("operator symbol must be a single character, got %q", d.Symbol), -1).
			WithToken(d.Symbol)
	}
	if d.Fn == nil {
		return types.NewError(types.ErrInvalidSymbol,
			fmt.Sprintf("operator %q has no implementation", d.Symbol), -1).
			WithToken(d.Symbol)
	}
	sym, _ := utf8.DecodeRuneInString(d.Symbol)
	r.ops[sym] = &Operator{
		Symbol:     sym,
		Precedence: d.Precedence,
		LeftAssoc:  !d.RightAssoc,
		Fn:         d.Fn,
	}
	return nil
}

// RegisterAll registers every definition in order, stopping at the
// first failure.
func (r *Registry) RegisterAll(defs ...Def) error {
	for _, d := range defs {
		if err := r.RegisterDef(d); err != nil {
			return err
		}
	}
	return nil
}

// Has reports whether an operator with the given symbol is registered.
func (r *Registry) Has(symbol rune) bool {
	_, ok := r.ops[symbol]
	return ok
}

// Get returns the operator registered for symbol, or an error with
// code R0102 when none is.
func (r *Registry) Get(symbol rune) (*Operator, error) {
	op, ok := r.ops[symbol]
	if !ok {
		return nil, types.NewError(types.ErrUnknownOperator,
			fmt.Sprintf("unknown operator %q", string(symbol)), -1).
			WithToken(string(symbol))
	}
	return op, nil
}

// Apply looks up the operator for symbol and invokes it.
// Failures raised by the operator function itself surface with code
// D2001; structured errors produced by the function pass through as-is.
func (r *Registry) Apply(symbol rune, left, right float64) (float64, error) {
	op, err := r.Get(symbol)
	if err != nil {
		return 0, err
	}
	result, err := op.Fn(left, right)
	if err != nil {
		if _, ok := err.(*types.Error); ok {
			return 0, err
		}
		return 0, types.NewError(types.ErrArithmetic, err.Error(), -1).
			WithToken(string(symbol)).
			WithCause(err)
	}
	return result, nil
}

// Len returns the number of registered operators.
func (r *Registry) Len() int {
	return len(r.ops)
}

// Symbols returns the registered operator symbols in unspecified order.
func (r *Registry) Symbols() []rune {
	out := make([]rune, 0, len(r.ops))
	for sym := range r.ops {
		out = append(out, sym)
	}
	return out
}
