// Package evaluator implements the gocalc postfix evaluation engine.
//
// The evaluator receives a compiled postfix program from the parser and
// reduces it to a single float64 using a value stack and the operator
// registry. It supports:
//   - Runtime-registered custom operators via the registry
//   - Optional LRU caching of compiled expressions (EvalString)
//   - Structured errors with codes and source positions
//   - Cancellation via context.Context
//
// # Example
//
//	eval := evaluator.New()
//	result, err := eval.EvalString(ctx, "1 + 2 * 3")
//	if err != nil {
//	    log.Fatal(err)
//	}
package evaluator

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/sandrolain/gocalc/pkg/cache"
	"github.com/sandrolain/gocalc/pkg/operators"
	"github.com/sandrolain/gocalc/pkg/parser"
	"github.com/sandrolain/gocalc/pkg/types"
)

// ctxCheckInterval is the number of program tokens reduced between
// context cancellation checks.
const ctxCheckInterval = 1024

// Evaluator evaluates compiled arithmetic expressions.
//
// An Evaluator is safe for concurrent use provided its registry is not
// being mutated concurrently; see [operators.Registry].
type Evaluator struct {
	opts     EvalOptions
	logger   *slog.Logger
	cache    *cache.Cache // non-nil when caching is enabled
	registry *operators.Registry
}

// EvalOptions configures evaluator behavior.
type EvalOptions struct {
	// Registry supplies the operators used for execution and, in
	// EvalString, for compilation. When nil, the default set is used.
	Registry *operators.Registry
	// Caching enables expression compilation caching for EvalString.
	// The default cache holds up to 256 entries with LRU eviction.
	Caching bool
	// CacheSize sets the maximum number of cached expressions.
	// Only used when Caching is true and no explicit Cache is provided.
	CacheSize int
	// Cache is a custom expression cache. If non-nil, Caching is
	// implicitly enabled.
	Cache *cache.Cache
	// Timeout bounds a single evaluation. Zero means no timeout; a
	// single evaluation completes in time proportional to input length.
	Timeout time.Duration
	// Debug enables debug logging.
	Debug bool
	// Logger for structured logging.
	Logger *slog.Logger
}

// New creates a new Evaluator with the given options.
func New(opts ...EvalOption) *Evaluator {
	options := EvalOptions{}
	for _, opt := range opts {
		opt(&options)
	}

	if options.Registry == nil {
		options.Registry = operators.Default()
	}
	if options.Logger == nil {
		options.Logger = slog.Default()
	}

	var c *cache.Cache
	if options.Cache != nil {
		c = options.Cache
	} else if options.Caching {
		c = cache.New(options.CacheSize)
	}

	return &Evaluator{
		opts:     options,
		logger:   options.Logger,
		cache:    c,
		registry: options.Registry,
	}
}

// Registry returns the operator registry used by this evaluator.
func (e *Evaluator) Registry() *operators.Registry {
	return e.registry
}

// Cache returns the expression cache, or nil if caching is disabled.
func (e *Evaluator) Cache() *cache.Cache {
	return e.cache
}

// EvalString compiles input against the evaluator's registry and
// evaluates the result. When caching is enabled, compiled expressions
// are reused by expression text.
func (e *Evaluator) EvalString(ctx context.Context, input string) (float64, error) {
	compile := func() (*types.Expression, error) {
		return parser.Compile(input, parser.WithRegistry(e.registry))
	}

	var expr *types.Expression
	var err error
	if e.cache != nil {
		expr, err = e.cache.GetOrCompile(input, compile)
	} else {
		expr, err = compile()
	}
	if err != nil {
		return 0, err
	}

	return e.Eval(ctx, expr)
}

// Eval reduces the postfix program of expr to a single value.
//
// A number token pushes its value; an operator token pops the right
// then the left operand and pushes the operator result. Fewer than two
// available operands fail with code D1001; anything other than exactly
// one value left at the end fails with code D1002, which covers the
// empty program. Operator failures (e.g. division by zero) surface with
// code D2001.
func (e *Evaluator) Eval(ctx context.Context, expr *types.Expression) (float64, error) {
	if e.opts.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, e.opts.Timeout)
		defer cancel()
	}

	if e.opts.Debug {
		e.logger.Debug("evaluating expression",
			"source", expr.Source(),
			"program_len", len(expr.Program()))
	}

	program := expr.Program()
	stack := make([]float64, 0, 16)

	for i := range program {
		if i%ctxCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return 0, err
			}
		}

		t := program[i]
		switch t.Type {
		case types.TokenNumber:
			stack = append(stack, t.Value)

		case types.TokenOperator:
			if len(stack) < 2 {
				return 0, types.NewError(types.ErrInsufficientOperands,
					fmt.Sprintf("operator %q needs two operands, have %d", string(t.Symbol), len(stack)),
					t.Position).WithToken(string(t.Symbol))
			}
			right := stack[len(stack)-1]
			left := stack[len(stack)-2]
			stack = stack[:len(stack)-2]

			result, err := e.registry.Apply(t.Symbol, left, right)
			if err != nil {
				return 0, err
			}
			stack = append(stack, result)

		default:
			return 0, types.NewError(types.ErrInvalidExpression,
				"unexpected token "+t.String()+" in compiled program", t.Position)
		}
	}

	if len(stack) != 1 {
		return 0, types.NewError(types.ErrInvalidExpression,
			fmt.Sprintf("expression reduced to %d values, want 1", len(stack)), -1)
	}
	return stack[0], nil
}
