// Package gocalc evaluates infix arithmetic expressions typed as text.
//
// The pipeline is classic and small: a registry-driven tokenizer, an
// infix-to-postfix conversion using the shunting-yard algorithm, and a
// stack-based postfix evaluator. The operator set is extensible at
// runtime with single-character binary operators.
//
// # Quick Start
//
//	// Simple evaluation
//	result, err := gocalc.Eval("1 + 2 * 3")
//
//	// Compile once, evaluate many times
//	expr, err := gocalc.Compile("(1 + 2) * 3")
//	calc := gocalc.New()
//	result1, _ := calc.EvalExpression(ctx, expr)
//
//	// Custom operators
//	calc := gocalc.New()
//	_ = calc.Register("%", 2, func(a, b float64) (float64, error) {
//	    return math.Mod(a, b), nil
//	})
//	result, err := calc.Eval("10 % 3")
//
// # Errors
//
// Failures carry a stable code and, where applicable, the source
// position: see [types.ErrorCode]. Every failure is local to a single
// evaluation; no partial state survives.
//
// # More Information
//
// For detailed documentation, see:
//   - Parser: github.com/sandrolain/gocalc/pkg/parser
//   - Evaluator: github.com/sandrolain/gocalc/pkg/evaluator
//   - Operators: github.com/sandrolain/gocalc/pkg/operators
//   - History: github.com/sandrolain/gocalc/pkg/history
package gocalc

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/sandrolain/gocalc/pkg/evaluator"
	"github.com/sandrolain/gocalc/pkg/history"
	"github.com/sandrolain/gocalc/pkg/operators"
	"github.com/sandrolain/gocalc/pkg/parser"
	"github.com/sandrolain/gocalc/pkg/types"
)

// Version returns the current version of gocalc.
func Version() string {
	return "v0.1.0-dev"
}

// Calculator binds an operator registry, an evaluator and an optional
// history recorder into a single evaluation entry point.
//
// A Calculator is safe for concurrent evaluations as long as operator
// registration is not in progress; register all custom operators before
// spawning concurrent callers, or guard registration with a lock.
type Calculator struct {
	registry *operators.Registry
	eval     *evaluator.Evaluator
	history  history.Recorder
	logger   *slog.Logger
}

// Options configures a Calculator.
type Options struct {
	// History receives (expression, result) pairs after successful
	// evaluations. Nil disables recording.
	History history.Recorder
	// Caching enables LRU caching of compiled expressions.
	Caching bool
	// CacheSize sets the cache capacity; implies Caching.
	CacheSize int
	// Timeout bounds a single evaluation. Zero means no bound.
	Timeout time.Duration
	// Debug enables debug logging.
	Debug bool
	// Logger for structured logging. Defaults to slog.Default().
	Logger *slog.Logger
}

// Option modifies Options.
type Option func(*Options)

// WithHistory records successful evaluations to rec.
func WithHistory(rec history.Recorder) Option {
	return func(o *Options) { o.History = rec }
}

// WithCaching enables or disables compiled expression caching.
func WithCaching(enabled bool) Option {
	return func(o *Options) { o.Caching = enabled }
}

// WithCacheSize sets the cache capacity and enables caching.
func WithCacheSize(size int) Option {
	return func(o *Options) {
		o.Caching = true
		o.CacheSize = size
	}
}

// WithTimeout bounds a single evaluation.
func WithTimeout(d time.Duration) Option {
	return func(o *Options) { o.Timeout = d }
}

// WithDebug enables debug logging.
func WithDebug(enabled bool) Option {
	return func(o *Options) { o.Debug = enabled }
}

// WithLogger sets the structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(o *Options) { o.Logger = logger }
}

// New creates a Calculator with the default operator set registered.
func New(opts ...Option) *Calculator {
	options := Options{}
	for _, opt := range opts {
		opt(&options)
	}
	if options.Logger == nil {
		options.Logger = slog.Default()
	}

	registry := operators.Default()
	evalOpts := []evaluator.EvalOption{
		evaluator.WithRegistry(registry),
		evaluator.WithLogger(options.Logger),
		evaluator.WithDebug(options.Debug),
		evaluator.WithTimeout(options.Timeout),
		evaluator.WithCaching(options.Caching),
	}
	if options.CacheSize > 0 {
		evalOpts = append(evalOpts, evaluator.WithCacheSize(options.CacheSize))
	}

	return &Calculator{
		registry: registry,
		eval:     evaluator.New(evalOpts...),
		history:  options.History,
		logger:   options.Logger,
	}
}

// Register registers a left-associative binary operator, making it
// usable in the next evaluation. symbol must be exactly one character
// (code R0101 otherwise); an existing operator is replaced.
func (c *Calculator) Register(symbol string, precedence int, fn operators.BinaryFunc) error {
	return c.registry.Register(symbol, precedence, fn)
}

// RegisterAll registers every operator definition in order, stopping at
// the first failure.
func (c *Calculator) RegisterAll(defs ...operators.Def) error {
	return c.registry.RegisterAll(defs...)
}

// Registry returns the calculator's operator registry.
func (c *Calculator) Registry() *operators.Registry {
	return c.registry
}

// Compile compiles an expression against the calculator's registry for
// repeated evaluation with EvalExpression.
func (c *Calculator) Compile(expression string) (*types.Expression, error) {
	return parser.Compile(expression, parser.WithRegistry(c.registry))
}

// Eval compiles and evaluates expression in a single call.
func (c *Calculator) Eval(expression string) (float64, error) {
	return c.EvalWithContext(context.Background(), expression)
}

// EvalWithContext is Eval with a caller-supplied context.
func (c *Calculator) EvalWithContext(ctx context.Context, expression string) (float64, error) {
	result, err := c.eval.EvalString(ctx, expression)
	if err != nil {
		return 0, err
	}
	c.record(expression, result)
	return result, nil
}

// EvalExpression evaluates a previously compiled expression.
func (c *Calculator) EvalExpression(ctx context.Context, expr *types.Expression) (float64, error) {
	result, err := c.eval.Eval(ctx, expr)
	if err != nil {
		return 0, err
	}
	c.record(expr.Source(), result)
	return result, nil
}

// record appends a successful evaluation to the history recorder.
// Recorder failures are logged and never fail the evaluation.
func (c *Calculator) record(expression string, result float64) {
	if c.history == nil {
		return
	}
	if err := c.history.Add(expression, result); err != nil {
		c.logger.Warn("failed to record history entry",
			"expression", expression, "error", err)
	}
}

// Eval is a convenience function that evaluates an expression with the
// default operator set in a single call.
//
// For repeated evaluations, custom operators, history or caching, use
// [New] instead.
func Eval(expression string) (float64, error) {
	return New().Eval(expression)
}

// Compile compiles an expression against the default operator set for
// repeated evaluation. The compiled expression is safe for concurrent
// use.
func Compile(expression string) (*types.Expression, error) {
	return parser.Compile(expression)
}

// MustCompile is like Compile but panics if the expression cannot be
// compiled. It simplifies safe initialization of global variables.
func MustCompile(expression string) *types.Expression {
	expr, err := Compile(expression)
	if err != nil {
		panic(fmt.Sprintf("gocalc: Compile(%q): %v", expression, err))
	}
	return expr
}

// MustEval is like Eval but panics on failure.
func MustEval(expression string) float64 {
	result, err := Eval(expression)
	if err != nil {
		panic(fmt.Sprintf("gocalc: Eval(%q): %v", expression, err))
	}
	return result
}
