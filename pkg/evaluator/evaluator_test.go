package evaluator_test

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/sandrolain/gocalc/pkg/cache"
	"github.com/sandrolain/gocalc/pkg/evaluator"
	"github.com/sandrolain/gocalc/pkg/operators"
	"github.com/sandrolain/gocalc/pkg/types"
)

func evalString(t *testing.T, input string) (float64, error) {
	t.Helper()
	return evaluator.New().EvalString(context.Background(), input)
}

func TestEvalArithmetic(t *testing.T) {
	tests := []struct {
		input    string
		expected float64
	}{
		{"1+2", 3},
		{" 1 + 2 ", 3},
		{"1 + 2 * 3", 7},
		{"(1 + 2) * 3", 9},
		{"(1 + (2 * 3))", 7},
		{"8 / 4", 2},
		{"2 ^ 3 * 2", 16},
		{"2 ^ 3 ^ 2", 64}, // left-associative power
		{"-1 + 2", 1},
		{"-(1 + 2)", -3},
		{"-(-1)", 1},
		{"10 - 2 - 3", 5},
		{"100 / 10 / 2", 5},
	}

	for _, tc := range tests {
		t.Run(tc.input, func(t *testing.T) {
			got, err := evalString(t, tc.input)
			if err != nil {
				t.Fatalf("EvalString(%q): %v", tc.input, err)
			}
			if got != tc.expected {
				t.Fatalf("EvalString(%q) = %v, want %v", tc.input, got, tc.expected)
			}
		})
	}
}

func TestEvalDecimals(t *testing.T) {
	got, err := evalString(t, "1.5 + 2.25")
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(got-3.75) > 1e-9 {
		t.Fatalf("expected ~3.75, got %v", got)
	}
}

func TestEvalWhitespaceInsignificant(t *testing.T) {
	spaced, err := evalString(t, " 1 + 2 ")
	if err != nil {
		t.Fatal(err)
	}
	packed, err := evalString(t, "1+2")
	if err != nil {
		t.Fatal(err)
	}
	if spaced != packed {
		t.Fatalf("whitespace changed the result: %v != %v", spaced, packed)
	}
}

func TestEvalFailures(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		errCode types.ErrorCode
	}{
		{"division by zero", "1 / 0", types.ErrArithmetic},
		{"unknown character", "1 + a", types.ErrUnexpectedChar},
		{"unclosed paren", "(1 + 2", types.ErrMismatchedParens},
		{"excess closing paren", "1 + 2)", types.ErrMismatchedParens},
		{"empty input", "", types.ErrInvalidExpression},
		{"stray extra number", "1 2", types.ErrInvalidExpression},
		{"trailing operator", "1 +", types.ErrInsufficientOperands},
		{"lone operator", "*", types.ErrInsufficientOperands},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := evalString(t, tc.input)
			if err == nil {
				t.Fatalf("EvalString(%q): expected failure %s", tc.input, tc.errCode)
			}
			var calcErr *types.Error
			if !errors.As(err, &calcErr) {
				t.Fatalf("expected *types.Error, got %T: %v", err, err)
			}
			if calcErr.Code != tc.errCode {
				t.Fatalf("EvalString(%q): expected code %s, got %s (%v)", tc.input, tc.errCode, calcErr.Code, err)
			}
		})
	}
}

func TestEvalUnexpectedCharacterPosition(t *testing.T) {
	_, err := evalString(t, "1 + a")
	var calcErr *types.Error
	if !errors.As(err, &calcErr) {
		t.Fatalf("expected *types.Error, got %v", err)
	}
	if calcErr.Position != 4 {
		t.Fatalf("expected failure position 4, got %d", calcErr.Position)
	}
	if calcErr.Token != "a" {
		t.Fatalf("expected offending token %q, got %q", "a", calcErr.Token)
	}
}

func TestEvalEmptyProgram(t *testing.T) {
	eval := evaluator.New()
	_, err := eval.Eval(context.Background(), types.NewExpression(nil, ""))
	var calcErr *types.Error
	if !errors.As(err, &calcErr) || calcErr.Code != types.ErrInvalidExpression {
		t.Fatalf("expected code %s, got %v", types.ErrInvalidExpression, err)
	}
}

func TestEvalCustomRegistry(t *testing.T) {
	reg := operators.Default()
	err := reg.Register("%", 2, func(a, b float64) (float64, error) {
		if b == 0 {
			return 0, operators.ErrDivisionByZero()
		}
		return math.Mod(a, b), nil
	})
	if err != nil {
		t.Fatal(err)
	}

	eval := evaluator.New(evaluator.WithRegistry(reg))
	got, err := eval.EvalString(context.Background(), "10 % 3")
	if err != nil {
		t.Fatal(err)
	}
	if got != 1 {
		t.Fatalf("expected 10 %% 3 == 1, got %v", got)
	}
}

func TestEvalStringCaching(t *testing.T) {
	c := cache.New(8)
	eval := evaluator.New(evaluator.WithCache(c))

	for i := 0; i < 3; i++ {
		got, err := eval.EvalString(context.Background(), "1 + 2 * 3")
		if err != nil {
			t.Fatal(err)
		}
		if got != 7 {
			t.Fatalf("expected 7, got %v", got)
		}
	}
	if got := c.Len(); got != 1 {
		t.Fatalf("expected 1 cached expression, got %d", got)
	}
}

func TestEvalCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	eval := evaluator.New()
	_, err := eval.EvalString(ctx, "1 + 2")
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestEvalConcurrentReuse(t *testing.T) {
	eval := evaluator.New(evaluator.WithCaching(true))

	done := make(chan error, 8)
	for i := 0; i < 8; i++ {
		go func() {
			for j := 0; j < 100; j++ {
				got, err := eval.EvalString(context.Background(), "(1 + 2) * 3")
				if err == nil && got != 9 {
					err = errors.New("wrong result")
				}
				if err != nil {
					done <- err
					return
				}
			}
			done <- nil
		}()
	}
	for i := 0; i < 8; i++ {
		if err := <-done; err != nil {
			t.Fatal(err)
		}
	}
}
