package gocalc_test

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sandrolain/gocalc"
	"github.com/sandrolain/gocalc/pkg/ext"
	"github.com/sandrolain/gocalc/pkg/history"
	"github.com/sandrolain/gocalc/pkg/types"
)

func TestEval(t *testing.T) {
	tests := []struct {
		input    string
		expected float64
	}{
		{"1 + 2 * 3", 7},
		{"2 ^ 3 * 2", 16},
		{"(1 + 2) * 3", 9},
		{"(1 + (2 * 3))", 7},
		{"-1 + 2", 1},
		{"-(1 + 2)", -3},
		{"-(-1)", 1},
		{"2^3^2", 64}, // '^' is left-associative: (2^3)^2
	}

	for _, tc := range tests {
		t.Run(tc.input, func(t *testing.T) {
			got, err := gocalc.Eval(tc.input)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, got)
		})
	}
}

func TestEvalDecimalsWithinTolerance(t *testing.T) {
	got, err := gocalc.Eval("1.5 + 2.25")
	require.NoError(t, err)
	assert.InDelta(t, 3.75, got, 1e-9)
}

func TestEvalWhitespaceInsignificant(t *testing.T) {
	spaced, err := gocalc.Eval(" 1 + 2 ")
	require.NoError(t, err)
	packed, err := gocalc.Eval("1+2")
	require.NoError(t, err)
	assert.Equal(t, packed, spaced)
}

func TestEvalErrorCodes(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		errCode types.ErrorCode
	}{
		{"division by zero", "1 / 0", types.ErrArithmetic},
		{"unknown character", "1 + a", types.ErrUnexpectedChar},
		{"unclosed paren", "(1 + 2", types.ErrMismatchedParens},
		{"excess closing paren", "1 + 2)", types.ErrMismatchedParens},
		{"empty expression", "", types.ErrInvalidExpression},
		{"stray number", "1 2", types.ErrInvalidExpression},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := gocalc.Eval(tc.input)
			require.Error(t, err)
			var calcErr *types.Error
			require.ErrorAs(t, err, &calcErr)
			assert.Equal(t, tc.errCode, calcErr.Code)
		})
	}
}

func TestRegisterCustomOperator(t *testing.T) {
	calc := gocalc.New()
	err := calc.Register("%", 2, func(a, b float64) (float64, error) {
		return math.Mod(a, b), nil
	})
	require.NoError(t, err)

	got, err := calc.Eval("10 % 3")
	require.NoError(t, err)
	assert.Equal(t, 1.0, got)
}

func TestRegisterInvalidSymbol(t *testing.T) {
	calc := gocalc.New()
	for _, symbol := range []string{"", "**", "mod"} {
		err := calc.Register(symbol, 2, func(a, b float64) (float64, error) { return a, nil })
		require.Error(t, err)
		var calcErr *types.Error
		require.ErrorAs(t, err, &calcErr)
		assert.Equal(t, types.ErrInvalidSymbol, calcErr.Code)
	}
}

func TestRegisterAllExtensions(t *testing.T) {
	calc := gocalc.New()
	require.NoError(t, calc.RegisterAll(ext.All()...))

	got, err := calc.Eval("10 % 3")
	require.NoError(t, err)
	assert.Equal(t, 1.0, got)

	got, err = calc.Eval(`10 \ 3`)
	require.NoError(t, err)
	assert.Equal(t, 3.0, got)
}

func TestHistoryRecording(t *testing.T) {
	hist := history.NewLog()
	calc := gocalc.New(gocalc.WithHistory(hist))

	_, err := calc.Eval("1 + 2")
	require.NoError(t, err)
	_, err = calc.Eval("1 / 0")
	require.Error(t, err)
	_, err = calc.Eval("2 * 3")
	require.NoError(t, err)

	records, err := hist.List()
	require.NoError(t, err)
	require.Len(t, records, 2, "failed evaluations must not be recorded")
	assert.Equal(t, "1 + 2", records[0].Expression)
	assert.Equal(t, 3.0, records[0].Result)
	assert.Equal(t, "2 * 3", records[1].Expression)
	assert.Equal(t, 6.0, records[1].Result)
}

func TestCompileAndEvalExpression(t *testing.T) {
	expr, err := gocalc.Compile("(1 + 2) * 3")
	require.NoError(t, err)
	assert.Equal(t, "(1 + 2) * 3", expr.Source())

	calc := gocalc.New()
	got, err := calc.EvalExpression(context.Background(), expr)
	require.NoError(t, err)
	assert.Equal(t, 9.0, got)
}

func TestMustCompilePanics(t *testing.T) {
	assert.NotPanics(t, func() { gocalc.MustCompile("1 + 2") })
	assert.Panics(t, func() { gocalc.MustCompile("(1 + 2") })
}

func TestMustEvalPanics(t *testing.T) {
	assert.Equal(t, 7.0, gocalc.MustEval("1 + 2 * 3"))
	assert.Panics(t, func() { gocalc.MustEval("1 / 0") })
}

func TestCachingCalculator(t *testing.T) {
	calc := gocalc.New(gocalc.WithCacheSize(16))
	for i := 0; i < 5; i++ {
		got, err := calc.Eval("1 + 2 * 3")
		require.NoError(t, err)
		assert.Equal(t, 7.0, got)
	}
}

func TestEvalFailurePreservesCalculator(t *testing.T) {
	// A failed evaluation must not leave partial state behind.
	calc := gocalc.New()
	_, err := calc.Eval("(1 +")
	require.Error(t, err)

	var calcErr *types.Error
	require.ErrorAs(t, err, &calcErr)
	assert.Equal(t, types.ErrMismatchedParens, calcErr.Code)

	got, err := calc.Eval("1 + 2")
	require.NoError(t, err)
	assert.Equal(t, 3.0, got)
}
