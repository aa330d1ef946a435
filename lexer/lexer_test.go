package lexer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"symderiv/ast"
	"symderiv/lexer"
)

func lexemes(toks []ast.Token) []string {
	out := make([]string, len(toks))
	for i, t := range toks {
		out[i] = t.Lexeme
	}
	return out
}

func TestTokenizeSimpleSum(t *testing.T) {
	toks, err := lexer.Tokenize("x+1")
	require.NoError(t, err)
	assert.Equal(t, []string{"x", "+", "1"}, lexemes(toks))
}

func TestTokenizeImplicitMultiplication(t *testing.T) {
	toks, err := lexer.Tokenize("2x")
	require.NoError(t, err)
	assert.Equal(t, []string{"2", "*", "x"}, lexemes(toks))
}

func TestTokenizeAdjacentFunctionsGetSplit(t *testing.T) {
	toks, err := lexer.Tokenize("sincosx")
	require.NoError(t, err)
	require.Len(t, toks, 1)
	sin := toks[0]
	assert.Equal(t, "sin", sin.Lexeme)
	require.Len(t, sin.ArgTokens, 1)
	cos := sin.ArgTokens[0]
	assert.Equal(t, "cos", cos.Lexeme)
	require.Len(t, cos.ArgTokens, 1)
	assert.Equal(t, "x", cos.ArgTokens[0].Lexeme)
}

func TestTokenizeEulerStandalone(t *testing.T) {
	toks, err := lexer.Tokenize("e")
	require.NoError(t, err)
	require.Len(t, toks, 1)
	assert.Equal(t, "exp", toks[0].Lexeme)
	require.Len(t, toks[0].ArgTokens, 1)
	assert.Equal(t, int64(1), toks[0].ArgTokens[0].IntVal)
}

func TestTokenizeEulerWithExponent(t *testing.T) {
	toks, err := lexer.Tokenize("e^x")
	require.NoError(t, err)
	require.Len(t, toks, 1)
	assert.Equal(t, "exp", toks[0].Lexeme)
	require.Len(t, toks[0].ArgTokens, 1)
	assert.Equal(t, "x", toks[0].ArgTokens[0].Lexeme)
	assert.Nil(t, toks[0].Exponent)
}

func TestTokenizeEulerWithNegatedExponent(t *testing.T) {
	toks, err := lexer.Tokenize("e^-x")
	require.NoError(t, err)
	require.Len(t, toks, 1)
	assert.Equal(t, "exp", toks[0].Lexeme)
	require.Len(t, toks[0].ArgTokens, 1)
	assert.Equal(t, "x", toks[0].ArgTokens[0].Lexeme)
	assert.True(t, toks[0].ArgTokens[0].Negated)
}

func TestTokenizeEulerBeforeAtomStaysUnit(t *testing.T) {
	// A bare "e" is exp(1) even with an atom right after it; the atom is a
	// separate implicit-multiplication operand, not exp's argument.
	toks, err := lexer.Tokenize("ex")
	require.NoError(t, err)
	require.Len(t, toks, 3)
	assert.Equal(t, "exp", toks[0].Lexeme)
	require.Len(t, toks[0].ArgTokens, 1)
	assert.Equal(t, int64(1), toks[0].ArgTokens[0].IntVal)
	assert.Equal(t, "*", toks[1].Lexeme)
	assert.Equal(t, "x", toks[2].Lexeme)
}

func TestTokenizeUnaryMinusOnNumber(t *testing.T) {
	toks, err := lexer.Tokenize("-5+x")
	require.NoError(t, err)
	require.True(t, len(toks) >= 1)
	assert.Equal(t, int64(-5), toks[0].IntVal)
}

func TestTokenizeDoubleMinusCancels(t *testing.T) {
	toks, err := lexer.Tokenize("--5")
	require.NoError(t, err)
	require.Len(t, toks, 1)
	assert.Equal(t, int64(5), toks[0].IntVal)
}

func TestTokenizeLogSubscript(t *testing.T) {
	toks, err := lexer.Tokenize("log_2(x)")
	require.NoError(t, err)
	require.Len(t, toks, 1)
	require.NotNil(t, toks[0].LogBase)
	assert.Equal(t, int64(2), toks[0].LogBase.IntVal)
}

func TestTokenizeLogSubscriptRejectedOnOtherFunctions(t *testing.T) {
	_, err := lexer.Tokenize("sin_2(x)")
	assert.Error(t, err)
}

func TestTokenizeUnbalancedParens(t *testing.T) {
	_, err := lexer.Tokenize("sin(x")
	assert.Error(t, err)
}

func TestTokenizeMultipleDecimalPoints(t *testing.T) {
	_, err := lexer.Tokenize("1.2.3")
	assert.Error(t, err)
}
