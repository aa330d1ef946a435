package funcs_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"symderiv/ast"
	"symderiv/funcs"
)

func TestLookupKnowsAllRegisteredNames(t *testing.T) {
	for _, name := range funcs.Names() {
		_, ok := funcs.Lookup(name)
		assert.True(t, ok, "expected %q to be registered", name)
	}
}

func TestLookupUnknownName(t *testing.T) {
	_, ok := funcs.Lookup("nope")
	assert.False(t, ok)
}

func TestSinEvaluate(t *testing.T) {
	def, ok := funcs.Lookup("sin")
	require.True(t, ok)
	v, err := def.Evaluate(0, nil)
	require.NoError(t, err)
	assert.InDelta(t, 0, v, 1e-9)
}

func TestLnRejectsNonPositive(t *testing.T) {
	def, ok := funcs.Lookup("ln")
	require.True(t, ok)
	_, err := def.Evaluate(0, nil)
	assert.Error(t, err)
	_, err = def.Evaluate(-1, nil)
	assert.Error(t, err)
}

func TestLogEvaluateWithBase(t *testing.T) {
	def, ok := funcs.Lookup("log")
	require.True(t, ok)
	base := ast.Int(2)
	v, err := def.Evaluate(8, &base.Token)
	require.NoError(t, err)
	assert.InDelta(t, 3, v, 1e-9)
}

func TestLogRequiresBase(t *testing.T) {
	def, ok := funcs.Lookup("log")
	require.True(t, ok)
	_, err := def.Evaluate(8, nil)
	assert.Error(t, err)
}

func TestSqrtRejectsNegative(t *testing.T) {
	def, ok := funcs.Lookup("sqrt")
	require.True(t, ok)
	_, err := def.Evaluate(-4, nil)
	assert.Error(t, err)
}

func TestExpOverflow(t *testing.T) {
	def, ok := funcs.Lookup("exp")
	require.True(t, ok)
	_, err := def.Evaluate(710, nil)
	assert.Error(t, err)
	v, err := def.Evaluate(1, nil)
	require.NoError(t, err)
	assert.InDelta(t, math.E, v, 1e-9)
}

func TestSinDerivativeProducesCosChain(t *testing.T) {
	def, ok := funcs.Lookup("sin")
	require.True(t, ok)
	arg := ast.NewLeaf(ast.NewVariable("x", ""))
	call := ast.NewLeaf(ast.NewFunction("sin"))
	call.SetArgument(arg)
	arg.SetDerivative(ast.Int(1))

	deriv, err := def.Derivative(call)
	require.NoError(t, err)
	assert.Equal(t, "*", deriv.Token.Lexeme)
	assert.Equal(t, "cos", deriv.Left.Token.Lexeme)
}
