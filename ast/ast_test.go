package ast_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"symderiv/ast"
)

func x() ast.Token { return ast.NewVariable("x", "") }

func TestEqualNumbers(t *testing.T) {
	a := ast.Int(3)
	b := ast.Int(3)
	assert.True(t, ast.Equal(a, b))
	assert.False(t, ast.Equal(a, ast.Int(4)))
}

func TestEqualIgnoresFloatVsIntDistinctValue(t *testing.T) {
	i := ast.Int(2)
	f := ast.Float(2)
	assert.True(t, ast.Equal(i, f))
}

func TestEqualVariables(t *testing.T) {
	a := ast.NewLeaf(x())
	b := ast.NewLeaf(x())
	assert.True(t, ast.Equal(a, b))

	y := ast.NewLeaf(ast.NewVariable("y", ""))
	assert.False(t, ast.Equal(a, y))
}

func TestEqualOperators(t *testing.T) {
	a := ast.Add(ast.NewLeaf(x()), ast.Int(1))
	b := ast.Add(ast.NewLeaf(x()), ast.Int(1))
	assert.True(t, ast.Equal(a, b))

	c := ast.Add(ast.Int(1), ast.NewLeaf(x()))
	assert.False(t, ast.Equal(a, c), "operand order matters for structural equality")
}

func TestCloneIsDeepAndIndependent(t *testing.T) {
	orig := ast.Add(ast.NewLeaf(x()), ast.Int(1))
	clone := ast.Clone(orig)
	assert.True(t, ast.Equal(orig, clone))

	clone.Left.Token.Lexeme = "y"
	assert.Equal(t, "x", orig.Left.Token.Lexeme, "mutating the clone must not affect the original")
}

func TestCloneSharesDerivativeReference(t *testing.T) {
	leaf := ast.NewLeaf(x())
	leaf.SetDerivative(ast.Int(1))
	clone := ast.Clone(leaf)
	assert.Same(t, leaf.Derivative(), clone.Derivative())
}

func TestNormalizeExpandsNegatedNonNumber(t *testing.T) {
	v := ast.NewLeaf(x())
	v.Token.Negated = true

	normalized, err := ast.Normalize(v)
	assert.NoError(t, err)
	assert.Equal(t, ast.KindOperator, normalized.Token.Kind)
	assert.Equal(t, "*", normalized.Token.Lexeme)
	assert.True(t, ast.Equal(normalized.Left, ast.Int(-1)))
	assert.False(t, normalized.Right.Token.Negated)
}

func TestNormalizeLeavesNegatedNumberAlone(t *testing.T) {
	n := ast.Int(-5)
	normalized, err := ast.Normalize(n)
	assert.NoError(t, err)
	assert.Same(t, n, normalized)
}

func TestNormalizeRejectsMissingOperand(t *testing.T) {
	broken := ast.NewOperator(ast.Token{Kind: ast.KindOperator, Lexeme: "+"}, ast.Int(1), nil)
	_, err := ast.Normalize(broken)
	assert.Error(t, err)
}

func TestHasVariableDescendsIntoFunctionArgument(t *testing.T) {
	call := ast.NewLeaf(ast.NewFunction("sin"))
	call.SetArgument(ast.NewLeaf(x()))
	assert.True(t, call.HasVariable(x()))

	call.SetArgument(ast.Int(1))
	assert.False(t, call.HasVariable(x()))
}
