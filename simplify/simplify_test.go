package simplify_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"symderiv/ast"
	"symderiv/lexer"
	"symderiv/parser"
	"symderiv/simplify"
)

func simplified(t *testing.T, expr string, opts simplify.Options) *ast.Node {
	t.Helper()
	toks, err := lexer.Tokenize(expr)
	require.NoError(t, err)
	tree, err := parser.Parse(toks)
	require.NoError(t, err)
	out, err := simplify.Simplify(tree, opts)
	require.NoError(t, err)
	return out
}

func TestSimplifyConstantFolding(t *testing.T) {
	out := simplified(t, "2+3*4", simplify.Options{})
	assert.True(t, ast.Equal(out, ast.Int(14)))
}

func TestSimplifyIdentityMultiplicationByOne(t *testing.T) {
	out := simplified(t, "1*x", simplify.Options{})
	assert.True(t, ast.Equal(out, ast.NewLeaf(ast.NewVariable("x", ""))))
}

func TestSimplifyIdentityMultiplicationByZero(t *testing.T) {
	out := simplified(t, "0*x", simplify.Options{})
	assert.True(t, ast.Equal(out, ast.Int(0)))
}

func TestSimplifyPowerZero(t *testing.T) {
	out := simplified(t, "x^0", simplify.Options{})
	assert.True(t, ast.Equal(out, ast.Int(1)))
}

func TestSimplifyLikeTermAddition(t *testing.T) {
	out := simplified(t, "x+x", simplify.Options{})
	assert.True(t, ast.Equal(out, ast.Mul(ast.Int(2), ast.NewLeaf(ast.NewVariable("x", "")))))
}

func TestSimplifyLikeTermMultiplication(t *testing.T) {
	out := simplified(t, "x*x", simplify.Options{})
	assert.True(t, ast.Equal(out, ast.Pow(ast.NewLeaf(ast.NewVariable("x", "")), ast.Int(2))))
}

func TestSimplifyPowerMultiplicationFoldsExponents(t *testing.T) {
	out := simplified(t, "x^2*x", simplify.Options{})
	assert.Equal(t, "^", out.Token.Lexeme)
	assert.Equal(t, int64(3), out.Right.Token.IntVal)
}

func TestSimplifyIntDivisionStaysInteger(t *testing.T) {
	out := simplified(t, "6/2", simplify.Options{})
	assert.True(t, out.Token.IsInt)
	assert.Equal(t, int64(3), out.Token.IntVal)
}

func TestSimplifyInexactDivisionWithoutFloatAllowedStaysSymbolic(t *testing.T) {
	out := simplified(t, "1/3", simplify.Options{FloatAllowed: false})
	assert.Equal(t, "/", out.Token.Lexeme)
}

func TestSimplifyInexactDivisionWithFloatAllowed(t *testing.T) {
	out := simplified(t, "1/3", simplify.Options{FloatAllowed: true})
	assert.False(t, out.Token.IsInt)
	assert.InDelta(t, 1.0/3.0, out.Token.FloatVal, 1e-12)
}

func TestSimplifyDivisionByZeroErrors(t *testing.T) {
	toks, err := lexer.Tokenize("1/0")
	require.NoError(t, err)
	tree, err := parser.Parse(toks)
	require.NoError(t, err)
	_, err = simplify.Simplify(tree, simplify.Options{})
	assert.Error(t, err)
}

func TestSimplifyFoldsLikeTermsBelowAnUnchangedRoot(t *testing.T) {
	// The inner (x*2)+x fold introduces a fresh 2+1 subtree two levels
	// down; a later pass has to fold it even though the root node itself
	// is never rewritten.
	out := simplified(t, "((x*2)+x)+y", simplify.Options{})
	y := ast.NewLeaf(ast.NewVariable("y", ""))
	x := ast.NewLeaf(ast.NewVariable("x", ""))
	assert.True(t, ast.Equal(out, ast.Add(y, ast.Mul(x, ast.Int(3)))),
		"got %v", out.Token.Lexeme)
}

func TestSimplifyFunctionOfNumericArgument(t *testing.T) {
	out := simplified(t, "sqrt(9)", simplify.Options{})
	assert.True(t, ast.Equal(out, ast.Int(3)))
}

func TestWithFloatAllowedScopesDefault(t *testing.T) {
	restore := simplify.WithFloatAllowed(true)
	assert.True(t, simplify.DefaultOptions().FloatAllowed)
	restore()
	assert.False(t, simplify.DefaultOptions().FloatAllowed)
}
