// Package approx numerically evaluates an expression tree at a point:
// substitute the differentiation variable with the requested value, hold
// every other variable at 1, then simplify with float arithmetic enabled
// until only a number remains.
//
// Approximate takes the actual variable token the caller differentiated
// with respect to, so it behaves correctly for d/dt, d/dy, and so on.
package approx

import (
	"fmt"

	"symderiv/ast"
	"symderiv/simplify"
)

// Approximate evaluates tree at variable = value, treating every other
// variable in tree as 1.
func Approximate(tree *ast.Node, variable ast.Token, value float64) (float64, error) {
	substituted := substitute(ast.Clone(tree), variable, value)

	defer simplify.WithFloatAllowed(true)()
	result, err := simplify.Simplify(substituted, simplify.Options{FloatAllowed: true})
	if err != nil {
		return 0, err
	}
	if result.Kind() != ast.KindNumber {
		return 0, fmt.Errorf("approx: expression did not reduce to a number, got %s", result.Token.Lexeme)
	}
	return result.Token.Value(), nil
}

// substitute replaces every KindVariable leaf in n with a numeric literal:
// value for the one the caller is evaluating, 1 for everything else.
func substitute(n *ast.Node, variable ast.Token, value float64) *ast.Node {
	if n == nil {
		return nil
	}
	switch n.Token.Kind {
	case ast.KindVariable:
		if n.Token.Lexeme == variable.Lexeme && n.Token.Subscript == variable.Subscript {
			return ast.Float(value)
		}
		return ast.Float(1)

	case ast.KindFunction:
		n.SetArgument(substitute(n.Argument(), variable, value))
		return n

	case ast.KindNumber:
		return n

	default:
		n.Left = substitute(n.Left, variable, value)
		n.Right = substitute(n.Right, variable, value)
		return n
	}
}
