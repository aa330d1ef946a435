package simplify

import (
	"fmt"
	"math"

	"symderiv/ast"
	"symderiv/funcs"
)

// Simplify repeatedly normalizes and rewrites node until a pass produces a
// tree structurally equal to its input. Running ast.Normalize ahead of
// each pass means an expand-negative introduced by one rewrite is cleaned
// up before the next.
func Simplify(node *ast.Node, opts Options) (*ast.Node, error) {
	for {
		normalized, err := ast.Normalize(node)
		if err != nil {
			return nil, err
		}
		// simplifyOnce rewrites in place, so the pass's input has to be
		// snapshotted up front for the fixpoint comparison to mean anything.
		before := ast.Clone(normalized)
		next, err := simplifyOnce(normalized, opts)
		if err != nil {
			return nil, err
		}
		if ast.Equal(next, before) {
			return next, nil
		}
		node = next
	}
}

func simplifyOnce(node *ast.Node, opts Options) (*ast.Node, error) {
	if node == nil {
		return nil, nil
	}
	switch node.Token.Kind {
	case ast.KindOperator:
		return simplifyOperator(node, opts)
	case ast.KindFunction:
		return simplifyFunction(node, opts)
	default:
		return node, nil
	}
}

func simplifyOperator(node *ast.Node, opts Options) (*ast.Node, error) {
	left, err := simplifyOnce(node.Left, opts)
	if err != nil {
		return nil, err
	}
	right, err := simplifyOnce(node.Right, opts)
	if err != nil {
		return nil, err
	}
	node.Left, node.Right = left, right

	if node.Token.Commutative && precedenceOf(node.Right) < precedenceOf(node.Left) {
		node.Left, node.Right = node.Right, node.Left
	}

	switch node.Token.Lexeme {
	case "^":
		return simplifyPow(node, opts)
	case "*":
		return simplifyMul(node, opts)
	case "/":
		return simplifyDiv(node, opts)
	case "+":
		return simplifyAdd(node, opts)
	case "-":
		return simplifySub(node, opts)
	default:
		return node, nil
	}
}

func simplifyFunction(node *ast.Node, opts Options) (*ast.Node, error) {
	arg, err := simplifyOnce(node.Argument(), opts)
	if err != nil {
		return nil, err
	}
	node.SetArgument(arg)

	lit, ok := numLit(arg)
	if !ok {
		return node, nil
	}
	def, ok := funcs.Lookup(node.Token.Lexeme)
	if !ok {
		return nil, fmt.Errorf("simplify: no evaluator registered for %q", node.Token.Lexeme)
	}
	result, err := def.Evaluate(lit.Value(), node.Token.LogBase)
	if err != nil {
		return nil, err
	}

	if math.Trunc(result) == result && !math.IsInf(result, 0) {
		return ast.Int(int64(result)), nil
	}
	if !opts.FloatAllowed {
		return node, nil
	}
	return ast.Float(result), nil
}
