// Package diff implements the differentiator: memoized post-order
// recursion over an expression tree, applying the chain/product/quotient/
// power rules and the trivial constant/variable base cases.
package diff

import (
	"fmt"

	"symderiv/ast"
	"symderiv/funcs"
	"symderiv/simplify"
	"symderiv/trace"
)

// Differentiator computes d/dVariable of an expression tree, optionally
// recording each rule it applies to Log.
type Differentiator struct {
	Variable ast.Token
	Log      *trace.Log
}

func New(variable ast.Token, log *trace.Log) *Differentiator {
	return &Differentiator{Variable: variable, Log: log}
}

// Differentiate computes the derivative of node (assumed already
// normalized and simplified) and simplifies the result.
func (d *Differentiator) Differentiate(node *ast.Node) (*ast.Node, error) {
	deriv, err := d.solve(node)
	if err != nil {
		return nil, err
	}
	return simplify.Simplify(deriv, simplify.DefaultOptions())
}

func (d *Differentiator) solve(node *ast.Node) (*ast.Node, error) {
	if node == nil {
		return nil, fmt.Errorf("diff: nil node")
	}
	if cached := node.Derivative(); cached != nil {
		return cached, nil
	}
	if !node.HasVariable(d.Variable) {
		zero := ast.Int(0)
		node.SetDerivative(zero)
		return zero, nil
	}

	switch node.Token.Kind {
	case ast.KindVariable:
		one := ast.Int(1)
		node.SetDerivative(one)
		return one, nil

	case ast.KindFunction:
		argDerivative, err := d.solve(node.Argument())
		if err != nil {
			return nil, err
		}
		def, ok := funcs.Lookup(node.Token.Lexeme)
		if !ok {
			return nil, fmt.Errorf("diff: no derivative rule registered for %q", node.Token.Lexeme)
		}
		deriv, err := def.Derivative(node)
		if err != nil {
			return nil, err
		}
		deriv, err = ast.Normalize(deriv)
		if err != nil {
			return nil, err
		}
		node.SetDerivative(deriv)
		if d.Log != nil {
			d.Log.ChainRule(node, argDerivative)
		}
		return deriv, nil

	case ast.KindOperator:
		if _, err := d.solve(node.Left); err != nil {
			return nil, err
		}
		if _, err := d.solve(node.Right); err != nil {
			return nil, err
		}

		var deriv *ast.Node
		var err error
		switch node.Token.Lexeme {
		case "^":
			deriv, err = d.powerRule(node)
		case "*":
			deriv, err = d.productRule(node)
		case "/":
			deriv, err = d.quotientRule(node)
		case "+":
			deriv = ast.Add(ast.Clone(node.Left.Derivative()), ast.Clone(node.Right.Derivative()))
		case "-":
			deriv = ast.Sub(ast.Clone(node.Left.Derivative()), ast.Clone(node.Right.Derivative()))
		default:
			return nil, fmt.Errorf("diff: unknown operator %q", node.Token.Lexeme)
		}
		if err != nil {
			return nil, err
		}
		deriv, err = ast.Normalize(deriv)
		if err != nil {
			return nil, err
		}
		node.SetDerivative(deriv)

		if d.Log != nil {
			switch node.Token.Lexeme {
			case "^":
				d.Log.PowerRule(node)
			case "*":
				d.Log.ProductRule(node)
			case "/":
				d.Log.QuotientRule(node)
			case "+":
				d.Log.Addition(node)
			case "-":
				d.Log.Subtraction(node)
			}
		}
		return deriv, nil

	default:
		return nil, fmt.Errorf("diff: cannot differentiate node of kind %s", node.Token.Kind)
	}
}
