// Package funcs is the registry of single-argument named functions the
// engine understands: each entry supplies both a symbolic derivative rule
// and a numeric evaluator.
package funcs

import (
	"fmt"
	"math"

	"symderiv/ast"
)

// Definition is one function's derivative rule and numeric evaluator.
type Definition struct {
	// Derivative returns the symbolic derivative of call, a Function node
	// whose argument's derivative has already been computed and cached
	// (call.Argument().Derivative()).
	Derivative func(call *ast.Node) (*ast.Node, error)
	// Evaluate computes the function's value for a numeric argument.
	// logBase is only meaningful (and required) for "log".
	Evaluate func(arg float64, logBase *ast.Token) (float64, error)
}

func chain(inner, argDerivative *ast.Node) *ast.Node {
	return ast.Mul(inner, ast.Clone(argDerivative))
}

func callOf(name string, arg *ast.Node) *ast.Node {
	fn := ast.NewLeaf(ast.NewFunction(name))
	fn.SetArgument(ast.Clone(arg))
	return fn
}

var registry map[string]Definition

func init() {
	registry = map[string]Definition{
		"sin": {
			Derivative: func(call *ast.Node) (*ast.Node, error) {
				return chain(callOf("cos", call.Argument()), call.Argument().Derivative()), nil
			},
			Evaluate: func(arg float64, _ *ast.Token) (float64, error) {
				return math.Sin(arg), nil
			},
		},
		"cos": {
			Derivative: func(call *ast.Node) (*ast.Node, error) {
				sin := callOf("sin", call.Argument())
				sin.Token.Negated = true
				return chain(sin, call.Argument().Derivative()), nil
			},
			Evaluate: func(arg float64, _ *ast.Token) (float64, error) {
				return math.Cos(arg), nil
			},
		},
		"tan": {
			Derivative: func(call *ast.Node) (*ast.Node, error) {
				squared := ast.Pow(callOf("sec", call.Argument()), ast.Int(2))
				return chain(squared, call.Argument().Derivative()), nil
			},
			Evaluate: func(arg float64, _ *ast.Token) (float64, error) {
				if math.Cos(arg) == 0 {
					return 0, fmt.Errorf("funcs: tan is undefined at this point")
				}
				return math.Tan(arg), nil
			},
		},
		"cot": {
			Derivative: func(call *ast.Node) (*ast.Node, error) {
				squared := ast.Pow(callOf("csc", call.Argument()), ast.Int(2))
				squared.Token.Negated = true
				return chain(squared, call.Argument().Derivative()), nil
			},
			Evaluate: func(arg float64, _ *ast.Token) (float64, error) {
				s := math.Sin(arg)
				if s == 0 {
					return 0, fmt.Errorf("funcs: cot is undefined at this point")
				}
				return math.Cos(arg) / s, nil
			},
		},
		"sec": {
			Derivative: func(call *ast.Node) (*ast.Node, error) {
				product := ast.Mul(callOf("sec", call.Argument()), callOf("tan", call.Argument()))
				return chain(product, call.Argument().Derivative()), nil
			},
			Evaluate: func(arg float64, _ *ast.Token) (float64, error) {
				c := math.Cos(arg)
				if c == 0 {
					return 0, fmt.Errorf("funcs: sec is undefined at this point")
				}
				return 1 / c, nil
			},
		},
		"csc": {
			Derivative: func(call *ast.Node) (*ast.Node, error) {
				product := ast.Mul(callOf("csc", call.Argument()), callOf("cot", call.Argument()))
				product.Token.Negated = true
				return chain(product, call.Argument().Derivative()), nil
			},
			Evaluate: func(arg float64, _ *ast.Token) (float64, error) {
				s := math.Sin(arg)
				if s == 0 {
					return 0, fmt.Errorf("funcs: csc is undefined at this point")
				}
				return 1 / s, nil
			},
		},
		"exp": {
			Derivative: func(call *ast.Node) (*ast.Node, error) {
				return chain(callOf("exp", call.Argument()), call.Argument().Derivative()), nil
			},
			Evaluate: func(arg float64, _ *ast.Token) (float64, error) {
				if arg > 709 {
					return 0, fmt.Errorf("funcs: exp overflows at this point")
				}
				return math.Exp(arg), nil
			},
		},
		"ln": {
			Derivative: func(call *ast.Node) (*ast.Node, error) {
				return ast.Div(ast.Clone(call.Argument().Derivative()), ast.Clone(call.Argument())), nil
			},
			Evaluate: func(arg float64, _ *ast.Token) (float64, error) {
				if arg <= 0 {
					return 0, fmt.Errorf("funcs: ln is undefined for a non-positive argument")
				}
				return math.Log(arg), nil
			},
		},
		"log": {
			// u' / (ln(b)*u), with the numeric base b folded into an ln call.
			Derivative: func(call *ast.Node) (*ast.Node, error) {
				base := call.Token.LogBase
				if base == nil {
					return nil, fmt.Errorf("funcs: log requires a numeric subscript base")
				}
				lnBase := callOf("ln", ast.NewLeaf(*base))
				denominator := ast.Mul(lnBase, ast.Clone(call.Argument()))
				return ast.Div(ast.Clone(call.Argument().Derivative()), denominator), nil
			},
			Evaluate: func(arg float64, logBase *ast.Token) (float64, error) {
				if arg <= 0 {
					return 0, fmt.Errorf("funcs: log is undefined for a non-positive argument")
				}
				if logBase == nil {
					return 0, fmt.Errorf("funcs: log requires a numeric subscript base")
				}
				b := logBase.Value()
				if b <= 0 || b == 1 {
					return 0, fmt.Errorf("funcs: log base must be positive and not equal to 1")
				}
				return math.Log(arg) / math.Log(b), nil
			},
		},
		"sqrt": {
			Derivative: func(call *ast.Node) (*ast.Node, error) {
				denominator := ast.Mul(ast.Int(2), callOf("sqrt", call.Argument()))
				return chain(ast.Div(ast.Int(1), denominator), call.Argument().Derivative()), nil
			},
			Evaluate: func(arg float64, _ *ast.Token) (float64, error) {
				if arg < 0 {
					return 0, fmt.Errorf("funcs: sqrt is undefined for a negative argument")
				}
				return math.Sqrt(arg), nil
			},
		},
	}
}

// Lookup returns the registered Definition for name, if any.
func Lookup(name string) (Definition, bool) {
	d, ok := registry[name]
	return d, ok
}

// Names returns the sorted-by-declaration set of supported function names,
// mainly useful for CLI help text and tests.
func Names() []string {
	return []string{"sin", "cos", "tan", "cot", "csc", "sec", "exp", "ln", "log", "sqrt"}
}
