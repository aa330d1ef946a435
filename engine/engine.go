// Package engine wires the tokenizer, parser, simplifier, differentiator,
// approximator and rewrite log together into the operations the CLI
// needs, so callers never have to glue the pipeline stages themselves.
package engine

import (
	"fmt"

	"symderiv/approx"
	"symderiv/ast"
	"symderiv/diff"
	"symderiv/lexer"
	"symderiv/parser"
	"symderiv/simplify"
	"symderiv/trace"
)

// Result is a completed differentiation: the simplified derivative tree
// plus the rewrite log recorded while producing it.
type Result struct {
	Input      string
	Variable   ast.Token
	Derivative *ast.Node
	Log        *trace.Log
}

// Parse tokenizes and parses expr into a normalized, unsimplified tree.
func Parse(expr string) (*ast.Node, error) {
	toks, err := lexer.Tokenize(expr)
	if err != nil {
		return nil, fmt.Errorf("engine: parsing %q: %w", expr, err)
	}
	tree, err := parser.Parse(toks)
	if err != nil {
		return nil, fmt.Errorf("engine: parsing %q: %w", expr, err)
	}
	return tree, nil
}

// ParseVariable tokenizes wrt and validates it names exactly one variable,
// the only shape the -v/--variable flag accepts.
func ParseVariable(wrt string) (ast.Token, error) {
	toks, err := lexer.Tokenize(wrt)
	if err != nil {
		return ast.Token{}, fmt.Errorf("engine: invalid variable %q: %w", wrt, err)
	}
	if len(toks) != 1 || toks[0].Kind != ast.KindVariable {
		return ast.Token{}, fmt.Errorf("engine: %q is not a single variable name", wrt)
	}
	return toks[0], nil
}

// Differentiate parses expr, differentiates it with respect to variable,
// and records every rule applied to log in convert's notation.
func Differentiate(expr string, variable ast.Token, convert trace.Converter, mode string) (*Result, error) {
	log := trace.New(convert, mode)
	log.SetInput(expr)

	tree, err := Parse(expr)
	if err != nil {
		return nil, err
	}
	tree, err = simplify.Simplify(tree, simplify.DefaultOptions())
	if err != nil {
		return nil, fmt.Errorf("engine: simplifying %q: %w", expr, err)
	}

	d := diff.New(variable, log)
	derivative, err := d.Differentiate(tree)
	if err != nil {
		return nil, fmt.Errorf("engine: differentiating %q: %w", expr, err)
	}
	log.SetOutput(derivative)

	return &Result{Input: expr, Variable: variable, Derivative: derivative, Log: log}, nil
}

// TestEquality parses expr, simplifies it, and compares it structurally
// against r.Derivative, recording the outcome in the log under the
// original expression text.
func (r *Result) TestEquality(expr string) (bool, error) {
	tree, err := Parse(expr)
	if err != nil {
		return false, err
	}
	tree, err = simplify.Simplify(tree, simplify.DefaultOptions())
	if err != nil {
		return false, fmt.Errorf("engine: simplifying %q: %w", expr, err)
	}
	pass := ast.Equal(tree, r.Derivative)
	r.Log.LogTest(expr, pass)
	return pass, nil
}

// ApproximateAt numerically evaluates r.Derivative at r.Variable = value
// and records the result in the log.
func (r *Result) ApproximateAt(value float64) (float64, error) {
	result, err := approx.Approximate(r.Derivative, r.Variable, value)
	if err != nil {
		return 0, fmt.Errorf("engine: approximating at %v: %w", value, err)
	}
	r.Log.LogApprox(value, result)
	return result, nil
}

// TreesEqual is a standalone convenience for comparing two expressions
// without going through a Result, parsing and simplifying each before
// comparing.
func TreesEqual(a, b string) (bool, error) {
	ta, err := Parse(a)
	if err != nil {
		return false, err
	}
	ta, err = simplify.Simplify(ta, simplify.DefaultOptions())
	if err != nil {
		return false, err
	}
	tb, err := Parse(b)
	if err != nil {
		return false, err
	}
	tb, err = simplify.Simplify(tb, simplify.DefaultOptions())
	if err != nil {
		return false, err
	}
	return ast.Equal(ta, tb), nil
}
