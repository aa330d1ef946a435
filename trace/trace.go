// Package trace records the rewrite-log steps a Differentiator applies
// and renders them as a JSON-like structured trace: one entry per rule
// application, each carrying the operands and resulting derivative in
// display form.
package trace

import "symderiv/ast"

// Converter renders a node to a display string; format.Text and
// format.LaTeX both satisfy this, and are injected by the caller so the
// log never has to know which notation it is recording in.
type Converter func(*ast.Node) string

// Field is one ordered key/value pair within a Step.
type Field struct {
	Key   string
	Value string
}

// Step is one rewrite-log entry: the rule applied, plus the operands and
// result involved.
type Step struct {
	Rule   string
	Fields []Field
}

type testResult struct {
	Expr string
	Pass bool
}

type approxResult struct {
	At, Result float64
}

// Log is an append-only record of every rule a Differentiator applies to
// one expression, plus optional equality-test and approximation results.
type Log struct {
	convert Converter
	mode    string

	steps  []Step
	input  string
	output string
	tests  []testResult
	approx []approxResult
}

func New(convert Converter, mode string) *Log {
	return &Log{convert: convert, mode: mode}
}

func (l *Log) SetInput(s string)      { l.input = s }
func (l *Log) SetOutput(n *ast.Node)  { l.output = l.convert(n) }
func (l *Log) LogTest(expr string, pass bool) { l.tests = append(l.tests, testResult{expr, pass}) }
func (l *Log) LogApprox(at, result float64)   { l.approx = append(l.approx, approxResult{at, result}) }

func (l *Log) add(rule string, fields ...Field) {
	l.steps = append(l.steps, Step{Rule: rule, Fields: fields})
}

func (l *Log) ChainRule(call *ast.Node, argDerivative *ast.Node) {
	l.add("chain",
		Field{"Function", l.convert(call)},
		Field{"u'", l.convert(argDerivative)},
		Field{"derivative", l.convert(call.Derivative())},
	)
}

func (l *Log) ProductRule(node *ast.Node) {
	l.add("product",
		Field{"Expression", l.convert(node)},
		Field{"u", l.convert(node.Left)},
		Field{"v", l.convert(node.Right)},
		Field{"u'", l.convert(node.Left.Derivative())},
		Field{"v'", l.convert(node.Right.Derivative())},
		Field{"derivative", l.convert(node.Derivative())},
	)
}

func (l *Log) QuotientRule(node *ast.Node) {
	l.add("quotient",
		Field{"Expression", l.convert(node)},
		Field{"u", l.convert(node.Left)},
		Field{"v", l.convert(node.Right)},
		Field{"u'", l.convert(node.Left.Derivative())},
		Field{"v'", l.convert(node.Right.Derivative())},
		Field{"derivative", l.convert(node.Derivative())},
	)
}

func (l *Log) PowerRule(node *ast.Node) {
	l.add("power",
		Field{"Expression", l.convert(node)},
		Field{"base", l.convert(node.Left)},
		Field{"exponent", l.convert(node.Right)},
		Field{"base derivative", l.convert(node.Left.Derivative())},
		Field{"exponent derivative", l.convert(node.Right.Derivative())},
		Field{"derivative", l.convert(node.Derivative())},
	)
}

func (l *Log) Addition(node *ast.Node) {
	l.add("addition",
		Field{"Expression", l.convert(node)},
		Field{"left derivative", l.convert(node.Left.Derivative())},
		Field{"right derivative", l.convert(node.Right.Derivative())},
		Field{"derivative", l.convert(node.Derivative())},
	)
}

func (l *Log) Subtraction(node *ast.Node) {
	l.add("subtraction",
		Field{"Expression", l.convert(node)},
		Field{"left derivative", l.convert(node.Left.Derivative())},
		Field{"right derivative", l.convert(node.Right.Derivative())},
		Field{"derivative", l.convert(node.Derivative())},
	)
}

// Steps returns the recorded steps, mainly for tests.
func (l *Log) Steps() []Step { return l.steps }
