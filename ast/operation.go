package ast

import "strconv"

func opToken(lexeme string) Token {
	t, _ := NewToken(lexeme)
	return t
}

// Add, Sub, Mul, Div, and Pow build fresh binary operator nodes: a place
// for every rule (simplifier, differentiator) to construct arithmetic
// without hand-rolling symbol-table lookups each time.
func Add(a, b *Node) *Node { return NewOperator(opToken("+"), a, b) }
func Sub(a, b *Node) *Node { return NewOperator(opToken("-"), a, b) }
func Mul(a, b *Node) *Node { return NewOperator(opToken("*"), a, b) }
func Div(a, b *Node) *Node { return NewOperator(opToken("/"), a, b) }
func Pow(a, b *Node) *Node { return NewOperator(opToken("^"), a, b) }

// Int and Float build integer/double numeric leaves.
func Int(v int64) *Node {
	return NewLeaf(NewInt(strconv.FormatInt(v, 10), v))
}

func Float(v float64) *Node {
	return NewLeaf(NewFloat(strconv.FormatFloat(v, 'g', -1, 64), v))
}
