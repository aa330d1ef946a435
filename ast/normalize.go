package ast

import "fmt"

// Normalize enforces the tree invariants the rest of the pipeline relies
// on: every operator has both children, and any non-Number node still
// carrying a pending negation is expanded into an explicit "-1 * node"
// subtree. It is safe, and expected, to call repeatedly; an
// already-normalized tree is returned unchanged.
func Normalize(n *Node) (*Node, error) {
	if n == nil {
		return nil, nil
	}

	if n.Token.Kind == KindFunction {
		arg, err := Normalize(n.Argument())
		if err != nil {
			return nil, err
		}
		n.SetArgument(arg)
	}

	if n.Token.Kind != KindNumber && n.Token.Negated {
		n.Token.Negated = false
		minusOne := Int(-1)
		expanded := Mul(minusOne, Clone(n))
		return Normalize(expanded)
	}

	if n.Token.Kind == KindOperator {
		if n.Left == nil {
			return nil, fmt.Errorf("ast: operator %q missing left operand", n.Token.Lexeme)
		}
		if n.Right == nil {
			return nil, fmt.Errorf("ast: operator %q missing right operand", n.Token.Lexeme)
		}
		left, err := Normalize(n.Left)
		if err != nil {
			return nil, err
		}
		right, err := Normalize(n.Right)
		if err != nil {
			return nil, err
		}
		n.Left, n.Right = left, right
	}

	return n, nil
}
