package simplify

import "symderiv/ast"

func precedenceOf(n *ast.Node) int {
	if n == nil {
		return 0
	}
	return n.Token.Precedence
}

func powParts(n *ast.Node) (base, exponent *ast.Node, ok bool) {
	if n != nil && n.Token.Kind == ast.KindOperator && n.Token.Lexeme == "^" {
		return n.Left, n.Right, true
	}
	return nil, nil, false
}

// mulByTerm recognizes mulNode as "term*coeff" or "coeff*term" where one
// factor is structurally equal to other, returning the remaining factor as
// the folded coefficient (used by like-term addition/subtraction).
func mulByTerm(mulNode, other *ast.Node) (coeff, term *ast.Node, ok bool) {
	if mulNode == nil || mulNode.Token.Kind != ast.KindOperator || mulNode.Token.Lexeme != "*" {
		return nil, nil, false
	}
	if ast.Equal(mulNode.Left, other) {
		return mulNode.Right, other, true
	}
	if ast.Equal(mulNode.Right, other) {
		return mulNode.Left, other, true
	}
	return nil, nil, false
}

func simplifyPow(node *ast.Node, opts Options) (*ast.Node, error) {
	l, lok := numLit(node.Left)
	r, rok := numLit(node.Right)
	if lok && rok {
		v, err := arithmetic("^", l, r, opts)
		if err != nil {
			return nil, err
		}
		if v != nil {
			return ast.NewLeaf(*v), nil
		}
		return node, nil
	}
	if lok {
		if l.Value() == 0 {
			return ast.Int(0), nil
		}
		if l.Value() == 1 {
			return ast.Int(1), nil
		}
	}
	if rok {
		if r.Value() == 0 {
			return ast.Int(1), nil
		}
		if r.Value() == 1 {
			return node.Left, nil
		}
	}
	return node, nil
}

func simplifyMul(node *ast.Node, opts Options) (*ast.Node, error) {
	l, lok := numLit(node.Left)
	r, rok := numLit(node.Right)
	if lok && rok {
		v, err := arithmetic("*", l, r, opts)
		if err != nil {
			return nil, err
		}
		if v != nil {
			return ast.NewLeaf(*v), nil
		}
		return node, nil
	}
	if lok {
		if l.Value() == 0 {
			return ast.Int(0), nil
		}
		if l.Value() == 1 {
			return node.Right, nil
		}
	}
	if rok {
		if r.Value() == 0 {
			return ast.Int(0), nil
		}
		if r.Value() == 1 {
			return node.Left, nil
		}
	}

	leftBase, leftExp, leftIsPow := powParts(node.Left)
	rightBase, rightExp, rightIsPow := powParts(node.Right)
	switch {
	case leftIsPow && rightIsPow && ast.Equal(leftBase, rightBase):
		return ast.Pow(ast.Clone(leftBase), ast.Add(leftExp, rightExp)), nil
	case leftIsPow && ast.Equal(leftBase, node.Right):
		return ast.Pow(ast.Clone(leftBase), ast.Add(leftExp, ast.Int(1))), nil
	case rightIsPow && ast.Equal(rightBase, node.Left):
		return ast.Pow(ast.Clone(rightBase), ast.Add(rightExp, ast.Int(1))), nil
	case ast.Equal(node.Left, node.Right):
		return ast.Pow(node.Left, ast.Int(2)), nil
	}
	return node, nil
}

func simplifyDiv(node *ast.Node, opts Options) (*ast.Node, error) {
	l, lok := numLit(node.Left)
	r, rok := numLit(node.Right)
	if lok && rok {
		v, err := arithmetic("/", l, r, opts)
		if err != nil {
			return nil, err
		}
		if v != nil {
			return ast.NewLeaf(*v), nil
		}
		return node, nil
	}
	if lok && l.Value() == 0 {
		return ast.Int(0), nil
	}
	if rok && r.Value() == 1 {
		return node.Left, nil
	}
	return node, nil
}

func simplifyAdd(node *ast.Node, opts Options) (*ast.Node, error) {
	l, lok := numLit(node.Left)
	r, rok := numLit(node.Right)
	if lok && rok {
		v, err := arithmetic("+", l, r, opts)
		if err != nil {
			return nil, err
		}
		if v != nil {
			return ast.NewLeaf(*v), nil
		}
		return node, nil
	}
	if lok && l.Value() == 0 {
		return node.Right, nil
	}
	if rok && r.Value() == 0 {
		return node.Left, nil
	}
	if ast.Equal(node.Left, node.Right) {
		return ast.Mul(ast.Int(2), node.Left), nil
	}
	if coeff, term, ok := mulByTerm(node.Left, node.Right); ok {
		return ast.Mul(term, ast.Add(coeff, ast.Int(1))), nil
	}
	if coeff, term, ok := mulByTerm(node.Right, node.Left); ok {
		return ast.Mul(term, ast.Add(coeff, ast.Int(1))), nil
	}
	return node, nil
}

func simplifySub(node *ast.Node, opts Options) (*ast.Node, error) {
	l, lok := numLit(node.Left)
	r, rok := numLit(node.Right)
	if lok && rok {
		v, err := arithmetic("-", l, r, opts)
		if err != nil {
			return nil, err
		}
		if v != nil {
			return ast.NewLeaf(*v), nil
		}
		return node, nil
	}
	if rok && r.Value() == 0 {
		return node.Left, nil
	}
	if lok && l.Value() == 0 {
		neg := ast.Clone(node.Right)
		neg.Token.FlipSign()
		return neg, nil
	}
	if ast.Equal(node.Left, node.Right) {
		return ast.Int(0), nil
	}
	if coeff, term, ok := mulByTerm(node.Left, node.Right); ok {
		return ast.Mul(term, ast.Sub(coeff, ast.Int(1))), nil
	}
	if coeff, term, ok := mulByTerm(node.Right, node.Left); ok {
		return ast.Mul(term, ast.Sub(ast.Int(1), coeff)), nil
	}
	return node, nil
}
