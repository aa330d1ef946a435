package diff

import "symderiv/ast"

// powerRule implements the generalized power rule, split three ways on
// which side depends on the variable. The combined case is the full
// d/dx[u^v] = u^v * (v'*ln(u) + u'*v/u) form.
func (d *Differentiator) powerRule(node *ast.Node) (*ast.Node, error) {
	base, exponent := node.Left, node.Right
	baseHasVar := base.HasVariable(d.Variable)
	exponentHasVar := exponent.HasVariable(d.Variable)

	var deriv *ast.Node
	switch {
	case baseHasVar && !exponentHasVar:
		exponentMinusOne := ast.Sub(ast.Clone(exponent), ast.Int(1))
		scaled := ast.Mul(ast.Clone(exponent), ast.Pow(ast.Clone(base), exponentMinusOne))
		deriv = ast.Mul(scaled, ast.Clone(base.Derivative()))

	case !baseHasVar && exponentHasVar:
		ln := ast.NewLeaf(ast.NewFunction("ln"))
		ln.SetArgument(ast.Clone(base))
		deriv = ast.Mul(ast.Pow(ast.Clone(base), ast.Clone(exponent)), ast.Mul(ln, ast.Clone(exponent.Derivative())))

	case baseHasVar && exponentHasVar:
		ln := ast.NewLeaf(ast.NewFunction("ln"))
		ln.SetArgument(ast.Clone(base))
		baseTerm := ast.Div(ast.Mul(ast.Clone(base.Derivative()), ast.Clone(exponent)), ast.Clone(base))
		exponentTerm := ast.Mul(ast.Clone(exponent.Derivative()), ln)
		deriv = ast.Mul(ast.Pow(ast.Clone(base), ast.Clone(exponent)), ast.Add(baseTerm, exponentTerm))

	default:
		deriv = ast.Int(0)
	}

	return deriv, nil
}

func (d *Differentiator) productRule(node *ast.Node) (*ast.Node, error) {
	u, v := node.Left, node.Right
	uHasVar := u.HasVariable(d.Variable)
	vHasVar := v.HasVariable(d.Variable)

	var deriv *ast.Node
	switch {
	case uHasVar && vHasVar:
		deriv = ast.Add(
			ast.Mul(ast.Clone(u), ast.Clone(v.Derivative())),
			ast.Mul(ast.Clone(u.Derivative()), ast.Clone(v)),
		)
	case uHasVar:
		deriv = ast.Mul(ast.Clone(u.Derivative()), ast.Clone(v))
	case vHasVar:
		deriv = ast.Mul(ast.Clone(u), ast.Clone(v.Derivative()))
	default:
		deriv = ast.Int(0)
	}

	return deriv, nil
}

func (d *Differentiator) quotientRule(node *ast.Node) (*ast.Node, error) {
	u, v := node.Left, node.Right
	numerator := ast.Sub(
		ast.Mul(ast.Clone(v), ast.Clone(u.Derivative())),
		ast.Mul(ast.Clone(u), ast.Clone(v.Derivative())),
	)
	denominator := ast.Pow(ast.Clone(v), ast.Int(2))
	deriv := ast.Div(numerator, denominator)

	return deriv, nil
}
