package format

import (
	"fmt"

	"symderiv/ast"
)

// latexFunctionNames maps a function lexeme to its LaTeX command, for the
// functions that have a dedicated one. sqrt, log and exp are handled
// separately since each needs non-command formatting (radical, subscript
// base, \left(\right) sizing).
var latexFunctionNames = map[string]string{
	"sin": "\\sin",
	"cos": "\\cos",
	"tan": "\\tan",
	"cot": "\\cot",
	"csc": "\\csc",
	"sec": "\\sec",
	"ln":  "\\ln",
}

// LaTeX renders n as a LaTeX math expression. It mirrors Text's structure
// but reaches for \cdot, \dfrac and \left(\right), and hoists a function
// call's exponent onto the function symbol itself
// (sin^2(x) -> \sin^{2}\left(x\right)) rather than wrapping the whole
// call in ^{...}.
func LaTeX(n *ast.Node) string {
	if n == nil {
		return ""
	}
	switch n.Token.Kind {
	case ast.KindNumber:
		if n.Token.IsInt {
			return formatInt(n.Token.IntVal)
		}
		return formatFloat(n.Token.FloatVal)

	case ast.KindVariable:
		if n.Token.Subscript != "" {
			return n.Token.Lexeme + "_{" + n.Token.Subscript + "}"
		}
		return n.Token.Lexeme

	case ast.KindFunction:
		return latexFunction(n, nil)

	default:
		return latexOperator(n)
	}
}

func latexOperator(n *ast.Node) string {
	switch n.Token.Lexeme {
	case "+":
		return latexChild(n.Left) + " + " + latexChild(n.Right)
	case "-":
		return latexChild(n.Left) + " - " + latexChild(n.Right)
	case "*":
		return latexChild(n.Left) + " \\cdot " + latexChild(n.Right)
	case "/":
		return fmt.Sprintf("\\dfrac{%s}{%s}", LaTeX(n.Left), LaTeX(n.Right))
	case "^":
		if n.Left.Kind() == ast.KindFunction {
			return latexFunction(n.Left, n.Right)
		}
		return fmt.Sprintf("%s^{%s}", latexChild(n.Left), LaTeX(n.Right))
	default:
		return latexChild(n.Left) + n.Token.Lexeme + latexChild(n.Right)
	}
}

func latexChild(child *ast.Node) string {
	s := LaTeX(child)
	if child.Kind() == ast.KindOperator {
		return "\\left(" + s + "\\right)"
	}
	return s
}

// latexFunction renders a function call, optionally hoisting exponent (the
// node's "^expr" power, if the call sits as the left child of a ^ node)
// onto the function symbol rather than around the whole call.
func latexFunction(n *ast.Node, exponent *ast.Node) string {
	arg := "\\left(" + LaTeX(n.Argument()) + "\\right)"

	switch n.Token.Lexeme {
	case "exp":
		base := "\\exp"
		if exponent != nil {
			base += "^{" + LaTeX(exponent) + "}"
		}
		return base + arg
	case "sqrt":
		if exponent != nil {
			return fmt.Sprintf("\\sqrt[%s]{%s}", LaTeX(exponent), LaTeX(n.Argument()))
		}
		return "\\sqrt{" + LaTeX(n.Argument()) + "}"
	case "log":
		cmd := "\\log"
		if n.Token.LogBase != nil {
			cmd += "_{" + textLogBase(n.Token.LogBase) + "}"
		}
		if exponent != nil {
			cmd += "^{" + LaTeX(exponent) + "}"
		}
		return cmd + arg
	}

	cmd, ok := latexFunctionNames[n.Token.Lexeme]
	if !ok {
		cmd = "\\operatorname{" + n.Token.Lexeme + "}"
	}
	if exponent != nil {
		cmd += "^{" + LaTeX(exponent) + "}"
	}
	return cmd + arg
}
