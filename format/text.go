// Package format renders an expression tree back to displayable notation.
// Text and LaTeX both implement trace.Converter so the rewrite log can
// record steps in whichever notation the caller asked for.
package format

import (
	"fmt"

	"symderiv/ast"
)

// Text renders n as plain infix text, e.g. "(sin(x)*2)+1". Operator children
// are parenthesized; number and variable children never are, since
// precedence alone already disambiguates them.
func Text(n *ast.Node) string {
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
			return n.Token.Lexeme + "_" + n.Token.Subscript
		}
		return n.Token.Lexeme

	case ast.KindFunction:
		return textFunction(n)

	default:
		left := textChild(n.Left)
		right := textChild(n.Right)
		return left + n.Token.Lexeme + right
	}
}

func textChild(child *ast.Node) string {
	s := Text(child)
	if child.Kind() == ast.KindOperator {
		return "(" + s + ")"
	}
	return s
}

func textFunction(n *ast.Node) string {
	if n.Token.Lexeme == "exp" {
		return "e^(" + Text(n.Argument()) + ")"
	}
	name := n.Token.Lexeme
	if n.Token.LogBase != nil {
		name += "_" + textLogBase(n.Token.LogBase)
	}
	return fmt.Sprintf("%s(%s)", name, Text(n.Argument()))
}

func textLogBase(base *ast.Token) string {
	if base.IsInt {
		return formatInt(base.IntVal)
	}
	return formatFloat(base.FloatVal)
}
