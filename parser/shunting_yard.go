// Package parser converts a lexed token stream into an expression tree via
// Dijkstra's shunting-yard algorithm, recursing into each function's
// captured argument and exponent streams independently.
package parser

import (
	"fmt"

	"symderiv/ast"
)

// ToPostfix converts an infix token stream to postfix, grounded on the
// standard shunting-yard precedence/associativity popping rule: pop while
// the operator stack's top binds at least as tightly as the incoming
// operator (strictly tighter, or equal and left-associative).
func ToPostfix(infix []ast.Token) ([]ast.Token, error) {
	var output []ast.Token
	var ops []ast.Token

	pop := func() {
		output = append(output, ops[len(ops)-1])
		ops = ops[:len(ops)-1]
	}

	for _, t := range infix {
		switch t.Kind {
		case ast.KindNumber, ast.KindVariable:
			output = append(output, t)

		case ast.KindFunction:
			// The lexer already absorbed the call's argument and exponent,
			// so by this point a function token is a self-contained operand:
			// convert its captured streams recursively and emit it directly.
			if t.ArgTokens != nil {
				sub, err := ToPostfix(t.ArgTokens)
				if err != nil {
					return nil, err
				}
				t.ArgTokens = sub
			}
			if t.Exponent != nil {
				sub, err := ToPostfix(t.Exponent)
				if err != nil {
					return nil, err
				}
				t.Exponent = sub
			}
			output = append(output, t)

		case ast.KindOperator:
			for len(ops) > 0 {
				top := ops[len(ops)-1]
				if top.Kind == ast.KindLeftParen {
					break
				}
				collapses := top.Precedence > t.Precedence ||
					(top.Precedence == t.Precedence && t.Assoc == ast.AssocLeft)
				if !collapses {
					break
				}
				pop()
			}
			ops = append(ops, t)

		case ast.KindLeftParen:
			ops = append(ops, t)

		case ast.KindRightParen:
			for {
				if len(ops) == 0 {
					return nil, fmt.Errorf("parser: mismatched parentheses")
				}
				if ops[len(ops)-1].Kind == ast.KindLeftParen {
					break
				}
				pop()
			}
			ops = ops[:len(ops)-1] // discard the left paren

		default:
			return nil, fmt.Errorf("parser: unexpected token %q", t.Lexeme)
		}
	}

	for len(ops) > 0 {
		if ops[len(ops)-1].Kind == ast.KindLeftParen {
			return nil, fmt.Errorf("parser: mismatched parentheses")
		}
		pop()
	}
	return output, nil
}
