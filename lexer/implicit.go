package lexer

import (
	"fmt"

	"symderiv/ast"
)

// insertImplicitMultiplication inserts a "*" token between adjacent token
// pairs the adjacency table marks as requiring one, recursing into any
// function's captured argument/exponent streams so nested calls get the
// same treatment.
func insertImplicitMultiplication(toks []ast.Token) ([]ast.Token, error) {
	out := make([]ast.Token, 0, len(toks)+4)
	for i := 0; i < len(toks); i++ {
		t := toks[i]
		if t.Kind == ast.KindFunction {
			if t.ArgTokens != nil {
				sub, err := insertImplicitMultiplication(t.ArgTokens)
				if err != nil {
					return nil, err
				}
				t.ArgTokens = sub
			}
			if t.Exponent != nil {
				sub, err := insertImplicitMultiplication(t.Exponent)
				if err != nil {
					return nil, err
				}
				t.Exponent = sub
			}
		}
		if len(out) > 0 {
			prev := out[len(out)-1]
			if prev.Kind == ast.KindOperator && t.Kind == ast.KindOperator {
				return nil, fmt.Errorf("lexer: illegal adjacent operators %q %q", prev.Lexeme, t.Lexeme)
			}
			if ast.RequiresImplicitMultiplication(prev.Kind, t.Kind) {
				mul, _ := ast.NewToken("*")
				out = append(out, mul)
			}
		}
		out = append(out, t)
	}
	return out, nil
}
