package lexer

import (
	"fmt"

	"symderiv/ast"
)

// applyUnarySign collapses runs of leading "+"/"-" that appear where an
// operand, not a binary operator, is expected (start of input, right after
// another operator, or right after a left paren). A leading "+" is always
// dropped; a net "-" (odd number of minuses) is dropped too, toggling the
// negated flag of the token it precedes instead of staying in the stream
// as its own operator.
func applyUnarySign(toks []ast.Token) ([]ast.Token, error) {
	out := make([]ast.Token, 0, len(toks))
	isSign := func(t ast.Token) bool {
		return t.Kind == ast.KindOperator && (t.Lexeme == "+" || t.Lexeme == "-")
	}
	expectsOperand := func() bool {
		if len(out) == 0 {
			return true
		}
		last := out[len(out)-1]
		return last.Kind == ast.KindOperator || last.Kind == ast.KindLeftParen
	}

	i := 0
	for i < len(toks) {
		if isSign(toks[i]) && expectsOperand() {
			negate := false
			for i < len(toks) && isSign(toks[i]) {
				if toks[i].Lexeme == "-" {
					negate = !negate
				}
				i++
			}
			if i >= len(toks) {
				return nil, fmt.Errorf("lexer: dangling unary sign at end of input")
			}
			next := toks[i]
			i++
			if negate {
				if next.Kind == ast.KindOperator && next.Lexeme != "^" {
					return nil, fmt.Errorf("lexer: unary '-' has no operand before %q", next.Lexeme)
				}
				if next.Kind == ast.KindNumber {
					next.FlipSign()
				} else {
					next.Negated = !next.Negated
				}
			}
			out = append(out, next)
			continue
		}
		out = append(out, toks[i])
		i++
	}
	return out, nil
}
