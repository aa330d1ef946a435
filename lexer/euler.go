package lexer

import "symderiv/ast"

// rewriteEuler turns a standalone "e" variable into an exp(1) call.
// When "e" is immediately followed by "^expr", the "^" is dropped here and
// expr is left in place, so the later function-attachment pass picks it up
// as exp's argument directly instead of as an exponent on top of exp(1).
// A bare "e" gets its implicit 1 argument right away, so attachment never
// mistakes whatever token happens to follow for exp's argument.
func rewriteEuler(toks []ast.Token) []ast.Token {
	out := make([]ast.Token, 0, len(toks))
	for i := 0; i < len(toks); i++ {
		t := toks[i]
		if t.Kind == ast.KindVariable && t.Lexeme == "e" && t.Subscript == "" {
			fn := ast.NewFunction("exp")
			fn.Negated = t.Negated
			if i+1 < len(toks) && toks[i+1].Kind == ast.KindOperator && toks[i+1].Lexeme == "^" {
				i++
			} else {
				fn.ArgTokens = []ast.Token{ast.NewInt("1", 1)}
			}
			out = append(out, fn)
			continue
		}
		out = append(out, t)
	}
	return out
}
