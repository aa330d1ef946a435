// Package lexer turns a raw expression string into a token stream ready
// for the shunting-yard parser: character scanning over a longest-prefix
// symbol trie, then a fixed sequence of post-pass fixups.
package lexer

import "symderiv/ast"

// Tokenize runs the complete lexical pipeline: scan, unary sign
// collapsing, Euler rewrite, function argument attachment, and implicit
// multiplication insertion, in that order. Signs collapse before the
// Euler rewrite so that "e^-x" still has its "^" when the unary pass
// decides the minus belongs to x.
func Tokenize(input string) ([]ast.Token, error) {
	toks, err := scan(input)
	if err != nil {
		return nil, err
	}
	toks, err = applyUnarySign(toks)
	if err != nil {
		return nil, err
	}
	toks = rewriteEuler(toks)
	toks, err = attachFunctionArguments(toks)
	if err != nil {
		return nil, err
	}
	toks, err = insertImplicitMultiplication(toks)
	if err != nil {
		return nil, err
	}
	return toks, nil
}
