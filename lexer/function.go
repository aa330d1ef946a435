package lexer

import (
	"fmt"

	"symderiv/ast"
)

// attachFunctionArguments walks a flat token stream and, for every
// Function token, absorbs its subscript, exponent, and argument into the
// token itself, recursing into nested function calls that appear as
// another function's bare argument atom (e.g. "sin cos x").
func attachFunctionArguments(toks []ast.Token) ([]ast.Token, error) {
	out := make([]ast.Token, 0, len(toks))
	i := 0
	for i < len(toks) {
		if toks[i].Kind != ast.KindFunction {
			out = append(out, toks[i])
			i++
			continue
		}
		fn, n, err := consumeFunctionCall(toks, i)
		if err != nil {
			return nil, err
		}
		out = append(out, fn)
		i += n
	}
	return out, nil
}

// consumeFunctionCall processes exactly one function call starting at
// toks[i], returning the populated token and the number of flat tokens it
// consumed (including itself).
func consumeFunctionCall(toks []ast.Token, i int) (ast.Token, int, error) {
	start := i
	t := toks[i]
	i++

	// The Euler rewrite hands over exp(1) calls with their argument already
	// in place; don't re-capture from the surrounding stream.
	if t.ArgTokens != nil {
		return t, i - start, nil
	}

	if i < len(toks) && toks[i].Kind == ast.KindUnderscore {
		if t.Lexeme != "log" {
			return ast.Token{}, 0, fmt.Errorf("lexer: subscript not allowed on %q", t.Lexeme)
		}
		i++
		if i >= len(toks) || toks[i].Kind != ast.KindNumber {
			return ast.Token{}, 0, fmt.Errorf("lexer: log subscript must be a single numeric literal")
		}
		base := toks[i]
		t.LogBase = &base
		i++
	}

	if i < len(toks) && toks[i].Kind == ast.KindOperator && toks[i].Lexeme == "^" {
		i++
		expTokens, n, err := captureAtomOrGroup(toks, i)
		if err != nil {
			return ast.Token{}, 0, fmt.Errorf("lexer: capturing exponent of %q: %w", t.Lexeme, err)
		}
		t.Exponent = expTokens
		i += n
	}

	if i >= len(toks) || (toks[i].Kind == ast.KindOperator && toks[i].Lexeme != "^") {
		t.ArgTokens = []ast.Token{ast.NewInt("1", 1)}
		return t, i - start, nil
	}

	argTokens, n, err := captureAtomOrGroup(toks, i)
	if err != nil {
		return ast.Token{}, 0, fmt.Errorf("lexer: capturing argument of %q: %w", t.Lexeme, err)
	}
	argTokens, err = attachFunctionArguments(argTokens)
	if err != nil {
		return ast.Token{}, 0, err
	}
	t.ArgTokens = argTokens
	i += n
	return t, i - start, nil
}

// captureAtomOrGroup returns the tokens making up the grouping starting at
// toks[i] — the longest balanced-parens span with its enclosing pair
// stripped, or a single following atom (number, variable, or a full nested
// function call) — and how many flat tokens it consumed.
func captureAtomOrGroup(toks []ast.Token, i int) ([]ast.Token, int, error) {
	if i >= len(toks) {
		return nil, 0, fmt.Errorf("lexer: expected an expression here")
	}
	if toks[i].Kind == ast.KindLeftParen {
		depth := 0
		for j := i; j < len(toks); j++ {
			switch toks[j].Kind {
			case ast.KindLeftParen:
				depth++
			case ast.KindRightParen:
				depth--
				if depth == 0 {
					inner := append([]ast.Token(nil), toks[i+1:j]...)
					return inner, j - i + 1, nil
				}
			}
		}
		return nil, 0, fmt.Errorf("lexer: unbalanced parentheses")
	}
	switch toks[i].Kind {
	case ast.KindNumber, ast.KindVariable:
		return []ast.Token{toks[i]}, 1, nil
	case ast.KindFunction:
		fn, n, err := consumeFunctionCall(toks, i)
		if err != nil {
			return nil, 0, err
		}
		return []ast.Token{fn}, n, nil
	default:
		return nil, 0, fmt.Errorf("lexer: unexpected token %q where an expression was expected", toks[i].Lexeme)
	}
}
