package lexer

import (
	"fmt"
	"strconv"
	"unicode"

	"symderiv/ast"
)

// scan performs the first lexical pass: it walks the input character by
// character, recognizing numeric literals eagerly and otherwise buffering
// characters until whitespace or a number boundary forces a flush. Each
// flush resolves its buffer against the symbol trie, greedily emitting the
// longest known symbol at each step and falling back to single-letter
// variables for anything the trie doesn't recognize.
func scan(input string) ([]ast.Token, error) {
	runes := []rune(input)
	var out []ast.Token
	var buf []rune

	flush := func() error {
		for len(buf) > 0 {
			n := longestSymbolMatch(buf)
			if n == 0 {
				out = append(out, ast.NewVariable(string(buf[0]), ""))
				buf = buf[1:]
				continue
			}
			lexeme := string(buf[:n])
			tok, _ := ast.NewToken(lexeme)
			out = append(out, tok)
			buf = buf[n:]
		}
		return nil
	}

	i := 0
	for i < len(runes) {
		c := runes[i]
		switch {
		case unicode.IsDigit(c):
			if err := flush(); err != nil {
				return nil, err
			}
			tok, n, err := scanNumber(runes[i:])
			if err != nil {
				return nil, err
			}
			out = append(out, tok)
			i += n
		case unicode.IsSpace(c):
			if err := flush(); err != nil {
				return nil, err
			}
			i++
		default:
			buf = append(buf, c)
			i++
		}
	}
	if err := flush(); err != nil {
		return nil, err
	}
	return out, nil
}

func scanNumber(runes []rune) (ast.Token, int, error) {
	i := 0
	for i < len(runes) && unicode.IsDigit(runes[i]) {
		i++
	}
	hasDot := false
	if i < len(runes) && runes[i] == '.' {
		hasDot = true
		i++
		for i < len(runes) && unicode.IsDigit(runes[i]) {
			i++
		}
	}
	if i < len(runes) && runes[i] == '.' {
		return ast.Token{}, 0, fmt.Errorf("lexer: multiple decimal points in numeric literal")
	}

	text := string(runes[:i])
	if hasDot {
		v, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return ast.Token{}, 0, fmt.Errorf("lexer: invalid numeric literal %q: %w", text, err)
		}
		return ast.NewFloat(text, v), i, nil
	}
	v, err := strconv.ParseInt(text, 10, 64)
	if err != nil {
		return ast.Token{}, 0, fmt.Errorf("lexer: invalid numeric literal %q: %w", text, err)
	}
	return ast.NewInt(text, v), i, nil
}
