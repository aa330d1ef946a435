package parser

import (
	"fmt"

	"symderiv/ast"
)

// BuildTree assembles an expression tree from a postfix token stream,
// recursing into each function's own postfix argument/exponent streams. A
// function carrying an Exponent re-expands it into a standalone "^"
// operator sitting above the function call.
func BuildTree(postfix []ast.Token) (*ast.Node, error) {
	var stack []*ast.Node

	for _, t := range postfix {
		switch t.Kind {
		case ast.KindNumber, ast.KindVariable:
			stack = append(stack, ast.NewLeaf(t))

		case ast.KindFunction:
			if t.ArgTokens == nil {
				t.ArgTokens = []ast.Token{ast.NewInt("1", 1)}
			}
			argTree, err := BuildTree(t.ArgTokens)
			if err != nil {
				return nil, fmt.Errorf("parser: building argument of %q: %w", t.Lexeme, err)
			}
			exponent := t.Exponent
			t.ArgTree = argTree
			t.ArgTokens = nil
			t.Exponent = nil
			node := ast.NewLeaf(t)
			if exponent != nil {
				expTree, err := BuildTree(exponent)
				if err != nil {
					return nil, fmt.Errorf("parser: building exponent of %q: %w", t.Lexeme, err)
				}
				node = ast.Pow(node, expTree)
			}
			stack = append(stack, node)

		case ast.KindOperator:
			if len(stack) < 2 {
				return nil, fmt.Errorf("parser: operator %q is missing an operand", t.Lexeme)
			}
			right := stack[len(stack)-1]
			left := stack[len(stack)-2]
			stack = stack[:len(stack)-2]
			stack = append(stack, ast.NewOperator(t, left, right))

		default:
			return nil, fmt.Errorf("parser: unexpected token kind in postfix stream")
		}
	}

	if len(stack) != 1 {
		return nil, fmt.Errorf("parser: malformed expression")
	}
	return stack[0], nil
}

// Parse runs the full front-end pipeline on an already-lexed token stream:
// shunting-yard to postfix, tree construction, then normalization.
func Parse(infix []ast.Token) (*ast.Node, error) {
	postfix, err := ToPostfix(infix)
	if err != nil {
		return nil, err
	}
	tree, err := BuildTree(postfix)
	if err != nil {
		return nil, err
	}
	return ast.Normalize(tree)
}
