// Package ast defines the tagged token and expression-tree types shared by
// every stage of the differentiation pipeline (lexer, parser, simplifier,
// differentiator, approximator, formatters).
package ast

// Kind tags the fixed set of lexical/tree node categories the engine
// understands. A tagged struct (rather than an interface with concrete
// subtypes) keeps every stage's type switches exhaustive and avoids
// downcasting.
type Kind int

const (
	KindNumber Kind = iota
	KindVariable
	KindOperator
	KindFunction
	KindLeftParen
	KindRightParen
	KindUnderscore
)

func (k Kind) String() string {
	switch k {
	case KindNumber:
		return "Number"
	case KindVariable:
		return "Variable"
	case KindOperator:
		return "Operator"
	case KindFunction:
		return "Function"
	case KindLeftParen:
		return "LeftParen"
	case KindRightParen:
		return "RightParen"
	case KindUnderscore:
		return "Underscore"
	default:
		return "Unknown"
	}
}

// Assoc is operator associativity, used by the shunting-yard parser and by
// the symbol table.
type Assoc int

const (
	AssocNone Assoc = iota
	AssocLeft
	AssocRight
)
