package simplify

import (
	"fmt"
	"math"

	"symderiv/ast"
)

func numLit(n *ast.Node) (ast.Token, bool) {
	if n != nil && n.Token.Kind == ast.KindNumber {
		return n.Token, true
	}
	return ast.Token{}, false
}

// arithmetic computes l <op> r. Integer/integer operations stay integer
// whenever the mathematical result is exact; otherwise the result is a
// double, and only returned at all when opts.FloatAllowed is set
// (nil, nil means "leave the expression alone").
func arithmetic(op string, l, r ast.Token, opts Options) (*ast.Token, error) {
	if op == "/" && r.Value() == 0 {
		return nil, fmt.Errorf("simplify: division by zero")
	}
	if op == "^" && l.Value() == 0 && r.Value() == 0 {
		return nil, fmt.Errorf("simplify: 0^0 is undefined")
	}

	if op == "/" && l.IsInt && r.IsInt && l.IntVal%r.IntVal == 0 {
		v := l.IntVal / r.IntVal
		t := ast.NewInt(formatInt(v), v)
		return &t, nil
	}

	lv, rv := l.Value(), r.Value()
	var result float64
	switch op {
	case "+":
		result = lv + rv
	case "-":
		result = lv - rv
	case "*":
		result = lv * rv
	case "/":
		result = lv / rv
	case "^":
		result = math.Pow(lv, rv)
	default:
		return nil, fmt.Errorf("simplify: unknown operator %q", op)
	}

	if math.Trunc(result) == result && !math.IsInf(result, 0) {
		v := int64(result)
		t := ast.NewInt(formatInt(v), v)
		return &t, nil
	}
	if !opts.FloatAllowed {
		return nil, nil
	}
	t := ast.NewFloat(formatFloat(result), result)
	return &t, nil
}
