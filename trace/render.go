package trace

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"symderiv/settings"
)

func quote(s string) string {
	b, _ := json.Marshal(s)
	return string(b)
}

// Render assembles the full JSON-like structured trace: a "steps" array,
// the input/output pair, and the optional "equality tests" and
// "approximations" arrays the CLI's -t/-n flags populate. The equality
// tests and approximations arrays keep a bare "key: value" shape rather
// than wrapping each entry in its own object, so the emitted text is
// meant for reading, not for a strict JSON parser.
func (l *Log) Render() string {
	var b strings.Builder

	b.WriteString("{\n")
	b.WriteString("  \"steps\": [\n")
	for i, step := range l.steps {
		b.WriteString("    {\n")
		b.WriteString(fmt.Sprintf("      %s: %s,\n", quote("Rule"), quote(step.Rule)))
		for j, f := range step.Fields {
			comma := ","
			if j == len(step.Fields)-1 {
				comma = ""
			}
			b.WriteString(fmt.Sprintf("      %s: %s%s\n", quote(f.Key), quote(f.Value), comma))
		}
		closing := "    }"
		if i != len(l.steps)-1 {
			closing += ","
		}
		b.WriteString(closing + "\n")
	}
	b.WriteString("  ],\n")

	b.WriteString(fmt.Sprintf("  %s: %s,\n", quote("input"), quote(l.input)))

	trailer := len(l.tests) > 0 || len(l.approx) > 0
	outputComma := ""
	if trailer {
		outputComma = ","
	}
	b.WriteString(fmt.Sprintf("  %s: %s%s\n", quote("output"), quote(l.output), outputComma))

	if len(l.tests) > 0 {
		b.WriteString("  \"equality tests\": [\n")
		for i, test := range l.tests {
			comma := ","
			if i == len(l.tests)-1 {
				comma = ""
			}
			b.WriteString(fmt.Sprintf("    %s: %t%s\n", quote(test.Expr), test.Pass, comma))
		}
		closing := "  ]"
		if len(l.approx) > 0 {
			closing += ","
		}
		b.WriteString(closing + "\n")
	}

	if len(l.approx) > 0 {
		b.WriteString("  \"approximations\": [\n")
		for i, a := range l.approx {
			comma := ","
			if i == len(l.approx)-1 {
				comma = ""
			}
			at := strconv.FormatFloat(a.At, 'g', -1, 64)
			result := strconv.FormatFloat(a.Result, 'g', settings.Precision, 64)
			b.WriteString(fmt.Sprintf("    %s: %s%s\n", at, result, comma))
		}
		b.WriteString("  ]\n")
	}

	b.WriteString(fmt.Sprintf("  %s: %s\n", quote("mode"), quote(l.mode)))
	b.WriteString("}\n")
	return b.String()
}
