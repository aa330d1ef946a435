/*
symderiv CLI - Cobra Command Structure
=======================================
A one-shot command-line differentiator: parse an expression, differentiate
it with respect to a variable, and print the rewrite-log trace. Optional
equality tests and numeric approximations are layered onto the same trace.
*/
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"symderiv/engine"
	"symderiv/format"
	"symderiv/history"
	"symderiv/settings"
	"symderiv/trace"
)

const (
	colorReset  = "\033[0m"
	colorRed    = "\033[31m"
	colorYellow = "\033[33m"
)

// flags holds one invocation's parsed command-line flags. Building a fresh
// instance per command keeps repeated Execute() calls (as tests do)
// independent instead of accumulating into shared package state.
type flags struct {
	function    string
	variable    string
	tests       []string
	approximate []float64
	latex       bool
	precision   int
}

func newRootCmd() *cobra.Command {
	f := &flags{}

	root := &cobra.Command{
		Use:   "symderiv [expression]",
		Short: "symderiv - a symbolic differentiation engine",
		Long: `symderiv differentiates a single-variable algebraic expression and
prints a structured trace of every rewrite rule it applied, in plain text
or LaTeX notation.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDifferentiate(f, args)
		},
	}

	root.Flags().StringVarP(&f.function, "function", "f", "", "expression to differentiate")
	root.Flags().StringVarP(&f.variable, "variable", "v", "x", "variable to differentiate with respect to")
	root.Flags().StringArrayVarP(&f.tests, "test", "t", nil, "expression to test for equality against the derivative (repeatable)")
	root.Flags().Float64SliceVarP(&f.approximate, "approximate", "n", nil, "value to approximate the derivative at (repeatable)")
	root.Flags().BoolVar(&f.latex, "latex", false, "render the trace in LaTeX notation instead of plain text")
	root.Flags().IntVar(&f.precision, "precision", settings.Precision, "decimal precision for approximated values (0-20)")

	root.SilenceErrors = true
	root.SilenceUsage = true

	root.AddCommand(historyCmd)
	return root
}

// Execute builds and runs a fresh root command.
func Execute() error {
	return newRootCmd().Execute()
}

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "show past differentiation sessions",
	RunE: func(cmd *cobra.Command, args []string) error {
		return history.Show()
	},
}

func runDifferentiate(f *flags, args []string) error {
	expr := f.function
	if expr == "" && len(args) == 1 {
		expr = args[0]
	}
	if expr == "" {
		return fmt.Errorf("no expression given: pass -f/--function or a bare argument")
	}

	if err := settings.Set(f.precision); err != nil {
		return err
	}

	variable, err := engine.ParseVariable(f.variable)
	if err != nil {
		return err
	}

	convert := trace.Converter(format.Text)
	mode := "text"
	if f.latex {
		convert = format.LaTeX
		mode = "latex"
	}

	result, err := engine.Differentiate(expr, variable, convert, mode)
	if err != nil {
		return err
	}

	for _, test := range f.tests {
		if _, err := result.TestEquality(test); err != nil {
			fmt.Fprintf(os.Stderr, colorYellow+"warning: test %q failed to parse: %v\n"+colorReset, test, err)
		}
	}
	for _, value := range f.approximate {
		if _, err := result.ApproximateAt(value); err != nil {
			fmt.Fprintf(os.Stderr, colorYellow+"warning: approximation at %v failed: %v\n"+colorReset, value, err)
		}
	}

	fmt.Print(result.Log.Render())

	if err := history.Append(history.Entry{
		Expression: expr,
		Variable:   f.variable,
		Derivative: format.Text(result.Derivative),
	}); err != nil {
		fmt.Fprintf(os.Stderr, colorRed+"warning: failed to save history: %v\n"+colorReset, err)
	}

	return nil
}
