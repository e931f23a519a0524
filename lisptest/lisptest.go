package lisptest

import (
	"bytes"
	"testing"

	"github.com/pogyomo/mlisp/lisp"
	"github.com/pogyomo/mlisp/parser"
)

// TestSequence is a sequence of lisp expressions which are evaluated in order
// against a shared environment, checking the printed form of each
// expression's value along with any console output it produces.
type TestSequence []struct {
	Expr   string // lisp expression to evaluate
	Result string // printed form of the expression's value
	Output string // text written to stdout during evaluation
}

// TestSuite is a set of named TestSequences.  Each sequence is evaluated
// against its own isolated environment.
type TestSuite []struct {
	Name string
	TestSequence
}

// RunTestSuite evaluates each sequence in tests against a fresh root
// environment with the default builtins.
func RunTestSuite(t *testing.T, tests TestSuite) {
	for i, test := range tests {
		var out bytes.Buffer
		env := lisp.NewEnv(nil,
			lisp.WithReader(parser.NewReader()),
			lisp.WithStdout(&out))
		env.AddBuiltins()
		for j, step := range test.TestSequence {
			out.Reset()
			exprs, err := parser.Parse("test", []byte(step.Expr))
			if err != nil {
				t.Errorf("test %d %q: expr %d: parse error: %v", i, test.Name, j, err)
				continue
			}
			result := lisp.Nil()
			for _, expr := range exprs {
				result = env.Eval(expr)
				if result.Type == lisp.LError {
					break
				}
			}
			if result.String() != step.Result {
				t.Errorf("test %d %q: expr %d: expected result %s (got %s)", i, test.Name, j, step.Result, result)
			}
			if out.String() != step.Output {
				t.Errorf("test %d %q: expr %d: expected output %q (got %q)", i, test.Name, j, step.Output, out.String())
			}
		}
	}
}
