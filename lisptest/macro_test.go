package lisptest

import "testing"

func TestMacros(t *testing.T) {
	tests := TestSuite{
		{"defmacro", TestSequence{
			{"(defmacro twice (x) (list 'progn x x))", "<# MACRO (x) ((list 'progn x x)) #>", ""},
			{`(twice (write-line "hi"))`, `"hi"`, "hi\nhi\n"},
		}},
		{"macro arguments are bound unevaluated", TestSequence{
			{"(defmacro first-of (x) (car x))", "<# MACRO (x) ((car x)) #>", ""},
			{"(first-of (+ 1 2))", "<builtin-function ``+''>", ""},
		}},
		{"macro arity is exact", TestSequence{
			{"(defmacro twice (x) (list 'progn x x))", "<# MACRO (x) ((list 'progn x x)) #>", ""},
			{"(twice 1 2)", "arity-error: invalid number of arguments for macro: expected 1, but got 2", ""},
		}},
		{"expansions are evaluated in the calling scope", TestSequence{
			{"(setq y 5)", "5", ""},
			{"(defmacro plus-y (x) (list '+ x 'y))", "<# MACRO (x) ((list '+ x 'y)) #>", ""},
			{"(plus-y 2)", "7", ""},
		}},
	}
	RunTestSuite(t, tests)
}

func TestMacroexpand(t *testing.T) {
	tests := TestSuite{
		{"macroexpand returns the expansion unevaluated", TestSequence{
			{"(defmacro twice (x) (list 'progn x x))", "<# MACRO (x) ((list 'progn x x)) #>", ""},
			{`(macroexpand '(twice (write-line "hi")))`, `(progn (write-line "hi") (write-line "hi"))`, ""},
			{"(macroexpand '(twice (+ 1 2)))", "(progn (+ 1 2) (+ 1 2))", ""},
		}},
		{"macroexpand requires a macro call form", TestSequence{
			{"(macroexpand 1)", "type-error: argument of macroexpand must be a list: Integer", ""},
			{"(macroexpand '(car (list 1)))", "type-error: first element of list must be evaluated to macro: FuncPtr", ""},
		}},
	}
	RunTestSuite(t, tests)
}
