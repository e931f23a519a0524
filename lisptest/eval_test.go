package lisptest

import "testing"

func TestLiterals(t *testing.T) {
	tests := TestSuite{
		{"numbers", TestSequence{
			{"1", "1", ""},
			{"1.5", "1.500000", ""},
			{"2.0", "2.000000", ""},
		}},
		{"strings", TestSequence{
			{`"foo"`, `"foo"`, ""},
			{`"foo bar"`, `"foo bar"`, ""},
		}},
		{"constants", TestSequence{
			{"T", "T", ""},
			{"NIL", "NIL", ""},
			{"()", "NIL", ""},
		}},
		{"unbound symbols resolve to nil at the top level", TestSequence{
			{"no-such-symbol", "NIL", ""},
		}},
	}
	RunTestSuite(t, tests)
}

func TestQuotes(t *testing.T) {
	tests := TestSuite{
		{"quote", TestSequence{
			{"'foo", "foo", ""},
			{"'(1 2)", "(1 2)", ""},
			{"(quote (1 2))", "(1 2)", ""},
			{"''foo", "'foo", ""},
		}},
		{"backquote performs no substitution", TestSequence{
			{"`(1 2)", "(1 2)", ""},
			{"`(1 ,x)", "(1 ,x)", ""},
			{"`(1 ,@x)", "(1 ,@x)", ""},
		}},
		{"comma outside backquote", TestSequence{
			{",x", "syntax-error: comma is illegal outside of backquote", ""},
		}},
	}
	RunTestSuite(t, tests)
}

func TestLists(t *testing.T) {
	tests := TestSuite{
		{"list construction", TestSequence{
			{"(list 1 2 3)", "(1 2 3)", ""},
			{"(list)", "NIL", ""},
			{"(list 1 (list 2 3))", "(1 (2 3))", ""},
		}},
		{"car and cdr tolerate nil", TestSequence{
			{"(car (list 1 2))", "1", ""},
			{"(cdr (list 1 2))", "(2)", ""},
			{"(cdr (list 1))", "NIL", ""},
			{"(car ())", "NIL", ""},
			{"(cdr ())", "NIL", ""},
			{"(car 1)", "type-error: argument of car must be a list: Integer", ""},
		}},
		{"cons", TestSequence{
			{"(cons 1 (list 2 3))", "(1 2 3)", ""},
			{"(cons 1 ())", "(1)", ""},
			{"(cons 1 2)", "(1 2)", ""},
		}},
		{"atom is true for everything but lists", TestSequence{
			{"(atom 1)", "T", ""},
			{"(atom ())", "T", ""},
			{"(atom 'foo)", "T", ""},
			{"(atom (list 1))", "NIL", ""},
		}},
	}
	RunTestSuite(t, tests)
}

func TestArithmetic(t *testing.T) {
	tests := TestSuite{
		{"integer arithmetic", TestSequence{
			{"(+ 1 2)", "3", ""},
			{"(+ 1 2 3 4)", "10", ""},
			{"(- 10 4 3)", "3", ""},
			{"(* 2 3 4)", "24", ""},
			{"(/ 7 2)", "3", ""},
		}},
		{"a float operand promotes the result", TestSequence{
			{"(+ 1 2.0)", "3.000000", ""},
			{"(* 2.5 2)", "5.000000", ""},
			{"(/ 7.0 2)", "3.500000", ""},
			{"(- 1 0.5)", "0.500000", ""},
		}},
		{"errors", TestSequence{
			{"(/ 1 0)", "divide-by-zero: integer division by zero", ""},
			{"(+ 1)", "arity-error: too few arguments for +", ""},
			{`(+ 1 "2")`, "type-error: + cannot be applied to non-numeric object: String", ""},
		}},
	}
	RunTestSuite(t, tests)
}

func TestComparison(t *testing.T) {
	tests := TestSuite{
		{"numeric comparison", TestSequence{
			{"(= 1 1)", "T", ""},
			{"(= 1 1.0)", "T", ""},
			{"(/= 1 2)", "T", ""},
			{"(< 1 2)", "T", ""},
			{"(> 1 2)", "NIL", ""},
			{"(<= 2 2)", "T", ""},
			{"(>= 1 2)", "NIL", ""},
		}},
		{"string comparison", TestSequence{
			{`(string= "a" "a")`, "T", ""},
			{`(string/= "a" "b")`, "T", ""},
			{`(string< "a" "b")`, "T", ""},
			{`(string> "a" "b")`, "NIL", ""},
			{`(string<= "a" "a")`, "T", ""},
			{`(string>= "a" "b")`, "NIL", ""},
			{`(string-equal "Foo" "fOO")`, "T", ""},
			{`(string-equal "foo" "bar")`, "NIL", ""},
			{`(string= "a" 1)`, "type-error: string= cannot be applied to non-string object: Integer", ""},
		}},
	}
	RunTestSuite(t, tests)
}

func TestStrings(t *testing.T) {
	tests := TestSuite{
		{"concat", TestSequence{
			{`(concat "foo" "bar")`, `"foobar"`, ""},
			{`(concat "a" "b" "c")`, `"abc"`, ""},
			{`(concat "a")`, "arity-error: too few arguments for concat", ""},
		}},
		{"conversions", TestSequence{
			{"(int-to-string 42)", `"42"`, ""},
			{"(num-to-string 1.5)", `"1.500000"`, ""},
			{"(int-to-string 1.5)", "type-error: argument of int-to-string must be an integer: Number", ""},
		}},
	}
	RunTestSuite(t, tests)
}

func TestControl(t *testing.T) {
	tests := TestSuite{
		{"if evaluates a single branch", TestSequence{
			{"(if T 1 2)", "1", ""},
			{"(if () 1 2)", "2", ""},
			{"(if 0 1 2)", "1", ""},
			{`(if T 1 (write-line "no"))`, "1", ""},
		}},
		{"progn", TestSequence{
			{"(progn 1 2 3)", "3", ""},
			{"(progn)", "NIL", ""},
			{`(progn (write-line "a") (write-line "b"))`, `"b"`, "a\nb\n"},
		}},
	}
	RunTestSuite(t, tests)
}

func TestAssignment(t *testing.T) {
	tests := TestSuite{
		{"setq binds a raw symbol", TestSequence{
			{"(setq n 3)", "3", ""},
			{"n", "3", ""},
			{"(write-line (int-to-string (* n n)))", `"9"`, "9\n"},
		}},
		{"set binds an evaluated symbol", TestSequence{
			{"(set 'x 10)", "10", ""},
			{"x", "10", ""},
			{"(set 1 10)", "type-error: first argument of set must be evaluated to symbol: Integer", ""},
		}},
	}
	RunTestSuite(t, tests)
}

func TestFunctions(t *testing.T) {
	tests := TestSuite{
		{"defun and application", TestSequence{
			{"(defun add (x y) (+ x y))", "<# FUNCTION (x y) ((+ x y)) #>", ""},
			{"(add 1 2)", "3", ""},
			{"(defun f () 42)", "<# FUNCTION NIL (42) #>", ""},
			{"(f)", "42", ""},
		}},
		{"lambda", TestSequence{
			{"((lambda (x) (* x 2)) 21)", "42", ""},
			{"((lambda () 1))", "1", ""},
		}},
		{"supplying too few arguments curries", TestSequence{
			{"(defun add (x y) (+ x y))", "<# FUNCTION (x y) ((+ x y)) #>", ""},
			{"(add 1)", "<# FUNCTION (x y) ((+ x y)) #> 1", ""},
			{"((add 1) 2)", "3", ""},
			{"(((lambda (x y z) (+ x y z)) 1) 2 3)", "6", ""},
			{"(type-of (add 1))", `"PartiallyAppliedFunction"`, ""},
		}},
		{"supplying too many arguments fails", TestSequence{
			{"(defun add (x y) (+ x y))", "<# FUNCTION (x y) ((+ x y)) #>", ""},
			{"(add 1 2 3)", "arity-error: invalid number of arguments for function: expected 2, but got 3", ""},
		}},
		{"unbound symbols fail inside a function body", TestSequence{
			{"(defun g (x) (+ x missing))", "<# FUNCTION (x) ((+ x missing)) #>", ""},
			{"(g 1)", "unbound-symbol: no such symbol exist: missing", ""},
		}},
		{"functions read bindings from the calling scope", TestSequence{
			{"(setq n 3)", "3", ""},
			{"(defun scale (x) (* x n))", "<# FUNCTION (x) ((* x n)) #>", ""},
			{"(scale 5)", "15", ""},
		}},
		{"non-callable head", TestSequence{
			{"(1 2)", "type-error: first element of list must be evaluated to callable object: Integer", ""},
		}},
	}
	RunTestSuite(t, tests)
}

func TestTypeOf(t *testing.T) {
	tests := TestSuite{
		{"type names", TestSequence{
			{"(type-of 1)", `"Integer"`, ""},
			{"(type-of 1.5)", `"Number"`, ""},
			{`(type-of "s")`, `"String"`, ""},
			{"(type-of 'foo)", `"Symbol"`, ""},
			{"(type-of (list 1))", `"List"`, ""},
			{"(type-of ())", `"NIL"`, ""},
			{"(type-of T)", `"T"`, ""},
			{"(type-of (lambda (x) x))", `"Function"`, ""},
			{"(type-of (macro (x) x))", `"Macro"`, ""},
			{"(type-of car)", `"FuncPtr"`, ""},
		}},
		{"debug", TestSequence{
			{"(debug (list 1 2))", `"(1 2)"`, ""},
			{"(debug 1.5)", `"1.500000"`, ""},
			{"(debug car)", "\"<builtin-function ``car''>\"", ""},
		}},
	}
	RunTestSuite(t, tests)
}

func TestConsoleOutput(t *testing.T) {
	tests := TestSuite{
		{"write quotes strings", TestSequence{
			{`(write "foo")`, `"foo"`, `"foo"`},
			{"(write 1)", "1", "1"},
			{"(write 1.5)", "1.500000", "1.500000"},
			{"(write 'foo)", "type-error: write can only accept a string, integer or number: Symbol", ""},
		}},
		{"prin1 matches write", TestSequence{
			{`(prin1 "foo")`, `"foo"`, `"foo"`},
			{"(prin1 7)", "7", "7"},
		}},
		{"princ prints raw strings", TestSequence{
			{`(princ "foo")`, `"foo"`, "foo"},
			{"(princ 7)", "7", "7"},
		}},
		{"print leads with a newline", TestSequence{
			{"(print 1)", "1", "\n1"},
			{`(print "foo")`, `"foo"`, "\n\"foo\""},
		}},
		{"write-line accepts only strings", TestSequence{
			{`(write-line "hi")`, `"hi"`, "hi\n"},
			{"(write-line 1)", "type-error: argument of write-line must be a string: Integer", ""},
		}},
	}
	RunTestSuite(t, tests)
}
