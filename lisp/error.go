package lisp

import "fmt"

// Error conditions raised by the interpreter core.  A condition classifies an
// error without the ceremony of distinct Go types and renders as a prefix on
// the error message.
const (
	LexError           = "lex-error"
	ParseError         = "parse-error"
	UnboundSymbolError = "unbound-symbol"
	ArityError         = "arity-error"
	TypeError          = "type-error"
	SyntaxError        = "syntax-error"
	DivideByZeroError  = "divide-by-zero"
	ReadError          = "read-error"
)

// ErrorVal implements the error interface so that LVal errors can be treated
// as Go errors at package boundaries.
type ErrorVal LVal

func (e *ErrorVal) Error() string {
	if e.Condition != "" && e.Condition != "error" {
		return e.Condition + ": " + e.Str
	}
	return e.Str
}

// GoError returns an error that wraps v when v is an error value.  GoError
// returns nil otherwise.
func GoError(v *LVal) error {
	if v.Type != LError {
		return nil
	}
	return (*ErrorVal)(v)
}

// Error returns an error value with the generic condition wrapping err.
func Error(err error) *LVal {
	return &LVal{Type: LError, Condition: "error", Str: err.Error()}
}

// Errorf returns an error value with the generic condition and a formatted
// message.
func Errorf(format string, v ...interface{}) *LVal {
	return ErrorConditionf("error", format, v...)
}

// ErrorConditionf returns an error value with the given condition and a
// formatted message.
func ErrorConditionf(condition string, format string, v ...interface{}) *LVal {
	return &LVal{
		Type:      LError,
		Condition: condition,
		Str:       fmt.Sprintf(format, v...),
	}
}
