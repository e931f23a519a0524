package lisp

import (
	"bytes"
	"fmt"
	"strconv"
)

// LType is the type of an LVal.
type LType uint

// Possible LType values.  The stringer for LType produces the names reported
// by the type-of builtin.
const (
	LInvalid LType = iota
	LNil
	LTrue
	LInt
	LFloat
	LString
	LSymbol
	LPair
	LQuote
	LBackquote
	LComma
	LCommaSplice
	LFun
	LPartial
	LMacro
	LFuncPtr
	LError
)

var ltypeStrings = []string{
	LInvalid:     "INVALID",
	LNil:         "NIL",
	LTrue:        "T",
	LInt:         "Integer",
	LFloat:       "Number",
	LString:      "String",
	LSymbol:      "Symbol",
	LPair:        "List",
	LQuote:       "Quoted",
	LBackquote:   "BackQuoted",
	LComma:       "Comma",
	LCommaSplice: "CommaSplice",
	LFun:         "Function",
	LPartial:     "PartiallyAppliedFunction",
	LMacro:       "Macro",
	LFuncPtr:     "FuncPtr",
	LError:       "error",
}

func (t LType) String() string {
	if int(t) >= len(ltypeStrings) {
		return ltypeStrings[LInvalid]
	}
	return ltypeStrings[t]
}

// LVal is a lisp value.
type LVal struct {
	Type LType

	// Int, Num, and Str hold atomic payloads.  Str doubles as the symbol
	// name, the registered name of a builtin, and the error message.
	Int int64
	Num float64
	Str string

	// Condition classifies an LError value.
	Condition string

	// Head and Tail form cons cells.  The quote wrapper types store their
	// wrapped value in Head.
	Head *LVal
	Tail *LVal

	// Params and Body are the formal parameters and body forms shared by
	// function and macro values.
	Params *LVal
	Body   *LVal

	// Func and Args hold a partially applied function together with the
	// argument values supplied so far.  Args always contains strictly fewer
	// values than Func has parameters.
	Func *LVal
	Args *LVal

	// Builtin is the native implementation of an LFuncPtr value.
	Builtin LBuiltin
}

// Nil returns an LVal representing nil, which doubles as the empty list and
// the false value.
func Nil() *LVal {
	return &LVal{Type: LNil}
}

// True returns the true sentinel value, printed as T.
func True() *LVal {
	return &LVal{Type: LTrue}
}

// Bool returns True when b is true and Nil otherwise.
func Bool(b bool) *LVal {
	if b {
		return True()
	}
	return Nil()
}

// Int returns an LVal representing the integer x.
func Int(x int64) *LVal {
	return &LVal{Type: LInt, Int: x}
}

// Float returns an LVal representing the floating point number x.
func Float(x float64) *LVal {
	return &LVal{Type: LFloat, Num: x}
}

// String returns an LVal representing the string s.
func String(s string) *LVal {
	return &LVal{Type: LString, Str: s}
}

// Symbol returns an LVal representing the symbol s.
func Symbol(s string) *LVal {
	return &LVal{Type: LSymbol, Str: s}
}

// Cons returns a cons cell with the given head and tail.
func Cons(head, tail *LVal) *LVal {
	return &LVal{Type: LPair, Head: head, Tail: tail}
}

// NewList returns a proper list containing the given values, or Nil when
// called without values.
func NewList(vals ...*LVal) *LVal {
	list := Nil()
	for i := len(vals) - 1; i >= 0; i-- {
		list = Cons(vals[i], list)
	}
	return list
}

// Quote returns v wrapped in a single level of quoting.
func Quote(v *LVal) *LVal {
	return &LVal{Type: LQuote, Head: v}
}

// Backquote returns v wrapped in a backquote.
func Backquote(v *LVal) *LVal {
	return &LVal{Type: LBackquote, Head: v}
}

// Comma returns v wrapped in a comma.  A comma is only meaningful inside a
// backquoted expression.
func Comma(v *LVal) *LVal {
	return &LVal{Type: LComma, Head: v}
}

// CommaSplice returns v wrapped in a splicing comma.
func CommaSplice(v *LVal) *LVal {
	return &LVal{Type: LCommaSplice, Head: v}
}

// Lambda returns a function with the given formal parameters and body forms.
// Params must be Nil or a proper list of symbols and body must be Nil or a
// proper list of forms.
func Lambda(params, body *LVal) *LVal {
	if lerr := checkParams(params); lerr != nil {
		return lerr
	}
	return &LVal{Type: LFun, Params: params, Body: body}
}

// NewMacro returns a macro with the given formal parameters and body forms.
// A macro has the same shape as a function; only the calling convention
// differs.
func NewMacro(params, body *LVal) *LVal {
	if lerr := checkParams(params); lerr != nil {
		return lerr
	}
	return &LVal{Type: LMacro, Params: params, Body: body}
}

func checkParams(params *LVal) *LVal {
	if params.Type != LNil && params.Type != LPair {
		return ErrorConditionf(TypeError, "parameter list is not a list: %s", params.Type)
	}
	for p := params; p.Type == LPair; p = p.Tail {
		if p.Head.Type != LSymbol {
			return ErrorConditionf(TypeError, "parameter is not a symbol: %s", p.Head.Type)
		}
	}
	return nil
}

// Partial returns a partially applied function waiting for the remainder of
// its arguments.  The list args must hold strictly fewer values than fun has
// parameters.
func Partial(fun, args *LVal) *LVal {
	return &LVal{Type: LPartial, Func: fun, Args: args}
}

// Fun returns an LVal representing the builtin function fn.
func Fun(name string, fn LBuiltin) *LVal {
	return &LVal{Type: LFuncPtr, Str: name, Builtin: fn}
}

// IsNil returns true if v is the nil value.
func (v *LVal) IsNil() bool {
	return v.Type == LNil
}

// IsCallable returns true if v may appear at the head of an evaluated list.
func (v *LVal) IsCallable() bool {
	switch v.Type {
	case LFun, LPartial, LMacro, LFuncPtr:
		return true
	}
	return false
}

// Len returns the number of values in the list v.  Nil has length zero.
func (v *LVal) Len() int {
	n := 0
	for p := v; p.Type == LPair; p = p.Tail {
		n++
	}
	return n
}

// cells returns the values of the list v as a slice.
func (v *LVal) cells() []*LVal {
	var vals []*LVal
	for p := v; p.Type == LPair; p = p.Tail {
		vals = append(vals, p.Head)
	}
	return vals
}

func (v *LVal) String() string {
	switch v.Type {
	case LNil:
		return "NIL"
	case LTrue:
		return "T"
	case LInt:
		return strconv.FormatInt(v.Int, 10)
	case LFloat:
		return strconv.FormatFloat(v.Num, 'f', 6, 64)
	case LString:
		return `"` + v.Str + `"`
	case LSymbol:
		return v.Str
	case LPair:
		return pairString(v)
	case LQuote:
		return "'" + v.Head.String()
	case LBackquote:
		return "`" + v.Head.String()
	case LComma:
		return "," + v.Head.String()
	case LCommaSplice:
		return ",@" + v.Head.String()
	case LFun:
		return fmt.Sprintf("<# FUNCTION %s %s #>", v.Params, v.Body)
	case LMacro:
		return fmt.Sprintf("<# MACRO %s %s #>", v.Params, v.Body)
	case LPartial:
		if v.Args.IsNil() {
			return v.Func.String()
		}
		var buf bytes.Buffer
		buf.WriteString(v.Func.String())
		for p := v.Args; p.Type == LPair; p = p.Tail {
			buf.WriteString(" ")
			buf.WriteString(p.Head.String())
		}
		return buf.String()
	case LFuncPtr:
		return fmt.Sprintf("<builtin-function ``%s''>", v.Str)
	case LError:
		return (*ErrorVal)(v).Error()
	default:
		return fmt.Sprintf("%#v", v)
	}
}

func pairString(v *LVal) string {
	var buf bytes.Buffer
	buf.WriteString("(")
	for p := v; ; p = p.Tail {
		buf.WriteString(p.Head.String())
		if p.Tail.Type != LPair {
			break
		}
		buf.WriteString(" ")
	}
	buf.WriteString(")")
	return buf.String()
}
