package lisp

import (
	"fmt"
	"strconv"
	"strings"
)

// LBuiltin is a Go function that implements a lisp primitive.  A builtin
// receives its argument expressions unevaluated and owns its own argument
// contract, both the count and whether each argument is evaluated.
type LBuiltin func(env *LEnv, args *LVal) *LVal

// LBuiltinDef is a builtin function definition.
type LBuiltinDef interface {
	Name() string
	Eval(env *LEnv, args *LVal) *LVal
}

type langBuiltin struct {
	name string
	fun  LBuiltin
}

func (fun *langBuiltin) Name() string {
	return fun.name
}

func (fun *langBuiltin) Eval(env *LEnv, args *LVal) *LVal {
	return fun.fun(env, args)
}

var userBuiltins []*langBuiltin
var langBuiltins = []*langBuiltin{
	{"quote", builtinQuote},
	{"list", builtinList},
	{"car", builtinCAR},
	{"cdr", builtinCDR},
	{"cons", builtinCons},
	{"atom", builtinAtom},
	{"if", builtinIf},
	{"progn", builtinProgn},
	{"lambda", builtinLambda},
	{"macro", builtinMacro},
	{"defun", builtinDefun},
	{"defmacro", builtinDefmacro},
	{"macroexpand", builtinMacroexpand},
	{"set", builtinSet},
	{"setq", builtinSetq},
	{"+", builtinAdd},
	{"-", builtinSub},
	{"*", builtinMul},
	{"/", builtinDiv},
	{"=", builtinNumEq},
	{"/=", builtinNumNE},
	{"<", builtinNumLT},
	{">", builtinNumGT},
	{"<=", builtinNumLE},
	{">=", builtinNumGE},
	{"string=", builtinStringEq},
	{"string/=", builtinStringNE},
	{"string<", builtinStringLT},
	{"string>", builtinStringGT},
	{"string<=", builtinStringLE},
	{"string>=", builtinStringGE},
	{"string-equal", builtinStringEqual},
	{"concat", builtinConcat},
	{"int-to-string", builtinIntToString},
	{"num-to-string", builtinNumToString},
	{"write", builtinWrite},
	{"write-line", builtinWriteLine},
	{"print", builtinPrint},
	{"prin1", builtinPrin1},
	{"princ", builtinPrinc},
	{"read-str", builtinReadStr},
	{"read-int", builtinReadInt},
	{"read-num", builtinReadNum},
	{"type-of", builtinTypeOf},
	{"debug", builtinDebug},
}

// RegisterDefaultBuiltin adds the given function to the list returned by
// DefaultBuiltins.
func RegisterDefaultBuiltin(name string, fn LBuiltin) {
	userBuiltins = append(userBuiltins, &langBuiltin{name, fn})
}

// DefaultBuiltins returns the default set of LBuiltinDefs.
func DefaultBuiltins() []LBuiltinDef {
	funs := make([]LBuiltinDef, 0, len(langBuiltins)+len(userBuiltins))
	for _, fun := range langBuiltins {
		funs = append(funs, fun)
	}
	for _, fun := range userBuiltins {
		funs = append(funs, fun)
	}
	return funs
}

// takeArgs returns exactly n unevaluated argument expressions from args.
func takeArgs(name string, args *LVal, n int) ([]*LVal, *LVal) {
	vals := args.cells()
	if len(vals) < n {
		return nil, ErrorConditionf(ArityError, "too few arguments for %s", name)
	}
	if len(vals) > n {
		return nil, ErrorConditionf(ArityError, "too many arguments for %s", name)
	}
	return vals, nil
}

// evalArgs evaluates exactly n argument expressions from args in env.  When
// n is negative all arguments are evaluated.
func evalArgs(env *LEnv, name string, args *LVal, n int) ([]*LVal, *LVal) {
	if n >= 0 {
		if _, lerr := takeArgs(name, args, n); lerr != nil {
			return nil, lerr
		}
	}
	return env.evalArgList(args)
}

func noArgs(name string, args *LVal) *LVal {
	if args.Type != LNil {
		return ErrorConditionf(ArityError, "too many arguments for %s", name)
	}
	return nil
}

func builtinQuote(env *LEnv, args *LVal) *LVal {
	a, lerr := takeArgs("quote", args, 1)
	if lerr != nil {
		return lerr
	}
	return a[0]
}

func builtinList(env *LEnv, args *LVal) *LVal {
	vals, lerr := evalArgs(env, "list", args, -1)
	if lerr != nil {
		return lerr
	}
	return NewList(vals...)
}

func builtinCAR(env *LEnv, args *LVal) *LVal {
	a, lerr := evalArgs(env, "car", args, 1)
	if lerr != nil {
		return lerr
	}
	switch a[0].Type {
	case LPair:
		return a[0].Head
	case LNil:
		return a[0]
	default:
		return ErrorConditionf(TypeError, "argument of car must be a list: %s", a[0].Type)
	}
}

func builtinCDR(env *LEnv, args *LVal) *LVal {
	a, lerr := evalArgs(env, "cdr", args, 1)
	if lerr != nil {
		return lerr
	}
	switch a[0].Type {
	case LPair:
		return a[0].Tail
	case LNil:
		return a[0]
	default:
		return ErrorConditionf(TypeError, "argument of cdr must be a list: %s", a[0].Type)
	}
}

func builtinCons(env *LEnv, args *LVal) *LVal {
	a, lerr := evalArgs(env, "cons", args, 2)
	if lerr != nil {
		return lerr
	}
	switch a[1].Type {
	case LPair, LNil:
		return Cons(a[0], a[1])
	default:
		// A non-list tail does not produce a dotted pair; the result is the
		// two element list.
		return NewList(a[0], a[1])
	}
}

func builtinAtom(env *LEnv, args *LVal) *LVal {
	a, lerr := evalArgs(env, "atom", args, 1)
	if lerr != nil {
		return lerr
	}
	return Bool(a[0].Type != LPair)
}

func builtinIf(env *LEnv, args *LVal) *LVal {
	a, lerr := takeArgs("if", args, 3)
	if lerr != nil {
		return lerr
	}
	cond := env.Eval(a[0])
	if cond.Type == LError {
		return cond
	}
	if cond.IsNil() {
		return env.Eval(a[2])
	}
	return env.Eval(a[1])
}

func builtinProgn(env *LEnv, args *LVal) *LVal {
	return env.evalBody(args)
}

func builtinLambda(env *LEnv, args *LVal) *LVal {
	if args.Type != LPair {
		return ErrorConditionf(ArityError, "too few arguments for lambda")
	}
	params := args.Head
	if params.Type != LPair && params.Type != LNil {
		return ErrorConditionf(TypeError, "first argument of lambda must be a list: %s", params.Type)
	}
	return Lambda(params, args.Tail)
}

func builtinMacro(env *LEnv, args *LVal) *LVal {
	if args.Type != LPair {
		return ErrorConditionf(ArityError, "too few arguments for macro")
	}
	params := args.Head
	if params.Type != LPair && params.Type != LNil {
		return ErrorConditionf(TypeError, "first argument of macro must be a list: %s", params.Type)
	}
	return NewMacro(params, args.Tail)
}

func builtinDefun(env *LEnv, args *LVal) *LVal {
	if args.Type != LPair {
		return ErrorConditionf(ArityError, "too few arguments for defun")
	}
	name := args.Head
	if name.Type != LSymbol {
		return ErrorConditionf(TypeError, "first argument of defun must be a symbol: %s", name.Type)
	}
	fun := builtinLambda(env, args.Tail)
	if fun.Type == LError {
		return fun
	}
	env.Put(name.Str, fun)
	return fun
}

func builtinDefmacro(env *LEnv, args *LVal) *LVal {
	if args.Type != LPair {
		return ErrorConditionf(ArityError, "too few arguments for defmacro")
	}
	name := args.Head
	if name.Type != LSymbol {
		return ErrorConditionf(TypeError, "first argument of defmacro must be a symbol: %s", name.Type)
	}
	mac := builtinMacro(env, args.Tail)
	if mac.Type == LError {
		return mac
	}
	env.Put(name.Str, mac)
	return mac
}

func builtinMacroexpand(env *LEnv, args *LVal) *LVal {
	a, lerr := evalArgs(env, "macroexpand", args, 1)
	if lerr != nil {
		return lerr
	}
	form := a[0]
	if form.Type != LPair {
		return ErrorConditionf(TypeError, "argument of macroexpand must be a list: %s", form.Type)
	}
	mac := env.Eval(form.Head)
	if mac.Type == LError {
		return mac
	}
	if mac.Type != LMacro {
		return ErrorConditionf(TypeError, "first element of list must be evaluated to macro: %s", mac.Type)
	}
	forms, lerr := env.expandMacro(mac, form.Tail)
	if lerr != nil {
		return lerr
	}
	if len(forms) == 0 {
		return Nil()
	}
	return forms[len(forms)-1]
}

func builtinSet(env *LEnv, args *LVal) *LVal {
	a, lerr := evalArgs(env, "set", args, 2)
	if lerr != nil {
		return lerr
	}
	if a[0].Type != LSymbol {
		return ErrorConditionf(TypeError, "first argument of set must be evaluated to symbol: %s", a[0].Type)
	}
	env.Put(a[0].Str, a[1])
	return a[1]
}

func builtinSetq(env *LEnv, args *LVal) *LVal {
	a, lerr := takeArgs("setq", args, 2)
	if lerr != nil {
		return lerr
	}
	if a[0].Type != LSymbol {
		return ErrorConditionf(TypeError, "first argument of setq must be a symbol: %s", a[0].Type)
	}
	v := env.Eval(a[1])
	if v.Type == LError {
		return v
	}
	env.Put(a[0].Str, v)
	return v
}

func builtinAdd(env *LEnv, args *LVal) *LVal {
	return foldArith(env, "+", args,
		func(x, y int64) *LVal { return Int(x + y) },
		func(x, y float64) *LVal { return Float(x + y) })
}

func builtinSub(env *LEnv, args *LVal) *LVal {
	return foldArith(env, "-", args,
		func(x, y int64) *LVal { return Int(x - y) },
		func(x, y float64) *LVal { return Float(x - y) })
}

func builtinMul(env *LEnv, args *LVal) *LVal {
	return foldArith(env, "*", args,
		func(x, y int64) *LVal { return Int(x * y) },
		func(x, y float64) *LVal { return Float(x * y) })
}

func builtinDiv(env *LEnv, args *LVal) *LVal {
	return foldArith(env, "/", args,
		func(x, y int64) *LVal {
			if y == 0 {
				return ErrorConditionf(DivideByZeroError, "integer division by zero")
			}
			return Int(x / y)
		},
		func(x, y float64) *LVal { return Float(x / y) })
}

// foldArith evaluates at least two arguments and accumulates them left to
// right.  Two integers use iop; a float on either side promotes the other
// operand and uses fop.
func foldArith(env *LEnv, name string, args *LVal, iop func(int64, int64) *LVal, fop func(float64, float64) *LVal) *LVal {
	vals, lerr := evalArgs(env, name, args, -1)
	if lerr != nil {
		return lerr
	}
	if len(vals) < 2 {
		return ErrorConditionf(ArityError, "too few arguments for %s", name)
	}
	acc := vals[0]
	for _, v := range vals[1:] {
		acc = arith(name, acc, v, iop, fop)
		if acc.Type == LError {
			return acc
		}
	}
	return acc
}

func arith(name string, a, b *LVal, iop func(int64, int64) *LVal, fop func(float64, float64) *LVal) *LVal {
	switch {
	case a.Type == LInt && b.Type == LInt:
		return iop(a.Int, b.Int)
	case a.Type == LInt && b.Type == LFloat:
		return fop(float64(a.Int), b.Num)
	case a.Type == LFloat && b.Type == LInt:
		return fop(a.Num, float64(b.Int))
	case a.Type == LFloat && b.Type == LFloat:
		return fop(a.Num, b.Num)
	default:
		return ErrorConditionf(TypeError, "%s cannot be applied to non-numeric object: %s", name, nonNumeric(a, b))
	}
}

func nonNumeric(a, b *LVal) LType {
	if a.Type != LInt && a.Type != LFloat {
		return a.Type
	}
	return b.Type
}

func builtinNumEq(env *LEnv, args *LVal) *LVal {
	return compareNum(env, "=", args,
		func(x, y int64) bool { return x == y },
		func(x, y float64) bool { return x == y })
}

func builtinNumNE(env *LEnv, args *LVal) *LVal {
	return compareNum(env, "/=", args,
		func(x, y int64) bool { return x != y },
		func(x, y float64) bool { return x != y })
}

func builtinNumLT(env *LEnv, args *LVal) *LVal {
	return compareNum(env, "<", args,
		func(x, y int64) bool { return x < y },
		func(x, y float64) bool { return x < y })
}

func builtinNumGT(env *LEnv, args *LVal) *LVal {
	return compareNum(env, ">", args,
		func(x, y int64) bool { return x > y },
		func(x, y float64) bool { return x > y })
}

func builtinNumLE(env *LEnv, args *LVal) *LVal {
	return compareNum(env, "<=", args,
		func(x, y int64) bool { return x <= y },
		func(x, y float64) bool { return x <= y })
}

func builtinNumGE(env *LEnv, args *LVal) *LVal {
	return compareNum(env, ">=", args,
		func(x, y int64) bool { return x >= y },
		func(x, y float64) bool { return x >= y })
}

func compareNum(env *LEnv, name string, args *LVal, icmp func(int64, int64) bool, fcmp func(float64, float64) bool) *LVal {
	vals, lerr := evalArgs(env, name, args, 2)
	if lerr != nil {
		return lerr
	}
	a, b := vals[0], vals[1]
	switch {
	case a.Type == LInt && b.Type == LInt:
		return Bool(icmp(a.Int, b.Int))
	case a.Type == LInt && b.Type == LFloat:
		return Bool(fcmp(float64(a.Int), b.Num))
	case a.Type == LFloat && b.Type == LInt:
		return Bool(fcmp(a.Num, float64(b.Int)))
	case a.Type == LFloat && b.Type == LFloat:
		return Bool(fcmp(a.Num, b.Num))
	default:
		return ErrorConditionf(TypeError, "%s cannot be applied to non-numeric object: %s", name, nonNumeric(a, b))
	}
}

func builtinStringEq(env *LEnv, args *LVal) *LVal {
	return compareStr(env, "string=", args, func(x, y string) bool { return x == y })
}

func builtinStringNE(env *LEnv, args *LVal) *LVal {
	return compareStr(env, "string/=", args, func(x, y string) bool { return x != y })
}

func builtinStringLT(env *LEnv, args *LVal) *LVal {
	return compareStr(env, "string<", args, func(x, y string) bool { return x < y })
}

func builtinStringGT(env *LEnv, args *LVal) *LVal {
	return compareStr(env, "string>", args, func(x, y string) bool { return x > y })
}

func builtinStringLE(env *LEnv, args *LVal) *LVal {
	return compareStr(env, "string<=", args, func(x, y string) bool { return x <= y })
}

func builtinStringGE(env *LEnv, args *LVal) *LVal {
	return compareStr(env, "string>=", args, func(x, y string) bool { return x >= y })
}

func builtinStringEqual(env *LEnv, args *LVal) *LVal {
	return compareStr(env, "string-equal", args, strings.EqualFold)
}

func compareStr(env *LEnv, name string, args *LVal, cmp func(string, string) bool) *LVal {
	vals, lerr := evalArgs(env, name, args, 2)
	if lerr != nil {
		return lerr
	}
	if vals[0].Type != LString || vals[1].Type != LString {
		return ErrorConditionf(TypeError, "%s cannot be applied to non-string object: %s", name, nonString(vals[0], vals[1]))
	}
	return Bool(cmp(vals[0].Str, vals[1].Str))
}

func nonString(a, b *LVal) LType {
	if a.Type != LString {
		return a.Type
	}
	return b.Type
}

func builtinConcat(env *LEnv, args *LVal) *LVal {
	vals, lerr := evalArgs(env, "concat", args, -1)
	if lerr != nil {
		return lerr
	}
	if len(vals) < 2 {
		return ErrorConditionf(ArityError, "too few arguments for concat")
	}
	var buf strings.Builder
	for _, v := range vals {
		if v.Type != LString {
			return ErrorConditionf(TypeError, "concat cannot be applied to non-string object: %s", v.Type)
		}
		buf.WriteString(v.Str)
	}
	return String(buf.String())
}

func builtinIntToString(env *LEnv, args *LVal) *LVal {
	a, lerr := evalArgs(env, "int-to-string", args, 1)
	if lerr != nil {
		return lerr
	}
	if a[0].Type != LInt {
		return ErrorConditionf(TypeError, "argument of int-to-string must be an integer: %s", a[0].Type)
	}
	return String(strconv.FormatInt(a[0].Int, 10))
}

func builtinNumToString(env *LEnv, args *LVal) *LVal {
	a, lerr := evalArgs(env, "num-to-string", args, 1)
	if lerr != nil {
		return lerr
	}
	if a[0].Type != LFloat {
		return ErrorConditionf(TypeError, "argument of num-to-string must be a number: %s", a[0].Type)
	}
	return String(strconv.FormatFloat(a[0].Num, 'f', 6, 64))
}

func builtinWrite(env *LEnv, args *LVal) *LVal {
	return printValue(env, "write", args, "", true)
}

func builtinPrint(env *LEnv, args *LVal) *LVal {
	return printValue(env, "print", args, "\n", true)
}

func builtinPrin1(env *LEnv, args *LVal) *LVal {
	return printValue(env, "prin1", args, "", true)
}

func builtinPrinc(env *LEnv, args *LVal) *LVal {
	return printValue(env, "princ", args, "", false)
}

// printValue writes a single evaluated argument to the runtime's stdout and
// returns it.  When readable is true strings keep their surrounding quotes.
func printValue(env *LEnv, name string, args *LVal, prefix string, readable bool) *LVal {
	a, lerr := evalArgs(env, name, args, 1)
	if lerr != nil {
		return lerr
	}
	v := a[0]
	var text string
	switch v.Type {
	case LInt, LFloat:
		text = v.String()
	case LString:
		if readable {
			text = v.String()
		} else {
			text = v.Str
		}
	default:
		return ErrorConditionf(TypeError, "%s can only accept a string, integer or number: %s", name, v.Type)
	}
	fmt.Fprint(env.Runtime.Stdout, prefix+text)
	return v
}

func builtinWriteLine(env *LEnv, args *LVal) *LVal {
	a, lerr := evalArgs(env, "write-line", args, 1)
	if lerr != nil {
		return lerr
	}
	if a[0].Type != LString {
		return ErrorConditionf(TypeError, "argument of write-line must be a string: %s", a[0].Type)
	}
	fmt.Fprintln(env.Runtime.Stdout, a[0].Str)
	return a[0]
}

func builtinReadStr(env *LEnv, args *LVal) *LVal {
	if lerr := noArgs("read-str", args); lerr != nil {
		return lerr
	}
	var s string
	if _, err := fmt.Fscan(env.Runtime.Stdin, &s); err != nil {
		return ErrorConditionf(ReadError, "failed to read a string: %s", err)
	}
	return String(s)
}

func builtinReadInt(env *LEnv, args *LVal) *LVal {
	if lerr := noArgs("read-int", args); lerr != nil {
		return lerr
	}
	var x int64
	if _, err := fmt.Fscan(env.Runtime.Stdin, &x); err != nil {
		return ErrorConditionf(ReadError, "failed to read an integer: %s", err)
	}
	return Int(x)
}

func builtinReadNum(env *LEnv, args *LVal) *LVal {
	if lerr := noArgs("read-num", args); lerr != nil {
		return lerr
	}
	var x float64
	if _, err := fmt.Fscan(env.Runtime.Stdin, &x); err != nil {
		return ErrorConditionf(ReadError, "failed to read a number: %s", err)
	}
	return Float(x)
}

func builtinTypeOf(env *LEnv, args *LVal) *LVal {
	a, lerr := evalArgs(env, "type-of", args, 1)
	if lerr != nil {
		return lerr
	}
	return String(a[0].Type.String())
}

func builtinDebug(env *LEnv, args *LVal) *LVal {
	a, lerr := evalArgs(env, "debug", args, 1)
	if lerr != nil {
		return lerr
	}
	return String(a[0].String())
}
