package lisp

// Eval evaluates v in the context (scope) of env and returns the resulting
// LVal.  Eval never mutates v; assignment forms mutate env.
func (env *LEnv) Eval(v *LVal) *LVal {
	switch v.Type {
	case LNil, LTrue, LInt, LFloat, LString, LFun, LPartial, LMacro, LFuncPtr, LError:
		return v
	case LSymbol:
		return env.Get(v.Str)
	case LQuote:
		return v.Head
	case LBackquote:
		// Comma substitution is not performed.  A backquoted expression
		// currently evaluates exactly like a quoted one.
		return v.Head
	case LComma, LCommaSplice:
		return ErrorConditionf(SyntaxError, "comma is illegal outside of backquote")
	case LPair:
		return env.evalSExpr(v)
	default:
		return ErrorConditionf(TypeError, "cannot evaluate object: %s", v.Type)
	}
}

func (env *LEnv) evalSExpr(s *LVal) *LVal {
	f := env.Eval(s.Head)
	if f.Type == LError {
		return f
	}
	switch f.Type {
	case LFuncPtr:
		return f.Builtin(env, s.Tail)
	case LFun:
		vals, lerr := env.evalArgList(s.Tail)
		if lerr != nil {
			return lerr
		}
		return env.applyFun(f, vals)
	case LPartial:
		vals, lerr := env.evalArgList(s.Tail)
		if lerr != nil {
			return lerr
		}
		return env.applyFun(f.Func, append(f.Args.cells(), vals...))
	case LMacro:
		return env.applyMacro(f, s.Tail)
	default:
		return ErrorConditionf(TypeError, "first element of list must be evaluated to callable object: %s", f.Type)
	}
}

// applyFun applies fun to the evaluated argument values vals.  Supplying
// fewer values than fun has parameters is not an error; the result is a
// partially applied function holding the values supplied so far.
func (env *LEnv) applyFun(fun *LVal, vals []*LVal) *LVal {
	n := fun.Params.Len()
	if len(vals) > n {
		return ErrorConditionf(ArityError, "invalid number of arguments for function: expected %d, but got %d", n, len(vals))
	}
	if len(vals) < n {
		return Partial(fun, NewList(vals...))
	}
	fenv := NewEnv(env)
	p := fun.Params
	for _, v := range vals {
		fenv.Put(p.Head.Str, v)
		p = p.Tail
	}
	return fenv.evalBody(fun.Body)
}

// applyMacro expands the macro mac with the unevaluated argument expressions
// in args and then evaluates each expansion form in env.
func (env *LEnv) applyMacro(mac *LVal, args *LVal) *LVal {
	forms, lerr := env.expandMacro(mac, args)
	if lerr != nil {
		return lerr
	}
	result := Nil()
	for _, form := range forms {
		result = env.Eval(form)
		if result.Type == LError {
			return result
		}
	}
	return result
}

// expandMacro binds the parameters of mac to the unevaluated argument
// expressions in args and evaluates each body form in that scope, returning
// the expansion forms produced.  Unlike a function call the number of
// arguments must match the number of parameters exactly.
func (env *LEnv) expandMacro(mac *LVal, args *LVal) ([]*LVal, *LVal) {
	n := mac.Params.Len()
	if args.Len() != n {
		return nil, ErrorConditionf(ArityError, "invalid number of arguments for macro: expected %d, but got %d", n, args.Len())
	}
	menv := NewEnv(env)
	p := mac.Params
	for a := args; a.Type == LPair; a = a.Tail {
		menv.Put(p.Head.Str, a.Head)
		p = p.Tail
	}
	var forms []*LVal
	for b := mac.Body; b.Type == LPair; b = b.Tail {
		form := menv.Eval(b.Head)
		if form.Type == LError {
			return nil, form
		}
		forms = append(forms, form)
	}
	return forms, nil
}

// evalBody evaluates body forms in sequence and returns the value of the
// final form, or Nil for an empty body.
func (env *LEnv) evalBody(body *LVal) *LVal {
	result := Nil()
	for b := body; b.Type == LPair; b = b.Tail {
		result = env.Eval(b.Head)
		if result.Type == LError {
			return result
		}
	}
	return result
}

// evalArgList evaluates the expressions of the list args left to right,
// stopping at the first error.
func (env *LEnv) evalArgList(args *LVal) ([]*LVal, *LVal) {
	var vals []*LVal
	for a := args; a.Type == LPair; a = a.Tail {
		v := env.Eval(a.Head)
		if v.Type == LError {
			return nil, v
		}
		vals = append(vals, v)
	}
	return vals, nil
}
