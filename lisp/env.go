package lisp

import (
	"bufio"
	"io"
	"os"
	"strings"
)

// Runtime holds the state shared by every scope in an environment chain.
type Runtime struct {
	// Reader is the parser used by Load.  The lisp package has no parser of
	// its own; one must be supplied through the WithReader config.
	Reader Reader

	// Stdin, Stdout, and Stderr are the streams used by the console
	// builtins.
	Stdin  *bufio.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// StdRuntime returns a Runtime connected to the standard streams of the
// process.
func StdRuntime() *Runtime {
	return &Runtime{
		Stdin:  bufio.NewReader(os.Stdin),
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	}
}

// LEnv is a scope for symbol bindings.  Scopes form a chain through Parent
// and share a single Runtime, allocated by the root scope.
type LEnv struct {
	Scope   map[string]*LVal
	Parent  *LEnv
	Runtime *Runtime
}

// NewEnv initializes and returns a new LEnv with the given parent.  Config
// options only apply to a root environment.
func NewEnv(parent *LEnv, config ...Config) *LEnv {
	env := &LEnv{
		Scope:  make(map[string]*LVal),
		Parent: parent,
	}
	if parent != nil {
		env.Runtime = parent.Runtime
		return env
	}
	env.Runtime = StdRuntime()
	for _, fn := range config {
		fn(env)
	}
	return env
}

func (env *LEnv) root() *LEnv {
	for env.Parent != nil {
		env = env.Parent
	}
	return env
}

// Get returns the value bound to k.  The lookup searches the scope chain from
// env outward.  When no binding exists anywhere the result depends on where
// the lookup started: a miss from the root scope resolves to Nil silently
// while a miss from any deeper scope is an unbound-symbol error.
func (env *LEnv) Get(k string) *LVal {
	for scope := env; scope != nil; scope = scope.Parent {
		if v, ok := scope.Scope[k]; ok {
			return v
		}
	}
	if env.Parent == nil {
		return Nil()
	}
	return ErrorConditionf(UnboundSymbolError, "no such symbol exist: %s", k)
}

// Put binds k to v in the current scope, shadowing any binding of k in an
// outer scope.
func (env *LEnv) Put(k string, v *LVal) {
	env.Scope[k] = v
}

// PutGlobal binds k to v in the root scope.
func (env *LEnv) PutGlobal(k string, v *LVal) {
	env.root().Put(k, v)
}

// AddBuiltins binds the given builtin definitions in env.  When called
// without arguments AddBuiltins binds the default builtin table along with
// the T and NIL constants.
func (env *LEnv) AddBuiltins(funs ...LBuiltinDef) {
	if len(funs) == 0 {
		funs = DefaultBuiltins()
		env.Put("T", True())
		env.Put("NIL", Nil())
	}
	for _, fn := range funs {
		env.Put(fn.Name(), Fun(fn.Name(), fn.Eval))
	}
}

// Load parses source text read from r using the Runtime's Reader and
// evaluates each expression in env, stopping at the first error.  Load
// returns the value of the final expression, or Nil when r is empty.
func (env *LEnv) Load(name string, r io.Reader) *LVal {
	if env.Runtime.Reader == nil {
		return Errorf("no reader configured to parse source")
	}
	exprs, err := env.Runtime.Reader.Read(name, r)
	if err != nil {
		if lerr, ok := err.(*ErrorVal); ok {
			return (*LVal)(lerr)
		}
		return Error(err)
	}
	result := Nil()
	for _, expr := range exprs {
		result = env.Eval(expr)
		if result.Type == LError {
			return result
		}
	}
	return result
}

// LoadString parses and evaluates source held in a string.
func (env *LEnv) LoadString(name, source string) *LVal {
	return env.Load(name, strings.NewReader(source))
}
