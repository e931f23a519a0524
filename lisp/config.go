package lisp

import (
	"bufio"
	"io"
)

// Config is a function that configures a root environment.
type Config func(env *LEnv)

// WithReader returns a Config that makes environments read lisp source using
// r, typically so that Load can parse files and strings.
func WithReader(r Reader) Config {
	return func(env *LEnv) {
		env.Runtime.Reader = r
	}
}

// WithStdin returns a Config that makes the console input builtins read from
// r instead of the program's standard input.
func WithStdin(r io.Reader) Config {
	return func(env *LEnv) {
		env.Runtime.Stdin = bufio.NewReader(r)
	}
}

// WithStdout returns a Config that makes the console output builtins write
// to w instead of the program's standard output.
func WithStdout(w io.Writer) Config {
	return func(env *LEnv) {
		env.Runtime.Stdout = w
	}
}

// WithStderr returns a Config that makes environments write diagnostics to w
// instead of the program's standard error.
func WithStderr(w io.Writer) Config {
	return func(env *LEnv) {
		env.Runtime.Stderr = w
	}
}
