package repl

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/pogyomo/mlisp/lisp"
	"github.com/pogyomo/mlisp/parser"
)

// Run starts a read-eval-print loop on the process's terminal and runs until
// the input is closed.  Each top level expression read is evaluated and its
// value printed; incomplete expressions are buffered across lines.
func Run(prompt string) {
	env := lisp.NewEnv(nil, lisp.WithReader(parser.NewReader()))
	env.AddBuiltins()
	RunEnv(env, prompt)
}

// RunEnv runs a read-eval-print loop in the given root environment.
func RunEnv(env *lisp.LEnv, prompt string) {
	rl, err := readline.New(prompt)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer rl.Close()
	contPrompt := strings.Repeat(" ", len(prompt))

	var buf []byte
	for {
		slice, err := rl.ReadSlice()
		// The slice is only valid until the next read.
		line := append([]byte(nil), slice...)
		if err == readline.ErrInterrupt {
			// Discard any buffered continuation lines.
			buf = nil
			rl.SetPrompt(prompt)
			continue
		}
		if err != nil {
			if err != io.EOF {
				fmt.Fprintln(os.Stderr, err)
			}
			return
		}
		if len(buf) != 0 {
			buf = append(buf, '\n')
			line = append(buf, line...)
			buf = nil
			rl.SetPrompt(prompt)
		}
		exprs, err := parser.Parse("repl", line)
		if err != nil {
			if parser.IsIncomplete(err) {
				buf = line
				rl.SetPrompt(contPrompt)
				continue
			}
			fmt.Fprintln(os.Stderr, err)
			continue
		}
		for _, expr := range exprs {
			v := env.Eval(expr)
			if v.Type == lisp.LError {
				fmt.Fprintln(os.Stderr, lisp.GoError(v))
				break
			}
			fmt.Fprintln(env.Runtime.Stdout, v)
		}
	}
}
