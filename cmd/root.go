package cmd

import (
	"bytes"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pogyomo/mlisp/lisp"
	"github.com/pogyomo/mlisp/parser"
	"github.com/pogyomo/mlisp/repl"
)

var (
	rootExpression bool
	rootPrint      bool
)

var rootCmd = &cobra.Command{
	Use:   "mlisp [file ...]",
	Short: "An interpreter for a small lisp dialect",
	Long: `mlisp executes the expressions in the given files in order and
terminates at the first error.  When called without arguments mlisp starts an
interactive interpreter session instead.`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) == 0 {
			repl.Run("> ")
			return
		}
		env := lisp.NewEnv(nil, lisp.WithReader(parser.NewReader()))
		env.AddBuiltins()
		for _, arg := range args {
			if err := run(env, arg); err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(1)
			}
		}
	},
}

// run executes a single command line argument, either a file path or a lisp
// expression under the -e flag.
func run(env *lisp.LEnv, arg string) error {
	name, source := arg, []byte(arg)
	if !rootExpression {
		var err error
		source, err = os.ReadFile(arg)
		if err != nil {
			return err
		}
	} else {
		name = "cli"
	}
	if !rootPrint {
		return lisp.GoError(env.Load(name, bytes.NewReader(source)))
	}
	exprs, err := parser.Parse(name, source)
	if err != nil {
		return err
	}
	for _, expr := range exprs {
		v := env.Eval(expr)
		if v.Type == lisp.LError {
			return lisp.GoError(v)
		}
		fmt.Fprintln(env.Runtime.Stdout, v)
	}
	return nil
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.Flags().BoolVarP(&rootExpression, "expression", "e", false, "Interpret arguments as lisp expressions")
	rootCmd.Flags().BoolVarP(&rootPrint, "print", "p", false, "Print the value of each top level expression")
}
