package cmd

import (
	"bytes"
	"fmt"
	"os"

	"github.com/bmatsuo/schemer/lisp"
	"github.com/spf13/cobra"
)

var (
	runExpression bool
	runPrint      bool
)

// runCmd represents the run command
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run lisp code",
	Long:  `Run lisp code provided supplied via the command line or a file.`,
	Run: func(cmd *cobra.Command, args []string) {
		env, err := newEnv()
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		for _, arg := range args {
			exprs, err := runReadExpressions(env, arg)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(1)
			}
			for _, expr := range exprs {
				env.Runtime.ErrStack = nil
				v, err := env.Eval(expr)
				if err != nil {
					fmt.Fprintln(os.Stderr, err)
					printStack(env)
					os.Exit(1)
				}
				if runPrint {
					fmt.Println(v)
				}
			}
		}
	},
}

// runReadExpressions parses arg as an expression when -e was given and as a
// file path otherwise.
func runReadExpressions(env *lisp.LEnv, arg string) ([]*lisp.LVal, error) {
	if runExpression {
		return env.Runtime.Reader.Read("<expression>", bytes.NewReader([]byte(arg)))
	}
	src, err := env.Runtime.LoadSource(arg)
	if err != nil {
		return nil, err
	}
	return env.Runtime.Reader.Read(arg, bytes.NewReader(src))
}

func init() {
	rootCmd.AddCommand(runCmd)

	// Here flags for the run command are defined
	runCmd.Flags().BoolVarP(&runExpression, "expression", "e", false,
		"Interpret arguments as lisp expressions")
	runCmd.Flags().BoolVarP(&runPrint, "print", "p", false,
		"Print expression values to stdout")
}
