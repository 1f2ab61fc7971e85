package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/bmatsuo/schemer/lisp"
	"github.com/bmatsuo/schemer/parser"
	"github.com/bmatsuo/schemer/repl"
	"github.com/spf13/cobra"
)

var (
	maxStackHeight int
	debugStack     bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "schemer [FILE]",
	Short: "A small scheme interpreter",
	Long: `Schemer evaluates a small dialect of scheme.

Without arguments schemer starts an interactive session.  Given a file, schemer
loads it and prints the value of its last expression.`,
	Args: func(cmd *cobra.Command, args []string) error {
		if len(args) > 1 {
			return errors.New("Program takes only 0 or 1 arguments")
		}
		return nil
	},
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			return repl.RunRepl(
				repl.WithDebug(debugStack),
				repl.WithMaximumStackHeight(maxStackHeight),
			)
		}
		env, err := newEnv()
		if err != nil {
			return err
		}
		// Like the repl, file mode reports failures without a non-zero exit.
		v, err := env.LoadFile(args[0])
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			printStack(env)
			return nil
		}
		fmt.Fprintln(os.Stderr, v)
		return nil
	},
}

// Execute adds all child commands to the root command and sets flags
// appropriately.  This is called by main.main(). It only needs to happen once
// to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newEnv() (*lisp.LEnv, error) {
	return lisp.PrimitiveBindings(
		lisp.WithReader(parser.NewReader()),
		lisp.WithMaximumStackHeight(maxStackHeight),
	)
}

// printStack prints the call stack of the most recent failure when --debug
// was given.
func printStack(env *lisp.LEnv) {
	if debugStack && env.Runtime.ErrStack != nil {
		env.Runtime.ErrStack.DebugPrint(env.Runtime.Stderr)
	}
}

func init() {
	rootCmd.PersistentFlags().IntVar(&maxStackHeight, "max-stack", 10000,
		"Maximum nesting of procedure calls (less than one for no limit)")
	rootCmd.PersistentFlags().BoolVar(&debugStack, "debug", false,
		"Print the call stack of failed evaluations to stderr")
}
