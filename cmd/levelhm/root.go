package main

import (
	"fmt"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/arlyon/levelhm"
	"github.com/arlyon/levelhm/builtins"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "levelhm",
	Short: "Hindley-Milner type inference over a small ML-like expression language",
	Long: `levelhm infers the principal type of an expression using let-polymorphic
Hindley-Milner inference with level-based generalization.

With no subcommand it behaves like the "infer" subcommand: reads one
expression (from --expr or a line of stdin) and prints its inferred type.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		setupLogger(verbose)
	},
	RunE: runInfer,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&exprFlag, "expr", "", "expression to infer the type of (default: read one line from stdin)")

	rootCmd.AddCommand(inferCmd)
	rootCmd.AddCommand(replCmd)
	rootCmd.AddCommand(envCmd)
}

// Execute runs the CLI, exiting the process with a non-zero status on
// failure (parse error, inference error, or an unbound identifier).
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "levelhm:", err)
		os.Exit(1)
	}
}

// newBuiltinEnv builds a fresh InferenceContext and TypeEnv seeded with the
// builtin environment, ready for a single top-level inference.
func newBuiltinEnv() (*levelhm.InferenceContext, *levelhm.TypeEnv, error) {
	prims, err := builtins.Env()
	if err != nil {
		return nil, nil, errors.Wrap(err, "building builtin environment")
	}
	return levelhm.NewInferenceContext(), levelhm.NewTypeEnv(prims), nil
}
