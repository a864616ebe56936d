package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arlyon/levelhm/builtins"
	"github.com/arlyon/levelhm/printer"
)

var envCmd = &cobra.Command{
	Use:   "env",
	Short: "Print the builtin environment's names and schemes",
	RunE:  runEnv,
}

func runEnv(cmd *cobra.Command, args []string) error {
	prims, err := builtins.Env()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for _, name := range builtins.Names() {
		fmt.Fprintf(out, "%s : %s\n", name, printer.Print(prims[name]))
	}
	return nil
}
