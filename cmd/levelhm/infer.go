package main

import (
	"bufio"
	"fmt"
	"log/slog"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/arlyon/levelhm/parser"
	"github.com/arlyon/levelhm/printer"
)

var exprFlag string

var inferCmd = &cobra.Command{
	Use:   "infer",
	Short: "Infer and print the principal type of an expression",
	RunE:  runInfer,
}

func runInfer(cmd *cobra.Command, args []string) error {
	src, err := readSource(exprFlag)
	if err != nil {
		return err
	}

	typ, err := inferSource(src)
	if err != nil {
		return err
	}

	fmt.Println(typ)
	return nil
}

// readSource returns expr if non-empty, otherwise the first line read from
// stdin.
func readSource(expr string) (string, error) {
	if expr != "" {
		return expr, nil
	}
	scanner := bufio.NewScanner(os.Stdin)
	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return "", errors.Wrap(err, "reading stdin")
		}
		return "", errors.New("no expression given: pass --expr or pipe a line on stdin")
	}
	return scanner.Text(), nil
}

// inferSource parses and infers src in one shot, returning the canonical
// printed type.
func inferSource(src string) (string, error) {
	expr, err := parser.ParseExpr(src)
	if err != nil {
		return "", err
	}
	slog.Debug("parsed expression", "source", src)

	ic, env, err := newBuiltinEnv()
	if err != nil {
		return "", err
	}

	typ, err := ic.TopTypeof(env, expr)
	if err != nil {
		return "", err
	}
	slog.Debug("inferred type", "type", printer.Print(typ))

	return printer.Print(typ), nil
}
