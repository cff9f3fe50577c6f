package cmd

import (
	"fmt"

	"github.com/briolang/brio/internal/ast"
	"github.com/briolang/brio/internal/checker"
	"github.com/briolang/brio/internal/compiler"
	"github.com/spf13/cobra"
)

var resolve bool

var ParseCmd = &cobra.Command{
	Use:   "parse <source.brio>",
	Short: "Parse a Brio source file and print its tree",
	Args:  cobra.ExactArgs(1),
	RunE:  parseRun,
}

func init() {
	ParseCmd.Flags().BoolVar(&resolve, "resolve", false, "run name resolution and show symbol bindings")
}

func parseRun(cmd *cobra.Command, args []string) error {
	path := args[0]

	res, err := compiler.ParseFile(path)
	if err != nil {
		return err
	}
	if res.Diagnostics.HasErrors() {
		fmt.Fprintln(cmd.ErrOrStderr(), res.Diagnostics.Format(path))
		return fmt.Errorf("%d error(s)", res.Diagnostics.ErrorCount())
	}

	if resolve {
		diag := checker.Analyze(res.Program)
		if diag.HasErrors() {
			fmt.Fprintln(cmd.ErrOrStderr(), diag.Format(path))
		}
	}

	fmt.Fprint(cmd.OutOrStdout(), ast.Print(res.Program))
	return nil
}
