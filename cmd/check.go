package cmd

import (
	"fmt"

	"github.com/briolang/brio/internal/compiler"
	"github.com/spf13/cobra"
)

var CheckCmd = &cobra.Command{
	Use:   "check <source.brio>",
	Short: "Parse and name-check a Brio source file",
	Args:  cobra.ExactArgs(1),
	RunE:  checkRun,
}

func checkRun(cmd *cobra.Command, args []string) error {
	path := args[0]

	res, err := compiler.CheckFile(path)
	if err != nil {
		return err
	}
	if res.Diagnostics.HasErrors() {
		fmt.Fprintln(cmd.ErrOrStderr(), res.Diagnostics.Format(path))
		return fmt.Errorf("%d error(s)", res.Diagnostics.ErrorCount())
	}

	fmt.Fprintln(cmd.OutOrStdout(), "No errors found.")
	return nil
}
