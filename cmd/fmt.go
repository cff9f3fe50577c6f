package cmd

import (
	"fmt"
	"os"

	"github.com/briolang/brio/internal/compiler"
	"github.com/spf13/cobra"
)

var write bool

var FmtCmd = &cobra.Command{
	Use:   "fmt <source.brio>",
	Short: "Rewrite a Brio source file in canonical form",
	Args:  cobra.ExactArgs(1),
	RunE:  fmtRun,
}

func init() {
	FmtCmd.Flags().BoolVarP(&write, "write", "w", false, "write result back to the source file instead of stdout")
}

func fmtRun(cmd *cobra.Command, args []string) error {
	path := args[0]

	source, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	out, diags := compiler.Format(string(source))
	if diags.HasErrors() {
		fmt.Fprintln(cmd.ErrOrStderr(), diags.Format(path))
		return fmt.Errorf("%d error(s)", diags.ErrorCount())
	}

	if write {
		return os.WriteFile(path, []byte(out), 0644)
	}
	fmt.Fprint(cmd.OutOrStdout(), out)
	return nil
}
