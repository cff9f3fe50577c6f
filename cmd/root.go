package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "brioc",
	Short: "brioc — the Brio language front end",
	Long: `brioc is the compiler front end for Brio source files (.brio).

Commands:
  check  Parse and name-check a source file
  parse  Parse a source file and print its tree
  fmt    Rewrite a source file in canonical form
`,
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.AddCommand(CheckCmd, ParseCmd, FmtCmd)
}
