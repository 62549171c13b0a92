package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "mica",
	Short: "Mica CLI — interpreter, REPL, and AST dumper",
	Long: `Mica is a minimal line-oriented scripting language.

Commands:
  run   Interpret a (.mica) source file
  repl  Start an interactive session
  ast   Parse a (.mica) source file and dump its syntax tree
`,
}

func Execute() error {
	if err := rootCmd.Execute(); err != nil {
		return err
	}
	return nil
}

func init() {
	rootCmd.AddCommand(RunCmd, ReplCmd, AstCmd)
}
