package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/arnavsurve/mica/internal/interp"
)

// ast: parse a source file and dump the statement list
var AstCmd = &cobra.Command{
	Use:          "ast <file.mica>",
	Short:        "Parse a Mica source file and dump its syntax tree",
	Args:         cobra.ExactArgs(1),
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		content, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("error reading file: %w", err)
		}

		prog, err := interp.Parse(string(content))
		if err != nil {
			return err
		}

		for _, stmt := range prog.Statements {
			fmt.Printf("%#v\n", stmt)
		}
		return nil
	},
}
