package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/arnavsurve/mica/internal/interp"
)

var showResult bool

// run: interpret a source file
var RunCmd = &cobra.Command{
	Use:          "run <file.mica>",
	Short:        "Interpret a Mica source file",
	Args:         cobra.ExactArgs(1),
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		result, err := interp.RunFile(args[0], os.Stdout)
		if err != nil {
			return err
		}
		if showResult {
			fmt.Println(result.Inspect())
		}
		return nil
	},
}

func init() {
	RunCmd.Flags().BoolVar(&showResult, "result", false, "print the value of the last statement")
}
