package cmd

import (
	"bufio"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/arnavsurve/mica/internal/interp"
	"github.com/arnavsurve/mica/internal/interp/evaluator"
)

// repl: interactive session sharing one environment across lines
var ReplCmd = &cobra.Command{
	Use:   "repl",
	Short: "Start an interactive Mica session",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("Mica interactive session (ctrl-d to exit)")

		ev := evaluator.New(os.Stdout)
		scanner := bufio.NewScanner(os.Stdin)
		for {
			fmt.Print(">> ")
			if !scanner.Scan() {
				fmt.Println()
				return
			}

			prog, err := interp.Parse(scanner.Text() + "\n")
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				continue
			}
			result, err := ev.Eval(prog)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				continue
			}
			fmt.Println(result.Inspect())
		}
	},
}
