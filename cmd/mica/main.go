package main

import (
	"os"

	"github.com/arnavsurve/mica/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
