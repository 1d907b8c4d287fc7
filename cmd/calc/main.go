package main

import (
	"os"

	"github.com/pengelbrecht/boundcalc/cmd/calc/cmd"
)

func main() {
	os.Exit(run(os.Args))
}

func run(args []string) int {
	if len(args) < 1 {
		return cmd.Execute(nil, os.Stdout, os.Stderr)
	}
	return cmd.Execute(args[1:], os.Stdout, os.Stderr)
}
