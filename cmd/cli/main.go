package main

import (
	"fmt"
	"os"

	"github.com/drors3/NaturalSignals-WireScope/pkg/runtime/terminal"
)

func main() {
	cli := terminal.NewCLI(terminal.Options{Output: os.Stdout})
	if err := cli.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
