package main

import (
	"fmt"
	"os"
)

func main() {
	closeLog := initLogger()
	err := run(os.Args)
	closeLog()
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	cmd := newRootCommand(args)
	return cmd.Execute()
}
