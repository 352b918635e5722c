package main

import (
	"fmt"
	"io"

	"github.com/kingrea/todo-history/internal/config"
)

// runCheckConfig validates a config file and returns the process exit code.
func runCheckConfig(args []string, stdout, stderr io.Writer) int {
	if len(args) != 1 {
		fmt.Fprintln(stderr, "Usage: todo check-config /path/to/config.yaml")
		return 2
	}
	pc, err := config.ValidateFile(args[0])
	if err != nil {
		fmt.Fprintf(stderr, "Invalid: %v\n", err)
		return 1
	}
	fmt.Fprintf(stdout, "OK: %s (owner %s, ui %s, history %s)\n", args[0], pc.Owner, pc.UI.Mode, describeLimit(pc.History.Limit))
	return 0
}
