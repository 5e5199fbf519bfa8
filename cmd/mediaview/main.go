package main

import (
	"fmt"
	"os"
)

func main() {
	cmd := newRootCommand(launchGUI)
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
