package main

import (
	"errors"
	"fmt"
	"os"

	_ "applauncher/cmd"
	"applauncher/cmd/root"
)

func main() {
	if err := root.RootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		var exit *root.ExitError
		if errors.As(err, &exit) {
			os.Exit(exit.Code)
		}
		os.Exit(1)
	}
	os.Exit(0)
}
