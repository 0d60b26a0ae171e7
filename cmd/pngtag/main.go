package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/danmuck/pngme/internal/logging"
)

func main() {
	logging.ConfigureRuntime()
	cmd := newRootCmd(os.Stdout)
	cmd.SetArgs(os.Args[1:])
	if err := cmd.Execute(); err != nil {
		if !errors.Is(err, errProblems) {
			fmt.Fprintf(os.Stderr, "pngtag: %v\n", err)
		}
		os.Exit(1)
	}
}
