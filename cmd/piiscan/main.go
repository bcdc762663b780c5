package main

import (
	"fmt"
	"os"
	"runtime/debug"

	"github.com/dstore-labs/piiscan/internal/cli"
	"github.com/dstore-labs/piiscan/pkg/piiscan"
)

func main() {
	// Recover from panics to ensure graceful exits with stack traces
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "panic: %v\n%s\n", r, debug.Stack())
			os.Exit(piiscan.ExitPanic)
		}
	}()

	if err := cli.Execute(); err != nil {
		os.Exit(piiscan.ExitCodeForError(err))
	}
}
