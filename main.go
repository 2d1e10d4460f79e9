// ./main.go
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/Woon-2/doxyrm/cmd"
)

// osExit allows mocking os.Exit in tests.
var osExit = os.Exit

// main is the entry point for the doxyrm CLI application.
func main() {
	// Interrupt signals (SIGINT, SIGTERM) cancel the context so an aborted
	// run still exits through the error path below.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := cmd.Execute(ctx); err != nil {
		// Cobra has already reported the error on stderr; the exit code is
		// the only thing left to communicate.
		osExit(1)
	}
}
