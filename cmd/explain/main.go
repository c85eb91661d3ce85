// Command explain runs the concept explanation pipeline once for a topic
// given on the command line and prints the resulting envelope as JSON.
//
// Usage:
//
//	explain [--config path] [--strict] [--model name] [--timeout 30s] <topic...>
//
// The exit status is non-zero when the envelope reports an error.
package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cmd := newRootCmd(newGeminiGenerator)
	cmd.SetOut(os.Stdout)
	cmd.SetErr(os.Stderr)

	if err := cmd.ExecuteContext(ctx); err != nil {
		if !errors.Is(err, errExplainFailed) {
			cmd.PrintErrln("Error:", err)
		}
		os.Exit(1)
	}
}
