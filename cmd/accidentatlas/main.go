// Package main provides the entry point for the accidentatlas CLI.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"AccidentAtlas/cmd/accidentatlas/cmd"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := cmd.Execute(ctx); err != nil {
		os.Exit(1)
	}
}
