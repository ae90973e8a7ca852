// Package main is the entry point for the fresh up-to-date checker.
package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/grindlemire/graft"
	"go.trai.ch/fresh/cmd/fresh/commands"
	"go.trai.ch/fresh/internal/app"
	"go.trai.ch/fresh/internal/core/domain"
	_ "go.trai.ch/fresh/internal/wiring"
)

func main() {
	os.Exit(run())
}

func run() int {
	// 0. Context with signal handling
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	// 1. Initialize application components
	components, _, err := graft.ExecuteFor[*app.Components](ctx)
	if err != nil {
		// Logger is not available yet if initialization failed
		// Write directly to stderr
		_, _ = os.Stderr.WriteString("Error: " + err.Error() + "\n")
		return 1
	}

	// 2. Lifecycle notification over the in-process build bus. Components
	// are cached for the process lifetime, so a prior in-process run may
	// have already started the notifier.
	if err := components.Notifier.Start(); err == nil {
		defer func() { _ = components.Notifier.Close() }()
	} else if !errors.Is(err, domain.ErrNotifierStarted) {
		components.Logger.Error(err)
		return 1
	}

	// 3. Interface - CLI
	cli := commands.New(components.App)

	// 4. Execution
	if err := cli.Execute(ctx); err != nil {
		if errors.Is(err, domain.ErrStaleDetected) {
			// Per-configuration verdicts were already reported.
			return 1
		}
		components.Logger.Error(err)
		return 1
	}
	return 0
}
