// Package main is the entry point for the wfctl CLI.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"wfgraph/cmd/wfctl/commands"
	"wfgraph/internal/app"

	"github.com/grindlemire/graft"
	"go.trai.ch/zerr"

	_ "wfgraph/internal/wiring"
)

func main() {
	os.Exit(run())
}

func run() int {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	components, _, err := graft.ExecuteFor[*app.Components](ctx)
	if err != nil {
		os.Stderr.WriteString("wfctl: " + err.Error() + "\n")
		return 1
	}

	cli := commands.New(components.App, components.TUI)
	if err := cli.Execute(ctx); err != nil {
		components.Logger.Error(zerr.Wrap(err, "wfctl failed"))
		return 1
	}
	return 0
}
