package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/pixil98/go-dungeon/cmd/dungeon/command"
	"github.com/pixil98/go-service"
)

func main() {
	// The console session cancels ctx when the game ends so the remaining
	// workers shut down with it.
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	app, err := service.NewApp(&command.Config{}, command.NewWorkerBuilder(os.Stdin, os.Stdout, cancel))
	if err != nil {
		slog.Error("creating application", "error", err)
		os.Exit(1)
	}

	err = app.Run(ctx)
	if err != nil {
		slog.Error("running application", "error", err)
		os.Exit(1)
	}

	slog.Info("exiting")
}
