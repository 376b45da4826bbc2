package command

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/pixil98/go-dungeon/internal/commands"
	"github.com/pixil98/go-dungeon/internal/console"
	"github.com/pixil98/go-dungeon/internal/game"
	"github.com/pixil98/go-dungeon/internal/messaging"
	"github.com/pixil98/go-service"
)

// NewWorkerBuilder returns the worker builder for the app. The console
// session reads in, writes out and calls stop once the game is over.
func NewWorkerBuilder(in io.Reader, out io.Writer, stop context.CancelFunc) func(config interface{}) (service.WorkerList, error) {
	return func(config interface{}) (service.WorkerList, error) {
		cfg, ok := config.(*Config)
		if !ok {
			return nil, fmt.Errorf("unable to cast config")
		}

		cfg.configureLogging()

		world, err := cfg.World.BuildWorld()
		if err != nil {
			return nil, fmt.Errorf("building world: %w", err)
		}

		saves, err := cfg.Storage.Saves.BuildFileStore()
		if err != nil {
			return nil, fmt.Errorf("creating save store: %w", err)
		}

		scores, err := cfg.Storage.Scoreboard.BuildScoreboard()
		if err != nil {
			return nil, fmt.Errorf("creating scoreboard: %w", err)
		}

		handler, err := commands.NewGameHandler(saves, scores)
		if err != nil {
			return nil, fmt.Errorf("creating command handler: %w", err)
		}

		workers := service.WorkerList{}
		session := &sessionWorker{stop: stop}
		if c, ok := scores.(io.Closer); ok {
			session.scores = c
		}

		opts := []console.ConsoleOpt{console.WithScoreboard(scores)}
		if cfg.Events.Enabled {
			events, err := cfg.Events.buildNatsServer()
			if err != nil {
				return nil, fmt.Errorf("creating event server: %w", err)
			}
			workers["events"] = events
			session.events = events
			session.eventsTimeout = cfg.Events.startTimeout()
			opts = append(opts, console.WithPublisher(events))
		}

		state := game.NewGameState(world, cfg.Rules.Build())
		session.console = console.NewConsole(in, out, handler, state, opts...)
		workers["console"] = session

		return workers, nil
	}
}

// sessionWorker runs the console and stops the app when the game ends.
type sessionWorker struct {
	console *console.Console
	scores  io.Closer

	events        *messaging.NatsServer
	eventsTimeout time.Duration

	stop context.CancelFunc
}

func (w *sessionWorker) Start(ctx context.Context) error {
	if w.stop != nil {
		defer w.stop()
	}

	if w.events != nil {
		select {
		case <-w.events.Ready():
			unsub, err := w.events.Subscribe(messaging.AllSubjects, func(data []byte) {
				slog.DebugContext(ctx, "game event", "event", string(data))
			})
			if err != nil {
				slog.WarnContext(ctx, "subscribing to game events", "error", err)
			} else {
				defer unsub()
			}
		case <-time.After(w.eventsTimeout):
			slog.WarnContext(ctx, "event server not ready, continuing without events")
		case <-ctx.Done():
			return nil
		}
	}

	err := w.console.Start(ctx)

	if w.events != nil {
		// Deliver the end-of-session event before the app shuts the server down.
		if ferr := w.events.Flush(); ferr != nil {
			slog.WarnContext(ctx, "flushing game events", "error", ferr)
		}
	}

	if w.scores != nil {
		if cerr := w.scores.Close(); cerr != nil {
			slog.WarnContext(ctx, "closing scoreboard", "error", cerr)
		}
	}

	return err
}
