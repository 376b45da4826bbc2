package commands

import (
	"context"
	"fmt"

	"github.com/pixil98/go-dungeon/internal/storage"
)

// ScoresHandlerFactory creates handlers that print the scoreboard.
type ScoresHandlerFactory struct {
	scores storage.Scoreboard
}

func NewScoresHandlerFactory(scores storage.Scoreboard) *ScoresHandlerFactory {
	return &ScoresHandlerFactory{scores: scores}
}

func (f *ScoresHandlerFactory) Create() (CommandFunc, error) {
	if f.scores == nil {
		return nil, fmt.Errorf("scoreboard is required")
	}
	return func(ctx context.Context, cmdCtx *CommandContext) error {
		entries, err := f.scores.All()
		if err != nil {
			return fmt.Errorf("reading scoreboard: %w", err)
		}

		if len(entries) == 0 {
			_, err = fmt.Fprintln(cmdCtx.Out, "No scores recorded yet")
			return err
		}

		text, err := ExpandTemplate(scoresTemplate, map[string]any{"Entries": entries})
		if err != nil {
			return fmt.Errorf("rendering scores: %w", err)
		}
		_, err = fmt.Fprintln(cmdCtx.Out, text)
		return err
	}, nil
}
