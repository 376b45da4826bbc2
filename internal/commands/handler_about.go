package commands

import (
	"context"
	"fmt"

	"github.com/pixil98/go-dungeon/internal/display"
)

// Title is the game's display name.
const Title = "DungeonMini"

type AboutHandlerFactory struct{}

func (f *AboutHandlerFactory) Create() (CommandFunc, error) {
	return func(ctx context.Context, cmdCtx *CommandContext) error {
		text, err := ExpandTemplate(aboutTemplate, map[string]any{"Title": Title})
		if err != nil {
			return fmt.Errorf("rendering about: %w", err)
		}
		_, err = fmt.Fprintln(cmdCtx.Out, display.Wrap(text))
		return err
	}, nil
}
