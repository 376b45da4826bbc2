package commands

import (
	"context"
	"fmt"

	"github.com/pixil98/go-dungeon/internal/display"
)

// LookHandlerFactory creates handlers that describe the current room.
type LookHandlerFactory struct{}

func (f *LookHandlerFactory) Create() (CommandFunc, error) {
	return func(ctx context.Context, cmdCtx *CommandContext) error {
		_, err := fmt.Fprintln(cmdCtx.Out, display.Wrap(cmdCtx.State.Current.Describe()))
		return err
	}, nil
}
