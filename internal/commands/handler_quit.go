package commands

import (
	"context"
	"fmt"
)

// QuitHandlerFactory creates handlers that end the session.
type QuitHandlerFactory struct{}

func (f *QuitHandlerFactory) Create() (CommandFunc, error) {
	return func(ctx context.Context, cmdCtx *CommandContext) error {
		cmdCtx.Signal = SignalExit
		_, err := fmt.Fprintln(cmdCtx.Out, "Bye!")
		return err
	}, nil
}
