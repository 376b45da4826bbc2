package commands

import (
	"context"
	"fmt"
	"strings"

	"github.com/pixil98/go-dungeon/internal/game"
)

// MoveHandlerFactory creates handlers that move the hero between rooms.
type MoveHandlerFactory struct{}

func (f *MoveHandlerFactory) Create() (CommandFunc, error) {
	return func(ctx context.Context, cmdCtx *CommandContext) error {
		if len(cmdCtx.Args) == 0 {
			return NewInvalidCommand(fmt.Sprintf("Specify a direction: %s", strings.Join(game.Directions, ", ")))
		}
		direction := Normalize(cmdCtx.Args[0])

		state := cmdCtx.State
		exit := state.Current.Exit(direction)
		if exit == nil {
			return NewInvalidCommand(fmt.Sprintf("There is no way %s", direction))
		}

		if exit.Locked(state.Player.Inventory) {
			msg := exit.LockedMessage
			if msg == "" {
				msg = fmt.Sprintf("The way %s is locked. You need a %s.", direction, strings.ToLower(exit.Requires.String()))
			}
			return NewInvalidCommand(msg)
		}

		if exit.Requires != game.ItemNone && exit.UnlockMessage != "" {
			fmt.Fprintln(cmdCtx.Out, exit.UnlockMessage)
		}

		state.Current = exit.To
		_, err := fmt.Fprintf(cmdCtx.Out, "You moved to: %s\n", exit.To.Name)
		return err
	}, nil
}
