package commands

import (
	"context"
	"fmt"
	"strings"
)

// TakeHandlerFactory creates handlers for picking items up off the floor.
type TakeHandlerFactory struct{}

func (f *TakeHandlerFactory) Create() (CommandFunc, error) {
	return func(ctx context.Context, cmdCtx *CommandContext) error {
		if len(cmdCtx.Args) == 0 {
			return NewInvalidCommand("Specify an item name")
		}
		name := strings.Join(cmdCtx.Args, " ")

		room := cmdCtx.State.Current
		item := room.Items.Remove(name)
		if item == nil {
			return NewInvalidCommand(fmt.Sprintf("Item '%s' not found in the room", name))
		}
		cmdCtx.State.Player.Inventory.Add(item)

		_, err := fmt.Fprintf(cmdCtx.Out, "Taken: %s\n", item.Name)
		return err
	}, nil
}
