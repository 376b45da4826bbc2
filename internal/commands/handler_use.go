package commands

import (
	"context"
	"fmt"
	"strings"
)

// UseHandlerFactory creates handlers that apply an item from the inventory.
type UseHandlerFactory struct{}

func (f *UseHandlerFactory) Create() (CommandFunc, error) {
	return func(ctx context.Context, cmdCtx *CommandContext) error {
		if len(cmdCtx.Args) == 0 {
			return NewInvalidCommand("Specify an item name")
		}
		name := strings.Join(cmdCtx.Args, " ")

		item := cmdCtx.State.Player.Inventory.Find(name)
		if item == nil {
			return NewInvalidCommand(fmt.Sprintf("Item '%s' not found in the inventory", name))
		}

		_, err := fmt.Fprintln(cmdCtx.Out, item.Apply(cmdCtx.State))
		return err
	}, nil
}
