package commands

import (
	"context"
	"fmt"
	"strings"

	"github.com/pixil98/go-dungeon/internal/game"
)

// InventoryHandlerFactory creates handlers that list the hero's inventory.
type InventoryHandlerFactory struct{}

func (f *InventoryHandlerFactory) Create() (CommandFunc, error) {
	return func(ctx context.Context, cmdCtx *CommandContext) error {
		_, err := fmt.Fprintln(cmdCtx.Out, strings.Join(FormatInventoryItems(cmdCtx.State.Player.Inventory), "\n"))
		return err
	}, nil
}

// FormatInventoryItems returns one line per item kind, e.g.
// "- Potion (2): Большое зелье, Малое зелье".
func FormatInventoryItems(inv *game.Inventory) []string {
	if inv == nil || inv.Len() == 0 {
		return []string{"Inventory is empty"}
	}

	var lines []string
	for _, g := range inv.Groups() {
		lines = append(lines, fmt.Sprintf("- %s (%d): %s", g.Kind, len(g.Names), strings.Join(g.Names, ", ")))
	}
	return lines
}
