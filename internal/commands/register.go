package commands

import (
	"fmt"

	"github.com/pixil98/go-dungeon/internal/game"
	"github.com/pixil98/go-dungeon/internal/storage"
)

// NewGameHandler builds a Handler with every game verb registered in the
// order help lists them.
func NewGameHandler(saves storage.Storer[*game.Snapshot], scores storage.Scoreboard) (*Handler, error) {
	h := NewHandler()

	factories := []struct {
		verb    string
		factory HandlerFactory
	}{
		{"help", NewHelpHandlerFactory(h)},
		{"about", &AboutHandlerFactory{}},
		{"gc-stats", &GCStatsHandlerFactory{}},
		{"alloc", NewAllocHandlerFactory(h)},
		{"look", &LookHandlerFactory{}},
		{"move", &MoveHandlerFactory{}},
		{"take", &TakeHandlerFactory{}},
		{"inventory", &InventoryHandlerFactory{}},
		{"use", &UseHandlerFactory{}},
		{"fight", &FightHandlerFactory{}},
		{"save", NewSaveHandlerFactory(saves)},
		{"load", NewLoadHandlerFactory(saves)},
		{"scores", NewScoresHandlerFactory(scores)},
		{"exit", &QuitHandlerFactory{}},
	}

	for _, f := range factories {
		if err := h.RegisterFactory(f.verb, f.factory); err != nil {
			return nil, fmt.Errorf("registering %s: %w", f.verb, err)
		}
	}

	return h, nil
}
