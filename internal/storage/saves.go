package storage

import (
	"fmt"
	"os"

	"github.com/pixil98/go-dungeon/internal/game"
)

// OpenSaves opens the save-game store kept under dir, creating the
// directory if it does not exist yet.
func OpenSaves(dir string) (*FileStore[*game.Snapshot], error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("creating save directory: %w", err)
	}

	saves, err := NewFileStore[*game.Snapshot](dir)
	if err != nil {
		return nil, fmt.Errorf("opening saves: %w", err)
	}
	return saves, nil
}
