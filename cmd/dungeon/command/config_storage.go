package command

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pixil98/go-dungeon/internal/game"
	"github.com/pixil98/go-dungeon/internal/storage"
	"github.com/pixil98/go-errors"
)

type StorageConfig struct {
	Saves      SavesConfig      `json:"saves"`
	Scoreboard ScoreboardConfig `json:"scoreboard"`
}

func (c *StorageConfig) validate() error {
	el := errors.NewErrorList()
	el.Add(c.Saves.validate())
	el.Add(c.Scoreboard.validate())
	return el.Err()
}

type SavesConfig struct {
	Path string `json:"path"`
}

func (c *SavesConfig) validate() error {
	if c.Path == "" {
		return fmt.Errorf("saves: path is required")
	}
	return nil
}

func (c *SavesConfig) BuildFileStore() (*storage.FileStore[*game.Snapshot], error) {
	return storage.OpenSaves(c.Path)
}

type ScoreboardDriver int

const (
	ScoreboardDriverFile ScoreboardDriver = iota
	ScoreboardDriverSQLite
)

func (d *ScoreboardDriver) UnmarshalText(text []byte) error {
	switch string(text) {
	case "", "file":
		*d = ScoreboardDriverFile
	case "sqlite":
		*d = ScoreboardDriverSQLite
	default:
		return fmt.Errorf("unknown scoreboard driver: %s", text)
	}
	return nil
}

type ScoreboardConfig struct {
	Driver ScoreboardDriver `json:"driver"`
	Path   string           `json:"path"`
}

func (c *ScoreboardConfig) validate() error {
	el := errors.NewErrorList()

	if c.Path == "" {
		el.Add(fmt.Errorf("scoreboard: path is required"))
	}

	return el.Err()
}

// BuildScoreboard opens the configured scoreboard, creating its parent
// directory if needed. SQLite scoreboards must be closed by the caller.
func (c *ScoreboardConfig) BuildScoreboard() (storage.Scoreboard, error) {
	if err := os.MkdirAll(filepath.Dir(c.Path), 0755); err != nil {
		return nil, fmt.Errorf("creating scoreboard directory: %w", err)
	}

	switch c.Driver {
	case ScoreboardDriverSQLite:
		sb, err := storage.OpenSQLiteScoreboard(c.Path)
		if err != nil {
			return nil, err
		}
		return sb, nil
	default:
		return storage.NewFileScoreboard(c.Path), nil
	}
}
