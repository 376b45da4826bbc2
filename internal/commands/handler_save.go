package commands

import (
	"context"
	"fmt"

	"github.com/pixil98/go-dungeon/internal/game"
	"github.com/pixil98/go-dungeon/internal/storage"
)

// SaveSlot is the identifier the current game is saved under.
const SaveSlot = "quicksave"

// SaveHandlerFactory creates handlers that write the session to the save store.
type SaveHandlerFactory struct {
	saves storage.Storer[*game.Snapshot]
}

func NewSaveHandlerFactory(saves storage.Storer[*game.Snapshot]) *SaveHandlerFactory {
	return &SaveHandlerFactory{saves: saves}
}

func (f *SaveHandlerFactory) Create() (CommandFunc, error) {
	if f.saves == nil {
		return nil, fmt.Errorf("save store is required")
	}
	return func(ctx context.Context, cmdCtx *CommandContext) error {
		if err := f.saves.Save(SaveSlot, cmdCtx.State.Snapshot()); err != nil {
			return fmt.Errorf("saving game: %w", err)
		}
		_, err := fmt.Fprintln(cmdCtx.Out, "Game saved.")
		return err
	}, nil
}

// LoadHandlerFactory creates handlers that replace the session with the saved one.
type LoadHandlerFactory struct {
	saves storage.Storer[*game.Snapshot]
}

func NewLoadHandlerFactory(saves storage.Storer[*game.Snapshot]) *LoadHandlerFactory {
	return &LoadHandlerFactory{saves: saves}
}

func (f *LoadHandlerFactory) Create() (CommandFunc, error) {
	if f.saves == nil {
		return nil, fmt.Errorf("save store is required")
	}
	return func(ctx context.Context, cmdCtx *CommandContext) error {
		snap := f.saves.Get(SaveSlot)
		if snap == nil {
			return NewInvalidCommand("No saved game found")
		}

		if err := cmdCtx.State.Restore(snap); err != nil {
			return fmt.Errorf("loading game: %w", err)
		}

		_, err := fmt.Fprintf(cmdCtx.Out, "Game loaded. You are in: %s\n", cmdCtx.State.Current.Name)
		return err
	}, nil
}
