package commands

import (
	"context"
	"io"

	"github.com/pixil98/go-dungeon/internal/game"
)

// Signal tells the console loop what to do once a command has run.
type Signal int

const (
	// SignalNone lets the loop carry on.
	SignalNone Signal = iota
	// SignalExit ends the session at the player's request.
	SignalExit
	// SignalDeath ends the session because the hero died.
	SignalDeath
)

func (s Signal) String() string {
	switch s {
	case SignalExit:
		return "exit"
	case SignalDeath:
		return "death"
	default:
		return "none"
	}
}

// CommandContext is everything a command may read or change.
type CommandContext struct {
	State *game.GameState
	Args  []string
	Out   io.Writer

	// Signal is set by commands that end the session.
	Signal Signal
}

// CommandFunc is the signature for compiled command functions.
type CommandFunc func(ctx context.Context, cmdCtx *CommandContext) error

// HandlerFactory creates the CommandFunc for one verb.
type HandlerFactory interface {
	Create() (CommandFunc, error)
}
