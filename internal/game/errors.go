package game

import "errors"

var (
	ErrUnknownRoom = errors.New("unknown room")
	ErrNoWorld     = errors.New("world is not loaded")
)
