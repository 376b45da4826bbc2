package commands

// InvalidCommandError is a failure caused by the player: a missing argument,
// an unknown verb or a precondition the world does not meet. The console
// reports it and carries on.
type InvalidCommandError struct {
	Message string
}

func (e *InvalidCommandError) Error() string {
	return e.Message
}

// NewInvalidCommand creates a player-facing error.
func NewInvalidCommand(msg string) *InvalidCommandError {
	return &InvalidCommandError{Message: msg}
}
