package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/pixil98/go-dungeon/internal/game"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Handler maps verbs to compiled commands. Verbs keep the order they were
// registered in.
type Handler struct {
	compiled map[string]CommandFunc
	order    []string
}

func NewHandler() *Handler {
	return &Handler{
		compiled: make(map[string]CommandFunc),
	}
}

// RegisterFactory compiles factory and registers it under verb.
func (h *Handler) RegisterFactory(verb string, factory HandlerFactory) error {
	if verb == "" {
		return fmt.Errorf("verb cannot be empty")
	}
	if factory == nil {
		return fmt.Errorf("handler factory for %q cannot be nil", verb)
	}
	verb = Normalize(verb)
	if _, exists := h.compiled[verb]; exists {
		return fmt.Errorf("verb %q already registered", verb)
	}

	cmdFunc, err := factory.Create()
	if err != nil {
		return fmt.Errorf("creating handler %q: %w", verb, err)
	}

	h.compiled[verb] = cmdFunc
	h.order = append(h.order, verb)
	return nil
}

// Verbs returns every registered verb in registration order.
func (h *Handler) Verbs() []string {
	verbs := make([]string, len(h.order))
	copy(verbs, h.order)
	return verbs
}

// Lookup returns the command registered under verb.
func (h *Handler) Lookup(verb string) (CommandFunc, bool) {
	f, ok := h.compiled[Normalize(verb)]
	return f, ok
}

// Exec runs verb against state, writing output to out. The returned Signal
// is SignalNone unless the command ended the session, which it may do even
// when it also fails.
func (h *Handler) Exec(ctx context.Context, state *game.GameState, out io.Writer, verb string, args ...string) (Signal, error) {
	verb = Normalize(verb)
	cmdFunc, ok := h.compiled[verb]
	if !ok {
		return SignalNone, NewInvalidCommand(fmt.Sprintf("Unknown command: %s", verb))
	}

	cmdCtx := &CommandContext{
		State: state,
		Args:  args,
		Out:   out,
	}
	err := cmdFunc(ctx, cmdCtx)
	return cmdCtx.Signal, err
}

// Normalize lower-cases a verb or direction the way the registry stores it.
func Normalize(s string) string {
	return cases.Lower(language.Und).String(s)
}
