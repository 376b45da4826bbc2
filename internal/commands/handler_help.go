package commands

import (
	"context"
	"fmt"
)

// HelpHandlerFactory creates handlers that list every verb.
type HelpHandlerFactory struct {
	verbs func() []string
}

// NewHelpHandlerFactory creates a HelpHandlerFactory listing the verbs of h.
func NewHelpHandlerFactory(h *Handler) *HelpHandlerFactory {
	return &HelpHandlerFactory{verbs: h.Verbs}
}

func (f *HelpHandlerFactory) Create() (CommandFunc, error) {
	return func(ctx context.Context, cmdCtx *CommandContext) error {
		text, err := ExpandTemplate(helpTemplate, map[string]any{"Verbs": f.verbs()})
		if err != nil {
			return fmt.Errorf("rendering help: %w", err)
		}
		_, err = fmt.Fprintln(cmdCtx.Out, text)
		return err
	}, nil
}
