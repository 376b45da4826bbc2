package display

import "github.com/muesli/reflow/wordwrap"

const DefaultWidth = 80

// Wrap word-wraps text to DefaultWidth, preserving existing line breaks.
func Wrap(text string) string {
	return wordwrap.String(text, DefaultWidth)
}
