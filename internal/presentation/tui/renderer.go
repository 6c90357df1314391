package tui

import (
	"github.com/charmbracelet/glamour"

	"github.com/pronix/okaara"
)

// NewMarkdownRenderer returns a ContentRenderer that renders markdown using
// glamour. It uses the terminal's detected style and wraps at 80 columns.
// When the renderer cannot be constructed, text passes through untouched.
func NewMarkdownRenderer() okaara.ContentRenderer {
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(), // Automatically detect light/dark background
		glamour.WithWordWrap(80),
	)
	if err != nil {
		return func(text string) (string, error) {
			return text, nil
		}
	}

	return func(markdown string) (string, error) {
		return r.Render(markdown)
	}
}
