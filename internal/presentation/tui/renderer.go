package tui

import (
	"io"

	"github.com/charmbracelet/glamour"
	"golang.org/x/term"
)

// IsTTY reports whether w is a file attached to a terminal.
func IsTTY(w io.Writer) bool {
	f, ok := w.(interface{ Fd() uintptr })
	return ok && term.IsTerminal(int(f.Fd()))
}

// NewRenderer returns a function that renders markdown using glamour when w
// is a terminal, and passes the markdown through untouched otherwise.
func NewRenderer(w io.Writer) func(string) (string, error) {
	if !IsTTY(w) {
		return func(markdown string) (string, error) {
			return markdown, nil
		}
	}

	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(), // Automatically detect light/dark background
	)
	if err != nil {
		return func(markdown string) (string, error) {
			return markdown, nil
		}
	}

	return func(markdown string) (string, error) {
		return r.Render(markdown)
	}
}
