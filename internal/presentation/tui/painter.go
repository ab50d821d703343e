package tui

import (
	"github.com/muesli/termenv"

	"github.com/aretw0/markov/pkg/adapters/board"
)

// BoardPainter colours board cells: ladders green, snakes red, and the last
// cell bold yellow. Plain cells are left as is.
func BoardPainter(out *termenv.Output) board.Painter {
	ladder := out.Color("#22c55e")
	snake := out.Color("#ef4444")
	last := out.Color("#facc15")

	return func(kind board.Kind, text string) string {
		switch kind {
		case board.KindLadder:
			return out.String(text).Foreground(ladder).String()
		case board.KindSnake:
			return out.String(text).Foreground(snake).String()
		case board.KindLast:
			return out.String(text).Foreground(last).Bold().String()
		}
		return text
	}
}
