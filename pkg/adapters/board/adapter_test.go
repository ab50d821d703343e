package board_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/aretw0/markov/pkg/adapters/board"
	"github.com/aretw0/markov/pkg/ports/tests"
)

func cell(n, ladder, snake int) board.Cell {
	return board.Cell{Number: n, LadderTo: ladder, SnakeTo: snake}
}

func TestAdapter_Contract(t *testing.T) {
	a := board.NewAdapter(&bytes.Buffer{}, 100)
	tests.AdapterContractTest[board.Cell](t, a,
		cell(1, board.Empty, board.Empty),
		cell(8, 30, board.Empty),
		cell(13, board.Empty, 4),
		cell(100, board.Empty, board.Empty),
	)
}

func TestAdapter_CompareUsesNumberOnly(t *testing.T) {
	a := board.NewAdapter(nil, 100)
	assert.Zero(t, a.Compare(cell(5, 9, board.Empty), cell(5, board.Empty, board.Empty)))
	assert.Negative(t, a.Compare(cell(4, board.Empty, board.Empty), cell(5, board.Empty, board.Empty)))
}

func TestAdapter_Print(t *testing.T) {
	tests := []struct {
		name string
		cell board.Cell
		want string
	}{
		{name: "Plain", cell: cell(4, board.Empty, board.Empty), want: "[4] -> "},
		{name: "Ladder", cell: cell(8, 30, board.Empty), want: "[8]-ladder to 30 -> "},
		{name: "Snake", cell: cell(13, board.Empty, 4), want: "[13]-snake to 4 -> "},
		{name: "Last", cell: cell(100, board.Empty, board.Empty), want: "[100]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			board.NewAdapter(&buf, 100).Print(tt.cell)
			assert.Equal(t, tt.want, buf.String())
		})
	}
}

func TestAdapter_Painter(t *testing.T) {
	var buf bytes.Buffer
	var kinds []board.Kind
	a := board.NewAdapter(&buf, 100, board.WithPainter(func(k board.Kind, text string) string {
		kinds = append(kinds, k)
		return "<" + text + ">"
	}))

	a.Print(cell(13, board.Empty, 4))
	a.Print(cell(100, board.Empty, board.Empty))

	assert.Equal(t, "<[13]-snake to 4 -> ><[100]>", buf.String())
	assert.Equal(t, []board.Kind{board.KindSnake, board.KindLast}, kinds)
}

func TestAdapter_IsTerminal(t *testing.T) {
	a := board.NewAdapter(nil, 30)
	assert.True(t, a.IsTerminal(cell(30, board.Empty, board.Empty)))
	assert.False(t, a.IsTerminal(cell(29, board.Empty, board.Empty)))
}
