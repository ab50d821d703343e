package board

import "fmt"

// Empty marks a cell without a ladder or a snake.
const Empty = -1

// Cell is one square of the board.
type Cell struct {
	Number   int `json:"number"`
	LadderTo int `json:"ladder_to"`
	SnakeTo  int `json:"snake_to"`
}

// Kind classifies a cell for rendering.
type Kind int

const (
	KindPlain Kind = iota
	KindLadder
	KindSnake
	KindLast
)

// Destination returns where a jump from the cell lands, if it has one.
func (c Cell) Destination() (int, bool) {
	switch {
	case c.LadderTo != Empty:
		return c.LadderTo, true
	case c.SnakeTo != Empty:
		return c.SnakeTo, true
	}
	return 0, false
}

func (c Cell) String() string {
	return fmt.Sprintf("[%d]", c.Number)
}

// NewBoard builds the cells of a validated layout, numbered from 1.
func NewBoard(layout Layout) ([]Cell, error) {
	if err := layout.Validate(); err != nil {
		return nil, err
	}

	cells := make([]Cell, layout.Size)
	for i := range cells {
		cells[i] = Cell{Number: i + 1, LadderTo: Empty, SnakeTo: Empty}
	}
	for _, j := range layout.Jumps {
		if j.IsLadder() {
			cells[j.From-1].LadderTo = j.To
		} else {
			cells[j.From-1].SnakeTo = j.To
		}
	}
	return cells, nil
}
