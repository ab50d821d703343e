package board

import (
	_ "embed"
	"errors"
	"fmt"
	"io"
	"reflect"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

//go:embed default_layout.yaml
var defaultLayoutYAML []byte

// Layout errors.
var (
	ErrBoardTooSmall = errors.New("board needs at least 2 cells")
	ErrJumpOutside   = errors.New("jump leaves the board")
	ErrJumpInvalid   = errors.New("invalid jump")
)

// Jump moves a token from one cell to another: up for a ladder, down for a snake.
type Jump struct {
	From int `mapstructure:"from" yaml:"from"`
	To   int `mapstructure:"to" yaml:"to"`
}

// IsLadder reports whether the jump goes up the board.
func (j Jump) IsLadder() bool {
	return j.From < j.To
}

// Layout describes a board: its number of cells and its snakes and ladders.
type Layout struct {
	Size  int    `mapstructure:"size" yaml:"size"`
	Jumps []Jump `mapstructure:"jumps" yaml:"jumps"`
}

// DefaultLayout returns the classic 100-cell board with 20 jumps.
func DefaultLayout() Layout {
	l, err := parseLayout(defaultLayoutYAML)
	if err != nil {
		panic(fmt.Sprintf("embedded board layout: %v", err))
	}
	return l
}

// LoadLayout decodes and validates a YAML layout.
func LoadLayout(r io.Reader) (Layout, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return Layout{}, fmt.Errorf("read layout: %w", err)
	}
	return parseLayout(data)
}

func parseLayout(data []byte) (Layout, error) {
	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return Layout{}, fmt.Errorf("parse layout: %w", err)
	}

	var l Layout
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook:       pairToJumpHook,
		WeaklyTypedInput: true,
		ErrorUnused:      true,
		Result:           &l,
	})
	if err != nil {
		return Layout{}, err
	}
	if err := decoder.Decode(raw); err != nil {
		return Layout{}, fmt.Errorf("decode layout: %w", err)
	}

	if err := l.Validate(); err != nil {
		return Layout{}, err
	}
	return l, nil
}

// pairToJumpHook accepts the compact [from, to] form for a Jump.
func pairToJumpHook(from reflect.Type, to reflect.Type, data any) (any, error) {
	if to != reflect.TypeOf(Jump{}) || from.Kind() != reflect.Slice {
		return data, nil
	}
	pair, ok := data.([]any)
	if !ok || len(pair) != 2 {
		return nil, fmt.Errorf("%w: want [from, to], got %v", ErrJumpInvalid, data)
	}
	return map[string]any{"from": pair[0], "to": pair[1]}, nil
}

// Validate checks that every jump stays on the board, that no cell jumps to
// itself or holds two jumps, and that the last cell has none.
func (l Layout) Validate() error {
	if l.Size < 2 {
		return ErrBoardTooSmall
	}
	seen := make(map[int]bool, len(l.Jumps))
	for _, j := range l.Jumps {
		if j.From < 1 || j.From > l.Size || j.To < 1 || j.To > l.Size {
			return fmt.Errorf("%w: %d -> %d on %d cells", ErrJumpOutside, j.From, j.To, l.Size)
		}
		if j.From == j.To {
			return fmt.Errorf("%w: cell %d jumps to itself", ErrJumpInvalid, j.From)
		}
		if j.From == l.Size {
			return fmt.Errorf("%w: last cell %d cannot jump", ErrJumpInvalid, j.From)
		}
		if seen[j.From] {
			return fmt.Errorf("%w: cell %d has two jumps", ErrJumpInvalid, j.From)
		}
		seen[j.From] = true
	}
	return nil
}
