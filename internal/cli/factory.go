package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/muesli/termenv"

	"github.com/aretw0/markov"
	"github.com/aretw0/markov/internal/presentation/tui"
	"github.com/aretw0/markov/pkg/adapters/board"
	"github.com/aretw0/markov/pkg/adapters/words"
	"github.com/aretw0/markov/pkg/domain"
)

// Input errors reported by the commands.
var (
	ErrFileNotFound   = errors.New("file doesn't exist")
	ErrFilePermission = errors.New("no permission for the file")
	ErrUsage          = errors.New("usage")
)

// CheckFile verifies that path exists and can be opened for reading.
func CheckFile(path string) error {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("%w: %s", ErrFileNotFound, path)
		}
		return fmt.Errorf("stat %s: %w", path, err)
	}
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrPermission) {
			return fmt.Errorf("%w: %s", ErrFilePermission, path)
		}
		return fmt.Errorf("open %s: %w", path, err)
	}
	return f.Close()
}

// chainSettings carries what every chain built by the CLI shares.
type chainSettings struct {
	seed    uint64
	seeded  bool
	logger  *slog.Logger
	hooks   domain.LifecycleHooks
	out     io.Writer
	colored bool
}

func (s chainSettings) options(name string) []markov.Option {
	opts := []markov.Option{
		markov.WithName(name),
		markov.WithLogger(s.logger),
		markov.WithLifecycleHooks(s.hooks),
	}
	if s.seeded {
		opts = append(opts, markov.WithSeed(s.seed))
	}
	return opts
}

// newWordChain reads the corpus at path into a word chain. limit <= 0 reads
// every word.
func newWordChain(ctx context.Context, path string, limit int, s chainSettings) (*markov.Chain[string], error) {
	if err := CheckFile(path); err != nil {
		return nil, err
	}

	chain, err := markov.New[string](words.NewAdapter(s.out), s.options("words")...)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		_ = chain.Close()
		return nil, fmt.Errorf("open corpus: %w", err)
	}
	defer f.Close()

	n, err := words.Fill(ctx, chain, f, limit)
	if err != nil {
		_ = chain.Close()
		return nil, err
	}
	s.logger.Debug("corpus loaded", "path", path, "words", n, "states", chain.Len())
	return chain, nil
}

// newBoardChain builds a snakes-and-ladders chain from the layout at
// layoutPath, or the default board when it is empty.
func newBoardChain(layoutPath string, s chainSettings) (*markov.Chain[board.Cell], error) {
	layout := board.DefaultLayout()
	if layoutPath != "" {
		if err := CheckFile(layoutPath); err != nil {
			return nil, err
		}
		f, err := os.Open(layoutPath)
		if err != nil {
			return nil, fmt.Errorf("open layout: %w", err)
		}
		defer f.Close()
		if layout, err = board.LoadLayout(f); err != nil {
			return nil, err
		}
	}

	cells, err := board.NewBoard(layout)
	if err != nil {
		return nil, err
	}

	var adapterOpts []board.AdapterOption
	if s.colored {
		adapterOpts = append(adapterOpts, board.WithPainter(tui.BoardPainter(termenv.NewOutput(s.out))))
	}

	chain, err := markov.New[board.Cell](board.NewAdapter(s.out, layout.Size, adapterOpts...), s.options("board")...)
	if err != nil {
		return nil, err
	}
	if err := board.Fill(chain, cells); err != nil {
		_ = chain.Close()
		return nil, err
	}
	return chain, nil
}
