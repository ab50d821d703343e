package runtime

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/aretw0/markov/pkg/domain"
	"github.com/aretw0/markov/pkg/ports"
	"github.com/google/uuid"
)

// Engine walks the chain stored in a Database.
type Engine[T any] struct {
	db     *Database[T]
	src    ports.Source
	hooks  domain.LifecycleHooks
	logger *slog.Logger
	newID  func() string
}

type engineOptions struct {
	hooks  domain.LifecycleHooks
	logger *slog.Logger
	newID  func() string
}

// EngineOption configures an Engine.
type EngineOption func(*engineOptions)

// WithLifecycleHooks registers observability hooks.
func WithLifecycleHooks(hooks domain.LifecycleHooks) EngineOption {
	return func(o *engineOptions) {
		o.hooks = hooks
	}
}

// WithLogger sets the structured logger. A nil logger keeps the default.
func WithLogger(logger *slog.Logger) EngineOption {
	return func(o *engineOptions) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithIDGenerator overrides how walk IDs are minted (uuid by default).
func WithIDGenerator(fn func() string) EngineOption {
	return func(o *engineOptions) {
		if fn != nil {
			o.newID = fn
		}
	}
}

// NewEngine creates an engine over db drawing randomness from src.
func NewEngine[T any](db *Database[T], src ports.Source, opts ...EngineOption) *Engine[T] {
	o := engineOptions{
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		newID:  uuid.NewString,
	}
	for _, opt := range opts {
		opt(&o)
	}
	return &Engine[T]{
		db:     db,
		src:    src,
		hooks:  o.hooks,
		logger: o.logger,
		newID:  o.newID,
	}
}

// RandomStart draws database nodes uniformly until it hits a non-terminal one.
// It fails with domain.ErrNoStartState instead of looping forever when every
// state is terminal (or the database is empty).
func (e *Engine[T]) RandomStart() (*Node[T], error) {
	if e.db.Closed() {
		return nil, domain.ErrChainClosed
	}
	adapter := e.db.Adapter()

	candidates := 0
	for _, n := range e.db.nodes {
		if !adapter.IsTerminal(n.data) {
			candidates++
		}
	}
	if candidates == 0 {
		return nil, domain.ErrNoStartState
	}

	for {
		n := e.db.nodes[e.src.IntN(len(e.db.nodes))]
		if !adapter.IsTerminal(n.data) {
			return n, nil
		}
	}
}

// Generate performs one random walk and emits every visited state through the
// adapter's Print. A nil start picks a random non-terminal state.
// The walk stops after maxLength states, or earlier as soon as a terminal state
// is emitted (the start included).
// Reaching a non-terminal state without transitions fails with a
// *domain.StepError wrapping domain.ErrNoTransitions; the returned walk still
// holds what was emitted up to that point.
func (e *Engine[T]) Generate(ctx context.Context, start *Node[T], maxLength int) (domain.Walk[T], error) {
	walk := domain.Walk[T]{ID: e.newID()}

	if e.db.Closed() {
		return walk, domain.ErrChainClosed
	}
	if maxLength < 1 {
		return walk, domain.ErrInvalidLength
	}
	if start == nil {
		n, err := e.RandomStart()
		if err != nil {
			return walk, err
		}
		start = n
	} else if !e.db.Owns(start) {
		return walk, domain.ErrForeignNode
	}

	e.logger.DebugContext(ctx, "walk started", "walk_id", walk.ID, "start", start.index, "max_length", maxLength)
	e.emitWalkStart(ctx, walk.ID, maxLength)

	current := start
	walk.Reason = domain.StopMaxLength
	if e.visit(ctx, &walk, current, 0) {
		walk.Reason = domain.StopTerminal
	}

	var err error
	for step := 1; step < maxLength && walk.Reason != domain.StopTerminal; step++ {
		if ctxErr := ctx.Err(); ctxErr != nil {
			walk.Reason = domain.StopCanceled
			err = ctxErr
			break
		}

		next, selErr := SelectNext(e.src, current)
		if selErr != nil {
			walk.Reason = domain.StopFailed
			err = &domain.StepError{Step: step, Err: selErr}
			break
		}

		if e.visit(ctx, &walk, next, step) {
			walk.Reason = domain.StopTerminal
		}
		current = next
	}

	e.logger.DebugContext(ctx, "walk finished", "walk_id", walk.ID, "length", walk.Len(), "reason", walk.Reason)
	e.emitWalkEnd(ctx, walk, maxLength)
	return walk, err
}

// visit emits one state and reports whether it is terminal.
func (e *Engine[T]) visit(ctx context.Context, walk *domain.Walk[T], n *Node[T], step int) bool {
	adapter := e.db.Adapter()
	adapter.Print(n.data)
	walk.States = append(walk.States, n.data)

	terminal := adapter.IsTerminal(n.data)
	if e.hooks.OnStep != nil {
		e.hooks.OnStep(ctx, &domain.StepEvent{
			EventBase: domain.EventBase{Timestamp: time.Now(), Type: domain.EventStep, WalkID: walk.ID},
			Step:      step,
			Index:     n.index,
			Terminal:  terminal,
		})
	}
	return terminal
}

func (e *Engine[T]) emitWalkStart(ctx context.Context, walkID string, maxLength int) {
	if e.hooks.OnWalkStart == nil {
		return
	}
	e.hooks.OnWalkStart(ctx, &domain.WalkEvent{
		EventBase: domain.EventBase{Timestamp: time.Now(), Type: domain.EventWalkStart, WalkID: walkID},
		MaxLength: maxLength,
	})
}

func (e *Engine[T]) emitWalkEnd(ctx context.Context, walk domain.Walk[T], maxLength int) {
	if e.hooks.OnWalkEnd == nil {
		return
	}
	e.hooks.OnWalkEnd(ctx, &domain.WalkEvent{
		EventBase: domain.EventBase{Timestamp: time.Now(), Type: domain.EventWalkEnd, WalkID: walk.ID},
		MaxLength: maxLength,
		Length:    walk.Len(),
		Reason:    walk.Reason,
	})
}
