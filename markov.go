package markov

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/aretw0/markov/internal/runtime"
	"github.com/aretw0/markov/internal/validator"
	"github.com/aretw0/markov/pkg/domain"
	"github.com/aretw0/markov/pkg/ports"
)

// Version of the markov module.
const Version = "0.1.0"

// Node is one deduplicated state of a Chain.
type Node[T any] = runtime.Node[T]

// Frequency is a weighted edge between two nodes of a Chain.
type Frequency[T any] = runtime.Frequency[T]

// Walk is the outcome of one generation.
type Walk[T any] = domain.Walk[T]

// ValidationReport lists dead ends and unreachable states by node index.
type ValidationReport = validator.Report

// Chain is the high-level entry point of the library: a state database with
// its transition table and the generation engine walking it.
// A Chain is not safe for concurrent use.
type Chain[T any] struct {
	db     *runtime.Database[T]
	engine *runtime.Engine[T]
	logger *slog.Logger
	Name   string
}

type config struct {
	source ports.Source
	hooks  domain.LifecycleHooks
	logger *slog.Logger
	newID  func() string
	name   string
}

// Option defines a functional option for configuring a Chain.
type Option func(*config)

// WithSeed seeds the chain's own PCG generator.
func WithSeed(seed uint64) Option {
	return func(c *config) {
		c.source = ports.NewSource(seed)
	}
}

// WithSource injects the random source used for start states and transitions.
func WithSource(src ports.Source) Option {
	return func(c *config) {
		c.source = src
	}
}

// WithLifecycleHooks registers observability hooks.
func WithLifecycleHooks(hooks domain.LifecycleHooks) Option {
	return func(c *config) {
		c.hooks = hooks
	}
}

// WithLogger sets a custom structured logger for the chain.
func WithLogger(logger *slog.Logger) Option {
	return func(c *config) {
		c.logger = logger
	}
}

// WithWalkIDs overrides how walk IDs are generated.
func WithWalkIDs(fn func() string) Option {
	return func(c *config) {
		c.newID = fn
	}
}

// WithName labels the chain in logs.
func WithName(name string) Option {
	return func(c *config) {
		c.name = name
	}
}

// New creates an empty Chain over payloads handled by adapter.
// Without WithSeed or WithSource the chain draws from an unseeded PCG.
func New[T any](adapter ports.Adapter[T], opts ...Option) (*Chain[T], error) {
	if adapter == nil {
		return nil, fmt.Errorf("adapter is required")
	}

	cfg := &config{}
	for _, opt := range opts {
		opt(cfg)
	}

	if cfg.source == nil {
		cfg.source = ports.NewRandomSource()
	}

	// Ensure logger is initialized (so we don't pass nil to runtime)
	if cfg.logger == nil {
		cfg.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if cfg.name != "" {
		cfg.logger = cfg.logger.With("chain", cfg.name)
	}

	db := runtime.NewDatabase(adapter)
	engine := runtime.NewEngine(db, cfg.source,
		runtime.WithLifecycleHooks(cfg.hooks),
		runtime.WithLogger(cfg.logger),
		runtime.WithIDGenerator(cfg.newID),
	)

	return &Chain[T]{
		db:     db,
		engine: engine,
		logger: cfg.logger,
		Name:   cfg.name,
	}, nil
}

// Add returns the node for data, inserting a clone of it when the state is new.
func (c *Chain[T]) Add(data T) (*Node[T], error) {
	before := c.db.Len()
	n, err := c.db.InsertOrGet(data)
	if err != nil {
		return nil, err
	}
	if c.db.Len() > before {
		c.logger.Debug("state added", "index", n.Index())
	}
	return n, nil
}

// Find returns the node whose payload compares equal to data.
func (c *Chain[T]) Find(data T) (*Node[T], bool) {
	return c.db.Find(data)
}

// AddTransition records one observation of the edge from -> to.
func (c *Chain[T]) AddTransition(from, to *Node[T]) error {
	return c.db.AddTransition(from, to)
}

// AddTransitionN records count observations of the edge from -> to.
func (c *Chain[T]) AddTransitionN(from, to *Node[T], count int) error {
	return c.db.AddTransitionN(from, to, count)
}

// Generate performs a random walk of at most maxLength states, emitting each
// one through the adapter's Print. A nil start picks a random non-terminal state.
func (c *Chain[T]) Generate(ctx context.Context, start *Node[T], maxLength int) (Walk[T], error) {
	return c.engine.Generate(ctx, start, maxLength)
}

// GenerateFrom resolves data to its node and walks from there.
func (c *Chain[T]) GenerateFrom(ctx context.Context, data T, maxLength int) (Walk[T], error) {
	start, ok := c.db.Find(data)
	if !ok {
		return Walk[T]{}, domain.ErrStateNotFound
	}
	return c.engine.Generate(ctx, start, maxLength)
}

// Len returns the number of distinct states.
func (c *Chain[T]) Len() int {
	return c.db.Len()
}

// First returns the oldest state of the chain.
func (c *Chain[T]) First() (*Node[T], bool) {
	return c.db.First()
}

// Nodes returns every state in insertion order.
func (c *Chain[T]) Nodes() []*Node[T] {
	return c.db.Nodes()
}

// Adapter returns the capability set the chain was built with.
func (c *Chain[T]) Adapter() ports.Adapter[T] {
	return c.db.Adapter()
}

// IsTerminal reports whether n ends a walk.
func (c *Chain[T]) IsTerminal(n *Node[T]) bool {
	return c.db.Adapter().IsTerminal(n.Data())
}

// Close releases every payload through the adapter and empties the chain.
// It is safe to call on a partially built chain and more than once.
func (c *Chain[T]) Close() error {
	if c.db.Closed() {
		return nil
	}
	size := c.db.Len()
	c.db.Release()
	c.logger.Debug("chain closed", "released", size)
	return nil
}

// Validate reports non-terminal dead ends (as an error) and states that no walk
// from the first state can reach.
func (c *Chain[T]) Validate() (ValidationReport, error) {
	report, err := validator.ValidateChain(c.db)
	if err != nil {
		return report, err
	}
	return report, report.Err()
}
