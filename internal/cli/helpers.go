package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/aretw0/markov/internal/logging"
	"github.com/aretw0/markov/pkg/observability"
)

// SignalContext wraps a context and captures the signal that cancelled it.
type SignalContext struct {
	context.Context
	Cancel func()
	sigCh  chan os.Signal
	sigVal os.Signal
	mu     sync.Mutex
}

// NewSignalContext creates a context that is cancelled on SIGINT or SIGTERM.
// It acts as a drop-in replacement for signal.NotifyContext but allows retrieving the signal.
func NewSignalContext(parent context.Context) *SignalContext {
	ctx, cancel := context.WithCancel(parent)
	sc := &SignalContext{
		Context: ctx,
		Cancel:  cancel,
		sigCh:   make(chan os.Signal, 1),
	}

	signal.Notify(sc.sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		select {
		case sig := <-sc.sigCh:
			sc.mu.Lock()
			sc.sigVal = sig
			sc.mu.Unlock()
			sc.Cancel()
		case <-sc.Context.Done():
		}
		signal.Stop(sc.sigCh)
	}()

	return sc
}

// Signal returns the signal that caused the context to be cancelled, or nil.
func (sc *SignalContext) Signal() os.Signal {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	return sc.sigVal
}

// signalOf returns the signal that cancelled ctx, if ctx is a *SignalContext.
func signalOf(ctx context.Context) os.Signal {
	if sc, ok := ctx.(*SignalContext); ok {
		return sc.Signal()
	}
	return nil
}

// createLogger configures the application logger on w (Stderr, away from the
// walks on Stdout). --debug forces the debug level; without it and without
// log_level the logger is silent.
func createLogger(cfg Config, w io.Writer) (*slog.Logger, error) {
	switch {
	case cfg.Debug:
		return logging.New(w, slog.LevelDebug, logging.Format(cfg.LogFormat)), nil
	case cfg.LogLevel == "":
		return logging.NewNop(), nil
	}
	level, err := logging.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUsage, err)
	}
	return logging.New(w, level, logging.Format(cfg.LogFormat)), nil
}

// newSettings derives the chain settings of a command from its config.
func newSettings(cfg Config, out, errOut io.Writer) (chainSettings, error) {
	logger, err := createLogger(cfg, errOut)
	if err != nil {
		return chainSettings{}, err
	}
	s := chainSettings{
		seed:   cfg.Seed,
		seeded: cfg.SeedSet,
		logger: logger,
		out:    out,
	}
	if logger.Enabled(context.Background(), slog.LevelInfo) {
		s.hooks = observability.LogHooks(logger)
	}
	return s, nil
}

// handleExecutionError hides interruptions so Ctrl+C exits cleanly.
func handleExecutionError(err error) error {
	if err == nil || errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

// finishCommand reports an interrupted command on w and maps the
// interruption to a clean exit.
func finishCommand(ctx context.Context, w io.Writer, what string, err error) error {
	if errors.Is(err, context.Canceled) {
		logStop(w, what, signalOf(ctx))
	}
	return handleExecutionError(err)
}

// logStop prints how a command stopped: by Ctrl+C, by another signal, or by
// its context being cancelled.
func logStop(w io.Writer, what string, sig os.Signal) {
	switch {
	case sig == os.Interrupt:
		printSystemMessage(w, "%s interrupted", what)
	case sig != nil:
		printSystemMessage(w, "%s terminated (%v)", what, sig)
	default:
		printSystemMessage(w, "%s stopped", what)
	}
}

// printSystemMessage prints a standardized system message.
func printSystemMessage(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, "[markov] "+format+"\n", args...)
}
