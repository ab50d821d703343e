package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/sync/errgroup"

	markovhttp "github.com/aretw0/markov/pkg/adapters/http"
	"github.com/aretw0/markov/pkg/observability"
)

const shutdownTimeout = 5 * time.Second

// ServeOptions configures the serve command.
type ServeOptions struct {
	ChainOptions
	// Listener overrides cfg.Addr when set.
	Listener net.Listener
}

// RunServe loads the chain and serves it over HTTP until ctx is done, then
// reports the signal that stopped it (if any) on out.
func RunServe(ctx context.Context, opts ServeOptions, cfg Config, out, errOut io.Writer) error {
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector())
	recorder, err := observability.NewRecorder(reg)
	if err != nil {
		return err
	}

	s, err := newSettings(cfg, io.Discard, errOut)
	if err != nil {
		return err
	}
	s.hooks = observability.Merge(s.hooks, recorder.Hooks())

	view, err := loadView(ctx, opts.Path, opts.Limit, cfg, s)
	if err != nil {
		return finishCommand(ctx, out, "server", err)
	}
	defer view.Close()

	handler := markovhttp.NewHandler(view.Generator(), cfg.MaxLength,
		promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg}))

	ln := opts.Listener
	if ln == nil {
		if ln, err = net.Listen("tcp", cfg.Addr); err != nil {
			return fmt.Errorf("listen on %s: %w", cfg.Addr, err)
		}
	}
	srv := &http.Server{
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	printSystemMessage(out, "serving %s on %s", view.Name(), ln.Addr())

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := srv.Serve(ln); !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			_ = srv.Close()
			return fmt.Errorf("graceful shutdown did not complete in %v: %w", shutdownTimeout, err)
		}
		logStop(out, "server", signalOf(ctx))
		return nil
	})
	return g.Wait()
}
