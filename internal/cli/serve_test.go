package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net"
	"net/http"
	"syscall"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	markovhttp "github.com/aretw0/markov/pkg/adapters/http"
)

func TestRunServe(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	base := "http://" + ln.Addr().String()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- RunServe(ctx, ServeOptions{Listener: ln}, Config{MaxLength: 60, Seed: 1, SeedSet: true}, io.Discard, io.Discard)
	}()

	require.Eventually(t, func() bool {
		resp, err := http.Get(base + "/healthz")
		if err != nil {
			return false
		}
		resp.Body.Close()
		return resp.StatusCode == http.StatusOK
	}, 5*time.Second, 20*time.Millisecond)

	resp, err := http.Get(base + "/walks?count=2")
	require.NoError(t, err)
	var walks []markovhttp.WalkResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&walks))
	resp.Body.Close()

	require.Len(t, walks, 2)
	for _, w := range walks {
		assert.Equal(t, "[1]", w.States[0])
		assert.LessOrEqual(t, w.Length, 60)
	}

	metrics, err := http.Get(base + "/metrics")
	require.NoError(t, err)
	body, _ := io.ReadAll(metrics.Body)
	metrics.Body.Close()
	assert.Contains(t, string(body), "markov_steps_total")

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}
}

func TestRunServe_ReportsSignal(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	parent, cancel := context.WithCancel(context.Background())
	ctx := &SignalContext{Context: parent, Cancel: cancel, sigVal: syscall.SIGTERM}
	cancel()

	var out bytes.Buffer
	err = RunServe(ctx, ServeOptions{Listener: ln}, Config{MaxLength: 20, Seed: 1, SeedSet: true}, &out, io.Discard)
	require.NoError(t, err)
	assert.Contains(t, out.String(), "[markov] server terminated (terminated)\n")
}

func TestRunServe_ListenError(t *testing.T) {
	err := RunServe(context.Background(), ServeOptions{}, Config{MaxLength: 20, Addr: "256.0.0.1:bad"}, io.Discard, io.Discard)
	assert.Error(t, err)
}
