package http_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/markov"
	markovhttp "github.com/aretw0/markov/pkg/adapters/http"
	"github.com/aretw0/markov/pkg/adapters/words"
	"github.com/aretw0/markov/pkg/observability"
)

func identity(s string) string { return s }

func newHandler(t *testing.T, build func(*markov.Chain[string]), startFirst bool) (http.Handler, *observability.Recorder) {
	t.Helper()
	reg := prometheus.NewRegistry()
	rec, err := observability.NewRecorder(reg)
	require.NoError(t, err)

	chain, err := markov.New[string](words.NewAdapter(io.Discard),
		markov.WithSeed(5),
		markov.WithLifecycleHooks(rec.Hooks()),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = chain.Close() })
	build(chain)

	svc := markovhttp.NewChainService(chain, identity, startFirst)
	return markovhttp.NewHandler(svc, 20, promhttp.HandlerFor(reg, promhttp.HandlerOpts{})), rec
}

func sentence(chain *markov.Chain[string]) {
	hello, _ := chain.Add("hello")
	world, _ := chain.Add("world.")
	_ = chain.AddTransition(hello, world)
}

func get(t *testing.T, h http.Handler, target string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func TestWalks(t *testing.T) {
	h, _ := newHandler(t, sentence, false)

	w := get(t, h, "/walks?count=3&max=5")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

	var walks []markovhttp.WalkResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &walks))
	require.Len(t, walks, 3)
	for _, walk := range walks {
		assert.Equal(t, []string{"hello", "world."}, walk.States)
		assert.Equal(t, 2, walk.Length)
		assert.Equal(t, "terminal", walk.Reason)
		assert.NotEmpty(t, walk.ID)
	}

	m := get(t, h, "/metrics")
	require.Equal(t, http.StatusOK, m.Code)
	assert.Contains(t, m.Body.String(), `markov_walks_total{reason="terminal"} 3`)
}

func TestWalks_BadParams(t *testing.T) {
	h, _ := newHandler(t, sentence, false)

	for _, target := range []string{"/walks?count=0", "/walks?count=abc", "/walks?max=-1", "/walks?count=101", "/walks?max=1001"} {
		t.Run(target, func(t *testing.T) {
			assert.Equal(t, http.StatusBadRequest, get(t, h, target).Code)
		})
	}
}

func TestWalks_NoStartState(t *testing.T) {
	h, _ := newHandler(t, func(chain *markov.Chain[string]) {
		_, _ = chain.Add("only.")
	}, false)

	assert.Equal(t, http.StatusConflict, get(t, h, "/walks").Code)
}

func TestWalks_StartFirst(t *testing.T) {
	h, _ := newHandler(t, func(chain *markov.Chain[string]) {
		a, _ := chain.Add("a")
		b, _ := chain.Add("b")
		_ = chain.AddTransition(a, b)
		_ = chain.AddTransition(b, a)
	}, true)

	w := get(t, h, "/walks?count=2&max=3")
	require.Equal(t, http.StatusOK, w.Code)

	var walks []markovhttp.WalkResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &walks))
	for _, walk := range walks {
		assert.Equal(t, []string{"a", "b", "a"}, walk.States)
		assert.Equal(t, "max_length", walk.Reason)
	}
}

func cycle(chain *markov.Chain[string]) {
	a, _ := chain.Add("a")
	b, _ := chain.Add("b")
	_ = chain.AddTransition(a, b)
	_ = chain.AddTransition(b, a)
}

func TestWalks_DefaultLengthClamped(t *testing.T) {
	chain, err := markov.New[string](words.NewAdapter(io.Discard), markov.WithSeed(1))
	require.NoError(t, err)
	t.Cleanup(func() { _ = chain.Close() })
	cycle(chain)
	svc := markovhttp.NewChainService(chain, identity, true)

	tests := []struct {
		defaultLength int
		want          int
	}{
		{defaultLength: 5000, want: markovhttp.MaxWalkLength},
		{defaultLength: 0, want: 1},
		{defaultLength: 7, want: 7},
	}
	for _, tt := range tests {
		h := markovhttp.NewHandler(svc, tt.defaultLength, nil)
		w := get(t, h, "/walks")
		require.Equal(t, http.StatusOK, w.Code)

		var walks []markovhttp.WalkResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &walks))
		require.Len(t, walks, 1)
		assert.Equal(t, tt.want, walks[0].Length, "default length %d", tt.defaultLength)
	}
}

func TestGraph(t *testing.T) {
	h, _ := newHandler(t, sentence, false)

	w := get(t, h, "/graph")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "graph TD")
	assert.Contains(t, w.Body.String(), "s0 -->|1| s1")
}

func TestHealth(t *testing.T) {
	h, _ := newHandler(t, sentence, false)
	assert.Equal(t, http.StatusOK, get(t, h, "/healthz").Code)

	empty, _ := newHandler(t, func(*markov.Chain[string]) {}, false)
	assert.Equal(t, http.StatusServiceUnavailable, get(t, empty, "/healthz").Code)
}

func TestCORSPreflight(t *testing.T) {
	h, _ := newHandler(t, sentence, false)

	req := httptest.NewRequest(http.MethodOptions, "/walks", nil)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}
