package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFlags(t *testing.T, args ...string) *pflag.FlagSet {
	t.Helper()
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.Uint64("seed", 0, "")
	fs.Int("max-length", DefaultMaxLength, "")
	fs.Bool("debug", false, "")
	fs.String("addr", defaultAddr, "")
	fs.String("layout", "", "")
	fs.String("log-format", "text", "")
	fs.String("log-level", "", "")
	require.NoError(t, fs.Parse(args))
	return fs
}

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig(newFlags(t), t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, DefaultMaxLength, cfg.MaxLength)
	assert.Equal(t, ":8080", cfg.Addr)
	assert.False(t, cfg.SeedSet)
	assert.False(t, cfg.Debug)
	assert.Equal(t, "text", cfg.LogFormat)
	assert.Empty(t, cfg.LogLevel)
}

func TestLoadConfig_LogLevel(t *testing.T) {
	t.Setenv("MARKOV_LOG_LEVEL", "warn")
	cfg, err := LoadConfig(newFlags(t), "")
	require.NoError(t, err)
	assert.Equal(t, "warn", cfg.LogLevel)

	cfg, err = LoadConfig(newFlags(t, "--log-level=info"), "")
	require.NoError(t, err)
	assert.Equal(t, "info", cfg.LogLevel, "flag beats env")
}

func TestLoadConfig_Precedence(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "markov.yaml"), []byte(
		"seed: 9\nmax_length: 40\naddr: \":7000\"\nlayout: board.yaml\n"), 0o644))
	t.Setenv("MARKOV_MAX_LENGTH", "30")
	t.Setenv("MARKOV_ADDR", ":9000")

	cfg, err := LoadConfig(newFlags(t, "--addr=:9100"), dir)
	require.NoError(t, err)

	assert.Equal(t, uint64(9), cfg.Seed, "file")
	assert.True(t, cfg.SeedSet)
	assert.Equal(t, "board.yaml", cfg.Layout, "file")
	assert.Equal(t, 30, cfg.MaxLength, "env beats file")
	assert.Equal(t, ":9100", cfg.Addr, "flag beats env")
}

func TestLoadConfig_Errors(t *testing.T) {
	t.Run("Bad File", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, "markov.yaml"), []byte("seed: [\n"), 0o644))
		_, err := LoadConfig(newFlags(t), dir)
		assert.Error(t, err)
	})

	t.Run("Non Positive Length", func(t *testing.T) {
		_, err := LoadConfig(newFlags(t, "--max-length=0"), "")
		assert.Error(t, err)
	})

	t.Run("Length Above HTTP Bound", func(t *testing.T) {
		_, err := LoadConfig(newFlags(t, "--max-length=1001"), "")
		assert.Error(t, err)
	})

	t.Run("Bad Log Level", func(t *testing.T) {
		_, err := LoadConfig(newFlags(t, "--log-level=loud"), "")
		assert.Error(t, err)
	})
}
