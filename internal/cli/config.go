package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/aretw0/markov/internal/logging"
	markovhttp "github.com/aretw0/markov/pkg/adapters/http"
)

const (
	configFileName = "markov"
	configFileType = "yaml"
	envPrefix      = "MARKOV"

	cfgKeySeed      = "seed"
	cfgKeyMaxLength = "max_length"
	cfgKeyDebug     = "debug"
	cfgKeyAddr      = "addr"
	cfgKeyLayout    = "layout"
	cfgKeyLogFormat = "log_format"
	cfgKeyLogLevel  = "log_level"

	// DefaultMaxLength bounds walks served over HTTP when no max is given.
	DefaultMaxLength = 20
	defaultAddr      = ":8080"
)

// flagKeys maps command-line flag names onto config keys.
var flagKeys = map[string]string{
	"seed":       cfgKeySeed,
	"max-length": cfgKeyMaxLength,
	"debug":      cfgKeyDebug,
	"addr":       cfgKeyAddr,
	"layout":     cfgKeyLayout,
	"log-format": cfgKeyLogFormat,
	"log-level":  cfgKeyLogLevel,
}

// Config holds the settings shared by every command.
type Config struct {
	Seed      uint64
	SeedSet   bool
	MaxLength int
	Debug     bool
	Addr      string
	Layout    string
	LogFormat string
	LogLevel  string
}

// LoadConfig layers flags over MARKOV_* environment variables over an
// optional markov.yaml found in dir. A missing config file is not an error.
func LoadConfig(flags *pflag.FlagSet, dir string) (Config, error) {
	v := viper.New()
	v.SetDefault(cfgKeyMaxLength, DefaultMaxLength)
	v.SetDefault(cfgKeyAddr, defaultAddr)
	v.SetDefault(cfgKeyLogFormat, "text")

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if flags != nil {
		for name, key := range flagKeys {
			if f := flags.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return Config{}, fmt.Errorf("bind flag %s: %w", name, err)
				}
			}
		}
	}

	if dir != "" {
		v.SetConfigName(configFileName)
		v.SetConfigType(configFileType)
		v.AddConfigPath(dir)
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return Config{}, fmt.Errorf("read config: %w", err)
			}
		}
	}

	cfg := Config{
		Seed:      v.GetUint64(cfgKeySeed),
		SeedSet:   v.IsSet(cfgKeySeed),
		MaxLength: v.GetInt(cfgKeyMaxLength),
		Debug:     v.GetBool(cfgKeyDebug),
		Addr:      v.GetString(cfgKeyAddr),
		Layout:    v.GetString(cfgKeyLayout),
		LogFormat: v.GetString(cfgKeyLogFormat),
		LogLevel:  v.GetString(cfgKeyLogLevel),
	}
	if cfg.MaxLength < 1 || cfg.MaxLength > markovhttp.MaxWalkLength {
		return Config{}, fmt.Errorf("max_length must be in [1, %d], got %d", markovhttp.MaxWalkLength, cfg.MaxLength)
	}
	if cfg.LogLevel != "" {
		if _, err := logging.ParseLevel(cfg.LogLevel); err != nil {
			return Config{}, fmt.Errorf("log_level: %w", err)
		}
	}
	return cfg, nil
}
