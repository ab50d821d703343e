package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/markov/internal/cli"
)

var rootCmd = &cobra.Command{
	Use:   "markov",
	Short: "markov generates random walks over Markov chains",
	Long: `markov builds Markov chains from a word corpus or a snakes-and-ladders board
and generates random walks over them: tweets, board games, graphs and an HTTP API.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug logging on stderr")
	rootCmd.PersistentFlags().String("log-format", "text", "Log format (text or json)")
	rootCmd.PersistentFlags().String("log-level", "", "Log level on stderr: debug, info, warn or error (silent when unset)")
	rootCmd.PersistentFlags().String("layout", "", "YAML board layout (default: the classic 100-cell board)")
	rootCmd.PersistentFlags().String("config-dir", ".", "Directory holding an optional markov.yaml")
}

// loadConfig resolves flags, MARKOV_* environment variables and markov.yaml.
func loadConfig(cmd *cobra.Command) (cli.Config, error) {
	dir, _ := cmd.Flags().GetString("config-dir")
	return cli.LoadConfig(cmd.Flags(), dir)
}

// chainOptions reads the optional corpus path and the --words limit.
func chainOptions(cmd *cobra.Command, args []string) cli.ChainOptions {
	limit, _ := cmd.Flags().GetInt("words")
	opts := cli.ChainOptions{Limit: limit}
	if len(args) > 0 {
		opts.Path = args[0]
	}
	return opts
}

// addChainFlags registers the flags of commands that accept a corpus path.
func addChainFlags(cmd *cobra.Command) {
	cmd.Flags().Int("words", -1, "Read at most this many words from the corpus (-1 for all)")
}
