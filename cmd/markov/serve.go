package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/markov/internal/cli"
)

var serveCmd = &cobra.Command{
	Use:   "serve [path]",
	Short: "Start the HTTP server",
	Long:  `Serves random walks, the Mermaid graph and Prometheus metrics of a chain over HTTP.`,
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}

		ctx := cli.NewSignalContext(cmd.Context())
		defer ctx.Cancel()
		return cli.RunServe(ctx, cli.ServeOptions{ChainOptions: chainOptions(cmd, args)}, cfg, os.Stdout, os.Stderr)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	addChainFlags(serveCmd)
	serveCmd.Flags().String("addr", ":8080", "Address to listen on")
	serveCmd.Flags().Uint64("seed", 0, "Seed of the chain's generator (random when unset)")
	serveCmd.Flags().Int("max-length", cli.DefaultMaxLength, "Default walk length for /walks")
}
