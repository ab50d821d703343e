package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/markov/internal/cli"
)

// graphCmd represents the graph command
var graphCmd = &cobra.Command{
	Use:   "graph [path]",
	Short: "Export the chain as a Mermaid diagram",
	Long:  `Outputs a Mermaid diagram (graph TD) of the word chain built from [path], or of the board when no path is given.`,
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		return cli.RunGraph(cmd.Context(), chainOptions(cmd, args), cfg, os.Stdout, os.Stderr)
	},
}

func init() {
	rootCmd.AddCommand(graphCmd)
	addChainFlags(graphCmd)
}
