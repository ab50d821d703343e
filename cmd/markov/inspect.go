package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/markov/internal/cli"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect [path]",
	Short: "Summarize a chain",
	Long:  `Prints the size, the validation counters and the busiest states of a chain as Markdown.`,
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		return cli.RunInspect(cmd.Context(), chainOptions(cmd, args), cfg, os.Stdout, os.Stderr)
	},
}

func init() {
	rootCmd.AddCommand(inspectCmd)
	addChainFlags(inspectCmd)
}
