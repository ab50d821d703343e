package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/markov/internal/cli"
)

var validateCmd = &cobra.Command{
	Use:   "validate [path]",
	Short: "Check the chain for consistency",
	Long:  `Crawls the chain from its first state and reports dead ends and unreachable states.`,
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		if err := cli.RunValidate(cmd.Context(), chainOptions(cmd, args), cfg, os.Stdout, os.Stderr); err != nil {
			return fmt.Errorf("validation failed: %w", err)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
	addChainFlags(validateCmd)
}
