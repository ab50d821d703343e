package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/markov/internal/cli"
	"github.com/aretw0/markov/internal/presentation/tui"
)

var snakesCmd = &cobra.Command{
	Use:   "snakes <seed> <count>",
	Short: "Play random games of snakes and ladders",
	Long:  `Prints <count> random walks of up to 60 cells over the board, each starting at cell 1.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		opts, err := cli.ParseSnakesArgs(args)
		if err != nil {
			return err
		}
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}

		noColor, _ := cmd.Flags().GetBool("no-color")
		opts.Colored = !noColor && tui.IsTTY(os.Stdout)

		ctx := cli.NewSignalContext(cmd.Context())
		defer ctx.Cancel()
		return cli.RunSnakes(ctx, opts, cfg, os.Stdout, os.Stderr)
	},
}

func init() {
	rootCmd.AddCommand(snakesCmd)
	snakesCmd.Flags().Bool("no-color", false, "Disable coloured cells")
}
