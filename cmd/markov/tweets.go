package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/markov/internal/cli"
)

var tweetsCmd = &cobra.Command{
	Use:   "tweets <seed> <count> <path> [words]",
	Short: "Generate tweets from a text corpus",
	Long: `Reads the corpus at <path> (at most [words] words), builds a word chain and
prints <count> tweets of up to 20 words, each starting at a random word.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		opts, err := cli.ParseTweetsArgs(args)
		if err != nil {
			return err
		}
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}

		ctx := cli.NewSignalContext(cmd.Context())
		defer ctx.Cancel()
		return cli.RunTweets(ctx, opts, cfg, os.Stdout, os.Stderr)
	},
}

func init() {
	rootCmd.AddCommand(tweetsCmd)
}
