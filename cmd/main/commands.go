package main

import (
	"fmt"

	"github.com/CTAG07/markov/pkg/markov"
	"github.com/spf13/cobra"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Train on the configured corpus and print generated sentences",
	RunE: func(cmd *cobra.Command, args []string) error {
		config, logger, err := setup(cmd)
		if err != nil {
			return err
		}
		flags := cmd.Flags()
		if flags.Changed("sentences") {
			config.Generation.Sentences, _ = flags.GetInt("sentences")
		}
		if flags.Changed("max-length") {
			config.Generation.MaxLength, _ = flags.GetInt("max-length")
		}
		if flags.Changed("seed") {
			config.Generation.Seed, _ = flags.GetUint64("seed")
		}
		from, _ := flags.GetString("from")

		tc, err := train(cmd.Context(), config, logger)
		if err != nil {
			return err
		}

		opts := []markov.GenerateOption{markov.WithMaxLength(config.Generation.MaxLength)}
		for i := 0; i < config.Generation.Sentences; i++ {
			var sentence string
			if from != "" {
				sentence, err = tc.GenerateStringFromToken(from, opts...)
			} else {
				sentence, err = tc.GenerateString(opts...)
			}
			if err != nil {
				return fmt.Errorf("generation failed: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), sentence)
		}
		return nil
	},
}

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Train on the configured corpus and print chain statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		config, logger, err := setup(cmd)
		if err != nil {
			return err
		}
		tc, err := train(cmd.Context(), config, logger)
		if err != nil {
			return err
		}

		stats := tc.Stats()
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "sentences:       %d\n", stats.Sequences)
		fmt.Fprintf(out, "tokens:          %d\n", stats.Tokens)
		fmt.Fprintf(out, "transitions:     %d\n", stats.Transitions)
		fmt.Fprintf(out, "total frequency: %d\n", stats.TotalFrequency)
		fmt.Fprintf(out, "starting tokens: %d\n", stats.StartingTokens)
		return nil
	},
}

func init() {
	generateCmd.Flags().IntP("sentences", "n", 1, "Number of sentences to generate")
	generateCmd.Flags().Int("max-length", 0, "Maximum tokens per sentence, 0 for no limit")
	generateCmd.Flags().Uint64("seed", 0, "Random seed, 0 for a random one")
	generateCmd.Flags().String("from", "", "Start every sentence with this word")

	rootCmd.AddCommand(generateCmd, statsCmd)
}
