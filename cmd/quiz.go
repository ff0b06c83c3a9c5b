package cmd

import (
	"github.com/spf13/cobra"

	"github.com/abhisek/learnix/internal/quizbank"
	"github.com/abhisek/learnix/internal/quizgen"
	quizscreen "github.com/abhisek/learnix/internal/screens/quiz"
)

var quizCmd = &cobra.Command{
	Use:   "quiz [topic]",
	Short: "Take an interactive quiz",
	Long: "Runs an adaptive quiz for a topic. Questions are generated at your current " +
		"mastery level when an LLM provider is configured, and drawn from the built-in " +
		"bank otherwise. The result is recorded when you finish; quitting early records nothing.",
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		count, _ := cmd.Flags().GetInt("count")
		seed, _ := cmd.Flags().GetUint64("seed")

		store, err := openStore(cmd)
		if err != nil {
			return err
		}

		provider := newProvider(cmd, store.Paths())
		cfg := quizgen.DefaultConfig()
		cfg.ArchiveDir = store.Paths().QuizzesDir()
		gen := quizgen.New(provider, quizbank.Default(), cfg)

		topic := ""
		if len(args) == 1 {
			topic = args[0]
		}

		return quizscreen.Run(store, gen, newRNG(seed), topic, count)
	},
}

func init() {
	quizCmd.Flags().IntP("count", "n", 5, "Number of questions")
	quizCmd.Flags().Uint64("seed", 0, "Seed for question sampling (0 = random)")
}
