package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var recordCmd = &cobra.Command{
	Use:   "record <topic>",
	Short: "Record a study activity",
	Long: "Records study time for a topic, optionally with a quiz score (0-100). " +
		"Scored activity updates the topic's mastery level.",
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		minutes, _ := cmd.Flags().GetInt("minutes")

		var score *float64
		if cmd.Flags().Changed("score") {
			v, _ := cmd.Flags().GetFloat64("score")
			score = &v
		}

		store, err := openStore(cmd)
		if err != nil {
			return err
		}
		if err := store.RecordActivity(args[0], score, minutes); err != nil {
			return fmt.Errorf("record activity: %w", err)
		}

		topic := args[0]
		fmt.Printf("Recorded %d minute(s) on %s", minutes, topic)
		if score != nil {
			fmt.Printf(" with score %.1f%% — mastery now %s", *score, store.Progress().Level(topic).Title())
		}
		fmt.Println()
		return nil
	},
}

func init() {
	recordCmd.Flags().Float64P("score", "s", 0, "Quiz score in percent (0-100)")
	recordCmd.Flags().IntP("minutes", "m", 0, "Study minutes to credit")
}
