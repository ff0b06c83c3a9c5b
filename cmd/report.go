package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/abhisek/learnix/internal/report"
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Generate an analytics report",
	Long: "Builds a learning analytics report and writes it as a new JSON file " +
		"under the reports directory. Reports are never merged or overwritten.",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore(cmd)
		if err != nil {
			return err
		}

		r := report.Build(store.Profile(), store.Progress(), time.Now())
		path, err := report.Save(r, store.Paths().ReportsDir())
		if err != nil {
			return fmt.Errorf("save report: %w", err)
		}

		fmt.Printf("Report written to %s\n\n", path)
		fmt.Printf("Topics:        %d\n", r.LearningSummary.TotalTopics)
		fmt.Printf("Quizzes taken: %d\n", r.LearningSummary.TotalQuizzesTaken)
		fmt.Printf("Average score: %.1f%%\n", r.LearningSummary.AverageScore)
		fmt.Printf("Study time:    %.2f hours\n", r.LearningSummary.StudyTimeHours)
		for _, a := range r.Achievements {
			fmt.Printf("  ★ %s\n", a)
		}
		for _, rec := range r.Recommendations {
			fmt.Printf("  • %s\n", rec)
		}
		return nil
	},
}
