package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/abhisek/learnix/internal/mastery"
)

var dashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Show the learning dashboard",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runDashboard(cmd)
	},
}

func runDashboard(cmd *cobra.Command) error {
	store, err := openStore(cmd)
	if err != nil {
		return err
	}

	progress := store.Progress()
	ins := mastery.ComputeInsights(progress.MasteryView(), time.Now())

	sep := strings.Repeat("─", 50)
	fmt.Println(sep)
	fmt.Printf("LEARNING DASHBOARD — %s\n", store.UserID())
	fmt.Println(sep)
	fmt.Printf("Total topics:      %d\n", ins.TotalTopics)
	fmt.Printf("Mastered topics:   %d\n", ins.MasteredTopics)
	fmt.Printf("Study time:        %.2f hours\n", ins.StudyTimeHours)
	fmt.Printf("Learning streak:   %d day(s)\n", progress.Streak)
	fmt.Printf("Consistency:       %s\n", ins.Consistency)

	if len(ins.StrugglingTopics) > 0 {
		fmt.Printf("Need attention:    %s\n", strings.Join(ins.StrugglingTopics, ", "))
	}

	if len(progress.CurrentTopics) > 0 {
		fmt.Println()
		fmt.Println("Current topics and mastery levels:")
		for _, topic := range progress.CurrentTopics {
			level := progress.Level(topic)
			scores := progress.TopicScores(topic)
			var latest string
			if len(scores) > 0 {
				latest = fmt.Sprintf("  (latest %.0f%%, %d quizzes)", scores[len(scores)-1], len(scores))
			}
			fmt.Printf("  %-28s %s%s\n", topic, level.Title(), latest)
		}
	} else {
		fmt.Println()
		fmt.Println("No activity yet. Try: learnix quiz \"Machine Learning\"")
	}

	fmt.Println(sep)
	return nil
}
