package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/learnix/internal/learner"
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Show or update the learner profile",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore(cmd)
		if err != nil {
			return err
		}
		p := store.Profile()

		fmt.Printf("User:               %s\n", p.UserID)
		fmt.Printf("Learning style:     %s\n", p.LearningStyle)
		fmt.Printf("Explanation style:  %s\n", p.ExplanationStyle)
		fmt.Printf("Daily minutes:      %d\n", p.TimeAvailability)
		fmt.Printf("Interests:          %s\n", orNone(p.Interests))
		fmt.Printf("Goals:              %s\n", orNone(p.Goals))
		fmt.Printf("Created:            %s\n", p.CreatedAt.Local().Format("2006-01-02"))
		return nil
	},
}

var profileSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Update profile fields",
	Long: fmt.Sprintf("Updates the given profile fields; others are untouched.\n\n"+
		"Learning styles: %s\nExplanation styles: %s",
		strings.Join([]string{learner.StyleVisual, learner.StyleAuditory, learner.StyleKinesthetic, learner.StyleReading}, ", "),
		strings.Join([]string{learner.ExplainSimple, learner.ExplainDetailed, learner.ExplainAnalogies, learner.ExplainExamples}, ", ")),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore(cmd)
		if err != nil {
			return err
		}

		var u learner.ProfileUpdate
		if cmd.Flags().Changed("style") {
			v, _ := cmd.Flags().GetString("style")
			u.LearningStyle = &v
		}
		if cmd.Flags().Changed("explanation") {
			v, _ := cmd.Flags().GetString("explanation")
			u.ExplanationStyle = &v
		}
		if cmd.Flags().Changed("minutes") {
			v, _ := cmd.Flags().GetInt("minutes")
			u.TimeAvailability = &v
		}
		if cmd.Flags().Changed("interests") {
			u.Interests, _ = cmd.Flags().GetStringSlice("interests")
		}
		if cmd.Flags().Changed("goals") {
			u.Goals, _ = cmd.Flags().GetStringSlice("goals")
		}

		if err := store.UpdateProfile(u); err != nil {
			return fmt.Errorf("update profile: %w", err)
		}
		fmt.Println("Profile updated.")
		return nil
	},
}

func orNone(items []string) string {
	if len(items) == 0 {
		return "(none)"
	}
	return strings.Join(items, ", ")
}

func init() {
	profileSetCmd.Flags().String("style", "", "Learning style")
	profileSetCmd.Flags().String("explanation", "", "Preferred explanation style")
	profileSetCmd.Flags().Int("minutes", 0, "Daily study minutes")
	profileSetCmd.Flags().StringSlice("interests", nil, "Interests (comma separated)")
	profileSetCmd.Flags().StringSlice("goals", nil, "Learning goals (comma separated)")

	profileCmd.AddCommand(profileSetCmd)
}
