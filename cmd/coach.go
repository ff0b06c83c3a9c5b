package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/learnix/internal/coach"
)

// newCoach wires the coach service for a command invocation.
func newCoach(cmd *cobra.Command) (*coach.Service, error) {
	store, err := openStore(cmd)
	if err != nil {
		return nil, err
	}
	provider := newProvider(cmd, store.Paths())
	return coach.New(provider, store, coach.DefaultConfig()), nil
}

var analyzeCmd = &cobra.Command{
	Use:   "analyze [topic]",
	Short: "Analyze learning progress",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := newCoach(cmd)
		if err != nil {
			return err
		}
		topic := ""
		if len(args) == 1 {
			topic = args[0]
		}
		res := svc.Analyze(cmd.Context(), topic)
		fmt.Println(res.Text)
		return nil
	},
}

var explainCmd = &cobra.Command{
	Use:   "explain <topic> <concept>...",
	Short: "Explain a concept, tailored to your learning style",
	Args:  cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := newCoach(cmd)
		if err != nil {
			return err
		}
		topic := args[0]
		concept := strings.Join(args[1:], " ")
		res := svc.Explain(cmd.Context(), topic, concept)
		fmt.Println(res.Text)
		return nil
	},
}

var planCmd = &cobra.Command{
	Use:   "plan [topic]...",
	Short: "Generate a weekly study plan",
	Long: "Generates a 7-day study plan over the given focus topics. With no " +
		"arguments the plan covers your current topics.",
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := newCoach(cmd)
		if err != nil {
			return err
		}
		res := svc.WeeklyPlan(cmd.Context(), args)
		fmt.Println(res.Text)
		return nil
	},
}

var motivateCmd = &cobra.Command{
	Use:   "motivate",
	Short: "Get an encouraging progress check-in",
	RunE: func(cmd *cobra.Command, args []string) error {
		seed, _ := cmd.Flags().GetUint64("seed")
		svc, err := newCoach(cmd)
		if err != nil {
			return err
		}
		res := svc.Motivate(cmd.Context(), newRNG(seed))
		fmt.Println(res.Text)
		return nil
	},
}

var techniquesCmd = &cobra.Command{
	Use:   "techniques [topic]",
	Short: "Suggest study techniques for your learning style",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := newCoach(cmd)
		if err != nil {
			return err
		}
		topic := ""
		if len(args) == 1 {
			topic = args[0]
		}
		res := svc.Techniques(cmd.Context(), topic)
		fmt.Println(res.Text)
		return nil
	},
}

func init() {
	motivateCmd.Flags().Uint64("seed", 0, "Seed for tip selection (0 = random)")
}
