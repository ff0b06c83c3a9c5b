package cmd

import (
	"fmt"
	"math/rand/v2"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/abhisek/learnix/internal/learner"
	"github.com/abhisek/learnix/internal/llm"
)

var rootCmd = &cobra.Command{
	Use:   "learnix",
	Short: "Personal learning companion",
	Long: "Learnix — terminal learning companion that tracks your progress per topic, " +
		"serves adaptive quizzes, and coaches your study habits.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runDashboard(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("user", "default", "Learner profile to use")
	rootCmd.PersistentFlags().String("data", "", "Data directory (overrides LEARNIX_DATA env var)")

	rootCmd.AddCommand(quizCmd)
	rootCmd.AddCommand(dashboardCmd)
	rootCmd.AddCommand(analyzeCmd)
	rootCmd.AddCommand(explainCmd)
	rootCmd.AddCommand(planCmd)
	rootCmd.AddCommand(motivateCmd)
	rootCmd.AddCommand(techniquesCmd)
	rootCmd.AddCommand(recordCmd)
	rootCmd.AddCommand(profileCmd)
	rootCmd.AddCommand(reportCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(updateCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolvePaths returns the data paths using the --data flag (highest
// priority), then LEARNIX_DATA, then the default XDG path.
func resolvePaths(cmd *cobra.Command) (learner.Paths, error) {
	if p, _ := cmd.Flags().GetString("data"); p != "" {
		return learner.Paths{Root: p}, nil
	}
	return learner.DefaultPaths()
}

// openStore opens the learner documents for the selected user.
func openStore(cmd *cobra.Command) (*learner.Store, error) {
	paths, err := resolvePaths(cmd)
	if err != nil {
		return nil, fmt.Errorf("resolve data dir: %w", err)
	}
	user, _ := cmd.Flags().GetString("user")
	st, err := learner.Open(user, paths)
	if err != nil {
		return nil, fmt.Errorf("open learner store: %w", err)
	}
	return st, nil
}

// newProvider builds the configured LLM provider with request logging,
// or nil when no provider is configured. Callers treat nil as "use the
// built-in fallback content".
func newProvider(cmd *cobra.Command, paths learner.Paths) llm.Provider {
	cfg, ok := llm.DiscoverConfig()
	if !ok {
		return nil
	}
	provider, err := llm.NewProvider(cmd.Context(), cfg, llm.NewRequestLog(paths.LLMLogFile()))
	if err != nil {
		fmt.Fprintln(os.Stderr, "LLM provider unavailable:", err)
		fmt.Fprintln(os.Stderr, "Falling back to built-in content.")
		return nil
	}
	return provider
}

// newRNG returns a seeded source; seed 0 means time-based.
func newRNG(seed uint64) *rand.Rand {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return rand.New(rand.NewPCG(seed, seed))
}
