package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/learnix/internal/llm"
)

var llmCmd = &cobra.Command{
	Use:   "llm",
	Short: "Inspect the LLM request log",
}

func openRequestLog(cmd *cobra.Command) (*llm.RequestLog, error) {
	paths, err := resolvePaths(cmd)
	if err != nil {
		return nil, fmt.Errorf("resolve data dir: %w", err)
	}
	return llm.NewRequestLog(paths.LLMLogFile()), nil
}

var llmListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recent LLM requests",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")
		purpose, _ := cmd.Flags().GetString("purpose")

		log, err := openRequestLog(cmd)
		if err != nil {
			return err
		}
		entries, err := log.Entries()
		if err != nil {
			return fmt.Errorf("read request log: %w", err)
		}

		if purpose != "" {
			var filtered []llm.Entry
			for _, e := range entries {
				if e.Purpose == purpose {
					filtered = append(filtered, e)
				}
			}
			entries = filtered
		}
		if len(entries) == 0 {
			fmt.Println("No LLM requests logged.")
			return nil
		}
		if limit > 0 && len(entries) > limit {
			entries = entries[len(entries)-limit:]
		}

		fmt.Printf("%-19s  %-16s  %-28s  %-6s  %-6s  %-7s  %-9s  %s\n",
			"Timestamp", "Purpose", "Model", "In", "Out", "Ms", "Cost", "OK")
		fmt.Println(strings.Repeat("─", 104))

		for _, e := range entries {
			ok := "✓"
			if !e.Success {
				ok = "✗"
			}
			fmt.Printf("%-19s  %-16s  %-28s  %-6d  %-6d  %-7d  %-9s  %s\n",
				e.Time.Local().Format("2006-01-02 15:04:05"),
				e.Purpose,
				truncate(e.Model, 28),
				e.InputTokens,
				e.OutputTokens,
				e.LatencyMs,
				formatCost(e.CostUSD),
				ok,
			)
		}
		return nil
	},
}

var llmStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show aggregated LLM token usage and estimated cost",
	RunE: func(cmd *cobra.Command, args []string) error {
		log, err := openRequestLog(cmd)
		if err != nil {
			return err
		}
		entries, err := log.Entries()
		if err != nil {
			return fmt.Errorf("read request log: %w", err)
		}
		if len(entries) == 0 {
			fmt.Println("No LLM usage recorded yet.")
			return nil
		}

		type usage struct {
			calls, in, out int
			latencyMs      int64
			cost           float64
		}
		byPurpose := map[string]*usage{}
		var purposes []string
		for _, e := range entries {
			u := byPurpose[e.Purpose]
			if u == nil {
				u = &usage{}
				byPurpose[e.Purpose] = u
				purposes = append(purposes, e.Purpose)
			}
			u.calls++
			u.in += e.InputTokens
			u.out += e.OutputTokens
			u.latencyMs += e.LatencyMs
			u.cost += e.CostUSD
		}

		fmt.Println("Usage by Purpose")
		fmt.Println(strings.Repeat("─", 80))
		fmt.Printf("%-18s  %6s  %10s  %10s  %8s  %9s\n",
			"Purpose", "Calls", "Input", "Output", "Avg Ms", "Cost")
		fmt.Println(strings.Repeat("─", 80))

		var total usage
		for _, p := range purposes {
			u := byPurpose[p]
			fmt.Printf("%-18s  %6d  %10d  %10d  %8d  %9s\n",
				p, u.calls, u.in, u.out, u.latencyMs/int64(u.calls), formatCost(u.cost))
			total.calls += u.calls
			total.in += u.in
			total.out += u.out
			total.cost += u.cost
		}

		fmt.Println(strings.Repeat("─", 80))
		fmt.Printf("%-18s  %6d  %10d  %10d  %8s  %9s\n",
			"TOTAL", total.calls, total.in, total.out, "", formatCost(total.cost))
		return nil
	},
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max]
}

func formatCost(usd float64) string {
	if usd == 0 {
		return "-"
	}
	if usd < 0.01 {
		return fmt.Sprintf("$%.4f", usd)
	}
	return fmt.Sprintf("$%.2f", usd)
}

func init() {
	llmListCmd.Flags().IntP("limit", "n", 20, "Number of requests to show")
	llmListCmd.Flags().StringP("purpose", "p", "", "Filter by purpose (e.g. quiz-generation, explain)")

	llmCmd.AddCommand(llmListCmd)
	llmCmd.AddCommand(llmStatsCmd)
}
