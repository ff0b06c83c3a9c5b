package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete the learner's profile and progress",
	RunE: func(cmd *cobra.Command, args []string) error {
		yes, _ := cmd.Flags().GetBool("yes")
		user, _ := cmd.Flags().GetString("user")

		if !yes {
			fmt.Printf("This deletes all progress for %q. Type 'yes' to confirm: ", user)
			reader := bufio.NewReader(os.Stdin)
			line, _ := reader.ReadString('\n')
			if strings.TrimSpace(line) != "yes" {
				fmt.Println("Aborted.")
				return nil
			}
		}

		store, err := openStore(cmd)
		if err != nil {
			return err
		}
		if err := store.Reset(); err != nil {
			return fmt.Errorf("reset learner data: %w", err)
		}
		fmt.Printf("Learner data for %q deleted.\n", user)
		return nil
	},
}

func init() {
	resetCmd.Flags().BoolP("yes", "y", false, "Skip the confirmation prompt")
}
