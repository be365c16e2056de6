package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var historyCmd = &cobra.Command{
	Use:   "history <candidate> <role>",
	Short: "Show a candidate's past results for a role",
	Args:  cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		candidate := args[0]
		role := strings.Join(args[1:], " ")

		s, err := openStore(cmd)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		entries, err := s.InterviewRepo().History(cmd.Context(), candidate, role)
		if err != nil {
			return fmt.Errorf("query history: %w", err)
		}

		if len(entries) == 0 {
			fmt.Printf("No finished interviews for %s as %q.\n", candidate, role)
			return nil
		}

		fmt.Printf("History for %s — %s\n", candidate, role)
		fmt.Println(strings.Repeat("─", 40))
		for _, e := range entries {
			fmt.Printf("%s  %3d/100\n",
				e.Timestamp.Local().Format("2006-01-02 15:04"), e.TotalScore)
		}
		return nil
	},
}
