package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/avinsharma/intervu/internal/screens/leaderboard"
)

var leaderboardCmd = &cobra.Command{
	Use:   "leaderboard <role>",
	Short: "Show the top scores for a role",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		role := strings.Join(args, " ")

		s, err := openStore(cmd)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		entries, err := s.InterviewRepo().TopScores(cmd.Context(), role, leaderboard.TopLimit)
		if err != nil {
			return fmt.Errorf("query top scores: %w", err)
		}

		if len(entries) == 0 {
			fmt.Printf("No finished interviews for %q yet.\n", role)
			return nil
		}

		fmt.Printf("Top scores for %s\n", role)
		fmt.Println(strings.Repeat("─", 40))
		for i, e := range entries {
			fmt.Printf("%d. %-24s %3d/100\n", i+1, e.Candidate, e.TotalScore)
		}
		return nil
	},
}
