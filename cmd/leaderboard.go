package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/matchlab/scrimrank/internal/model"
	"github.com/matchlab/scrimrank/internal/report"
	"github.com/matchlab/scrimrank/internal/storage"
)

var leaderboardFocusPlayer string

var leaderboardCmd = &cobra.Command{
	Use:   "leaderboard [run-id-prefix]",
	Short: "Show a stored leaderboard (latest run by default)",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runLeaderboard,
}

func init() {
	leaderboardCmd.Flags().StringVar(&leaderboardFocusPlayer, "player", "", "highlight this player")
}

func runLeaderboard(cmd *cobra.Command, args []string) error {
	db, err := storage.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open storage: %w", err)
	}
	defer db.Close()

	run, err := resolveRun(db, args)
	if err != nil {
		return err
	}
	if run == nil {
		fmt.Fprintln(os.Stdout, "No stored runs yet. Run 'scrimrank rate' first.")
		return nil
	}

	rows, err := db.GetLeaderboard(run.ID)
	if err != nil {
		return fmt.Errorf("get leaderboard: %w", err)
	}

	report.PrintRunHeader(os.Stdout, *run)
	report.PrintLeaderboard(os.Stdout, rows, leaderboardFocusPlayer)
	return nil
}

// resolveRun picks the run for a command: by id prefix when given,
// otherwise the latest stored run. Nil when the store is empty.
func resolveRun(db *storage.DB, args []string) (*model.RunSummary, error) {
	if len(args) == 0 {
		run, err := db.LatestRun()
		if err != nil {
			return nil, fmt.Errorf("latest run: %w", err)
		}
		return run, nil
	}
	run, err := db.GetRunByPrefix(args[0])
	if err != nil {
		return nil, fmt.Errorf("find run: %w", err)
	}
	if run == nil {
		return nil, fmt.Errorf("no run found with id prefix %q", args[0])
	}
	return run, nil
}
