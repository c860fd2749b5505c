package cmd

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/matchlab/scrimrank/internal/model"
	"github.com/matchlab/scrimrank/internal/rating"
	"github.com/matchlab/scrimrank/internal/report"
	"github.com/matchlab/scrimrank/internal/storage"
)

var (
	rateFocusPlayer string
	rateShowAudit   bool
)

var rateCmd = &cobra.Command{
	Use:   "rate",
	Short: "Compute ratings over all imported rows and store the result",
	Long: `Run the full deterministic rating computation over every imported row,
store the resulting leaderboard and audit table as a new run, and print
the leaderboard. Matches are processed in ascending match-id order;
malformed matches are skipped with a warning.`,
	Args: cobra.NoArgs,
	RunE: runRate,
}

func init() {
	rateCmd.Flags().StringVar(&rateFocusPlayer, "player", "", "highlight this player on the leaderboard")
	rateCmd.Flags().BoolVar(&rateShowAudit, "audit", false, "also print the per-row audit table")
}

func runRate(cmd *cobra.Command, args []string) error {
	db, err := storage.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open storage: %w", err)
	}
	defer db.Close()

	rows, err := db.LoadRows()
	if err != nil {
		return fmt.Errorf("load rows: %w", err)
	}

	res, err := rating.Run(rows)
	if errors.Is(err, rating.ErrNoRows) {
		return fmt.Errorf("no imported rows; run 'scrimrank ingest <results.csv>' first")
	}
	if err != nil {
		return fmt.Errorf("rate: %w", err)
	}

	run := model.RunSummary{
		ID:               uuid.NewString(),
		CreatedAt:        time.Now().UTC(),
		RowCount:         len(rows),
		MatchesProcessed: res.MatchesProcessed,
		MatchesSkipped:   res.MatchesSkipped,
	}
	if err := db.SaveRun(run, res.Leaderboard, res.Audit); err != nil {
		return fmt.Errorf("save run: %w", err)
	}

	report.PrintRunHeader(os.Stdout, run)
	report.PrintWarnings(os.Stdout, res.Warnings)
	report.PrintLeaderboard(os.Stdout, res.Leaderboard, rateFocusPlayer)
	if rateShowAudit {
		fmt.Fprintln(os.Stdout)
		report.PrintAudit(os.Stdout, res.Audit)
	}
	return nil
}
