package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/matchlab/scrimrank/internal/storage"
)

// summaryCmd displays a high-level overview of the database.
var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Show a high-level overview of the database",
	Long: `Display aggregate statistics about the imported rows and stored runs:
row and match counts, date range, distinct players and maps, and the
number of rating runs.`,
	Args: cobra.NoArgs,
	RunE: runSummary,
}

func runSummary(cmd *cobra.Command, args []string) error {
	db, err := storage.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open storage: %w", err)
	}
	defer db.Close()

	ov, err := db.GetOverview()
	if err != nil {
		return fmt.Errorf("get overview: %w", err)
	}
	if ov.TotalRows == 0 {
		fmt.Fprintln(os.Stdout, "No rows imported yet. Run 'scrimrank ingest <results.csv>' to add some.")
		return nil
	}

	fmt.Fprintf(os.Stdout, "\n=== Database Summary ===\n\n")
	fmt.Fprintf(os.Stdout, "  Rows imported  : %d\n", ov.TotalRows)
	fmt.Fprintf(os.Stdout, "  Matches        : %d\n", ov.UniqueMatches)
	fmt.Fprintf(os.Stdout, "  Players seen   : %d\n", ov.UniquePlayers)
	fmt.Fprintf(os.Stdout, "  Maps           : %d\n", ov.UniqueMaps)
	fmt.Fprintf(os.Stdout, "  Date range     : %s → %s\n", ov.EarliestDate, ov.LatestDate)
	fmt.Fprintf(os.Stdout, "  Rating runs    : %d\n", ov.TotalRuns)
	return nil
}
