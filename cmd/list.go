package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/matchlab/scrimrank/internal/storage"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all stored rating runs",
	Args:  cobra.NoArgs,
	RunE:  runList,
}

func runList(cmd *cobra.Command, args []string) error {
	db, err := storage.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open storage: %w", err)
	}
	defer db.Close()

	runs, err := db.ListRuns()
	if err != nil {
		return fmt.Errorf("list runs: %w", err)
	}
	if len(runs) == 0 {
		fmt.Fprintln(os.Stdout, "No runs stored yet. Run 'scrimrank rate' to create one.")
		return nil
	}

	fmt.Fprintf(os.Stdout, "%-10s  %-16s  %6s  %7s  %7s\n",
		"RUN", "CREATED", "ROWS", "RATED", "SKIPPED")
	fmt.Fprintf(os.Stdout, "%-10s  %-16s  %6s  %7s  %7s\n",
		"──────────", "────────────────", "──────", "───────", "───────")
	for _, r := range runs {
		fmt.Fprintf(os.Stdout, "%-10s  %-16s  %6d  %7d  %7d\n",
			r.ID[:8], r.CreatedAt.Format("2006-01-02 15:04"),
			r.RowCount, r.MatchesProcessed, r.MatchesSkipped)
	}
	return nil
}
