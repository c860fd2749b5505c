package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/matchlab/scrimrank/internal/ingest"
	"github.com/matchlab/scrimrank/internal/storage"
)

var ingestCmd = &cobra.Command{
	Use:   "ingest <results.csv>",
	Short: "Import match result rows from a CSV file",
	Long: `Import 5v5 match result rows into the database.

Expected columns, in order:
  date, match_id, map, team, rounds_won, rounds_lost, acs, kills, deaths, assists, player

Re-running an import replaces rows by their position in the file.`,
	Args: cobra.ExactArgs(1),
	RunE: runIngest,
}

func runIngest(cmd *cobra.Command, args []string) error {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return fmt.Errorf("create db dir: %w", err)
	}
	db, err := storage.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open storage: %w", err)
	}
	defer db.Close()

	rows, err := ingest.ReadFile(args[0])
	if err != nil {
		return err
	}
	if len(rows) == 0 {
		fmt.Fprintln(os.Stdout, "No data rows found in input.")
		return nil
	}

	if err := db.ImportRows(rows); err != nil {
		return fmt.Errorf("import rows: %w", err)
	}
	fmt.Fprintf(os.Stdout, "Imported %d rows. Run 'scrimrank rate' to compute ratings.\n", len(rows))
	return nil
}
