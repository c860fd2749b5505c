package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/matchlab/scrimrank/internal/report"
	"github.com/matchlab/scrimrank/internal/storage"
)

var auditCmd = &cobra.Command{
	Use:   "audit [run-id-prefix]",
	Short: "Show a stored per-row audit table (latest run by default)",
	Long: `Print every imported row with the rating delta it produced in the
selected run. Rows of matches rejected at admission show a blank delta.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runAudit,
}

func runAudit(cmd *cobra.Command, args []string) error {
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

	rows, err := db.GetAuditRows(run.ID)
	if err != nil {
		return fmt.Errorf("get audit rows: %w", err)
	}

	report.PrintRunHeader(os.Stdout, *run)
	report.PrintAudit(os.Stdout, rows)
	return nil
}
