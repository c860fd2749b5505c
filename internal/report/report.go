// Package report renders leaderboards, audit tables, and run diagnostics
// for the terminal. Rendering is purely presentational: nothing here may
// influence computed ratings.
package report

import (
	"fmt"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"

	"github.com/matchlab/scrimrank/internal/model"
)

// tierThreshold maps a minimum rounded rating to a display tier label.
// Checked top-down; the first threshold at or below the rating wins.
type tierThreshold struct {
	min  int
	name string
}

var tiers = []tierThreshold{
	{1900, "Radiant"},
	{1800, "Immortal"},
	{1700, "Diamond"},
	{1600, "Platinum"},
	{1500, "Gold"},
	{1400, "Silver"},
	{1300, "Bronze"},
}

// tierFor returns the display tier for a rounded rating.
func tierFor(rating int) string {
	for _, t := range tiers {
		if rating >= t.min {
			return t.name
		}
	}
	return "Iron"
}

func newTable(w io.Writer) *tablewriter.Table {
	return tablewriter.NewTable(w, tablewriter.WithConfig(tablewriter.Config{
		Row: tw.CellConfig{
			Alignment: tw.CellAlignment{Global: tw.AlignRight},
		},
		Header: tw.CellConfig{
			Alignment: tw.CellAlignment{Global: tw.AlignCenter},
		},
	}))
}

// PrintRunHeader prints a one-line summary for a stored run.
func PrintRunHeader(w io.Writer, run model.RunSummary) {
	fmt.Fprintf(w, "\nRun: %s  |  Created: %s  |  Rows: %d  |  Matches: %d rated, %d skipped\n\n",
		shortID(run.ID), run.CreatedAt.Format("2006-01-02 15:04"),
		run.RowCount, run.MatchesProcessed, run.MatchesSkipped)
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

// PrintLeaderboard prints the ranked leaderboard. If focusPlayer is
// non-empty, that player's row is marked with ">".
func PrintLeaderboard(w io.Writer, rows []model.LeaderboardRow, focusPlayer string) {
	table := newTable(w)
	table.Header(" ", "RANK", "PLAYER", "RATING", "TIER", "MATCHES", "RD", "LAST MATCH")

	for _, r := range rows {
		marker := " "
		if focusPlayer != "" && r.Player == focusPlayer {
			marker = ">"
		}
		lastMatch := "—"
		if !r.LastMatch.IsZero() {
			lastMatch = r.LastMatch.Format(model.DateLayout)
		}
		table.Append(
			marker,
			strconv.Itoa(r.Rank),
			r.Player,
			strconv.Itoa(r.Rating),
			tierFor(r.Rating),
			strconv.Itoa(r.MatchesPlayed),
			strconv.Itoa(r.Uncertainty),
			lastMatch,
		)
	}
	table.Render()
}

// PrintAudit prints the per-row audit table. Rows of rejected matches
// render an em-dash in the delta column.
func PrintAudit(w io.Writer, rows []model.AuditRow) {
	table := newTable(w)
	table.Header("DATE", "MATCH", "MAP", "TEAM", "SCORE", "ACS", "K", "D", "A", "PLAYER", "DELTA")

	for i := range rows {
		a := &rows[i]
		delta := "—"
		if a.HasDelta {
			delta = fmt.Sprintf("%+d", a.Delta)
		}
		table.Append(
			a.RawDate,
			a.MatchID,
			a.MapName,
			a.Team,
			fmt.Sprintf("%d-%d", a.RoundsWon, a.RoundsLost),
			fmt.Sprintf("%.0f", a.ACS),
			strconv.Itoa(a.Kills),
			strconv.Itoa(a.Deaths),
			strconv.Itoa(a.Assists),
			a.Player,
			delta,
		)
	}
	table.Render()
}

// PrintWarnings lists matches skipped at admission, one line each.
func PrintWarnings(w io.Writer, warnings []model.RunWarning) {
	if len(warnings) == 0 {
		return
	}
	fmt.Fprintf(w, "Skipped %d match(es):\n", len(warnings))
	for _, warn := range warnings {
		fmt.Fprintf(w, "  ! %s\n", warn.Message)
	}
	fmt.Fprintln(w)
}
