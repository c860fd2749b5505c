package storage

import (
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/matchlab/scrimrank/internal/model"
)

func openMemDB(t *testing.T) *DB {
	t.Helper()
	db, err := Open(":memory:")
	if err != nil {
		t.Fatalf("open in-memory db: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func sampleRows() []model.MatchParticipationRow {
	return []model.MatchParticipationRow{
		{
			RowIndex: 0, MatchID: "1", RawDate: "2025-03-01", Date: model.ParseDate("2025-03-01"),
			MapName: "ascent", Team: model.TeamA, RoundsWon: 13, RoundsLost: 4,
			ACS: 251.5, Kills: 22, Deaths: 12, Assists: 6, Player: "alice",
		},
		{
			RowIndex: 1, MatchID: "1", RawDate: "2025-03-01", Date: model.ParseDate("2025-03-01"),
			MapName: "ascent", Team: model.TeamB, RoundsWon: 4, RoundsLost: 13,
			ACS: 180, Kills: 14, Deaths: 18, Assists: 2, Player: "bob",
		},
	}
}

func TestImportAndLoadRows(t *testing.T) {
	db := openMemDB(t)

	if err := db.ImportRows(sampleRows()); err != nil {
		t.Fatalf("ImportRows: %v", err)
	}

	got, err := db.LoadRows()
	if err != nil {
		t.Fatalf("LoadRows: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(got))
	}
	if got[0].Player != "alice" || got[0].ACS != 251.5 || got[0].Team != model.TeamA {
		t.Errorf("row 0 mismatch: %+v", got[0])
	}
	// Dates re-parse from the stored raw text.
	if got[0].Date.IsZero() {
		t.Error("row 0 date should re-parse as valid")
	}
}

// Re-importing replaces by row index rather than duplicating.
func TestImportRows_Idempotent(t *testing.T) {
	db := openMemDB(t)

	if err := db.ImportRows(sampleRows()); err != nil {
		t.Fatalf("first import: %v", err)
	}
	if err := db.ImportRows(sampleRows()); err != nil {
		t.Fatalf("second import: %v", err)
	}

	got, err := db.LoadRows()
	if err != nil {
		t.Fatalf("LoadRows: %v", err)
	}
	if len(got) != 2 {
		t.Errorf("expected 2 rows after re-import, got %d", len(got))
	}
}

// An unparseable stored date stays unparseable on load, so a re-run still
// skips that match.
func TestLoadRows_KeepsInvalidDate(t *testing.T) {
	db := openMemDB(t)

	rows := sampleRows()
	rows[0].RawDate = "bogus"
	rows[0].Date = time.Time{}
	if err := db.ImportRows(rows); err != nil {
		t.Fatalf("ImportRows: %v", err)
	}

	got, err := db.LoadRows()
	if err != nil {
		t.Fatalf("LoadRows: %v", err)
	}
	if !got[0].Date.IsZero() {
		t.Errorf("bogus date parsed to %v, want zero", got[0].Date)
	}
	if got[0].RawDate != "bogus" {
		t.Errorf("raw date not preserved: %q", got[0].RawDate)
	}
}

func TestSaveRunAndQueryBack(t *testing.T) {
	db := openMemDB(t)

	run := model.RunSummary{
		ID:               uuid.NewString(),
		CreatedAt:        time.Date(2025, 3, 2, 10, 30, 0, 0, time.UTC),
		RowCount:         2,
		MatchesProcessed: 1,
		MatchesSkipped:   0,
	}
	lb := []model.LeaderboardRow{
		{Rank: 1, Player: "alice", Rating: 1531, MatchesPlayed: 1, Uncertainty: 170, LastMatch: model.ParseDate("2025-03-01")},
		{Rank: 2, Player: "bob", Rating: 1469, MatchesPlayed: 1, Uncertainty: 170, LastMatch: model.ParseDate("2025-03-01")},
	}
	audit := []model.AuditRow{
		{MatchParticipationRow: sampleRows()[0], Delta: 31, HasDelta: true},
		{MatchParticipationRow: sampleRows()[1], Delta: 0, HasDelta: false},
	}

	if err := db.SaveRun(run, lb, audit); err != nil {
		t.Fatalf("SaveRun: %v", err)
	}

	latest, err := db.LatestRun()
	if err != nil {
		t.Fatalf("LatestRun: %v", err)
	}
	if latest == nil || latest.ID != run.ID {
		t.Fatalf("LatestRun = %+v, want id %s", latest, run.ID)
	}
	if latest.MatchesProcessed != 1 || latest.RowCount != 2 {
		t.Errorf("run fields mismatch: %+v", latest)
	}

	byPrefix, err := db.GetRunByPrefix(run.ID[:8])
	if err != nil {
		t.Fatalf("GetRunByPrefix: %v", err)
	}
	if byPrefix == nil || byPrefix.ID != run.ID {
		t.Errorf("prefix lookup failed: %+v", byPrefix)
	}

	noMatch, err := db.GetRunByPrefix("zzzzzzzz")
	if err != nil {
		t.Fatalf("GetRunByPrefix no-match: %v", err)
	}
	if noMatch != nil {
		t.Error("expected nil for unknown prefix")
	}

	gotLB, err := db.GetLeaderboard(run.ID)
	if err != nil {
		t.Fatalf("GetLeaderboard: %v", err)
	}
	if len(gotLB) != 2 || gotLB[0].Player != "alice" || gotLB[0].Rating != 1531 {
		t.Errorf("leaderboard mismatch: %+v", gotLB)
	}

	gotAudit, err := db.GetAuditRows(run.ID)
	if err != nil {
		t.Fatalf("GetAuditRows: %v", err)
	}
	if len(gotAudit) != 2 {
		t.Fatalf("expected 2 audit rows, got %d", len(gotAudit))
	}
	if !gotAudit[0].HasDelta || gotAudit[0].Delta != 31 {
		t.Errorf("audit row 0: delta=%d has=%v, want 31/true", gotAudit[0].Delta, gotAudit[0].HasDelta)
	}
	// NULL delta round-trips as blank.
	if gotAudit[1].HasDelta {
		t.Error("audit row 1 should have a blank delta")
	}
}

func TestListRuns_NewestFirst(t *testing.T) {
	db := openMemDB(t)

	older := model.RunSummary{ID: uuid.NewString(), CreatedAt: time.Date(2025, 3, 1, 8, 0, 0, 0, time.UTC)}
	newer := model.RunSummary{ID: uuid.NewString(), CreatedAt: time.Date(2025, 3, 2, 8, 0, 0, 0, time.UTC)}
	for _, r := range []model.RunSummary{older, newer} {
		if err := db.SaveRun(r, nil, nil); err != nil {
			t.Fatalf("SaveRun: %v", err)
		}
	}

	runs, err := db.ListRuns()
	if err != nil {
		t.Fatalf("ListRuns: %v", err)
	}
	if len(runs) != 2 || runs[0].ID != newer.ID {
		t.Errorf("expected newest run first, got %+v", runs)
	}
}

func TestGetOverview(t *testing.T) {
	db := openMemDB(t)

	if err := db.ImportRows(sampleRows()); err != nil {
		t.Fatalf("ImportRows: %v", err)
	}
	if err := db.SaveRun(model.RunSummary{ID: uuid.NewString(), CreatedAt: time.Now()}, nil, nil); err != nil {
		t.Fatalf("SaveRun: %v", err)
	}

	ov, err := db.GetOverview()
	if err != nil {
		t.Fatalf("GetOverview: %v", err)
	}
	if ov.TotalRows != 2 || ov.UniqueMatches != 1 || ov.UniquePlayers != 2 || ov.UniqueMaps != 1 {
		t.Errorf("overview counts mismatch: %+v", ov)
	}
	if ov.EarliestDate != "2025-03-01" || ov.LatestDate != "2025-03-01" {
		t.Errorf("overview dates mismatch: %+v", ov)
	}
	if ov.TotalRuns != 1 {
		t.Errorf("TotalRuns = %d, want 1", ov.TotalRuns)
	}
}
