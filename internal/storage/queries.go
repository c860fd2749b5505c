package storage

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/matchlab/scrimrank/internal/model"
)

// timestampLayout is the precision at which run creation times are stored.
const timestampLayout = "2006-01-02 15:04:05"

// ImportRows bulk-inserts imported rows in a transaction. Re-importing
// the same file is idempotent: rows replace by their import position.
func (db *DB) ImportRows(rows []model.MatchParticipationRow) error {
	tx, err := db.conn.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(`
		INSERT OR REPLACE INTO match_rows(
			row_idx, match_id, match_date, map_name, team,
			rounds_won, rounds_lost, acs, kills, deaths, assists, player
		) VALUES (?,?,?,?,?,?,?,?,?,?,?,?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, r := range rows {
		_, err = stmt.Exec(
			r.RowIndex, r.MatchID, r.RawDate, r.MapName, r.Team,
			r.RoundsWon, r.RoundsLost, r.ACS, r.Kills, r.Deaths, r.Assists, r.Player,
		)
		if err != nil {
			return fmt.Errorf("insert match_rows %d: %w", r.RowIndex, err)
		}
	}
	return tx.Commit()
}

// LoadRows returns all imported rows in import order.
func (db *DB) LoadRows() ([]model.MatchParticipationRow, error) {
	rows, err := db.conn.Query(`
		SELECT row_idx, match_id, match_date, map_name, team,
		       rounds_won, rounds_lost, acs, kills, deaths, assists, player
		FROM match_rows ORDER BY row_idx`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.MatchParticipationRow
	for rows.Next() {
		var r model.MatchParticipationRow
		if err := rows.Scan(
			&r.RowIndex, &r.MatchID, &r.RawDate, &r.MapName, &r.Team,
			&r.RoundsWon, &r.RoundsLost, &r.ACS, &r.Kills, &r.Deaths, &r.Assists, &r.Player,
		); err != nil {
			return nil, err
		}
		r.Date = model.ParseDate(r.RawDate)
		out = append(out, r)
	}
	return out, rows.Err()
}

// SaveRun stores a run record with its leaderboard and audit snapshots in
// one transaction: a stored run is always complete.
func (db *DB) SaveRun(run model.RunSummary, lb []model.LeaderboardRow, audit []model.AuditRow) error {
	tx, err := db.conn.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	_, err = tx.Exec(`
		INSERT INTO runs(id, created_at, row_count, matches_processed, matches_skipped)
		VALUES (?,?,?,?,?)`,
		run.ID, run.CreatedAt.UTC().Format(timestampLayout),
		run.RowCount, run.MatchesProcessed, run.MatchesSkipped,
	)
	if err != nil {
		return fmt.Errorf("insert run: %w", err)
	}

	lbStmt, err := tx.Prepare(`
		INSERT INTO leaderboard_rows(
			run_id, rank, player, rating, matches_played, uncertainty, last_match
		) VALUES (?,?,?,?,?,?,?)`)
	if err != nil {
		return err
	}
	defer lbStmt.Close()
	for _, row := range lb {
		_, err = lbStmt.Exec(
			run.ID, row.Rank, row.Player, row.Rating,
			row.MatchesPlayed, row.Uncertainty, row.LastMatch.Format(model.DateLayout),
		)
		if err != nil {
			return fmt.Errorf("insert leaderboard row for %s: %w", row.Player, err)
		}
	}

	auditStmt, err := tx.Prepare(`
		INSERT INTO audit_rows(
			run_id, position, row_idx, match_id, match_date, map_name, team,
			rounds_won, rounds_lost, acs, kills, deaths, assists, player, delta
		) VALUES (?,?,?,?,?,?,?,?,?,?,?,?,?,?,?)`)
	if err != nil {
		return err
	}
	defer auditStmt.Close()
	for pos, a := range audit {
		delta := sql.NullInt64{Int64: int64(a.Delta), Valid: a.HasDelta}
		_, err = auditStmt.Exec(
			run.ID, pos, a.RowIndex, a.MatchID, a.RawDate, a.MapName, a.Team,
			a.RoundsWon, a.RoundsLost, a.ACS, a.Kills, a.Deaths, a.Assists, a.Player, delta,
		)
		if err != nil {
			return fmt.Errorf("insert audit row %d: %w", a.RowIndex, err)
		}
	}
	return tx.Commit()
}

// ListRuns returns all stored runs, newest first.
func (db *DB) ListRuns() ([]model.RunSummary, error) {
	rows, err := db.conn.Query(`
		SELECT id, created_at, row_count, matches_processed, matches_skipped
		FROM runs ORDER BY created_at DESC, id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.RunSummary
	for rows.Next() {
		r, err := scanRun(rows.Scan)
		if err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

// GetRunByPrefix finds the first run whose id starts with the given
// prefix, or nil if none matches.
func (db *DB) GetRunByPrefix(prefix string) (*model.RunSummary, error) {
	row := db.conn.QueryRow(`
		SELECT id, created_at, row_count, matches_processed, matches_skipped
		FROM runs WHERE id LIKE ? LIMIT 1`, prefix+"%")
	r, err := scanRun(row.Scan)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &r, nil
}

// LatestRun returns the most recently stored run, or nil when no run exists.
func (db *DB) LatestRun() (*model.RunSummary, error) {
	row := db.conn.QueryRow(`
		SELECT id, created_at, row_count, matches_processed, matches_skipped
		FROM runs ORDER BY created_at DESC, id LIMIT 1`)
	r, err := scanRun(row.Scan)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &r, nil
}

func scanRun(scan func(...any) error) (model.RunSummary, error) {
	var r model.RunSummary
	var created string
	if err := scan(&r.ID, &created, &r.RowCount, &r.MatchesProcessed, &r.MatchesSkipped); err != nil {
		return r, err
	}
	r.CreatedAt, _ = time.Parse(timestampLayout, created)
	return r, nil
}

// GetLeaderboard returns a run's leaderboard in rank order.
func (db *DB) GetLeaderboard(runID string) ([]model.LeaderboardRow, error) {
	rows, err := db.conn.Query(`
		SELECT rank, player, rating, matches_played, uncertainty, last_match
		FROM leaderboard_rows WHERE run_id = ? ORDER BY rank`, runID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.LeaderboardRow
	for rows.Next() {
		var r model.LeaderboardRow
		var lastMatch string
		if err := rows.Scan(&r.Rank, &r.Player, &r.Rating, &r.MatchesPlayed, &r.Uncertainty, &lastMatch); err != nil {
			return nil, err
		}
		r.LastMatch = model.ParseDate(lastMatch)
		out = append(out, r)
	}
	return out, rows.Err()
}

// GetAuditRows returns a run's audit table in its stored sort order.
func (db *DB) GetAuditRows(runID string) ([]model.AuditRow, error) {
	rows, err := db.conn.Query(`
		SELECT row_idx, match_id, match_date, map_name, team,
		       rounds_won, rounds_lost, acs, kills, deaths, assists, player, delta
		FROM audit_rows WHERE run_id = ? ORDER BY position`, runID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.AuditRow
	for rows.Next() {
		var a model.AuditRow
		var delta sql.NullInt64
		if err := rows.Scan(
			&a.RowIndex, &a.MatchID, &a.RawDate, &a.MapName, &a.Team,
			&a.RoundsWon, &a.RoundsLost, &a.ACS, &a.Kills, &a.Deaths, &a.Assists, &a.Player, &delta,
		); err != nil {
			return nil, err
		}
		a.Date = model.ParseDate(a.RawDate)
		a.Delta = int(delta.Int64)
		a.HasDelta = delta.Valid
		out = append(out, a)
	}
	return out, rows.Err()
}

// Overview summarizes the whole database for the summary command.
type Overview struct {
	TotalRows     int
	UniqueMatches int
	UniquePlayers int
	UniqueMaps    int
	EarliestDate  string
	LatestDate    string
	TotalRuns     int
}

// GetOverview aggregates counts over the imported rows and stored runs.
func (db *DB) GetOverview() (*Overview, error) {
	var ov Overview
	err := db.conn.QueryRow(`
		SELECT COUNT(1),
		       COUNT(DISTINCT match_id),
		       COUNT(DISTINCT player),
		       COUNT(DISTINCT map_name),
		       COALESCE(MIN(match_date), ''),
		       COALESCE(MAX(match_date), '')
		FROM match_rows`).Scan(
		&ov.TotalRows, &ov.UniqueMatches, &ov.UniquePlayers,
		&ov.UniqueMaps, &ov.EarliestDate, &ov.LatestDate,
	)
	if err != nil {
		return nil, err
	}
	if err := db.conn.QueryRow(`SELECT COUNT(1) FROM runs`).Scan(&ov.TotalRuns); err != nil {
		return nil, err
	}
	return &ov, nil
}
