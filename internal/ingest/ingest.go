// Package ingest reads match participation rows from CSV files using the
// documented column contract: date, match id, map, team, rounds won,
// rounds lost, acs, kills, deaths, assists, player.
//
// The reader is strict about structure (column count, numeric fields) but
// deliberately lenient about dates and team labels: those belong to the
// rating engine's admission gate, which skips the affected match while
// keeping its rows visible in the audit table.
package ingest

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/matchlab/scrimrank/internal/model"
)

// columnCount is the number of columns in the ingestion contract.
const columnCount = 11

// Header is the expected CSV column order of the ingestion contract.
var Header = []string{
	"date", "match_id", "map", "team",
	"rounds_won", "rounds_lost",
	"acs", "kills", "deaths", "assists", "player",
}

// ReadFile reads all rows from the CSV file at path.
func ReadFile(path string) ([]model.MatchParticipationRow, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open input: %w", err)
	}
	defer f.Close()
	rows, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return rows, nil
}

// Read parses rows from r. The first record is treated as a header and
// skipped. Row indices are assigned in file order starting at 0.
func Read(r io.Reader) ([]model.MatchParticipationRow, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = columnCount
	cr.TrimLeadingSpace = true

	if _, err := cr.Read(); err != nil {
		if err == io.EOF {
			return nil, nil
		}
		return nil, fmt.Errorf("read header: %w", err)
	}

	var rows []model.MatchParticipationRow
	for line := 2; ; line++ {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		row, err := parseRecord(rec)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		row.RowIndex = len(rows)
		rows = append(rows, row)
	}
	return rows, nil
}

func parseRecord(rec []string) (model.MatchParticipationRow, error) {
	row := model.MatchParticipationRow{
		RawDate: rec[0],
		Date:    model.ParseDate(rec[0]),
		MatchID: rec[1],
		MapName: rec[2],
		Team:    rec[3],
		Player:  rec[10],
	}

	var err error
	if row.RoundsWon, err = parseCount("rounds_won", rec[4]); err != nil {
		return row, err
	}
	if row.RoundsLost, err = parseCount("rounds_lost", rec[5]); err != nil {
		return row, err
	}
	if row.ACS, err = strconv.ParseFloat(rec[6], 64); err != nil || row.ACS < 0 {
		return row, fmt.Errorf("acs: invalid value %q", rec[6])
	}
	if row.Kills, err = parseCount("kills", rec[7]); err != nil {
		return row, err
	}
	if row.Deaths, err = parseCount("deaths", rec[8]); err != nil {
		return row, err
	}
	if row.Assists, err = parseCount("assists", rec[9]); err != nil {
		return row, err
	}
	return row, nil
}

func parseCount(field, s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("%s: invalid value %q", field, s)
	}
	return n, nil
}
