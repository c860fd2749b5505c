package model

import "time"

// TeamA and TeamB are the only team labels the rating engine admits.
// Rows carry the raw imported label so that a match with a bad label can
// still appear (unrated) in the audit table.
const (
	TeamA = "A"
	TeamB = "B"
)

// DateLayout is the calendar-date format used by the ingestion contract
// and by stored rows.
const DateLayout = "2006-01-02"

// ParseDate parses a calendar date in DateLayout. It returns the zero
// time on failure; the rating engine treats a zero date as invalid and
// skips the match, so malformed dates survive ingestion instead of
// aborting the import.
func ParseDate(s string) time.Time {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}
	}
	return t
}

// MatchParticipationRow is one imported result row: one player's line in
// one match. RowIndex is the stable position in the original import and
// is what ties an audit delta back to its source row.
type MatchParticipationRow struct {
	RowIndex int
	MatchID  string
	RawDate  string // date column as imported, passed through to the audit table
	Date     time.Time
	MapName  string
	Team     string // raw team label; anything but "A"/"B" rejects the match

	RoundsWon  int
	RoundsLost int
	ACS        float64
	Kills      int
	Deaths     int
	Assists    int
	Player     string
}

// KDA is the kill/death/assist efficiency ratio, with deaths floored at 1.
func (r *MatchParticipationRow) KDA() float64 {
	deaths := r.Deaths
	if deaths < 1 {
		deaths = 1
	}
	return (float64(r.Kills) + 0.5*float64(r.Assists)) / float64(deaths)
}

// RoundMargin is the row's round differential, positive when the row's
// team won more rounds than it lost.
func (r *MatchParticipationRow) RoundMargin() int {
	return r.RoundsWon - r.RoundsLost
}

// PlayerState is the mutable rating state for one player. Created lazily
// on first appearance and kept for the whole run.
type PlayerState struct {
	Player        string
	Rating        float64
	MatchesPlayed int
	Uncertainty   float64
	LastMatch     time.Time // zero until the player's first admitted match
}

// LeaderboardRow is one ranked entry of the final leaderboard.
type LeaderboardRow struct {
	Rank          int
	Player        string
	Rating        int
	MatchesPlayed int
	Uncertainty   int
	LastMatch     time.Time
}

// AuditRow is one original input row plus the rating delta it produced.
// HasDelta is false for rows of matches rejected at admission.
type AuditRow struct {
	MatchParticipationRow

	Delta    int
	HasDelta bool
}

// Warning kinds, matching the skip-and-continue error taxonomy.
const (
	WarnMalformedMatch = "malformed-match"
	WarnInvalidDate    = "invalid-date"
)

// RunWarning records a match skipped at admission and why.
type RunWarning struct {
	MatchID string
	Kind    string
	Message string
}

// RunSummary is a lightweight record of one stored rating run.
type RunSummary struct {
	ID               string
	CreatedAt        time.Time
	RowCount         int
	MatchesProcessed int
	MatchesSkipped   int
}
