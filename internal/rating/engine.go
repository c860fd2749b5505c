// Package rating implements the batch skill-rating engine: a closed-form,
// deterministic transformation from an ordered log of 5v5 match rows into
// a ranked leaderboard and a per-row audit table of rating deltas.
package rating

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"strconv"

	"github.com/matchlab/scrimrank/internal/model"
)

// ErrNoRows is returned when the input contains no data rows at all.
// The run aborts without mutating anything.
var ErrNoRows = errors.New("no input rows")

// Result is the complete output of one rating run.
type Result struct {
	Leaderboard []model.LeaderboardRow
	Audit       []model.AuditRow
	Warnings    []model.RunWarning

	MatchesProcessed int
	MatchesSkipped   int
}

// match is one grouped input match: all rows sharing a match id, in
// original import order.
type match struct {
	id   string
	rows []model.MatchParticipationRow
}

// Run executes the full batch computation. It is a pure function of the
// input: the same ordered rows always produce the same Result.
func Run(rows []model.MatchParticipationRow) (*Result, error) {
	if len(rows) == 0 {
		return nil, ErrNoRows
	}

	matches := groupMatches(rows)
	states := make(map[string]*model.PlayerState)
	deltas := make(map[int]int, len(rows))

	res := &Result{}
	for i := range matches {
		if w := admit(&matches[i]); w != nil {
			res.Warnings = append(res.Warnings, *w)
			res.MatchesSkipped++
			continue
		}
		applyMatch(states, &matches[i], deltas)
		res.MatchesProcessed++
	}

	res.Leaderboard = leaderboard(states)
	res.Audit = auditRows(rows, deltas)
	return res, nil
}

// groupMatches buckets rows by match id and orders the matches ascending
// by numeric id. Processing order is load-bearing: each match mutates
// state that later matches read. Non-numeric ids sort after all numeric
// ones, by string, so they are at least processed deterministically.
func groupMatches(rows []model.MatchParticipationRow) []match {
	byID := make(map[string]*match)
	var order []*match
	for _, r := range rows {
		m := byID[r.MatchID]
		if m == nil {
			m = &match{id: r.MatchID}
			byID[r.MatchID] = m
			order = append(order, m)
		}
		m.rows = append(m.rows, r)
	}

	sort.SliceStable(order, func(i, j int) bool {
		ni, okI := parseMatchOrdinal(order[i].id)
		nj, okJ := parseMatchOrdinal(order[j].id)
		switch {
		case okI && okJ:
			return ni < nj
		case okI != okJ:
			return okI
		default:
			return order[i].id < order[j].id
		}
	})

	out := make([]match, len(order))
	for i, m := range order {
		out[i] = *m
	}
	return out
}

func parseMatchOrdinal(id string) (int64, bool) {
	n, err := strconv.ParseInt(id, 10, 64)
	return n, err == nil
}

// admit gates a match before any state is touched: exactly five rows per
// side, only "A"/"B" labels, and a valid calendar date. Any violation
// skips the whole match and reports a warning.
func admit(m *match) *model.RunWarning {
	countA, countB := 0, 0
	for i := range m.rows {
		switch m.rows[i].Team {
		case model.TeamA:
			countA++
		case model.TeamB:
			countB++
		default:
			return &model.RunWarning{
				MatchID: m.id,
				Kind:    model.WarnMalformedMatch,
				Message: fmt.Sprintf("match %s: unknown team label %q", m.id, m.rows[i].Team),
			}
		}
	}
	if countA != teamSize || countB != teamSize {
		return &model.RunWarning{
			MatchID: m.id,
			Kind:    model.WarnMalformedMatch,
			Message: fmt.Sprintf("match %s: team sizes %dv%d, want %dv%d", m.id, countA, countB, teamSize, teamSize),
		}
	}
	if m.rows[0].Date.IsZero() {
		return &model.RunWarning{
			MatchID: m.id,
			Kind:    model.WarnInvalidDate,
			Message: fmt.Sprintf("match %s: invalid date %q", m.id, m.rows[0].RawDate),
		}
	}
	return nil
}

// pendingUpdate is one player's computed outcome, held until every row of
// the match has been computed from the pre-match snapshot.
type pendingUpdate struct {
	rowIndex int
	state    *model.PlayerState
	delta    int
}

// applyMatch runs the rating update for one admitted match. All ten
// players' inputs come from state as it stood before the match; the ten
// mutations are applied together at the end, so results are independent
// of row order within the match.
func applyMatch(states map[string]*model.PlayerState, m *match, deltas map[int]int) {
	matchDate := m.rows[0].Date

	// Lazy-insert and pre-match idle growth. Growth precedes the K-factor
	// computation so that a long-idle rating moves more this match.
	for i := range m.rows {
		st := states[m.rows[i].Player]
		if st == nil {
			st = &model.PlayerState{
				Player:      m.rows[i].Player,
				Rating:      InitialRating,
				Uncertainty: UncertaintyInit,
			}
			states[m.rows[i].Player] = st
		}
		growUncertainty(st, matchDate)
	}

	var teamA, teamB []model.MatchParticipationRow
	for _, r := range m.rows {
		if r.Team == model.TeamA {
			teamA = append(teamA, r)
		} else {
			teamB = append(teamB, r)
		}
	}

	avgA := averageRating(states, teamA)
	avgB := averageRating(states, teamB)
	expectedA := expectedScore(avgA, avgB)

	// Team A's anchor row carries the match score.
	marginA := teamA[0].RoundMargin()
	perfA := teamPerformance(marginA)

	lobbyACS, lobbyKDA := lobbyAverages(m.rows)

	var pending []pendingUpdate
	pending = append(pending, computeTeam(states, teamA, lobbyACS, lobbyKDA, perfA-expectedA)...)
	pending = append(pending, computeTeam(states, teamB, lobbyACS, lobbyKDA, (1-perfA)-(1-expectedA))...)

	for _, p := range pending {
		// The recorded integer delta is also the applied one, so a
		// player's final rating is exactly InitialRating plus the sum of
		// their audit deltas.
		p.state.Rating += float64(p.delta)
		p.state.MatchesPlayed++
		deltas[p.rowIndex] = p.delta
	}
	for _, p := range pending {
		decayUncertainty(p.state)
		p.state.LastMatch = matchDate
	}
}

// computeTeam derives the five rating deltas for one side. baseChange is
// the team's performance relative to its Elo expectation; its sign picks
// the normalizer branch.
func computeTeam(states map[string]*model.PlayerState, team []model.MatchParticipationRow, lobbyACS, lobbyKDA, baseChange float64) []pendingUpdate {
	raws := make([]float64, len(team))
	ks := make([]float64, len(team))
	for i := range team {
		st := states[team[i].Player]
		raws[i] = sharpen(performanceIndex(&team[i], lobbyACS, lobbyKDA))
		ks[i] = kFactor(st.MatchesPlayed, st.Uncertainty)
	}
	mods := normalizeTeam(raws, ks, baseChange > 0)

	out := make([]pendingUpdate, len(team))
	for i := range team {
		change := ks[i] * baseChange * mods[i]
		out[i] = pendingUpdate{
			rowIndex: team[i].RowIndex,
			state:    states[team[i].Player],
			delta:    int(math.Round(change)),
		}
	}
	return out
}

func averageRating(states map[string]*model.PlayerState, team []model.MatchParticipationRow) float64 {
	var sum float64
	for i := range team {
		sum += states[team[i].Player].Rating
	}
	return sum / float64(len(team))
}
