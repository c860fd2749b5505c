package rating

import (
	"math"
	"sort"

	"github.com/matchlab/scrimrank/internal/model"
)

// leaderboard ranks every known player by rounded rating descending.
// Ties break by player id ascending so the ordering never depends on map
// iteration order.
func leaderboard(states map[string]*model.PlayerState) []model.LeaderboardRow {
	out := make([]model.LeaderboardRow, 0, len(states))
	for _, st := range states {
		out = append(out, model.LeaderboardRow{
			Player:        st.Player,
			Rating:        int(math.Round(st.Rating)),
			MatchesPlayed: st.MatchesPlayed,
			Uncertainty:   int(math.Round(st.Uncertainty)),
			LastMatch:     st.LastMatch,
		})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Rating != out[j].Rating {
			return out[i].Rating > out[j].Rating
		}
		return out[i].Player < out[j].Player
	})
	for i := range out {
		out[i].Rank = i + 1
	}
	return out
}

// auditRows pairs every original input row with its recorded delta.
// Rows of rejected matches stay blank. Sort order: date, match id
// (string), rounds won, team label, ACS descending, kills descending,
// with the original row index as the final deterministic tie-break.
func auditRows(rows []model.MatchParticipationRow, deltas map[int]int) []model.AuditRow {
	out := make([]model.AuditRow, len(rows))
	for i, r := range rows {
		out[i] = model.AuditRow{MatchParticipationRow: r}
		if d, ok := deltas[r.RowIndex]; ok {
			out[i].Delta = d
			out[i].HasDelta = true
		}
	}
	sort.Slice(out, func(i, j int) bool {
		a, b := &out[i], &out[j]
		if !a.Date.Equal(b.Date) {
			return a.Date.Before(b.Date)
		}
		if a.MatchID != b.MatchID {
			return a.MatchID < b.MatchID
		}
		if a.RoundsWon != b.RoundsWon {
			return a.RoundsWon < b.RoundsWon
		}
		if a.Team != b.Team {
			return a.Team < b.Team
		}
		if a.ACS != b.ACS {
			return a.ACS > b.ACS
		}
		if a.Kills != b.Kills {
			return a.Kills > b.Kills
		}
		return a.RowIndex < b.RowIndex
	})
	return out
}
