package rating

import (
	"math"

	"github.com/matchlab/scrimrank/internal/model"
)

// lobbyAverages computes the mean ACS and mean KDA across all 10 rows of
// a match.
func lobbyAverages(rows []model.MatchParticipationRow) (acs, kda float64) {
	for i := range rows {
		acs += rows[i].ACS
		kda += rows[i].KDA()
	}
	n := float64(len(rows))
	return acs / n, kda / n
}

// performanceIndex scores a player relative to the lobby: 60% ACS ratio,
// 40% KDA ratio (capped at kdaCap). Centered near 1.0 for an average
// participant. A zero lobby mean contributes a neutral ratio of 1.
func performanceIndex(row *model.MatchParticipationRow, lobbyACS, lobbyKDA float64) float64 {
	acsRatio := 1.0
	if lobbyACS > 0 {
		acsRatio = row.ACS / lobbyACS
	}
	kdaRatio := 1.0
	if lobbyKDA > 0 {
		kdaRatio = math.Min(row.KDA()/lobbyKDA, kdaCap)
	}
	return acsWeight*acsRatio + kdaWeight*kdaRatio
}

// sharpen widens the spread between strong and weak performers before
// team normalization: clamp to [perfClampMin, perfClampMax], then raise
// to perfGamma. Output is always positive, roughly [0.41, 4.97].
func sharpen(perfIndex float64) float64 {
	clamped := math.Min(math.Max(perfIndex, perfClampMin), perfClampMax)
	return math.Pow(clamped, perfGamma)
}
