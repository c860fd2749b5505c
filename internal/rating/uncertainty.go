package rating

import (
	"math"
	"time"

	"github.com/matchlab/scrimrank/internal/model"
)

// growUncertainty applies the pre-match idle growth: uncertainty variance
// accumulates with each day since the player's previous admitted match,
// bounded above by UncertaintyMax. No-op for first-time players and for
// non-positive idle spans.
func growUncertainty(st *model.PlayerState, matchDate time.Time) {
	if st.LastMatch.IsZero() {
		return
	}
	daysIdle := matchDate.Sub(st.LastMatch).Seconds() / 86400
	if daysIdle <= 0 {
		return
	}
	grown := math.Sqrt(st.Uncertainty*st.Uncertainty + idleGrowthC*idleGrowthC*daysIdle)
	st.Uncertainty = math.Min(UncertaintyMax, grown)
}

// decayUncertainty applies the post-match decay, floored at UncertaintyMin.
func decayUncertainty(st *model.PlayerState) {
	st.Uncertainty = math.Max(UncertaintyMin, st.Uncertainty*uncertaintyDecay)
}
