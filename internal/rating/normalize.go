package rating

// normalizeTeam redistributes a team's rating movement among its five
// players by individual performance. It returns one multiplier per player
// such that the kFactor-weighted average multiplier is exactly 1, so the
// redistribution never changes the team's total expected movement.
//
// On the gain side (team beat its expectation) strong performers get a
// larger share of the gain; on the loss side strong performers absorb a
// smaller share of the penalty, via the weighted mean of 1/rawPerf.
func normalizeTeam(rawPerf, kFactors []float64, gained bool) []float64 {
	var kSum, weighted float64
	for i := range rawPerf {
		base := rawPerf[i]
		if !gained {
			base = 1 / rawPerf[i]
		}
		kSum += kFactors[i]
		weighted += kFactors[i] * base
	}
	mean := weighted / kSum

	mods := make([]float64, len(rawPerf))
	for i := range rawPerf {
		base := rawPerf[i]
		if !gained {
			base = 1 / rawPerf[i]
		}
		mods[i] = base / mean
	}
	return mods
}
