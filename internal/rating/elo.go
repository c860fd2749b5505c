package rating

import "math"

// Tunables of the rating update. InitialRating through UncertaintyMax are
// exported because storage and reporting need the same anchors; the rest
// only matter inside this package.
const (
	InitialRating = 1500.0

	UncertaintyInit = 200.0
	UncertaintyMin  = 50.0
	UncertaintyMax  = 200.0

	// Idle growth adds idleGrowthC² rating-deviation variance per idle day.
	idleGrowthC      = 20.0
	uncertaintyDecay = 0.85

	acsWeight = 0.6
	kdaWeight = 0.4
	kdaCap    = 2.5

	perfClampMin = 0.70
	perfClampMax = 1.90
	perfGamma    = 2.5

	steadyK          = 32.0
	newPlayerRamp    = 30.0
	newPlayerKFloor  = 0.5
	uncertaintyKMax  = 2.0
	eloDivisor       = 400.0
	marginShape      = 4.0

	teamSize = 5
)

// expectedScore is the Elo win probability for a team whose 5-player
// average rating is myAvg against one averaging oppAvg.
func expectedScore(myAvg, oppAvg float64) float64 {
	return 1 / (1 + math.Pow(10, (oppAvg-myAvg)/eloDivisor))
}

// teamPerformance maps team A's round margin onto (0,1). tanh saturates
// smoothly toward 0/1 for blowouts instead of clamping; a margin of 0
// yields exactly 0.5 for both sides.
func teamPerformance(marginA int) float64 {
	return 0.5 + 0.5*math.Tanh(float64(marginA)/marginShape)
}

// baseK gives new players up to twice the steady-state K, decaying
// linearly over their first matches down to a floor of steadyK/2.
func baseK(matchesPlayed int) float64 {
	ramp := 1 - float64(matchesPlayed)/newPlayerRamp
	return steadyK * math.Max(ramp, newPlayerKFloor)
}

// kFactor scales baseK by up to uncertaintyKMax as the player's
// uncertainty approaches its upper bound. Range is [16, 64].
func kFactor(matchesPlayed int, uncertainty float64) float64 {
	u01 := (uncertainty - UncertaintyMin) / (UncertaintyMax - UncertaintyMin)
	if u01 < 0 {
		u01 = 0
	} else if u01 > 1 {
		u01 = 1
	}
	return baseK(matchesPlayed) * (1 + u01*(uncertaintyKMax-1))
}
