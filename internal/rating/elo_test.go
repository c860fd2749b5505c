package rating

import (
	"math"
	"testing"
)

func TestExpectedScore(t *testing.T) {
	tests := []struct {
		name   string
		my     float64
		opp    float64
		want   float64
		within float64
	}{
		{"equal ratings", 1500, 1500, 0.5, 1e-12},
		{"400 ahead", 1700, 1300, 10.0 / 11, 1e-9},
		{"400 behind", 1300, 1700, 1.0 / 11, 1e-9},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := expectedScore(tt.my, tt.opp)
			if math.Abs(got-tt.want) > tt.within {
				t.Errorf("expectedScore(%v, %v) = %f, want %f", tt.my, tt.opp, got, tt.want)
			}
		})
	}
}

// TestExpectedScore_Complementary: the two sides' expectations always sum
// to 1.
func TestExpectedScore_Complementary(t *testing.T) {
	pairs := [][2]float64{{1500, 1500}, {1820, 1410}, {900, 2400}}
	for _, p := range pairs {
		sum := expectedScore(p[0], p[1]) + expectedScore(p[1], p[0])
		if math.Abs(sum-1) > 1e-12 {
			t.Errorf("expectations for %v sum to %f", p, sum)
		}
	}
}

func TestTeamPerformance(t *testing.T) {
	if got := teamPerformance(0); got != 0.5 {
		t.Errorf("margin 0: %f, want 0.5", got)
	}
	// Saturates smoothly: a 13-0 blowout stays below 1.
	if got := teamPerformance(13); got <= 0.95 || got >= 1 {
		t.Errorf("margin 13: %f, want in (0.95, 1)", got)
	}
	// Symmetric around 0.5.
	if sum := teamPerformance(9) + teamPerformance(-9); math.Abs(sum-1) > 1e-12 {
		t.Errorf("teamPerformance(9)+teamPerformance(-9) = %f, want 1", sum)
	}
}

func TestBaseK(t *testing.T) {
	tests := []struct {
		matches int
		want    float64
	}{
		{0, 32},
		{6, 32 * (1 - 6.0/30)},
		{15, 16}, // ramp hits the 0.5 floor
		{30, 16},
		{500, 16},
	}
	for _, tt := range tests {
		if got := baseK(tt.matches); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("baseK(%d) = %f, want %f", tt.matches, got, tt.want)
		}
	}
}

// TestKFactor_Range: kFactor always lands in [16, 64] and hits both ends.
func TestKFactor_Range(t *testing.T) {
	if got := kFactor(0, UncertaintyMax); got != 64 {
		t.Errorf("fresh player at max uncertainty: %f, want 64", got)
	}
	if got := kFactor(100, UncertaintyMin); got != 16 {
		t.Errorf("veteran at min uncertainty: %f, want 16", got)
	}
	for matches := 0; matches <= 60; matches += 5 {
		for u := 40.0; u <= 220; u += 20 {
			got := kFactor(matches, u)
			if got < 16-1e-9 || got > 64+1e-9 {
				t.Errorf("kFactor(%d, %f) = %f out of [16, 64]", matches, u, got)
			}
		}
	}
}
