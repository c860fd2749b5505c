package rating

import (
	"math"
	"testing"
	"time"

	"github.com/matchlab/scrimrank/internal/model"
)

func stateWith(u float64, last time.Time) *model.PlayerState {
	return &model.PlayerState{Player: "p", Rating: InitialRating, Uncertainty: u, LastMatch: last}
}

func TestGrowUncertainty(t *testing.T) {
	base := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		start    float64
		idleDays int
		want     float64
	}{
		{"one idle day", 50, 1, math.Sqrt(50*50 + 20*20)},
		{"four idle days", 100, 4, math.Sqrt(100*100 + 20*20*4)},
		{"long idle caps at max", 60, 365, UncertaintyMax},
		{"already at max stays", UncertaintyMax, 10, UncertaintyMax},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st := stateWith(tt.start, base)
			growUncertainty(st, base.AddDate(0, 0, tt.idleDays))
			if math.Abs(st.Uncertainty-tt.want) > 1e-9 {
				t.Errorf("uncertainty = %f, want %f", st.Uncertainty, tt.want)
			}
		})
	}
}

// TestGrowUncertainty_NoGrowth: first-timers and same-day rematches are
// untouched.
func TestGrowUncertainty_NoGrowth(t *testing.T) {
	base := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)

	st := stateWith(80, time.Time{})
	growUncertainty(st, base)
	if st.Uncertainty != 80 {
		t.Errorf("first-timer grew: %f", st.Uncertainty)
	}

	st = stateWith(80, base)
	growUncertainty(st, base)
	if st.Uncertainty != 80 {
		t.Errorf("same-day rematch grew: %f", st.Uncertainty)
	}
}

func TestDecayUncertainty(t *testing.T) {
	tests := []struct {
		name  string
		start float64
		want  float64
	}{
		{"normal decay", 200, 170},
		{"decay floors at min", 55, UncertaintyMin},
		{"at min stays at min", UncertaintyMin, UncertaintyMin},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st := stateWith(tt.start, time.Time{})
			decayUncertainty(st)
			if math.Abs(st.Uncertainty-tt.want) > 1e-9 {
				t.Errorf("uncertainty = %f, want %f", st.Uncertainty, tt.want)
			}
		})
	}
}
