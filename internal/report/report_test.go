package report

import (
	"bytes"
	"strings"
	"testing"

	"github.com/matchlab/scrimrank/internal/model"
)

func TestTierFor(t *testing.T) {
	cases := []struct {
		rating int
		want   string
	}{
		{2100, "Radiant"},
		{1900, "Radiant"},
		{1899, "Immortal"},
		{1650, "Platinum"},
		{1500, "Gold"},
		{1499, "Silver"},
		{1305, "Bronze"},
		{1299, "Iron"},
		{800, "Iron"},
	}
	for _, c := range cases {
		if got := tierFor(c.rating); got != c.want {
			t.Errorf("tierFor(%d): want %q, got %q", c.rating, c.want, got)
		}
	}
}

func TestPrintAudit_BlankDelta(t *testing.T) {
	var buf bytes.Buffer
	PrintAudit(&buf, []model.AuditRow{
		{
			MatchParticipationRow: model.MatchParticipationRow{
				RawDate: "2025-03-01", MatchID: "1", MapName: "ascent", Team: "A",
				RoundsWon: 13, RoundsLost: 4, ACS: 250, Kills: 20, Deaths: 10, Assists: 5, Player: "alice",
			},
			Delta: 31, HasDelta: true,
		},
		{
			MatchParticipationRow: model.MatchParticipationRow{
				RawDate: "2025-03-02", MatchID: "2", MapName: "bind", Team: "C",
				RoundsWon: 13, RoundsLost: 4, ACS: 190, Kills: 12, Deaths: 14, Assists: 3, Player: "bob",
			},
		},
	})

	out := buf.String()
	if !strings.Contains(out, "+31") {
		t.Errorf("rated delta missing from output:\n%s", out)
	}
	if !strings.Contains(out, "—") {
		t.Errorf("blank delta placeholder missing from output:\n%s", out)
	}
}

func TestPrintWarnings_Empty(t *testing.T) {
	var buf bytes.Buffer
	PrintWarnings(&buf, nil)
	if buf.Len() != 0 {
		t.Errorf("expected no output for zero warnings, got %q", buf.String())
	}
}
