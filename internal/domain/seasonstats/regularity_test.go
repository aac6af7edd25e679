package seasonstats

import (
	"testing"

	"github.com/riskibarqy/league-ranking/internal/domain/player"
	"github.com/riskibarqy/league-ranking/internal/domain/scoring"
)

func TestPercentileRankAveragesTies(t *testing.T) {
	t.Parallel()

	got := PercentileRank([]float64{10, 20, 20, 40})
	want := []float64{0.25, 0.625, 0.625, 1}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("rank[%d]: got=%v want=%v", i, got[i], want[i])
		}
	}

	if len(PercentileRank(nil)) != 0 {
		t.Fatalf("expected empty ranks")
	}
}

func TestRegularityIndexBounds(t *testing.T) {
	t.Parallel()

	rows := Table{
		{PlayerID: 1, Position: player.PositionGoalkeeper, Active: true, CompletionEquivalent: 4, AdjustedPoints: 10},
		{PlayerID: 2, Position: player.PositionGoalkeeper, Active: true, CompletionEquivalent: 2, AdjustedPoints: 4},
		{PlayerID: 3, Position: player.PositionForward, Active: true, CompletionEquivalent: 3, PointsTotal: 8, Goals: 5, Assists: 2, YellowCards: 6},
		{PlayerID: 4, Position: player.PositionDefender, Active: true, CompletionEquivalent: 0, RedCards: 3},
		{PlayerID: 5, Position: player.Position("libero"), Active: true, CompletionEquivalent: 1},
		{PlayerID: 6, Position: player.PositionForward, Active: false, CompletionEquivalent: 9},
	}

	ApplyRegularity(rows, scoring.Season2026())

	for _, row := range rows {
		if !row.Active {
			if row.Regularity != nil {
				t.Fatalf("inactive players get no regularity: %+v", row)
			}
			continue
		}
		if row.Regularity == nil {
			t.Fatalf("missing regularity for player %d", row.PlayerID)
		}
		if row.Regularity.Index < 0 || row.Regularity.Index > 1 {
			t.Fatalf("regularity out of bounds for player %d: %v", row.PlayerID, row.Regularity.Index)
		}
	}

	top := rows[0].Regularity
	if top.Availability != 1 {
		t.Fatalf("max completion must give availability 1, got %v", top.Availability)
	}
	if top.Role != 1 || rows[1].Regularity.Role != 0.5 {
		t.Fatalf("role must be ranked within goalkeepers: %v %v", top.Role, rows[1].Regularity.Role)
	}
	if rows[4].Regularity.Role != 0 {
		t.Fatalf("invalid positions get no role score")
	}
	if rows[3].Regularity.DisciplinePenalty != 14 {
		t.Fatalf("unexpected discipline penalty: %v", rows[3].Regularity.DisciplinePenalty)
	}
}

func TestRegularityIndexRoundedToFourPlaces(t *testing.T) {
	t.Parallel()

	rows := Table{
		{PlayerID: 1, Position: player.PositionForward, Active: true, CompletionEquivalent: 3, Goals: 1},
		{PlayerID: 2, Position: player.PositionForward, Active: true, CompletionEquivalent: 1, Goals: 2},
		{PlayerID: 3, Position: player.PositionForward, Active: true, CompletionEquivalent: 2, Goals: 3, YellowCards: 1},
	}
	ApplyRegularity(rows, scoring.Season2026())

	// availability 1/3, role 2/3 (tied), offense 2/3, discipline 1-0.5
	if got := rows[1].Regularity.Index; got != 0.5167 {
		t.Fatalf("unexpected regularity index: %v", got)
	}
}
