package seasonstats

import (
	"github.com/riskibarqy/league-ranking/internal/domain/player"
	"github.com/riskibarqy/league-ranking/internal/domain/scoring"
	"github.com/shopspring/decimal"
)

const regularityPlaces = 4

// ApplyRegularity computes the regularity index for every active row in
// place. Inactive rows keep a nil Regularity.
func ApplyRegularity(rows Table, rules scoring.RuleSet) {
	weights := rules.Regularity
	active := make([]int, 0, len(rows))
	for i := range rows {
		rows[i].Regularity = nil
		if rows[i].Active {
			active = append(active, i)
		}
	}
	if len(active) == 0 {
		return
	}

	maxCompletion := 0.0
	offense := make([]float64, len(active))
	discipline := make([]float64, len(active))
	for k, i := range active {
		row := rows[i]
		if row.CompletionEquivalent > maxCompletion {
			maxCompletion = row.CompletionEquivalent
		}
		offense[k] = float64(row.Offense())
		discipline[k] = rules.DisciplinePenalty(row.YellowCards, row.RedCards)
	}

	offenseRank := PercentileRank(offense)
	disciplineRank := PercentileRank(discipline)
	roleRank := rolePercentiles(rows, active)

	for k, i := range active {
		reg := &Regularity{
			Role:              roleRank[k],
			Offense:           offenseRank[k],
			Discipline:        1 - disciplineRank[k],
			DisciplinePenalty: discipline[k],
		}
		if maxCompletion > 0 && rows[i].CompletionEquivalent > 0 {
			reg.Availability = rows[i].CompletionEquivalent / maxCompletion
		}

		index := weights.Availability*reg.Availability +
			weights.Role*reg.Role +
			weights.Offense*reg.Offense +
			weights.Discipline*reg.Discipline
		reg.Index = decimal.NewFromFloat(index).Round(regularityPlaces).InexactFloat64()

		rows[i].Regularity = reg
	}
}

// rolePercentiles ranks adjusted points within each valid position group.
// Rows with an invalid position get 0.
func rolePercentiles(rows Table, active []int) []float64 {
	out := make([]float64, len(active))
	for _, pos := range player.OrderedPositions {
		members := make([]int, 0)
		values := make([]float64, 0)
		for k, i := range active {
			if rows[i].Position != pos {
				continue
			}
			members = append(members, k)
			values = append(values, rows[i].RankingPoints())
		}
		ranks := PercentileRank(values)
		for n, k := range members {
			out[k] = ranks[n]
		}
	}
	return out
}

// PercentileRank returns rank/n for every value, ascending, with tied values
// sharing the average of their ranks. Results lie in (0, 1].
func PercentileRank(values []float64) []float64 {
	n := len(values)
	out := make([]float64, n)
	if n == 0 {
		return out
	}

	for i, v := range values {
		less, equal := 0, 0
		for _, w := range values {
			switch {
			case w < v:
				less++
			case w == v:
				equal++
			}
		}
		// ranks less+1 .. less+equal, averaged
		avg := float64(less) + float64(equal+1)/2
		out[i] = avg / float64(n)
	}
	return out
}
