package seasonstats

import (
	"sort"
	"time"

	"github.com/riskibarqy/league-ranking/internal/domain/match"
	"github.com/shopspring/decimal"
)

const Draw = "empate"

// MatchSummary is the goal summary of one dated match.
type MatchSummary struct {
	MatchID     int
	Date        time.Time
	ScoreYellow int
	ScoreBlue   int
	TotalGoals  int
	Winner      string
}

// TeamTotals holds season goal totals per team.
type TeamTotals struct {
	GoalsYellow          int
	GoalsBlue            int
	Matches              int
	AverageGoalsPerMatch float64
}

// MatchSummaries lists dated matches newest first. Matches on the same date
// are ordered by descending id.
func MatchSummaries(matches []match.Match) []MatchSummary {
	out := make([]MatchSummary, 0, len(matches))
	for _, m := range matches {
		if !m.HasDate() {
			continue
		}
		yellow := m.Score(match.TeamYellow)
		blue := m.Score(match.TeamBlue)
		out = append(out, MatchSummary{
			MatchID:     m.ID,
			Date:        *m.Date,
			ScoreYellow: yellow,
			ScoreBlue:   blue,
			TotalGoals:  yellow + blue,
			Winner:      winner(yellow, blue),
		})
	}
	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].Date.Equal(out[j].Date) {
			return out[i].Date.After(out[j].Date)
		}
		return out[i].MatchID > out[j].MatchID
	})
	return out
}

// LastMatch returns the match with the highest id on the latest match date.
func LastMatch(matches []match.Match) (MatchSummary, bool) {
	summaries := MatchSummaries(matches)
	if len(summaries) == 0 {
		return MatchSummary{}, false
	}
	return summaries[0], true
}

// LatestDate returns the most recent match date.
func LatestDate(matches []match.Match) (time.Time, bool) {
	var latest time.Time
	found := false
	for _, m := range matches {
		if !m.HasDate() {
			continue
		}
		if !found || m.Date.After(latest) {
			latest = *m.Date
			found = true
		}
	}
	return latest, found
}

// MatchDates returns every distinct match date, newest first.
func MatchDates(matches []match.Match) []time.Time {
	seen := make(map[time.Time]struct{})
	out := make([]time.Time, 0)
	for _, m := range matches {
		if !m.HasDate() {
			continue
		}
		if _, ok := seen[*m.Date]; ok {
			continue
		}
		seen[*m.Date] = struct{}{}
		out = append(out, *m.Date)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].After(out[j]) })
	return out
}

// Totals sums final scores over every match, dated or not. The average is
// rounded to two decimals and is 0 without matches.
func Totals(matches []match.Match) TeamTotals {
	out := TeamTotals{}
	ids := make(map[int]struct{}, len(matches))
	for _, m := range matches {
		out.GoalsYellow += m.Score(match.TeamYellow)
		out.GoalsBlue += m.Score(match.TeamBlue)
		ids[m.ID] = struct{}{}
	}
	out.Matches = len(ids)
	if out.Matches > 0 {
		avg := decimal.NewFromInt(int64(out.GoalsYellow + out.GoalsBlue)).
			Div(decimal.NewFromInt(int64(out.Matches)))
		out.AverageGoalsPerMatch = avg.Round(2).InexactFloat64()
	}
	return out
}

func winner(yellow, blue int) string {
	switch {
	case yellow > blue:
		return string(match.TeamYellow)
	case blue > yellow:
		return string(match.TeamBlue)
	default:
		return Draw
	}
}
