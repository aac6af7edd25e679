package leaderboard

import (
	"cmp"
	"slices"
	"time"

	"github.com/riskibarqy/league-ranking/internal/domain/player"
	"github.com/riskibarqy/league-ranking/internal/domain/scoring"
	"github.com/riskibarqy/league-ranking/internal/domain/seasonstats"
)

// Every view ranks active players only. Ranks are positional: 1..n after the
// full sort, so rows tied on every field still get distinct ranks. Player id
// ascending is the final tie-break to keep the order reproducible.

// Season ranks the season table for one position; an empty position ranks
// everyone. Goalkeepers are ranked by adjusted points.
func Season(table seasonstats.Table, pos player.Position) []Entry {
	out := make([]Entry, 0, len(table))
	for _, row := range table {
		if !row.Active || (pos != "" && row.Position != pos) {
			continue
		}
		out = append(out, Entry{Metric: row.RankingPoints(), Player: row})
	}
	slices.SortStableFunc(out, func(a, b Entry) int {
		return cmp.Or(
			cmp.Compare(b.Metric, a.Metric),
			cmp.Compare(b.Player.MatchesPlayed, a.Player.MatchesPlayed),
			cmp.Compare(b.Player.Goals, a.Player.Goals),
			cmp.Compare(b.Player.Assists, a.Player.Assists),
			cmp.Compare(a.Player.PlayerID, b.Player.PlayerID),
		)
	})
	return assignRanks(out)
}

// Specialty ranks players with a strictly positive total of kind.
func Specialty(table seasonstats.Table, kind Kind) []Entry {
	out := make([]Entry, 0)
	for _, row := range table {
		if !row.Active {
			continue
		}
		value := kind.metric(row)
		if value <= 0 {
			continue
		}
		out = append(out, Entry{Metric: float64(value), Player: row})
	}
	slices.SortStableFunc(out, func(a, b Entry) int {
		return cmp.Or(
			cmp.Compare(b.Metric, a.Metric),
			cmp.Compare(b.Player.MatchesPlayed, a.Player.MatchesPlayed),
			cmp.Compare(a.Player.PlayerID, b.Player.PlayerID),
		)
	})
	return assignRanks(out)
}

// GoalsAgainst ranks goalkeepers by goals-against average, lowest first.
// Goalkeepers without completed matches have no average and are left out.
func GoalsAgainst(table seasonstats.Table) []Entry {
	out := make([]Entry, 0)
	for _, row := range table {
		if !row.Active || row.Position != player.PositionGoalkeeper || row.GoalsAgainstAverage == nil {
			continue
		}
		out = append(out, Entry{Metric: *row.GoalsAgainstAverage, Player: row})
	}
	slices.SortStableFunc(out, func(a, b Entry) int {
		return cmp.Or(
			cmp.Compare(a.Metric, b.Metric),
			cmp.Compare(b.Player.CompletionEquivalent, a.Player.CompletionEquivalent),
			cmp.Compare(a.Player.PlayerID, b.Player.PlayerID),
		)
	})
	return assignRanks(out)
}

// Regularity ranks active players by regularity index.
func Regularity(table seasonstats.Table) []Entry {
	out := make([]Entry, 0, len(table))
	for _, row := range table {
		if !row.Active || row.Regularity == nil {
			continue
		}
		out = append(out, Entry{Metric: row.Regularity.Index, Player: row})
	}
	slices.SortStableFunc(out, func(a, b Entry) int {
		return cmp.Or(
			cmp.Compare(b.Metric, a.Metric),
			cmp.Compare(b.Player.MatchesPlayed, a.Player.MatchesPlayed),
			cmp.Compare(b.Player.Goals, a.Player.Goals),
			cmp.Compare(b.Player.Assists, a.Player.Assists),
			cmp.Compare(a.Player.PlayerID, b.Player.PlayerID),
		)
	})
	return assignRanks(out)
}

// MVPMentionWeight is what each leaderboard mention adds to the MVP score.
const MVPMentionWeight = 2

// MVP ranks active players by season points plus MVPMentionWeight for every
// specialty or goals-against board they appear on.
func MVP(table seasonstats.Table) []Entry {
	mentions := make(map[int]int)
	for _, kind := range AllKinds {
		for _, e := range Specialty(table, kind) {
			mentions[e.Player.PlayerID]++
		}
	}
	for _, e := range GoalsAgainst(table) {
		mentions[e.Player.PlayerID]++
	}

	out := make([]Entry, 0, len(table))
	for _, row := range table {
		if !row.Active {
			continue
		}
		n := mentions[row.PlayerID]
		out = append(out, Entry{
			Metric:   row.PointsTotal + float64(n*MVPMentionWeight),
			Mentions: n,
			Player:   row,
		})
	}
	slices.SortStableFunc(out, func(a, b Entry) int {
		return cmp.Or(
			cmp.Compare(b.Metric, a.Metric),
			cmp.Compare(b.Player.MatchesPlayed, a.Player.MatchesPlayed),
			cmp.Compare(b.Player.Goals, a.Player.Goals),
			cmp.Compare(b.Player.Assists, a.Player.Assists),
			cmp.Compare(a.Player.PlayerID, b.Player.PlayerID),
		)
	})
	return assignRanks(out)
}

// MatchDay ranks one match date using the match-day scoring rule. Points of
// several matches on the same date are summed. An empty position ranks
// everyone. Completion is the date-scoped attendance tie-break.
func MatchDay(events []scoring.ScoredEvent, engine *scoring.Engine, date time.Time, pos player.Position) []MatchDayEntry {
	byPlayer := make(map[int]*MatchDayEntry)
	seen := make(map[[2]int]struct{})
	order := make([]int, 0)
	for _, ev := range events {
		if !ev.Active || !ev.OnDate(date) || (pos != "" && ev.Position != pos) {
			continue
		}
		entry, ok := byPlayer[ev.PlayerID]
		if !ok {
			entry = &MatchDayEntry{PlayerID: ev.PlayerID}
			byPlayer[ev.PlayerID] = entry
			order = append(order, ev.PlayerID)
		}
		entry.Name = ev.PlayerName
		entry.Position = ev.Position
		entry.Points += engine.MatchDayPoints(ev)
		entry.Completion += ev.Completion
		if _, dup := seen[[2]int{ev.PlayerID, ev.MatchID}]; !dup {
			seen[[2]int{ev.PlayerID, ev.MatchID}] = struct{}{}
			entry.Matches++
		}
		entry.Goals += ev.Goals
		entry.Assists += ev.Assists
		entry.YellowCards += ev.YellowCards
		entry.RedCards += ev.RedCards
	}

	out := make([]MatchDayEntry, 0, len(order))
	for _, id := range order {
		out = append(out, *byPlayer[id])
	}
	slices.SortStableFunc(out, func(a, b MatchDayEntry) int {
		return cmp.Or(
			cmp.Compare(b.Points, a.Points),
			cmp.Compare(b.Completion, a.Completion),
			cmp.Compare(b.Goals, a.Goals),
			cmp.Compare(b.Assists, a.Assists),
			cmp.Compare(a.PlayerID, b.PlayerID),
		)
	})
	for i := range out {
		out[i].Rank = i + 1
	}
	return out
}

// PlayersOfTheDate picks the top match-day row across all positions for each
// date, keeping the order of dates. Dates without active rows are skipped.
func PlayersOfTheDate(events []scoring.ScoredEvent, engine *scoring.Engine, dates []time.Time) []PlayerOfTheDate {
	out := make([]PlayerOfTheDate, 0, len(dates))
	for _, date := range dates {
		ranked := MatchDay(events, engine, date, "")
		if len(ranked) == 0 {
			continue
		}
		out = append(out, PlayerOfTheDate{Date: date, Entry: ranked[0]})
	}
	return out
}

func assignRanks(entries []Entry) []Entry {
	for i := range entries {
		entries[i].Rank = i + 1
	}
	return entries
}
