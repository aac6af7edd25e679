package seasonstats

import (
	"sort"
	"time"

	"github.com/riskibarqy/league-ranking/internal/domain/player"
	"github.com/riskibarqy/league-ranking/internal/domain/scoring"
)

// Aggregate sums scored events into one row per player and derives the
// season metrics: threshold penalties, sanction override, goalkeeper average
// and the regularity index over active players.
func Aggregate(events []scoring.ScoredEvent, rules scoring.RuleSet) Table {
	byPlayer := make(map[int]*PlayerSeason)
	matchesByPlayer := make(map[int]map[int]struct{})

	for _, ev := range events {
		row, ok := byPlayer[ev.PlayerID]
		if !ok {
			row = &PlayerSeason{PlayerID: ev.PlayerID}
			byPlayer[ev.PlayerID] = row
			matchesByPlayer[ev.PlayerID] = make(map[int]struct{})
		}

		// Player attributes are constant per season; the last row wins.
		row.Name = ev.PlayerName
		row.Position = ev.Position
		row.Active = ev.Active
		row.SevereSanction = ev.SevereSanction

		row.PointsRaw += ev.Points
		row.CompletionEquivalent += ev.Completion
		row.Goals += ev.Goals
		row.Assists += ev.Assists
		row.OwnGoals += ev.OwnGoals
		row.YellowCards += ev.YellowCards
		row.RedCards += ev.RedCards
		row.SavedPenalties += ev.SavedPenalties
		row.GoalsConceded += ev.GoalsConceded
		matchesByPlayer[ev.PlayerID][ev.MatchID] = struct{}{}
	}

	out := make(Table, 0, len(byPlayer))
	for id, row := range byPlayer {
		row.MatchesPlayed = len(matchesByPlayer[id])
		finalize(row, rules)
		out = append(out, *row)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].PlayerID < out[j].PlayerID })

	ApplyRegularity(out, rules)
	return out
}

// AggregateAsOf replays the season up to and including cutoff. Events of
// undated or later matches are ignored; nothing is carried over from other
// passes.
func AggregateAsOf(events []scoring.ScoredEvent, rules scoring.RuleSet, cutoff time.Time) Table {
	scoped := make([]scoring.ScoredEvent, 0, len(events))
	for _, ev := range events {
		if ev.UpTo(cutoff) {
			scoped = append(scoped, ev)
		}
	}
	return Aggregate(scoped, rules)
}

func finalize(row *PlayerSeason, rules scoring.RuleSet) {
	row.YellowPenalty, row.RedPenalty = rules.Thresholds(row.YellowCards, row.RedCards)
	row.PointsTotal = row.PointsRaw + row.YellowPenalty + row.RedPenalty
	if row.SevereSanction {
		row.PointsTotal = 0
	}

	row.AdjustedPoints = row.PointsTotal
	if row.Position == player.PositionGoalkeeper && row.CompletionEquivalent > 0 {
		gaa := float64(row.GoalsConceded) / row.CompletionEquivalent
		row.GoalsAgainstAverage = &gaa
		row.AdjustedPoints = row.PointsTotal - gaa
	}
}
