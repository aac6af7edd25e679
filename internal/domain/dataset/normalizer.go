package dataset

import (
	"fmt"
	"sort"

	"github.com/riskibarqy/league-ranking/internal/domain/event"
	"github.com/riskibarqy/league-ranking/internal/domain/match"
	"github.com/riskibarqy/league-ranking/internal/domain/player"
)

// Normalized holds the three tables coerced into canonical types.
type Normalized struct {
	Players        []player.Player
	Matches        []match.Match
	Events         []event.Event
	DroppedPlayers int
	DroppedMatches int
	DroppedEvents  int
	Notes          []string
}

// Normalize coerces every table of the snapshot independently. Parsing
// failures fall back to defaults; rows whose ids cannot be parsed are dropped.
func Normalize(snap Snapshot) Normalized {
	out := Normalized{Notes: make([]string, 0)}
	out.Players, out.DroppedPlayers = NormalizePlayers(snap.Players)
	out.Matches, out.DroppedMatches = NormalizeMatches(snap.Matches)
	out.Events, out.DroppedEvents = NormalizeEvents(snap.Events)
	out.Notes = append(out.Notes, PlayerConflicts(out.Players)...)
	return out
}

func NormalizePlayers(t Table) ([]player.Player, int) {
	out := make([]player.Player, 0, t.Len())
	dropped := 0
	for _, row := range t.Rows {
		id, ok := ParseID(row.Get(ColPlayerID))
		if !ok {
			dropped++
			continue
		}
		out = append(out, player.Player{
			ID:             id,
			Name:           row.Get(ColPlayerName),
			Position:       player.NormalizePosition(row.Get(ColPosition)),
			Active:         ParseFlag(row.Get(ColActive)),
			SevereSanction: ParseFlag(row.Get(ColSevereSanction)),
		})
	}
	return out, dropped
}

func NormalizeMatches(t Table) ([]match.Match, int) {
	out := make([]match.Match, 0, t.Len())
	dropped := 0
	for _, row := range t.Rows {
		id, ok := ParseID(row.Get(ColMatchID))
		if !ok {
			dropped++
			continue
		}
		out = append(out, match.Match{
			ID:           id,
			Date:         ParseDate(row.Get(ColDate)),
			ResultYellow: match.NormalizeOutcome(row.Get(ColResultYellow)),
			ResultBlue:   match.NormalizeOutcome(row.Get(ColResultBlue)),
			ScoreYellow:  ParseScore(row.Get(ColScoreYellow)),
			ScoreBlue:    ParseScore(row.Get(ColScoreBlue)),
			Venue:        row.Get(ColVenue),
		})
	}
	return out, dropped
}

// NormalizeEvents parses event rows. The total goal count is always derived
// from the two halves; any gol_total value in the source is ignored.
func NormalizeEvents(t Table) ([]event.Event, int) {
	completionCol := completionColumn(t)
	out := make([]event.Event, 0, t.Len())
	dropped := 0
	for _, row := range t.Rows {
		matchID, okMatch := ParseID(row.Get(ColMatchID))
		playerID, okPlayer := ParseID(row.Get(ColPlayerID))
		if !okMatch || !okPlayer {
			dropped++
			continue
		}

		completion := 1.0
		if completionCol != "" {
			completion = ParseWeight(row.Get(completionCol))
		}

		ev := event.Event{
			MatchID:         matchID,
			PlayerID:        playerID,
			Team:            match.NormalizeTeam(row.Get(ColTeam)),
			FirstHalfGoals:  ParseCount(row.Get(ColFirstHalfGoals)),
			SecondHalfGoals: ParseCount(row.Get(ColSecondHalfGoals)),
			Assists:         ParseCount(row.Get(ColAssists)),
			OwnGoals:        ParseCount(row.Get(ColOwnGoals)),
			YellowCards:     ParseCount(row.Get(ColYellowCards)),
			RedCards:        ParseCount(row.Get(ColRedCards)),
			SavedPenalties:  ParseCount(row.Get(ColSavedPenalties)),
			PlayedAsForward: ParseFlag(row.Get(ColPlayedAsForward)),
			GoalsConceded:   ParseCount(row.Get(ColGoalsConceded)),
			Completion:      completion,
		}
		ev.Goals = ev.TotalGoals()
		out = append(out, ev)
	}
	return out, dropped
}

// PlayerConflicts lists players whose repeated rows disagree on position,
// active or sanction values. The last row wins downstream.
func PlayerConflicts(players []player.Player) []string {
	first := make(map[int]player.Player, len(players))
	conflicting := make(map[int]struct{})
	for _, p := range players {
		prev, seen := first[p.ID]
		if !seen {
			first[p.ID] = p
			continue
		}
		if prev.Position != p.Position || prev.Active != p.Active || prev.SevereSanction != p.SevereSanction {
			conflicting[p.ID] = struct{}{}
		}
	}

	ids := make([]int, 0, len(conflicting))
	for id := range conflicting {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	notes := make([]string, 0, len(ids))
	for _, id := range ids {
		notes = append(notes, fmt.Sprintf("%s: player %d has conflicting %s/%s/%s values; last row wins", TablePlayers, id, ColPosition, ColActive, ColSevereSanction))
	}
	return notes
}
