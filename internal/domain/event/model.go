package event

import "github.com/riskibarqy/league-ranking/internal/domain/match"

// Key is the unique identity of an event row.
type Key struct {
	MatchID  int
	PlayerID int
}

// Event is one player's recorded contribution in one match.
type Event struct {
	MatchID         int
	PlayerID        int
	Team            match.Team
	FirstHalfGoals  int
	SecondHalfGoals int
	Goals           int
	Assists         int
	OwnGoals        int
	YellowCards     int
	RedCards        int
	SavedPenalties  int
	PlayedAsForward bool
	GoalsConceded   int
	Completion      float64
}

func (e Event) Key() Key {
	return Key{MatchID: e.MatchID, PlayerID: e.PlayerID}
}

// TotalGoals is always derived from the two halves.
func (e Event) TotalGoals() int {
	return e.FirstHalfGoals + e.SecondHalfGoals
}
