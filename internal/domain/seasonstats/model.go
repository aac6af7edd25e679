package seasonstats

import "github.com/riskibarqy/league-ranking/internal/domain/player"

// PlayerSeason is one player's season aggregate. It is rebuilt from scratch
// on every pass.
type PlayerSeason struct {
	PlayerID       int
	Name           string
	Position       player.Position
	Active         bool
	SevereSanction bool

	PointsRaw            float64
	MatchesPlayed        int
	CompletionEquivalent float64
	Goals                int
	Assists              int
	OwnGoals             int
	YellowCards          int
	RedCards             int
	SavedPenalties       int
	GoalsConceded        int

	YellowPenalty float64
	RedPenalty    float64
	PointsTotal   float64

	// GoalsAgainstAverage is set only for goalkeepers with a positive
	// completion equivalent.
	GoalsAgainstAverage *float64
	AdjustedPoints      float64

	Regularity *Regularity
}

// Regularity holds the regularity index and its four components.
type Regularity struct {
	Availability      float64
	Role              float64
	Offense           float64
	Discipline        float64
	DisciplinePenalty float64
	Index             float64
}

// RankingPoints is the metric position leaderboards sort by.
func (p PlayerSeason) RankingPoints() float64 {
	if p.Position == player.PositionGoalkeeper {
		return p.AdjustedPoints
	}
	return p.PointsTotal
}

// Offense is goals plus assists.
func (p PlayerSeason) Offense() int {
	return p.Goals + p.Assists
}

// Table is a set of player season rows in deterministic player id order.
type Table []PlayerSeason

// Active returns the rows of active players only.
func (t Table) Active() Table {
	out := make(Table, 0, len(t))
	for _, row := range t {
		if row.Active {
			out = append(out, row)
		}
	}
	return out
}

func (t Table) Find(playerID int) (PlayerSeason, bool) {
	for _, row := range t {
		if row.PlayerID == playerID {
			return row, true
		}
	}
	return PlayerSeason{}, false
}
