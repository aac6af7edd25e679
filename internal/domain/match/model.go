package match

import (
	"strings"
	"time"
)

// Team is one of the two fixed sides of every match.
type Team string

const (
	TeamYellow Team = "amarillo"
	TeamBlue   Team = "azul"
)

var AllTeams = map[Team]struct{}{
	TeamYellow: {},
	TeamBlue:   {},
}

func NormalizeTeam(value string) Team {
	return Team(strings.ToLower(strings.TrimSpace(value)))
}

func (t Team) Valid() bool {
	_, ok := AllTeams[t]
	return ok
}

// Opponent returns the other fixed side. Unknown teams map to TeamYellow,
// matching the "otherwise" branch used when looking up conceded goals.
func (t Team) Opponent() Team {
	if t == TeamYellow {
		return TeamBlue
	}
	return TeamYellow
}

// Outcome is a team's result in one match.
type Outcome string

const (
	OutcomeWin     Outcome = "win"
	OutcomeDraw    Outcome = "draw"
	OutcomeLoss    Outcome = "loss"
	OutcomeUnknown Outcome = ""
)

func NormalizeOutcome(value string) Outcome {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "g", "win", "w", "ganado", "gano":
		return OutcomeWin
	case "e", "draw", "d", "empate", "empato":
		return OutcomeDraw
	case "p", "loss", "l", "perdido", "perdio":
		return OutcomeLoss
	default:
		return OutcomeUnknown
	}
}

// Match is one played fixture between the two fixed teams.
type Match struct {
	ID           int
	Date         *time.Time
	ResultYellow Outcome
	ResultBlue   Outcome
	ScoreYellow  *int
	ScoreBlue    *int
	Venue        string
}

// HasDate reports whether the match participates in date-based views.
func (m Match) HasDate() bool {
	return m.Date != nil
}

// Outcome returns the recorded outcome for the given team.
func (m Match) Outcome(team Team) Outcome {
	if team == TeamYellow {
		return m.ResultYellow
	}
	return m.ResultBlue
}

// Score returns the final score of the given team, 0 when missing.
func (m Match) Score(team Team) int {
	var score *int
	if team == TeamYellow {
		score = m.ScoreYellow
	} else {
		score = m.ScoreBlue
	}
	if score == nil {
		return 0
	}
	return *score
}

// SameDay compares two dates by calendar day.
func SameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// Index resolves matches by id.
type Index map[int]Match

func NewIndex(matches []Match) Index {
	out := make(Index, len(matches))
	for _, m := range matches {
		out[m.ID] = m
	}
	return out
}
