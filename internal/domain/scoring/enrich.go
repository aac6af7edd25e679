package scoring

import (
	"time"

	"github.com/riskibarqy/league-ranking/internal/domain/event"
	"github.com/riskibarqy/league-ranking/internal/domain/match"
	"github.com/riskibarqy/league-ranking/internal/domain/player"
)

// ScoredEvent is one event joined to its player and match with every derived
// per-event fact. It is a pure function of the row and its joins.
type ScoredEvent struct {
	event.Event

	PlayerName     string
	Position       player.Position
	Active         bool
	SevereSanction bool
	KnownPlayer    bool

	MatchDate  *time.Time
	KnownMatch bool

	ResultPoints        float64
	GoalsConcededByTeam int
	CleanSheet          int
	CardPenalty         float64
	PositionPoints      float64
	ParticipationPoints float64
	Points              float64
}

// OnDate reports whether the event belongs to a match played on day.
func (s ScoredEvent) OnDate(day time.Time) bool {
	return s.MatchDate != nil && match.SameDay(*s.MatchDate, day)
}

// UpTo reports whether the event's match was played on or before cutoff.
// Undated events are never included.
func (s ScoredEvent) UpTo(cutoff time.Time) bool {
	if s.MatchDate == nil {
		return false
	}
	return !s.MatchDate.After(cutoff)
}

// Engine scores events under one ruleset.
type Engine struct {
	rules RuleSet
}

func NewEngine(rules RuleSet) *Engine {
	return &Engine{rules: rules}
}

func (e *Engine) Rules() RuleSet {
	return e.rules
}

// Enrich joins one event to its context and derives the result, clean sheet
// and card facts. Unknown matches concede 0 goals and carry no outcome.
func (e *Engine) Enrich(ev event.Event, players player.Index, matches match.Index) ScoredEvent {
	out := ScoredEvent{Event: ev}

	if p, ok := players.Get(ev.PlayerID); ok {
		out.KnownPlayer = true
		out.PlayerName = p.Name
		out.Position = p.Position
		out.Active = p.Active
		out.SevereSanction = p.SevereSanction
	}

	if m, ok := matches[ev.MatchID]; ok {
		out.KnownMatch = true
		out.MatchDate = m.Date
		out.ResultPoints = e.rules.Result(m.Outcome(ev.Team))
		out.GoalsConcededByTeam = m.Score(ev.Team.Opponent())
	}

	if out.GoalsConcededByTeam == 0 {
		out.CleanSheet = 1
	}
	out.CardPenalty = e.rules.Cards(ev.YellowCards, ev.RedCards)

	return out
}

// Score applies the season formula to an enriched event:
// (result + position) scaled by completion, plus the unscaled card penalty.
func (e *Engine) Score(s ScoredEvent) ScoredEvent {
	s.PositionPoints = e.rules.Position(s.Position, FormulaInput{
		Goals:           s.Goals,
		Assists:         s.Assists,
		SavedPenalties:  s.SavedPenalties,
		CleanSheet:      s.CleanSheet,
		PlayedAsForward: s.PlayedAsForward,
	})
	s.ParticipationPoints = (s.ResultPoints + s.PositionPoints) * s.Completion
	s.Points = s.ParticipationPoints + s.CardPenalty
	return s
}

// ScoreAll enriches and scores every event, preserving input order.
func (e *Engine) ScoreAll(events []event.Event, players player.Index, matches match.Index) []ScoredEvent {
	out := make([]ScoredEvent, 0, len(events))
	for _, ev := range events {
		out = append(out, e.Score(e.Enrich(ev, players, matches)))
	}
	return out
}

// MatchDayPoints is the single match-day view score. A defender flagged as
// having played forward is re-scored with the narrower forward rule: only
// result points and the hat-trick bonus, both scaled by completion. Cards do
// not count on this path. Every other row keeps its season event points.
func (e *Engine) MatchDayPoints(s ScoredEvent) float64 {
	if s.Position == player.PositionDefender && s.PlayedAsForward {
		return (s.ResultPoints + e.rules.HatTrick(s.Goals)) * s.Completion
	}
	return s.Points
}
