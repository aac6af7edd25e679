package player

import "strings"

// Position is the canonical, lower-cased position token used in the players table.
type Position string

const (
	PositionGoalkeeper Position = "arquero"
	PositionDefender   Position = "defensa"
	PositionMidfielder Position = "mediocampista"
	PositionForward    Position = "delantero"
)

var AllPositions = map[Position]struct{}{
	PositionGoalkeeper: {},
	PositionDefender:   {},
	PositionMidfielder: {},
	PositionForward:    {},
}

// OrderedPositions lists positions in leaderboard display order.
var OrderedPositions = []Position{
	PositionGoalkeeper,
	PositionDefender,
	PositionMidfielder,
	PositionForward,
}

func NormalizePosition(value string) Position {
	return Position(strings.ToLower(strings.TrimSpace(value)))
}

func (p Position) Valid() bool {
	_, ok := AllPositions[p]
	return ok
}

// Player is one registered league member.
type Player struct {
	ID             int
	Name           string
	Position       Position
	Active         bool
	SevereSanction bool
}
