package leaderboard

import (
	"errors"
	"fmt"
	"time"

	"github.com/riskibarqy/league-ranking/internal/domain/player"
	"github.com/riskibarqy/league-ranking/internal/domain/seasonstats"
)

var ErrUnknownKind = errors.New("unknown leaderboard kind")

// Kind names a specialty leaderboard.
type Kind string

const (
	KindGoals          Kind = "goals"
	KindAssists        Kind = "assists"
	KindYellowCards    Kind = "yellow-cards"
	KindRedCards       Kind = "red-cards"
	KindOwnGoals       Kind = "own-goals"
	KindSavedPenalties Kind = "saved-penalties"
)

var AllKinds = []Kind{
	KindGoals,
	KindAssists,
	KindYellowCards,
	KindRedCards,
	KindOwnGoals,
	KindSavedPenalties,
}

func ParseKind(value string) (Kind, error) {
	for _, kind := range AllKinds {
		if string(kind) == value {
			return kind, nil
		}
	}
	return "", fmt.Errorf("%w: %s", ErrUnknownKind, value)
}

func (k Kind) metric(row seasonstats.PlayerSeason) int {
	switch k {
	case KindGoals:
		return row.Goals
	case KindAssists:
		return row.Assists
	case KindYellowCards:
		return row.YellowCards
	case KindRedCards:
		return row.RedCards
	case KindOwnGoals:
		return row.OwnGoals
	case KindSavedPenalties:
		return row.SavedPenalties
	default:
		return 0
	}
}

// Entry is one ranked season row. Metric is the value the view sorts by.
// Mentions is set only by the MVP view.
type Entry struct {
	Rank     int
	Metric   float64
	Mentions int
	Player   seasonstats.PlayerSeason
}

// MatchDayEntry is one player's ranked total on a single match date.
type MatchDayEntry struct {
	Rank        int
	PlayerID    int
	Name        string
	Position    player.Position
	Points      float64
	Completion  float64
	Matches     int
	Goals       int
	Assists     int
	YellowCards int
	RedCards    int
}

// PlayerOfTheDate is the top match-day row of one date.
type PlayerOfTheDate struct {
	Date  time.Time
	Entry MatchDayEntry
}
