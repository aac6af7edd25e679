package scoring

import (
	"errors"
	"fmt"
	"sort"

	"github.com/riskibarqy/league-ranking/internal/domain/match"
	"github.com/riskibarqy/league-ranking/internal/domain/player"
)

var ErrUnknownRuleSet = errors.New("unknown scoring ruleset")

const DefaultRuleSetName = "2026"

// FormulaInput carries the per-event facts a position formula may use.
type FormulaInput struct {
	Goals           int
	Assists         int
	SavedPenalties  int
	CleanSheet      int
	PlayedAsForward bool
}

// FormulaFunc computes position points for one event.
type FormulaFunc func(in FormulaInput) float64

// Threshold is a reset-style season penalty: Penalty is applied once for
// every full block of Every cards.
type Threshold struct {
	Every   int
	Penalty float64
}

func (t Threshold) Apply(total int) float64 {
	if t.Every <= 0 || total <= 0 {
		return 0
	}
	return float64(total/t.Every) * t.Penalty
}

// RegularityWeights combine the four regularity components. They sum to 1.
type RegularityWeights struct {
	Availability float64
	Role         float64
	Offense      float64
	Discipline   float64
}

// RuleSet is one season's scoring configuration.
type RuleSet struct {
	Name              string
	ResultPoints      map[match.Outcome]float64
	PositionFormulas  map[player.Position]FormulaFunc
	HatTrickGoals     int
	HatTrickBonus     float64
	YellowCardPenalty float64
	RedCardPenalty    float64
	YellowThreshold   Threshold
	RedThreshold      Threshold
	Regularity        RegularityWeights
}

// Season2026 returns the current league rules.
func Season2026() RuleSet {
	rules := RuleSet{
		Name: "2026",
		ResultPoints: map[match.Outcome]float64{
			match.OutcomeWin:  3,
			match.OutcomeDraw: 1,
		},
		HatTrickGoals:     3,
		HatTrickBonus:     1,
		YellowCardPenalty: -1,
		RedCardPenalty:    -3,
		YellowThreshold:   Threshold{Every: 5, Penalty: -3},
		RedThreshold:      Threshold{Every: 3, Penalty: -5},
		Regularity: RegularityWeights{
			Availability: 0.40,
			Role:         0.35,
			Offense:      0.15,
			Discipline:   0.10,
		},
	}

	rules.PositionFormulas = map[player.Position]FormulaFunc{
		player.PositionGoalkeeper: func(in FormulaInput) float64 {
			return 3*float64(in.CleanSheet) + 3*float64(in.SavedPenalties) + 3*float64(in.Goals) + float64(in.Assists)
		},
		player.PositionDefender: func(in FormulaInput) float64 {
			if in.PlayedAsForward {
				return 0
			}
			return 3*float64(in.CleanSheet) + 3*float64(in.Goals) + float64(in.Assists) + rules.HatTrick(in.Goals)
		},
		player.PositionMidfielder: func(in FormulaInput) float64 {
			return float64(in.Assists) + rules.HatTrick(in.Goals)
		},
		player.PositionForward: func(in FormulaInput) float64 {
			return float64(in.Assists) + rules.HatTrick(in.Goals)
		},
	}

	return rules
}

// Legacy returns the first-season flat rules: no result points, the same
// formula for every position and a clean-sheet bonus only for goalkeepers.
func Legacy() RuleSet {
	flat := func(in FormulaInput) float64 {
		return 3*float64(in.Goals) + float64(in.Assists) + 3*float64(in.SavedPenalties)
	}

	return RuleSet{
		Name:         "legacy",
		ResultPoints: map[match.Outcome]float64{},
		PositionFormulas: map[player.Position]FormulaFunc{
			player.PositionGoalkeeper: func(in FormulaInput) float64 {
				return flat(in) + 2*float64(in.CleanSheet)
			},
			player.PositionDefender:   flat,
			player.PositionMidfielder: flat,
			player.PositionForward:    flat,
		},
		YellowCardPenalty: -1,
		RedCardPenalty:    -2,
		Regularity: RegularityWeights{
			Availability: 0.40,
			Role:         0.35,
			Offense:      0.15,
			Discipline:   0.10,
		},
	}
}

var registry = map[string]func() RuleSet{
	"2026":   Season2026,
	"legacy": Legacy,
}

// Lookup resolves a ruleset by name. An empty name selects the default.
func Lookup(name string) (RuleSet, error) {
	if name == "" {
		name = DefaultRuleSetName
	}
	build, ok := registry[name]
	if !ok {
		return RuleSet{}, fmt.Errorf("%w: %s", ErrUnknownRuleSet, name)
	}
	return build(), nil
}

func Names() []string {
	out := make([]string, 0, len(registry))
	for name := range registry {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// Result returns the result points for an outcome. Unknown outcomes score 0.
func (r RuleSet) Result(outcome match.Outcome) float64 {
	return r.ResultPoints[outcome]
}

// HatTrick returns the bonus earned for reaching the hat-trick goal count.
func (r RuleSet) HatTrick(goals int) float64 {
	if r.HatTrickGoals <= 0 || goals < r.HatTrickGoals {
		return 0
	}
	return r.HatTrickBonus
}

// Position applies the position formula. Invalid positions score 0.
func (r RuleSet) Position(pos player.Position, in FormulaInput) float64 {
	formula, ok := r.PositionFormulas[pos]
	if !ok {
		return 0
	}
	return formula(in)
}

// Cards is the per-match card penalty. It is never prorated.
func (r RuleSet) Cards(yellow, red int) float64 {
	return r.YellowCardPenalty*float64(yellow) + r.RedCardPenalty*float64(red)
}

// Thresholds returns the season yellow and red threshold penalties.
func (r RuleSet) Thresholds(yellowTotal, redTotal int) (float64, float64) {
	return r.YellowThreshold.Apply(yellowTotal), r.RedThreshold.Apply(redTotal)
}

// DisciplinePenalty is the positive magnitude of every card-related
// deduction a player accumulated over the season.
func (r RuleSet) DisciplinePenalty(yellowTotal, redTotal int) float64 {
	yellowThreshold, redThreshold := r.Thresholds(yellowTotal, redTotal)
	return -(r.Cards(yellowTotal, redTotal) + yellowThreshold + redThreshold)
}
