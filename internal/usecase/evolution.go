package usecase

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/panjf2000/ants/v2"
	"github.com/riskibarqy/league-ranking/internal/domain/leaderboard"
	"github.com/riskibarqy/league-ranking/internal/domain/player"
	"github.com/riskibarqy/league-ranking/internal/domain/scoring"
	"github.com/riskibarqy/league-ranking/internal/domain/seasonstats"
	"go.opentelemetry.io/otel/attribute"
)

// EvolutionPoint is one player's standing after one of their match dates.
type EvolutionPoint struct {
	Date           time.Time
	MatchDayPoints float64
	SeasonToDate   float64
	Rank           int
}

// PlayerEvolution replays the season as of every date the player took part
// in. Each replay is independent and runs on a bounded worker pool.
func (s *RankingService) PlayerEvolution(ctx context.Context, playerID int) ([]EvolutionPoint, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.RankingService.PlayerEvolution",
		attribute.Int("player.id", playerID),
	)
	defer span.End()

	report, err := s.Report(ctx)
	if err != nil {
		return nil, err
	}
	p, ok := report.Players.Get(playerID)
	if !ok {
		return nil, fmt.Errorf("%w: player %d", ErrNotFound, playerID)
	}

	dayPoints := make(map[time.Time]float64)
	for _, ev := range report.Events {
		if ev.PlayerID != playerID || ev.MatchDate == nil {
			continue
		}
		dayPoints[*ev.MatchDate] += s.engine.MatchDayPoints(ev)
	}
	if len(dayPoints) == 0 {
		return []EvolutionPoint{}, nil
	}

	points := make([]EvolutionPoint, 0, len(dayPoints))
	for date, value := range dayPoints {
		points = append(points, EvolutionPoint{Date: date, MatchDayPoints: value})
	}
	sort.Slice(points, func(i, j int) bool { return points[i].Date.Before(points[j].Date) })

	pool, err := ants.NewPool(s.evolutionWorkers)
	if err != nil {
		return nil, fmt.Errorf("create worker pool: %w", err)
	}
	defer pool.Release()

	var workers sync.WaitGroup
	for i := range points {
		workers.Add(1)
		if err := pool.Submit(func() {
			defer workers.Done()
			points[i].SeasonToDate, points[i].Rank = replayStanding(report.Events, s.engine.Rules(), points[i].Date, p)
		}); err != nil {
			workers.Done()
			workers.Wait()
			return nil, fmt.Errorf("submit replay to worker pool: %w", err)
		}
	}
	workers.Wait()

	return points, nil
}

// replayStanding returns the player's season total as of cutoff and their
// rank within their position on that date.
func replayStanding(events []scoring.ScoredEvent, rules scoring.RuleSet, cutoff time.Time, p player.Player) (float64, int) {
	table := seasonstats.AggregateAsOf(events, rules, cutoff)
	row, ok := table.Find(p.ID)
	if !ok {
		return 0, 0
	}

	rank := 0
	for _, entry := range leaderboard.Season(table, row.Position) {
		if entry.Player.PlayerID == p.ID {
			rank = entry.Rank
			break
		}
	}
	return row.PointsTotal, rank
}
