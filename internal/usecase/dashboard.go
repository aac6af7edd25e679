package usecase

import (
	"context"
	"fmt"

	"github.com/riskibarqy/league-ranking/internal/domain/leaderboard"
	"github.com/riskibarqy/league-ranking/internal/domain/player"
	"github.com/riskibarqy/league-ranking/internal/domain/seasonstats"
	"github.com/sourcegraph/conc/pool"
)

const dashboardTopN = 5

// Dashboard is the landing summary: last match, team totals, the latest
// match-day board and the top of every season board.
type Dashboard struct {
	SnapshotID       string
	RuleSet          string
	EmptySeason      bool
	Problems         int
	LastMatch        *seasonstats.MatchSummary
	TeamTotals       seasonstats.TeamTotals
	MatchDay         MatchDayBoard
	SeasonLeaders    map[player.Position][]leaderboard.Entry
	TopScorers       []leaderboard.Entry
	Regularity       []leaderboard.Entry
	PlayersOfTheDate []leaderboard.PlayerOfTheDate
}

func (s *RankingService) Dashboard(ctx context.Context) (Dashboard, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.RankingService.Dashboard")
	defer span.End()

	report, err := s.Report(ctx)
	if err != nil {
		return Dashboard{}, err
	}

	out := Dashboard{
		SnapshotID:  report.SnapshotID,
		RuleSet:     report.RuleSet,
		EmptySeason: report.EmptySeason,
		Problems:    len(report.Problems),
		TeamTotals:  seasonstats.Totals(report.Matches),
	}
	if last, ok := seasonstats.LastMatch(report.Matches); ok {
		out.LastMatch = &last
	}

	leaders := make([][]leaderboard.Entry, len(player.OrderedPositions))

	tasks := pool.New().WithContext(ctx).WithCancelOnError()
	tasks.Go(func(ctx context.Context) error {
		board, err := s.MatchDayLeaderboard(ctx, nil, "")
		if err != nil {
			return fmt.Errorf("match-day board: %w", err)
		}
		out.MatchDay = board
		return nil
	})
	for i, pos := range player.OrderedPositions {
		tasks.Go(func(context.Context) error {
			leaders[i] = top(leaderboard.Season(report.Season, pos), dashboardTopN)
			return nil
		})
	}
	tasks.Go(func(context.Context) error {
		out.TopScorers = top(leaderboard.Specialty(report.Season, leaderboard.KindGoals), dashboardTopN)
		return nil
	})
	tasks.Go(func(context.Context) error {
		out.Regularity = top(leaderboard.Regularity(report.Season), dashboardTopN)
		return nil
	})
	tasks.Go(func(context.Context) error {
		out.PlayersOfTheDate = leaderboard.PlayersOfTheDate(report.Events, s.engine, seasonstats.MatchDates(report.Matches))
		return nil
	})
	if err := tasks.Wait(); err != nil {
		recordSpanError(span, err)
		return Dashboard{}, fmt.Errorf("assemble dashboard: %w", err)
	}

	out.SeasonLeaders = make(map[player.Position][]leaderboard.Entry, len(leaders))
	for i, pos := range player.OrderedPositions {
		out.SeasonLeaders[pos] = leaders[i]
	}
	return out, nil
}

func top(entries []leaderboard.Entry, n int) []leaderboard.Entry {
	if len(entries) <= n {
		return entries
	}
	return entries[:n]
}
