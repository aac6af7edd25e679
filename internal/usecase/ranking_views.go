package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/riskibarqy/league-ranking/internal/domain/leaderboard"
	"github.com/riskibarqy/league-ranking/internal/domain/player"
	"github.com/riskibarqy/league-ranking/internal/domain/scoring"
	"github.com/riskibarqy/league-ranking/internal/domain/seasonstats"
)

// MatchDayBoard is the ranking of one match date. HasDate is false when no
// dated match exists yet.
type MatchDayBoard struct {
	Date     time.Time
	HasDate  bool
	Position player.Position
	Entries  []leaderboard.MatchDayEntry
}

func (s *RankingService) Events(ctx context.Context) ([]scoring.ScoredEvent, error) {
	report, err := s.Report(ctx)
	if err != nil {
		return nil, err
	}
	return report.Events, nil
}

func (s *RankingService) SeasonTable(ctx context.Context) (seasonstats.Table, error) {
	report, err := s.Report(ctx)
	if err != nil {
		return nil, err
	}
	return report.Season, nil
}

// MatchDayLeaderboard ranks one date, the most recent one when date is nil.
func (s *RankingService) MatchDayLeaderboard(ctx context.Context, date *time.Time, position string) (MatchDayBoard, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.RankingService.MatchDayLeaderboard")
	defer span.End()

	pos, err := parsePosition(position)
	if err != nil {
		return MatchDayBoard{}, err
	}
	report, err := s.Report(ctx)
	if err != nil {
		return MatchDayBoard{}, err
	}

	board := MatchDayBoard{Position: pos, Entries: []leaderboard.MatchDayEntry{}}
	if date != nil {
		board.Date, board.HasDate = *date, true
	} else {
		board.Date, board.HasDate = seasonstats.LatestDate(report.Matches)
	}
	if !board.HasDate {
		return board, nil
	}

	board.Entries = leaderboard.MatchDay(report.Events, s.engine, board.Date, pos)
	return board, nil
}

// SeasonLeaderboard ranks the season for one position (all when empty). A
// non-nil asOf replays the season up to and including that date.
func (s *RankingService) SeasonLeaderboard(ctx context.Context, position string, asOf *time.Time) ([]leaderboard.Entry, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.RankingService.SeasonLeaderboard")
	defer span.End()

	pos, err := parsePosition(position)
	if err != nil {
		return nil, err
	}
	report, err := s.Report(ctx)
	if err != nil {
		return nil, err
	}

	table := report.Season
	if asOf != nil {
		table = seasonstats.AggregateAsOf(report.Events, s.engine.Rules(), *asOf)
	}
	return leaderboard.Season(table, pos), nil
}

func (s *RankingService) SpecialtyLeaderboard(ctx context.Context, kind string) ([]leaderboard.Entry, error) {
	parsed, err := leaderboard.ParseKind(kind)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	report, err := s.Report(ctx)
	if err != nil {
		return nil, err
	}
	return leaderboard.Specialty(report.Season, parsed), nil
}

func (s *RankingService) GoalsAgainstLeaderboard(ctx context.Context) ([]leaderboard.Entry, error) {
	report, err := s.Report(ctx)
	if err != nil {
		return nil, err
	}
	return leaderboard.GoalsAgainst(report.Season), nil
}

func (s *RankingService) RegularityLeaderboard(ctx context.Context) ([]leaderboard.Entry, error) {
	report, err := s.Report(ctx)
	if err != nil {
		return nil, err
	}
	return leaderboard.Regularity(report.Season), nil
}

func (s *RankingService) MVPLeaderboard(ctx context.Context) ([]leaderboard.Entry, error) {
	report, err := s.Report(ctx)
	if err != nil {
		return nil, err
	}
	return leaderboard.MVP(report.Season), nil
}

func (s *RankingService) MatchSummaries(ctx context.Context) ([]seasonstats.MatchSummary, error) {
	report, err := s.Report(ctx)
	if err != nil {
		return nil, err
	}
	return seasonstats.MatchSummaries(report.Matches), nil
}

func (s *RankingService) LastMatch(ctx context.Context) (seasonstats.MatchSummary, error) {
	report, err := s.Report(ctx)
	if err != nil {
		return seasonstats.MatchSummary{}, err
	}
	last, ok := seasonstats.LastMatch(report.Matches)
	if !ok {
		return seasonstats.MatchSummary{}, fmt.Errorf("%w: no dated matches", ErrNotFound)
	}
	return last, nil
}

func (s *RankingService) TeamTotals(ctx context.Context) (seasonstats.TeamTotals, error) {
	report, err := s.Report(ctx)
	if err != nil {
		return seasonstats.TeamTotals{}, err
	}
	return seasonstats.Totals(report.Matches), nil
}

func (s *RankingService) PlayersOfTheDate(ctx context.Context) ([]leaderboard.PlayerOfTheDate, error) {
	report, err := s.Report(ctx)
	if err != nil {
		return nil, err
	}
	return leaderboard.PlayersOfTheDate(report.Events, s.engine, seasonstats.MatchDates(report.Matches)), nil
}

func parsePosition(value string) (player.Position, error) {
	if value == "" {
		return "", nil
	}
	pos := player.NormalizePosition(value)
	if !pos.Valid() {
		return "", fmt.Errorf("%w: unknown position %q", ErrInvalidInput, value)
	}
	return pos, nil
}
