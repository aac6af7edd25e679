package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/riskibarqy/league-ranking/internal/domain/dataset"
	"github.com/riskibarqy/league-ranking/internal/domain/leaderboard"
	"github.com/riskibarqy/league-ranking/internal/domain/player"
	"github.com/riskibarqy/league-ranking/internal/domain/scoring"
	"github.com/riskibarqy/league-ranking/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/league-ranking/internal/platform/cache"
	"github.com/riskibarqy/league-ranking/internal/platform/id"
)

func newSeedRankingService(t *testing.T, snap dataset.Snapshot, strict bool) *RankingService {
	t.Helper()

	snapshots := NewSnapshotService(memory.NewSource(snap), cache.NewStore[dataset.Snapshot](0), id.Static("seed"), nil)
	return NewRankingService(snapshots, RankingServiceConfig{Rules: scoring.Season2026(), Strict: strict}, nil)
}

func date(day int) time.Time {
	return time.Date(2026, time.March, day, 0, 0, 0, 0, time.UTC)
}

func TestRankingService_ReportOverSeed(t *testing.T) {
	t.Parallel()

	service := newSeedRankingService(t, memory.SeedSnapshot(), false)
	report, err := service.Report(context.Background())
	if err != nil {
		t.Fatalf("report: %v", err)
	}
	if len(report.Problems) != 0 {
		t.Fatalf("seed should be valid, got %v", report.Problems)
	}
	if report.SnapshotID != "seed" || report.RuleSet != "2026" || report.EmptySeason {
		t.Fatalf("unexpected report metadata: %+v", report)
	}

	defender, ok := report.Season.Find(3)
	if !ok || defender.PointsTotal != 9 {
		t.Fatalf("unexpected defender season row: %+v", defender)
	}
	sanctioned, _ := report.Season.Find(6)
	if sanctioned.PointsRaw <= 0 || sanctioned.PointsTotal != 0 {
		t.Fatalf("sanctioned player must total 0: %+v", sanctioned)
	}
	keeper, _ := report.Season.Find(1)
	if keeper.GoalsAgainstAverage == nil || *keeper.GoalsAgainstAverage != 1.5 || keeper.AdjustedPoints != 5.5 {
		t.Fatalf("unexpected goalkeeper row: %+v", keeper)
	}

	again, err := service.Report(context.Background())
	if err != nil || again != report {
		t.Fatalf("expected cached report for the same snapshot")
	}
}

func TestRankingService_StrictModeRejectsInvalidDataset(t *testing.T) {
	t.Parallel()

	snap := memory.SeedSnapshot()
	snap.Events.Rows = append(snap.Events.Rows, snap.Events.Rows[0])

	strict := newSeedRankingService(t, snap, true)
	if _, err := strict.Report(context.Background()); !errors.Is(err, ErrInvalidDataset) {
		t.Fatalf("expected ErrInvalidDataset, got %v", err)
	}

	validation, err := strict.Validation(context.Background())
	if err != nil {
		t.Fatalf("validation must not fail in strict mode: %v", err)
	}
	if validation.Valid || len(validation.Problems) != 1 {
		t.Fatalf("unexpected validation: %+v", validation)
	}

	lenient := newSeedRankingService(t, snap, false)
	if _, err := lenient.Report(context.Background()); err != nil {
		t.Fatalf("best-effort mode must compute: %v", err)
	}
}

func TestRankingService_MatchDayLeaderboard(t *testing.T) {
	t.Parallel()

	service := newSeedRankingService(t, memory.SeedSnapshot(), false)
	ctx := context.Background()

	latest, err := service.MatchDayLeaderboard(ctx, nil, "")
	if err != nil {
		t.Fatalf("latest board: %v", err)
	}
	if !latest.HasDate || !latest.Date.Equal(date(14)) {
		t.Fatalf("expected latest date, got %+v", latest.Date)
	}
	if latest.Entries[0].PlayerID != 3 || latest.Entries[0].Points != 6 {
		t.Fatalf("unexpected leader: %+v", latest.Entries[0])
	}

	first := date(7)
	defenders, err := service.MatchDayLeaderboard(ctx, &first, "Defensa")
	if err != nil {
		t.Fatalf("defender board: %v", err)
	}
	// defender who played forward: (3 result + 1 hat-trick) * 1.0
	if defenders.Entries[0].PlayerID != 3 || defenders.Entries[0].Points != 4 {
		t.Fatalf("unexpected defender board: %+v", defenders.Entries)
	}

	if _, err := service.MatchDayLeaderboard(ctx, nil, "libero"); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestRankingService_SeasonLeaderboards(t *testing.T) {
	t.Parallel()

	service := newSeedRankingService(t, memory.SeedSnapshot(), false)
	ctx := context.Background()

	keepers, err := service.SeasonLeaderboard(ctx, string(player.PositionGoalkeeper), nil)
	if err != nil {
		t.Fatalf("goalkeeper board: %v", err)
	}
	if len(keepers) != 2 || keepers[0].Player.PlayerID != 1 || keepers[0].Metric != 5.5 {
		t.Fatalf("unexpected goalkeeper board: %+v", keepers)
	}

	cutoff := date(7)
	asOf, err := service.SeasonLeaderboard(ctx, string(player.PositionDefender), &cutoff)
	if err != nil {
		t.Fatalf("as-of board: %v", err)
	}
	if asOf[0].Player.PlayerID != 3 || asOf[0].Player.PointsTotal != 3 {
		t.Fatalf("unexpected as-of board: %+v", asOf)
	}

	scorers, err := service.SpecialtyLeaderboard(ctx, "goals")
	if err != nil {
		t.Fatalf("scorers: %v", err)
	}
	wantIDs := []int{3, 5, 7, 6}
	if len(scorers) != len(wantIDs) {
		t.Fatalf("unexpected scorers: %+v", scorers)
	}
	for i, want := range wantIDs {
		if scorers[i].Player.PlayerID != want || scorers[i].Rank != i+1 {
			t.Fatalf("scorer %d: got player=%d rank=%d want player=%d", i, scorers[i].Player.PlayerID, scorers[i].Rank, want)
		}
	}

	if _, err := service.SpecialtyLeaderboard(ctx, "fouls"); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}

	against, err := service.GoalsAgainstLeaderboard(ctx)
	if err != nil || len(against) != 2 || against[0].Player.PlayerID != 1 {
		t.Fatalf("unexpected goals-against board: %+v %v", against, err)
	}

	regular, err := service.RegularityLeaderboard(ctx)
	if err != nil {
		t.Fatalf("regularity: %v", err)
	}
	for _, entry := range regular {
		if entry.Player.PlayerID == 9 {
			t.Fatalf("inactive players must not be ranked")
		}
		if entry.Metric < 0 || entry.Metric > 1 {
			t.Fatalf("regularity out of bounds: %+v", entry)
		}
	}
}

func TestRankingService_MatchSummaries(t *testing.T) {
	t.Parallel()

	service := newSeedRankingService(t, memory.SeedSnapshot(), false)
	ctx := context.Background()

	last, err := service.LastMatch(ctx)
	if err != nil {
		t.Fatalf("last match: %v", err)
	}
	if last.MatchID != 3 || last.ScoreYellow != 0 || last.ScoreBlue != 1 {
		t.Fatalf("unexpected last match: %+v", last)
	}

	totals, err := service.TeamTotals(ctx)
	if err != nil {
		t.Fatalf("team totals: %v", err)
	}
	if totals.GoalsYellow != 5 || totals.GoalsBlue != 4 || totals.AverageGoalsPerMatch != 3 {
		t.Fatalf("unexpected totals: %+v", totals)
	}

	winners, err := service.PlayersOfTheDate(ctx)
	if err != nil {
		t.Fatalf("players of the date: %v", err)
	}
	if len(winners) != 2 || winners[0].Entry.PlayerID != 3 || winners[1].Entry.PlayerID != 1 {
		t.Fatalf("unexpected players of the date: %+v", winners)
	}
}

func TestRankingService_PlayerEvolution(t *testing.T) {
	t.Parallel()

	service := newSeedRankingService(t, memory.SeedSnapshot(), false)
	ctx := context.Background()

	points, err := service.PlayerEvolution(ctx, 3)
	if err != nil {
		t.Fatalf("evolution: %v", err)
	}
	if len(points) != 2 {
		t.Fatalf("expected two dates, got %+v", points)
	}
	if points[0].MatchDayPoints != 4 || points[0].SeasonToDate != 3 {
		t.Fatalf("unexpected first point: %+v", points[0])
	}
	if points[1].MatchDayPoints != 6 || points[1].SeasonToDate != 9 || points[1].Rank != 1 {
		t.Fatalf("unexpected second point: %+v", points[1])
	}

	if _, err := service.PlayerEvolution(ctx, 404); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestRankingService_Dashboard(t *testing.T) {
	t.Parallel()

	service := newSeedRankingService(t, memory.SeedSnapshot(), false)
	dashboard, err := service.Dashboard(context.Background())
	if err != nil {
		t.Fatalf("dashboard: %v", err)
	}
	if dashboard.LastMatch == nil || dashboard.LastMatch.MatchID != 3 {
		t.Fatalf("unexpected last match: %+v", dashboard.LastMatch)
	}
	if len(dashboard.SeasonLeaders) != len(player.OrderedPositions) {
		t.Fatalf("expected leaders for every position")
	}
	if got := dashboard.SeasonLeaders[player.PositionGoalkeeper]; len(got) != 2 || got[0].Player.PlayerID != 1 {
		t.Fatalf("unexpected goalkeeper leaders: %+v", got)
	}
	if len(dashboard.TopScorers) == 0 || dashboard.TopScorers[0].Player.PlayerID != 3 {
		t.Fatalf("unexpected top scorers: %+v", dashboard.TopScorers)
	}
	if !dashboard.MatchDay.HasDate || len(dashboard.PlayersOfTheDate) != 2 {
		t.Fatalf("unexpected match-day section: %+v", dashboard.MatchDay)
	}
}

func TestRankingService_EmptySeason(t *testing.T) {
	t.Parallel()

	snap := memory.SeedSnapshot()
	snap.Events = dataset.NewTable(dataset.TableEvents, snap.Events.Columns, nil)

	service := newSeedRankingService(t, snap, true)
	ctx := context.Background()

	report, err := service.Report(ctx)
	if err != nil {
		t.Fatalf("empty season is not an error: %v", err)
	}
	if !report.EmptySeason || len(report.Season) != 0 {
		t.Fatalf("unexpected empty-season report: %+v", report)
	}

	board, err := service.SeasonLeaderboard(ctx, "", nil)
	if err != nil || len(board) != 0 {
		t.Fatalf("expected empty board, got %+v %v", board, err)
	}
	specialty, err := service.SpecialtyLeaderboard(ctx, string(leaderboard.KindAssists))
	if err != nil || len(specialty) != 0 {
		t.Fatalf("expected empty specialty board, got %+v %v", specialty, err)
	}
	matchDay, err := service.MatchDayLeaderboard(ctx, nil, "")
	if err != nil || len(matchDay.Entries) != 0 {
		t.Fatalf("expected empty match-day board, got %+v %v", matchDay, err)
	}
}
