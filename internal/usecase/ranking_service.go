package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/riskibarqy/league-ranking/internal/domain/dataset"
	"github.com/riskibarqy/league-ranking/internal/domain/match"
	"github.com/riskibarqy/league-ranking/internal/domain/player"
	"github.com/riskibarqy/league-ranking/internal/domain/scoring"
	"github.com/riskibarqy/league-ranking/internal/domain/seasonstats"
	"github.com/riskibarqy/league-ranking/internal/platform/cache"
	"github.com/riskibarqy/league-ranking/internal/platform/logging"
	"go.opentelemetry.io/otel/attribute"
)

const (
	reportCacheKeyPrefix    = "report:"
	defaultEvolutionWorkers = 4
)

type snapshotProvider interface {
	Current(ctx context.Context) (dataset.Snapshot, error)
}

type RankingServiceConfig struct {
	Rules            scoring.RuleSet
	Strict           bool
	EvolutionWorkers int
}

// Report is one full computation pass over a snapshot.
type Report struct {
	SnapshotID    string
	Source        string
	LoadedAt      time.Time
	RuleSet       string
	Problems      []string
	Notes         []string
	EmptySeason   bool
	DroppedEvents int
	Players       player.Index
	Matches       []match.Match
	Events        []scoring.ScoredEvent
	Season        seasonstats.Table
}

// Validation is the data-quality view of a snapshot.
type Validation struct {
	SnapshotID  string
	Valid       bool
	EmptySeason bool
	Problems    []string
	Notes       []string
}

// RankingService runs the scoring pipeline over the current snapshot and
// exposes the ranked views. Reports are cached per snapshot id.
type RankingService struct {
	snapshots        snapshotProvider
	engine           *scoring.Engine
	strict           bool
	evolutionWorkers int
	reports          *cache.Store[*Report]
	logger           *logging.Logger
}

func NewRankingService(snapshots snapshotProvider, cfg RankingServiceConfig, logger *logging.Logger) *RankingService {
	if logger == nil {
		logger = logging.Default()
	}
	if cfg.Rules.Name == "" {
		cfg.Rules = scoring.Season2026()
	}
	if cfg.EvolutionWorkers < 1 {
		cfg.EvolutionWorkers = defaultEvolutionWorkers
	}

	return &RankingService{
		snapshots:        snapshots,
		engine:           scoring.NewEngine(cfg.Rules),
		strict:           cfg.Strict,
		evolutionWorkers: cfg.EvolutionWorkers,
		reports:          cache.NewStore[*Report](0),
		logger:           logger,
	}
}

func (s *RankingService) Rules() scoring.RuleSet {
	return s.engine.Rules()
}

// Report returns the computed pass for the current snapshot.
func (s *RankingService) Report(ctx context.Context) (*Report, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.RankingService.Report")
	defer span.End()

	snap, err := s.snapshots.Current(ctx)
	if err != nil {
		recordSpanError(span, err)
		return nil, fmt.Errorf("current snapshot: %w", err)
	}
	span.SetAttributes(attribute.String("snapshot.id", snap.ID))

	report, err := s.reports.GetOrLoad(ctx, reportCacheKeyPrefix+snap.ID, func(ctx context.Context) (*Report, error) {
		s.reports.DeletePrefix(ctx, reportCacheKeyPrefix)
		return s.Compute(ctx, snap)
	})
	if err != nil {
		recordSpanError(span, err)
		return nil, err
	}
	return report, nil
}

// Compute runs validation, normalization, scoring and aggregation over one
// snapshot. It is pure with respect to the snapshot.
func (s *RankingService) Compute(ctx context.Context, snap dataset.Snapshot) (*Report, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.RankingService.Compute",
		attribute.String("snapshot.id", snap.ID),
		attribute.String("ruleset", s.engine.Rules().Name),
	)
	defer span.End()

	start := time.Now()
	problems := dataset.Validate(snap)
	for _, problem := range problems {
		s.logger.WarnContext(ctx, "validation problem", "snapshot_id", snap.ID, "problem", problem)
	}
	if s.strict && len(problems) > 0 {
		err := fmt.Errorf("%w: %d problems: %s", ErrInvalidDataset, len(problems), strings.Join(problems, "; "))
		recordSpanError(span, err)
		return nil, err
	}

	normalized := dataset.Normalize(snap)
	notes := append([]string{}, normalized.Notes...)
	if normalized.DroppedEvents > 0 {
		notes = append(notes, fmt.Sprintf("%s: %d rows dropped with unparseable %s/%s", dataset.TableEvents, normalized.DroppedEvents, dataset.ColMatchID, dataset.ColPlayerID))
	}
	for _, note := range notes {
		s.logger.WarnContext(ctx, "data quality note", "snapshot_id", snap.ID, "note", note)
	}

	players := player.NewIndex(normalized.Players)
	events := s.engine.ScoreAll(normalized.Events, players, match.NewIndex(normalized.Matches))
	season := seasonstats.Aggregate(events, s.engine.Rules())

	report := &Report{
		SnapshotID:    snap.ID,
		Source:        snap.Source,
		LoadedAt:      snap.LoadedAt,
		RuleSet:       s.engine.Rules().Name,
		Problems:      problems,
		Notes:         notes,
		EmptySeason:   snap.IsEmptySeason(),
		DroppedEvents: normalized.DroppedEvents,
		Players:       players,
		Matches:       normalized.Matches,
		Events:        events,
		Season:        season,
	}
	if report.EmptySeason {
		s.logger.InfoContext(ctx, "empty season: no match events recorded yet", "snapshot_id", snap.ID)
	}

	s.logger.InfoContext(ctx, "computation pass finished",
		"snapshot_id", snap.ID,
		"ruleset", report.RuleSet,
		"problems", len(problems),
		"events", len(events),
		"players", len(season),
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return report, nil
}

// Validation reports data-quality problems. It never fails on bad data, even
// in strict mode.
func (s *RankingService) Validation(ctx context.Context) (Validation, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.RankingService.Validation")
	defer span.End()

	snap, err := s.snapshots.Current(ctx)
	if err != nil {
		recordSpanError(span, err)
		return Validation{}, fmt.Errorf("current snapshot: %w", err)
	}

	problems := dataset.Validate(snap)
	normalized := dataset.Normalize(snap)
	return Validation{
		SnapshotID:  snap.ID,
		Valid:       len(problems) == 0,
		EmptySeason: snap.IsEmptySeason(),
		Problems:    problems,
		Notes:       normalized.Notes,
	}, nil
}
