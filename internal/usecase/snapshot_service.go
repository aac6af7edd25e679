package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/riskibarqy/league-ranking/internal/domain/dataset"
	"github.com/riskibarqy/league-ranking/internal/platform/cache"
	"github.com/riskibarqy/league-ranking/internal/platform/id"
	"github.com/riskibarqy/league-ranking/internal/platform/logging"
	"go.opentelemetry.io/otel/attribute"
)

const snapshotCacheKeyPrefix = "snapshot:"

// SnapshotService loads the three source tables as one atomic snapshot and
// keeps it cached until the TTL expires or Invalidate is called.
type SnapshotService struct {
	source dataset.Source
	cache  *cache.Store[dataset.Snapshot]
	ids    id.Generator
	logger *logging.Logger
	now    func() time.Time
}

func NewSnapshotService(source dataset.Source, store *cache.Store[dataset.Snapshot], ids id.Generator, logger *logging.Logger) *SnapshotService {
	if logger == nil {
		logger = logging.Default()
	}
	if ids == nil {
		ids = id.NewUUIDGenerator()
	}
	if store == nil {
		store = cache.NewStore[dataset.Snapshot](0)
	}

	return &SnapshotService{
		source: source,
		cache:  store,
		ids:    ids,
		logger: logger,
		now:    time.Now,
	}
}

// Current returns the cached snapshot, loading it once when absent.
// Concurrent callers share a single load.
func (s *SnapshotService) Current(ctx context.Context) (dataset.Snapshot, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.SnapshotService.Current",
		attribute.String("snapshot.source", s.source.Name()),
	)
	defer span.End()

	snap, err := s.cache.GetOrLoad(ctx, s.cacheKey(), s.load)
	if err != nil {
		recordSpanError(span, err)
		return dataset.Snapshot{}, err
	}
	span.SetAttributes(attribute.String("snapshot.id", snap.ID))
	return snap, nil
}

// Invalidate drops the cached snapshot so the next read reloads the source.
func (s *SnapshotService) Invalidate(ctx context.Context) {
	s.cache.Delete(ctx, s.cacheKey())
	s.logger.InfoContext(ctx, "snapshot invalidated", "source", s.source.Name())
}

// Reload invalidates and loads a fresh snapshot immediately.
func (s *SnapshotService) Reload(ctx context.Context) (dataset.Snapshot, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.SnapshotService.Reload")
	defer span.End()

	s.Invalidate(ctx)
	return s.Current(ctx)
}

func (s *SnapshotService) load(ctx context.Context) (dataset.Snapshot, error) {
	start := s.now()
	snap, err := s.source.Load(ctx)
	if err != nil {
		s.logger.ErrorContext(ctx, "load snapshot failed", "source", s.source.Name(), "error", err)
		return dataset.Snapshot{}, fmt.Errorf("load snapshot from %s: %w", s.source.Name(), err)
	}

	snapshotID, err := s.ids.NewID()
	if err != nil {
		return dataset.Snapshot{}, fmt.Errorf("assign snapshot id: %w", err)
	}
	snap.ID = snapshotID
	if snap.Source == "" {
		snap.Source = s.source.Name()
	}
	if snap.LoadedAt.IsZero() {
		snap.LoadedAt = s.now().UTC()
	}
	snap.Players.Name = dataset.TablePlayers
	snap.Matches.Name = dataset.TableMatches
	snap.Events.Name = dataset.TableEvents

	s.logger.InfoContext(ctx, "snapshot loaded",
		"snapshot_id", snap.ID,
		"source", snap.Source,
		"players", snap.Players.Len(),
		"matches", snap.Matches.Len(),
		"events", snap.Events.Len(),
		"duration_ms", s.now().Sub(start).Milliseconds(),
	)
	return snap, nil
}

func (s *SnapshotService) cacheKey() string {
	return snapshotCacheKeyPrefix + s.source.Name()
}
