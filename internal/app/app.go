package app

import (
	"context"
	"fmt"
	"net/http"

	"github.com/riskibarqy/league-ranking/internal/config"
	"github.com/riskibarqy/league-ranking/internal/domain/dataset"
	"github.com/riskibarqy/league-ranking/internal/domain/scoring"
	"github.com/riskibarqy/league-ranking/internal/interfaces/httpapi"
	"github.com/riskibarqy/league-ranking/internal/platform/cache"
	"github.com/riskibarqy/league-ranking/internal/platform/id"
	"github.com/riskibarqy/league-ranking/internal/platform/logging"
	"github.com/riskibarqy/league-ranking/internal/usecase"
)

// Services holds the wired snapshot and ranking services for one process.
type Services struct {
	Source    dataset.Source
	Snapshots *usecase.SnapshotService
	Ranking   *usecase.RankingService
	close     func() error
}

func NewServices(ctx context.Context, cfg config.Config, logger *logging.Logger) (*Services, error) {
	if logger == nil {
		logger = logging.Default()
	}

	rules, err := scoring.Lookup(cfg.ScoringRuleSet)
	if err != nil {
		return nil, fmt.Errorf("resolve scoring ruleset: %w", err)
	}

	source, closeSource, err := NewSource(ctx, cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("build %s source: %w", cfg.DataSource, err)
	}

	snapshots := usecase.NewSnapshotService(
		source,
		cache.NewStore[dataset.Snapshot](cfg.SnapshotTTL),
		id.NewUUIDGenerator(),
		logger.Named("snapshot"),
	)
	ranking := usecase.NewRankingService(snapshots, usecase.RankingServiceConfig{
		Rules:            rules,
		Strict:           cfg.ValidationStrict,
		EvolutionWorkers: cfg.EvolutionWorkers,
	}, logger.Named("ranking"))

	logger.Info("services ready",
		"data_source", cfg.DataSource,
		"source", source.Name(),
		"ruleset", rules.Name,
		"strict", cfg.ValidationStrict,
		"snapshot_ttl", cfg.SnapshotTTL.String(),
	)

	return &Services{
		Source:    source,
		Snapshots: snapshots,
		Ranking:   ranking,
		close:     closeSource,
	}, nil
}

func (s *Services) Close() error {
	if s == nil || s.close == nil {
		return nil
	}
	return s.close()
}

func NewHTTPServer(cfg config.Config, services *Services, logger *logging.Logger) (*http.Server, error) {
	if logger == nil {
		logger = logging.Default()
	}
	if services == nil {
		return nil, fmt.Errorf("services cannot be nil")
	}

	handler := httpapi.NewHandler(services.Ranking, services.Snapshots, logger.Named("http"))
	router := httpapi.NewRouter(handler, logger.Named("http"), cfg.CORSAllowedOrigins, cfg.AccessCode)

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	if server.Addr == "" {
		return nil, fmt.Errorf("http server addr cannot be empty")
	}

	return server, nil
}
