package app

import (
	"context"

	crerr "github.com/cockroachdb/errors"
	"github.com/riskibarqy/league-ranking/internal/config"
	"github.com/riskibarqy/league-ranking/internal/domain/dataset"
	"github.com/riskibarqy/league-ranking/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/league-ranking/internal/infrastructure/repository/sqlstore"
	"github.com/riskibarqy/league-ranking/internal/infrastructure/spreadsheet"
	"github.com/riskibarqy/league-ranking/internal/platform/logging"
	"github.com/riskibarqy/league-ranking/internal/platform/resilience"
)

func noopClose() error { return nil }

// NewSource builds the snapshot source selected by DATA_SOURCE. The returned
// close func releases any connection the source holds.
func NewSource(ctx context.Context, cfg config.Config, logger *logging.Logger) (dataset.Source, func() error, error) {
	switch cfg.DataSource {
	case config.DataSourceMemory:
		return memory.NewSource(memory.SeedSnapshot()), noopClose, nil
	case config.DataSourceXLSX:
		return spreadsheet.NewXLSXSource(cfg.DataFile, logger), noopClose, nil
	case config.DataSourceCSV:
		return spreadsheet.NewCSVSource(cfg.DataDir, logger), noopClose, nil
	case config.DataSourceRemote:
		return spreadsheet.NewRemoteSource(spreadsheet.RemoteConfig{
			URL:     cfg.RemoteDataURL,
			Timeout: cfg.RemoteTimeout,
			Logger:  logger,
			CircuitBreaker: resilience.CircuitBreakerConfig{
				Enabled:          cfg.RemoteCircuitEnabled,
				FailureThreshold: cfg.RemoteCircuitFailureCount,
				OpenTimeout:      cfg.RemoteCircuitOpenTimeout,
				HalfOpenMaxReq:   cfg.RemoteCircuitHalfOpenMaxReq,
			},
		}), noopClose, nil
	case config.DataSourcePostgres, config.DataSourceSQLite:
		db, err := OpenDatabase(ctx, cfg)
		if err != nil {
			return nil, nil, err
		}
		return sqlstore.NewSource(db), db.Close, nil
	default:
		return nil, nil, crerr.Newf("unsupported data source %q", cfg.DataSource)
	}
}
