package app

import (
	"context"
	"time"

	crerr "github.com/cockroachdb/errors"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/riskibarqy/league-ranking/internal/config"
	"github.com/riskibarqy/league-ranking/internal/infrastructure/repository/sqlstore"
	"github.com/uptrace/opentelemetry-go-extra/otelsql"
	"github.com/uptrace/opentelemetry-go-extra/otelsqlx"
	_ "modernc.org/sqlite"
)

const dbPingTimeout = 5 * time.Second

type databaseTarget struct {
	driver string
	dsn    string
	system string
	name   string
}

func resolveDatabaseTarget(cfg config.Config) (databaseTarget, error) {
	switch cfg.DataSource {
	case config.DataSourcePostgres:
		dsn := postgresDSN(cfg.DBURL, cfg.DBDisablePreparedBinary)
		return databaseTarget{
			driver: sqlstore.DriverPostgres,
			dsn:    dsn,
			system: "postgresql",
			name:   postgresDBName(dsn),
		}, nil
	case config.DataSourceSQLite:
		dsn := sqliteDSN(cfg.DBURL)
		return databaseTarget{
			driver: sqlstore.DriverSQLite,
			dsn:    dsn,
			system: "sqlite",
			name:   sqliteDBName(dsn),
		}, nil
	default:
		return databaseTarget{}, crerr.Newf("data source %q is not backed by a database", cfg.DataSource)
	}
}

// OpenDatabase opens the configured SQL store with query tracing and checks
// it is reachable.
func OpenDatabase(ctx context.Context, cfg config.Config) (*sqlx.DB, error) {
	target, err := resolveDatabaseTarget(cfg)
	if err != nil {
		return nil, err
	}

	db, err := otelsqlx.Open(target.driver, target.dsn,
		otelsql.WithDBSystem(target.system),
		otelsql.WithDBName(target.name),
		otelsql.WithQueryFormatter(traceQuery),
	)
	if err != nil {
		return nil, crerr.Wrapf(err, "open %s database", target.system)
	}
	if target.driver == sqlstore.DriverSQLite {
		db.SetMaxOpenConns(1)
	}

	pingCtx, cancel := context.WithTimeout(ctx, dbPingTimeout)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return nil, crerr.Wrapf(err, "ping %s database", target.system)
	}

	return db, nil
}
