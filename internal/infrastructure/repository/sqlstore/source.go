package sqlstore

import (
	"context"
	"database/sql"
	"time"

	crerr "github.com/cockroachdb/errors"
	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/league-ranking/internal/domain/dataset"
	qb "github.com/riskibarqy/league-ranking/internal/platform/querybuilder"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

var playerColumns = []string{
	dataset.ColPlayerID, dataset.ColPlayerName, dataset.ColPosition, dataset.ColActive, dataset.ColSevereSanction,
}

var matchColumns = []string{
	dataset.ColMatchID, dataset.ColDate, dataset.ColResultYellow, dataset.ColResultBlue,
	dataset.ColScoreYellow, dataset.ColScoreBlue, dataset.ColVenue,
}

var eventColumns = []string{
	dataset.ColMatchID, dataset.ColPlayerID, dataset.ColTeam, dataset.ColGoalsConceded, dataset.ColPlayedAsForward,
	dataset.ColFirstHalfGoals, dataset.ColSecondHalfGoals, dataset.ColTotalGoals, dataset.ColOwnGoals,
	dataset.ColAssists, dataset.ColYellowCards, dataset.ColRedCards, dataset.ColSavedPenalties, dataset.ColCompletion,
}

// Source reads the three league tables from a SQL database inside one
// transaction so the snapshot is consistent.
type Source struct {
	db  *sqlx.DB
	now func() time.Time
}

func NewSource(db *sqlx.DB) *Source {
	return &Source{db: db, now: time.Now}
}

func (s *Source) Name() string {
	return s.db.DriverName()
}

func (s *Source) Load(ctx context.Context) (dataset.Snapshot, error) {
	tx, err := s.db.BeginTxx(ctx, s.txOptions())
	if err != nil {
		return dataset.Snapshot{}, crerr.Wrap(err, "begin snapshot transaction")
	}
	defer func() { _ = tx.Rollback() }()

	players, err := s.loadPlayers(ctx, tx)
	if err != nil {
		return dataset.Snapshot{}, err
	}
	matches, err := s.loadMatches(ctx, tx)
	if err != nil {
		return dataset.Snapshot{}, err
	}
	events, err := s.loadEvents(ctx, tx)
	if err != nil {
		return dataset.Snapshot{}, err
	}

	if err := tx.Commit(); err != nil {
		return dataset.Snapshot{}, crerr.Wrap(err, "commit snapshot transaction")
	}

	return dataset.Snapshot{
		Source:   s.Name(),
		LoadedAt: s.now().UTC(),
		Players:  players,
		Matches:  matches,
		Events:   events,
	}, nil
}

func (s *Source) txOptions() *sql.TxOptions {
	if s.db.DriverName() == DriverPostgres {
		return &sql.TxOptions{Isolation: sql.LevelRepeatableRead, ReadOnly: true}
	}
	return nil
}

func (s *Source) loadPlayers(ctx context.Context, tx *sqlx.Tx) (dataset.Table, error) {
	query, args, err := qb.Select(textColumns(playerColumns)...).From(tablePlayers).OrderBy("fila").ToSQL()
	if err != nil {
		return dataset.Table{}, crerr.Wrap(err, "build select players query")
	}

	var rows []playerRowModel
	if err := tx.SelectContext(ctx, &rows, query, args...); err != nil {
		return dataset.Table{}, crerr.Wrap(err, "select players")
	}

	records := make([][]string, 0, len(rows))
	for _, row := range rows {
		records = append(records, []string{
			nullText(row.PlayerID),
			nullText(row.Name),
			nullText(row.Position),
			nullText(row.Active),
			nullText(row.SevereSanction),
		})
	}
	return dataset.NewTable(dataset.TablePlayers, playerColumns, records), nil
}

func (s *Source) loadMatches(ctx context.Context, tx *sqlx.Tx) (dataset.Table, error) {
	query, args, err := qb.Select(textColumns(matchColumns)...).From(tableMatches).OrderBy("fila").ToSQL()
	if err != nil {
		return dataset.Table{}, crerr.Wrap(err, "build select matches query")
	}

	var rows []matchRowModel
	if err := tx.SelectContext(ctx, &rows, query, args...); err != nil {
		return dataset.Table{}, crerr.Wrap(err, "select matches")
	}

	records := make([][]string, 0, len(rows))
	for _, row := range rows {
		records = append(records, []string{
			nullText(row.MatchID),
			nullText(row.Date),
			nullText(row.ResultYellow),
			nullText(row.ResultBlue),
			nullText(row.ScoreYellow),
			nullText(row.ScoreBlue),
			nullText(row.Venue),
		})
	}
	return dataset.NewTable(dataset.TableMatches, matchColumns, records), nil
}

func (s *Source) loadEvents(ctx context.Context, tx *sqlx.Tx) (dataset.Table, error) {
	query, args, err := qb.Select(textColumns(eventColumns)...).From(tableEvents).OrderBy("fila").ToSQL()
	if err != nil {
		return dataset.Table{}, crerr.Wrap(err, "build select events query")
	}

	var rows []eventRowModel
	if err := tx.SelectContext(ctx, &rows, query, args...); err != nil {
		return dataset.Table{}, crerr.Wrap(err, "select events")
	}

	records := make([][]string, 0, len(rows))
	for _, row := range rows {
		records = append(records, []string{
			nullText(row.MatchID),
			nullText(row.PlayerID),
			nullText(row.Team),
			nullText(row.GoalsConceded),
			nullText(row.PlayedAsForward),
			nullText(row.FirstHalfGoals),
			nullText(row.SecondHalfGoals),
			nullText(row.TotalGoals),
			nullText(row.OwnGoals),
			nullText(row.Assists),
			nullText(row.YellowCards),
			nullText(row.RedCards),
			nullText(row.SavedPenalties),
			nullText(row.Completion),
		})
	}
	return dataset.NewTable(dataset.TableEvents, eventColumns, records), nil
}
