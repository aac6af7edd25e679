package sqlstore

import (
	"context"
	"database/sql"
	"strings"

	crerr "github.com/cockroachdb/errors"
	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/league-ranking/internal/domain/dataset"
	qb "github.com/riskibarqy/league-ranking/internal/platform/querybuilder"
)

// ImportResult counts rows written and rows skipped for unparseable ids.
type ImportResult struct {
	Players        int
	Matches        int
	Events         int
	SkippedPlayers int
	SkippedMatches int
	SkippedEvents  int
}

// Writer replaces the SQL tables with the content of a snapshot. It backs the
// spreadsheet import command.
type Writer struct {
	db *sqlx.DB
}

func NewWriter(db *sqlx.DB) *Writer {
	return &Writer{db: db}
}

func (w *Writer) Replace(ctx context.Context, snap dataset.Snapshot) (ImportResult, error) {
	var result ImportResult

	tx, err := w.db.BeginTxx(ctx, nil)
	if err != nil {
		return result, crerr.Wrap(err, "begin import transaction")
	}
	defer func() { _ = tx.Rollback() }()

	for _, table := range []string{tableEvents, tableMatches, tablePlayers} {
		if _, err := tx.ExecContext(ctx, "DELETE FROM "+table); err != nil {
			return result, crerr.Wrapf(err, "clear %s", table)
		}
	}

	for i, row := range snap.Players.Rows {
		id, ok := dataset.ParseID(row.Get(dataset.ColPlayerID))
		if !ok {
			result.SkippedPlayers++
			continue
		}
		model := playerInsertModel{
			Row:            int64(i + 1),
			PlayerID:       int64(id),
			Name:           row.Get(dataset.ColPlayerName),
			Position:       optionalText(row.Get(dataset.ColPosition)),
			Active:         flagValue(row.Get(dataset.ColActive)),
			SevereSanction: flagValue(row.Get(dataset.ColSevereSanction)),
		}
		if err := insertModel(ctx, tx, tablePlayers, model); err != nil {
			return result, err
		}
		result.Players++
	}

	for i, row := range snap.Matches.Rows {
		id, ok := dataset.ParseID(row.Get(dataset.ColMatchID))
		if !ok {
			result.SkippedMatches++
			continue
		}
		model := matchInsertModel{
			Row:          int64(i + 1),
			MatchID:      int64(id),
			Date:         dateValue(row.Get(dataset.ColDate)),
			ResultYellow: optionalText(row.Get(dataset.ColResultYellow)),
			ResultBlue:   optionalText(row.Get(dataset.ColResultBlue)),
			ScoreYellow:  scoreValue(row.Get(dataset.ColScoreYellow)),
			ScoreBlue:    scoreValue(row.Get(dataset.ColScoreBlue)),
			Venue:        optionalText(row.Get(dataset.ColVenue)),
		}
		if err := insertModel(ctx, tx, tableMatches, model); err != nil {
			return result, err
		}
		result.Matches++
	}

	completion := dataset.ColCompletion
	if !snap.Events.HasColumn(completion) {
		completion = dataset.ColCompletionLegacy
	}
	for i, row := range snap.Events.Rows {
		matchID, okMatch := dataset.ParseID(row.Get(dataset.ColMatchID))
		playerID, okPlayer := dataset.ParseID(row.Get(dataset.ColPlayerID))
		if !okMatch || !okPlayer {
			result.SkippedEvents++
			continue
		}
		model := eventInsertModel{
			Row:             int64(i + 1),
			MatchID:         int64(matchID),
			PlayerID:        int64(playerID),
			Team:            optionalText(row.Get(dataset.ColTeam)),
			GoalsConceded:   countValue(row.Get(dataset.ColGoalsConceded)),
			PlayedAsForward: flagValue(row.Get(dataset.ColPlayedAsForward)),
			FirstHalfGoals:  countValue(row.Get(dataset.ColFirstHalfGoals)),
			SecondHalfGoals: countValue(row.Get(dataset.ColSecondHalfGoals)),
			TotalGoals:      countValue(row.Get(dataset.ColTotalGoals)),
			OwnGoals:        countValue(row.Get(dataset.ColOwnGoals)),
			Assists:         countValue(row.Get(dataset.ColAssists)),
			YellowCards:     countValue(row.Get(dataset.ColYellowCards)),
			RedCards:        countValue(row.Get(dataset.ColRedCards)),
			SavedPenalties:  countValue(row.Get(dataset.ColSavedPenalties)),
			Completion:      weightValue(row.Get(completion)),
		}
		if err := insertModel(ctx, tx, tableEvents, model); err != nil {
			return result, err
		}
		result.Events++
	}

	if err := tx.Commit(); err != nil {
		return result, crerr.Wrap(err, "commit import transaction")
	}
	return result, nil
}

func insertModel(ctx context.Context, tx *sqlx.Tx, table string, model any) error {
	query, args, err := qb.InsertModel(table, model, qb.FormatFor(tx.DriverName()))
	if err != nil {
		return crerr.Wrapf(err, "build insert %s query", table)
	}
	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		return crerr.Wrapf(err, "insert %s", table)
	}
	return nil
}

func optionalText(raw string) sql.NullString {
	raw = strings.TrimSpace(raw)
	return sql.NullString{String: raw, Valid: raw != ""}
}

func flagValue(raw string) int16 {
	if dataset.ParseFlag(raw) {
		return 1
	}
	return 0
}

func countValue(raw string) int64 {
	return int64(dataset.ParseCount(raw))
}

func scoreValue(raw string) sql.NullInt64 {
	score := dataset.ParseScore(raw)
	if score == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: int64(*score), Valid: true}
}

func weightValue(raw string) sql.NullFloat64 {
	value, ok := dataset.ParseNumber(raw)
	return sql.NullFloat64{Float64: value, Valid: ok}
}

func dateValue(raw string) sql.NullString {
	day := dataset.ParseDate(raw)
	if day == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: day.Format("2006-01-02"), Valid: true}
}
