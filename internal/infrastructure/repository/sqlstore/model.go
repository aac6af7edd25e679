package sqlstore

import "database/sql"

const (
	tablePlayers = "jugadores"
	tableMatches = "partidos"
	tableEvents  = "eventos"
)

// Read models scan every column as text; the engine parses raw cells itself.

type playerRowModel struct {
	PlayerID       sql.NullString `db:"id_jugador"`
	Name           sql.NullString `db:"nombre"`
	Position       sql.NullString `db:"posicion"`
	Active         sql.NullString `db:"activo"`
	SevereSanction sql.NullString `db:"sancion_grave"`
}

type matchRowModel struct {
	MatchID      sql.NullString `db:"id_partido"`
	Date         sql.NullString `db:"fecha"`
	ResultYellow sql.NullString `db:"resultado_amarillo"`
	ResultBlue   sql.NullString `db:"resultado_azul"`
	ScoreYellow  sql.NullString `db:"marcador_amarillo"`
	ScoreBlue    sql.NullString `db:"marcador_azul"`
	Venue        sql.NullString `db:"cancha"`
}

type eventRowModel struct {
	MatchID         sql.NullString `db:"id_partido"`
	PlayerID        sql.NullString `db:"id_jugador"`
	Team            sql.NullString `db:"equipo"`
	GoalsConceded   sql.NullString `db:"gol_recibido"`
	PlayedAsForward sql.NullString `db:"fue_delantero"`
	FirstHalfGoals  sql.NullString `db:"gol_primer"`
	SecondHalfGoals sql.NullString `db:"gol_segundo"`
	TotalGoals      sql.NullString `db:"gol_total"`
	OwnGoals        sql.NullString `db:"autogoles"`
	Assists         sql.NullString `db:"asistencia_gol"`
	YellowCards     sql.NullString `db:"amarillas"`
	RedCards        sql.NullString `db:"rojas"`
	SavedPenalties  sql.NullString `db:"penal_atajado"`
	Completion      sql.NullString `db:"partido_completado"`
}

// Write models carry typed values; unparseable cells become NULL.

type playerInsertModel struct {
	Row            int64          `db:"fila"`
	PlayerID       int64          `db:"id_jugador"`
	Name           string         `db:"nombre"`
	Position       sql.NullString `db:"posicion"`
	Active         int16          `db:"activo"`
	SevereSanction int16          `db:"sancion_grave"`
}

type matchInsertModel struct {
	Row          int64          `db:"fila"`
	MatchID      int64          `db:"id_partido"`
	Date         sql.NullString `db:"fecha"`
	ResultYellow sql.NullString `db:"resultado_amarillo"`
	ResultBlue   sql.NullString `db:"resultado_azul"`
	ScoreYellow  sql.NullInt64  `db:"marcador_amarillo"`
	ScoreBlue    sql.NullInt64  `db:"marcador_azul"`
	Venue        sql.NullString `db:"cancha"`
}

type eventInsertModel struct {
	Row             int64           `db:"fila"`
	MatchID         int64           `db:"id_partido"`
	PlayerID        int64           `db:"id_jugador"`
	Team            sql.NullString  `db:"equipo"`
	GoalsConceded   int64           `db:"gol_recibido"`
	PlayedAsForward int16           `db:"fue_delantero"`
	FirstHalfGoals  int64           `db:"gol_primer"`
	SecondHalfGoals int64           `db:"gol_segundo"`
	TotalGoals      int64           `db:"gol_total"`
	OwnGoals        int64           `db:"autogoles"`
	Assists         int64           `db:"asistencia_gol"`
	YellowCards     int64           `db:"amarillas"`
	RedCards        int64           `db:"rojas"`
	SavedPenalties  int64           `db:"penal_atajado"`
	Completion      sql.NullFloat64 `db:"partido_completado"`
}

func textColumns(columns []string) []string {
	out := make([]string, 0, len(columns))
	for _, col := range columns {
		out = append(out, "CAST("+col+" AS TEXT) AS "+col)
	}
	return out
}

func nullText(v sql.NullString) string {
	if !v.Valid {
		return ""
	}
	return v.String
}
