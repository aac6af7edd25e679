package dataset

const (
	ColPlayerID       = "id_jugador"
	ColPlayerName     = "nombre"
	ColPosition       = "posicion"
	ColActive         = "activo"
	ColSevereSanction = "sancion_grave"

	ColMatchID      = "id_partido"
	ColDate         = "fecha"
	ColResultYellow = "resultado_amarillo"
	ColResultBlue   = "resultado_azul"
	ColScoreYellow  = "marcador_amarillo"
	ColScoreBlue    = "marcador_azul"
	ColVenue        = "cancha"

	ColTeam             = "equipo"
	ColGoalsConceded    = "gol_recibido"
	ColPlayedAsForward  = "fue_delantero"
	ColFirstHalfGoals   = "gol_primer"
	ColSecondHalfGoals  = "gol_segundo"
	ColTotalGoals       = "gol_total"
	ColOwnGoals         = "autogoles"
	ColAssists          = "asistencia_gol"
	ColYellowCards      = "amarillas"
	ColRedCards         = "rojas"
	ColSavedPenalties   = "penal_atajado"
	ColCompletion       = "partido_completado"
	ColCompletionLegacy = "fraccion_partido"
)

var RequiredPlayerColumns = []string{
	ColPlayerID,
	ColPlayerName,
	ColPosition,
	ColActive,
	ColSevereSanction,
}

var RequiredMatchColumns = []string{
	ColMatchID,
	ColDate,
	ColResultYellow,
	ColResultBlue,
	ColScoreYellow,
	ColScoreBlue,
}

var RequiredEventColumns = []string{
	ColMatchID,
	ColPlayerID,
	ColTeam,
	ColGoalsConceded,
	ColPlayedAsForward,
	ColFirstHalfGoals,
	ColSecondHalfGoals,
	ColTotalGoals,
	ColOwnGoals,
	ColAssists,
	ColYellowCards,
	ColRedCards,
	ColSavedPenalties,
}

// completionColumn picks the completion weight column, preferring the current
// name over the legacy one. It returns "" when neither is present.
func completionColumn(t Table) string {
	switch {
	case t.HasColumn(ColCompletion):
		return ColCompletion
	case t.HasColumn(ColCompletionLegacy):
		return ColCompletionLegacy
	default:
		return ""
	}
}
