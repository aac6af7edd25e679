package httpapi

import (
	"context"
	"encoding/csv"
	"fmt"
	"net/http"
	"strconv"

	"github.com/riskibarqy/league-ranking/internal/domain/leaderboard"
	"github.com/valyala/bytebufferpool"
)

var leaderboardCSVHeader = []string{
	"rank", "id_jugador", "nombre", "posicion", "metric",
	"partidos", "partido_completado", "gol_total", "asistencia_gol", "amarillas", "rojas",
}

var matchDayCSVHeader = []string{
	"rank", "id_jugador", "nombre", "posicion", "puntos",
	"partidos", "partido_completado", "gol_total", "asistencia_gol", "amarillas", "rojas",
}

func leaderboardCSVRows(entries []leaderboard.Entry) [][]string {
	rows := make([][]string, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, []string{
			strconv.Itoa(e.Rank),
			strconv.Itoa(e.Player.PlayerID),
			e.Player.Name,
			string(e.Player.Position),
			formatNumber(e.Metric),
			strconv.Itoa(e.Player.MatchesPlayed),
			formatNumber(e.Player.CompletionEquivalent),
			strconv.Itoa(e.Player.Goals),
			strconv.Itoa(e.Player.Assists),
			strconv.Itoa(e.Player.YellowCards),
			strconv.Itoa(e.Player.RedCards),
		})
	}
	return rows
}

func matchDayCSVRows(entries []leaderboard.MatchDayEntry) [][]string {
	rows := make([][]string, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, []string{
			strconv.Itoa(e.Rank),
			strconv.Itoa(e.PlayerID),
			e.Name,
			string(e.Position),
			formatNumber(e.Points),
			strconv.Itoa(e.Matches),
			formatNumber(e.Completion),
			strconv.Itoa(e.Goals),
			strconv.Itoa(e.Assists),
			strconv.Itoa(e.YellowCards),
			strconv.Itoa(e.RedCards),
		})
	}
	return rows
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// writeCSV renders the whole document into a pooled buffer first so a
// failed encode still produces a JSON error instead of a truncated file.
func writeCSV(ctx context.Context, w http.ResponseWriter, filename string, header []string, rows [][]string) {
	ctx, span := startSpan(ctx, "httpapi.writeCSV")
	defer span.End()

	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	cw := csv.NewWriter(buf)
	if err := cw.Write(header); err != nil {
		writeInternalError(ctx, w)
		return
	}
	if err := cw.WriteAll(rows); err != nil {
		writeInternalError(ctx, w)
		return
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename+".csv"))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(buf.B)
}
