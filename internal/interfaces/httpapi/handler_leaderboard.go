package httpapi

import (
	"context"
	"net/http"
	"strings"

	"github.com/riskibarqy/league-ranking/internal/domain/leaderboard"
)

func (h *Handler) GetMatchDayLeaderboard(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetMatchDayLeaderboard")
	defer span.End()

	req := readLeaderboardQuery(r, "date")
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}
	date, err := parseDateParam("date", req.Date)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	board, err := h.rankingService.MatchDayLeaderboard(ctx, date, req.Position)
	if err != nil {
		h.logger.WarnContext(ctx, "match-day leaderboard failed", "date", req.Date, "position", req.Position, "error", err)
		writeError(ctx, w, err)
		return
	}

	if req.Format == formatCSV {
		name := "matchday"
		if board.HasDate {
			name += "-" + formatDate(board.Date)
		}
		writeCSV(ctx, w, name, matchDayCSVHeader, matchDayCSVRows(board.Entries))
		return
	}
	writeSuccess(ctx, w, http.StatusOK, matchDayBoardToDTO(board))
}

func (h *Handler) GetSeasonLeaderboard(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetSeasonLeaderboard")
	defer span.End()

	req := readLeaderboardQuery(r, "as_of")
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}
	asOf, err := parseDateParam("as_of", req.Date)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	entries, err := h.rankingService.SeasonLeaderboard(ctx, req.Position, asOf)
	if err != nil {
		h.logger.WarnContext(ctx, "season leaderboard failed", "position", req.Position, "as_of", req.Date, "error", err)
		writeError(ctx, w, err)
		return
	}

	name := "season"
	if req.Position != "" {
		name += "-" + strings.ToLower(req.Position)
	}
	writeLeaderboard(ctx, w, req.Format, name, entries)
}

func (h *Handler) GetSpecialtyLeaderboard(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetSpecialtyLeaderboard")
	defer span.End()

	req := specialtyQuery{
		Kind:   strings.TrimSpace(r.PathValue("kind")),
		Format: strings.ToLower(strings.TrimSpace(r.URL.Query().Get("format"))),
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	entries, err := h.rankingService.SpecialtyLeaderboard(ctx, req.Kind)
	if err != nil {
		h.logger.WarnContext(ctx, "specialty leaderboard failed", "kind", req.Kind, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeLeaderboard(ctx, w, req.Format, req.Kind, entries)
}

func (h *Handler) GetGoalsAgainstLeaderboard(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetGoalsAgainstLeaderboard")
	defer span.End()

	req := readLeaderboardQuery(r, "")
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	entries, err := h.rankingService.GoalsAgainstLeaderboard(ctx)
	if err != nil {
		h.logger.WarnContext(ctx, "goals-against leaderboard failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeLeaderboard(ctx, w, req.Format, "goals-against", entries)
}

func (h *Handler) GetRegularityLeaderboard(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetRegularityLeaderboard")
	defer span.End()

	req := readLeaderboardQuery(r, "")
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	entries, err := h.rankingService.RegularityLeaderboard(ctx)
	if err != nil {
		h.logger.WarnContext(ctx, "regularity leaderboard failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeLeaderboard(ctx, w, req.Format, "regularity", entries)
}

func (h *Handler) GetMVPLeaderboard(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetMVPLeaderboard")
	defer span.End()

	req := readLeaderboardQuery(r, "")
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	entries, err := h.rankingService.MVPLeaderboard(ctx)
	if err != nil {
		h.logger.WarnContext(ctx, "mvp leaderboard failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeLeaderboard(ctx, w, req.Format, "mvp", entries)
}

func writeLeaderboard(ctx context.Context, w http.ResponseWriter, format, name string, entries []leaderboard.Entry) {
	if format == formatCSV {
		writeCSV(ctx, w, name, leaderboardCSVHeader, leaderboardCSVRows(entries))
		return
	}
	writeSuccess(ctx, w, http.StatusOK, leaderboardToDTO(entries))
}
