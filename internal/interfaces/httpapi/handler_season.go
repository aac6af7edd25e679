package httpapi

import "net/http"

func (h *Handler) GetValidation(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetValidation")
	defer span.End()

	report, err := h.rankingService.Validation(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "validation report failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, validationToDTO(report))
}

func (h *Handler) ListScoredEvents(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListScoredEvents")
	defer span.End()

	events, err := h.rankingService.Events(ctx)
	if err != nil {
		h.logger.WarnContext(ctx, "list scored events failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, scoredEventsToDTO(events))
}

func (h *Handler) ListPlayerSeasons(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListPlayerSeasons")
	defer span.End()

	table, err := h.rankingService.SeasonTable(ctx)
	if err != nil {
		h.logger.WarnContext(ctx, "list player seasons failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, seasonTableToDTO(table))
}

func (h *Handler) GetPlayerEvolution(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetPlayerEvolution")
	defer span.End()

	playerID, err := parsePlayerID(r.PathValue("playerID"))
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, playerEvolutionRequest{PlayerID: playerID}); err != nil {
		writeError(ctx, w, err)
		return
	}

	points, err := h.rankingService.PlayerEvolution(ctx, playerID)
	if err != nil {
		h.logger.WarnContext(ctx, "player evolution failed", "player_id", playerID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, evolutionToDTO(points))
}

func (h *Handler) ListPlayersOfTheDate(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListPlayersOfTheDate")
	defer span.End()

	items, err := h.rankingService.PlayersOfTheDate(ctx)
	if err != nil {
		h.logger.WarnContext(ctx, "players of the date failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, playersOfTheDateToDTO(items))
}

func (h *Handler) ListMatchSummaries(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListMatchSummaries")
	defer span.End()

	items, err := h.rankingService.MatchSummaries(ctx)
	if err != nil {
		h.logger.WarnContext(ctx, "match summaries failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, matchSummariesToDTO(items))
}

func (h *Handler) GetLastMatch(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetLastMatch")
	defer span.End()

	last, err := h.rankingService.LastMatch(ctx)
	if err != nil {
		h.logger.WarnContext(ctx, "last match failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, matchSummaryToDTO(last))
}

func (h *Handler) GetTeamTotals(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetTeamTotals")
	defer span.End()

	totals, err := h.rankingService.TeamTotals(ctx)
	if err != nil {
		h.logger.WarnContext(ctx, "team totals failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, teamTotalsToDTO(totals))
}

func (h *Handler) GetDashboard(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetDashboard")
	defer span.End()

	dashboard, err := h.rankingService.Dashboard(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "get dashboard failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, dashboardToDTO(dashboard))
}

func (h *Handler) ReloadSnapshot(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ReloadSnapshot")
	defer span.End()

	snap, err := h.snapshotService.Reload(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "reload snapshot failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, snapshotToDTO(snap))
}
