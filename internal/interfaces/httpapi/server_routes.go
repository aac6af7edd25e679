package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
}

func registerStatsRoutes(mux *http.ServeMux, handler *Handler, accessCode string) {
	gate := func(fn http.HandlerFunc) http.Handler {
		return RequireAccessCode(accessCode, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			nameRouteSpan(r)
			fn(w, r)
		}))
	}

	mux.Handle("GET /v1/validation", gate(handler.GetValidation))
	mux.Handle("GET /v1/events", gate(handler.ListScoredEvents))
	mux.Handle("GET /v1/players/season", gate(handler.ListPlayerSeasons))
	mux.Handle("GET /v1/players/{playerID}/evolution", gate(handler.GetPlayerEvolution))
	mux.Handle("GET /v1/players-of-the-date", gate(handler.ListPlayersOfTheDate))
	mux.Handle("GET /v1/matches/summary", gate(handler.ListMatchSummaries))
	mux.Handle("GET /v1/matches/last", gate(handler.GetLastMatch))
	mux.Handle("GET /v1/teams/totals", gate(handler.GetTeamTotals))
	mux.Handle("GET /v1/dashboard", gate(handler.GetDashboard))
	mux.Handle("GET /v1/report", gate(handler.GetReport))
	mux.Handle("POST /v1/snapshot/reload", gate(handler.ReloadSnapshot))

	mux.Handle("GET /v1/leaderboards/matchday", gate(handler.GetMatchDayLeaderboard))
	mux.Handle("GET /v1/leaderboards/season", gate(handler.GetSeasonLeaderboard))
	mux.Handle("GET /v1/leaderboards/specialty/{kind}", gate(handler.GetSpecialtyLeaderboard))
	mux.Handle("GET /v1/leaderboards/goals-against", gate(handler.GetGoalsAgainstLeaderboard))
	mux.Handle("GET /v1/leaderboards/regularity", gate(handler.GetRegularityLeaderboard))
	mux.Handle("GET /v1/leaderboards/mvp", gate(handler.GetMVPLeaderboard))
}
