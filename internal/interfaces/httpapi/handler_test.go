package httpapi

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	sonic "github.com/bytedance/sonic"
	"github.com/riskibarqy/league-ranking/internal/domain/dataset"
	"github.com/riskibarqy/league-ranking/internal/domain/scoring"
	"github.com/riskibarqy/league-ranking/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/league-ranking/internal/platform/cache"
	"github.com/riskibarqy/league-ranking/internal/platform/id"
	"github.com/riskibarqy/league-ranking/internal/platform/logging"
	"github.com/riskibarqy/league-ranking/internal/usecase"
)

type envelope[T any] struct {
	APIVersion string           `json:"apiVersion"`
	Data       T                `json:"data"`
	Error      *googleErrorBody `json:"error"`
}

func newSeedRouter(t *testing.T, accessCode string) http.Handler {
	t.Helper()

	logger := logging.NewNop()
	snapshots := usecase.NewSnapshotService(memory.NewSource(memory.SeedSnapshot()), cache.NewStore[dataset.Snapshot](0), id.Static("seed"), logger)
	ranking := usecase.NewRankingService(snapshots, usecase.RankingServiceConfig{Rules: scoring.Season2026()}, logger)
	return NewRouter(NewHandler(ranking, snapshots, logger), logger, nil, accessCode)
}

func serve(t *testing.T, router http.Handler, method, target string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, target, nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) envelope[T] {
	t.Helper()

	var body envelope[T]
	if err := sonic.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal response body: %v (%s)", err, rec.Body.String())
	}
	return body
}

func TestHandler_StatusCodes(t *testing.T) {
	t.Parallel()

	router := newSeedRouter(t, "")
	tests := []struct {
		name   string
		method string
		target string
		want   int
	}{
		{name: "healthz", method: http.MethodGet, target: "/healthz", want: http.StatusOK},
		{name: "validation", method: http.MethodGet, target: "/v1/validation", want: http.StatusOK},
		{name: "events", method: http.MethodGet, target: "/v1/events", want: http.StatusOK},
		{name: "player seasons", method: http.MethodGet, target: "/v1/players/season", want: http.StatusOK},
		{name: "season board", method: http.MethodGet, target: "/v1/leaderboards/season?position=delantero", want: http.StatusOK},
		{name: "season board as of", method: http.MethodGet, target: "/v1/leaderboards/season?as_of=2026-03-07", want: http.StatusOK},
		{name: "goals against", method: http.MethodGet, target: "/v1/leaderboards/goals-against", want: http.StatusOK},
		{name: "regularity", method: http.MethodGet, target: "/v1/leaderboards/regularity", want: http.StatusOK},
		{name: "mvp", method: http.MethodGet, target: "/v1/leaderboards/mvp", want: http.StatusOK},
		{name: "saved penalties", method: http.MethodGet, target: "/v1/leaderboards/specialty/saved-penalties", want: http.StatusOK},
		{name: "match summaries", method: http.MethodGet, target: "/v1/matches/summary", want: http.StatusOK},
		{name: "team totals", method: http.MethodGet, target: "/v1/teams/totals", want: http.StatusOK},
		{name: "players of the date", method: http.MethodGet, target: "/v1/players-of-the-date", want: http.StatusOK},
		{name: "dashboard", method: http.MethodGet, target: "/v1/dashboard", want: http.StatusOK},
		{name: "report", method: http.MethodGet, target: "/v1/report", want: http.StatusOK},
		{name: "unknown position", method: http.MethodGet, target: "/v1/leaderboards/season?position=libero", want: http.StatusBadRequest},
		{name: "bad date", method: http.MethodGet, target: "/v1/leaderboards/matchday?date=yesterday", want: http.StatusBadRequest},
		{name: "bad format", method: http.MethodGet, target: "/v1/leaderboards/regularity?format=xml", want: http.StatusBadRequest},
		{name: "unknown kind", method: http.MethodGet, target: "/v1/leaderboards/specialty/tackles", want: http.StatusBadRequest},
		{name: "bad player id", method: http.MethodGet, target: "/v1/players/abc/evolution", want: http.StatusBadRequest},
		{name: "non positive player id", method: http.MethodGet, target: "/v1/players/0/evolution", want: http.StatusBadRequest},
		{name: "unknown player", method: http.MethodGet, target: "/v1/players/404/evolution", want: http.StatusNotFound},
		{name: "reload needs post", method: http.MethodGet, target: "/v1/snapshot/reload", want: http.StatusMethodNotAllowed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(t, router, tt.method, tt.target)
			if rec.Code != tt.want {
				t.Fatalf("%s %s: expected status %d, got %d (%s)", tt.method, tt.target, tt.want, rec.Code, rec.Body.String())
			}
		})
	}
}

func TestHandler_MatchDayLeaderboardDefaultsToLatestDate(t *testing.T) {
	t.Parallel()

	rec := serve(t, newSeedRouter(t, ""), http.MethodGet, "/v1/leaderboards/matchday")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}

	body := decode[matchDayBoardDTO](t, rec)
	if body.Data.Date != "2026-03-14" {
		t.Fatalf("expected latest date 2026-03-14, got %q", body.Data.Date)
	}
	if len(body.Data.Entries) == 0 || body.Data.Entries[0].PlayerID != 3 || body.Data.Entries[0].Points != 6 {
		t.Fatalf("unexpected leader: %+v", body.Data.Entries)
	}
}

func TestHandler_SeasonLeaderboardCSV(t *testing.T) {
	t.Parallel()

	rec := serve(t, newSeedRouter(t, ""), http.MethodGet, "/v1/leaderboards/season?position=arquero&format=csv")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d (%s)", rec.Code, rec.Body.String())
	}
	if got := rec.Header().Get("Content-Type"); !strings.HasPrefix(got, "text/csv") {
		t.Fatalf("unexpected content type %q", got)
	}
	if got := rec.Header().Get("Content-Disposition"); !strings.Contains(got, "season-arquero.csv") {
		t.Fatalf("unexpected content disposition %q", got)
	}

	lines := strings.Split(strings.TrimSpace(rec.Body.String()), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected header plus two goalkeepers, got %d lines: %q", len(lines), lines)
	}
	if lines[0] != strings.Join(leaderboardCSVHeader, ",") {
		t.Fatalf("unexpected header %q", lines[0])
	}
	if !strings.HasPrefix(lines[1], "1,1,Matías Rojas,arquero,5.5,") {
		t.Fatalf("unexpected first row %q", lines[1])
	}
}

func TestHandler_MVPLeaderboard(t *testing.T) {
	t.Parallel()

	rec := serve(t, newSeedRouter(t, ""), http.MethodGet, "/v1/leaderboards/mvp")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d (%s)", rec.Code, rec.Body.String())
	}

	body := decode[[]leaderboardEntryDTO](t, rec)
	if len(body.Data) != 8 {
		t.Fatalf("expected the eight active seed players, got %d", len(body.Data))
	}
	mentioned := false
	for i, e := range body.Data {
		if e.Rank != i+1 || e.Player.PlayerID == 9 {
			t.Fatalf("unexpected row %d: %+v", i, e)
		}
		if want := e.Player.PointsTotal + float64(2*e.Mentions); e.Metric != want {
			t.Fatalf("player %d: metric %v, want %v", e.Player.PlayerID, e.Metric, want)
		}
		if i > 0 && body.Data[i-1].Metric < e.Metric {
			t.Fatalf("rows must be sorted by metric: %+v", body.Data)
		}
		mentioned = mentioned || e.Mentions > 0
	}
	if !mentioned {
		t.Fatalf("expected at least one leaderboard mention in the seed season")
	}
}

func TestHandler_LastMatchAndTotals(t *testing.T) {
	t.Parallel()

	router := newSeedRouter(t, "")

	last := decode[matchSummaryDTO](t, serve(t, router, http.MethodGet, "/v1/matches/last"))
	if last.Data.MatchID != 3 || last.Data.Date != "2026-03-14" || last.Data.Winner != "azul" {
		t.Fatalf("unexpected last match: %+v", last.Data)
	}

	totals := decode[teamTotalsDTO](t, serve(t, router, http.MethodGet, "/v1/teams/totals"))
	if totals.Data.GoalsYellow != 5 || totals.Data.GoalsBlue != 4 || totals.Data.Matches != 3 {
		t.Fatalf("unexpected totals: %+v", totals.Data)
	}
}

func TestHandler_PlayerEvolution(t *testing.T) {
	t.Parallel()

	body := decode[[]evolutionPointDTO](t, serve(t, newSeedRouter(t, ""), http.MethodGet, "/v1/players/3/evolution"))
	if len(body.Data) != 2 {
		t.Fatalf("expected two dates, got %+v", body.Data)
	}
	if body.Data[1].Date != "2026-03-14" || body.Data[1].SeasonToDate != 9 || body.Data[1].Rank != 1 {
		t.Fatalf("unexpected second point: %+v", body.Data[1])
	}
}

func TestHandler_ReloadSnapshot(t *testing.T) {
	t.Parallel()

	rec := serve(t, newSeedRouter(t, ""), http.MethodPost, "/v1/snapshot/reload")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d (%s)", rec.Code, rec.Body.String())
	}

	body := decode[snapshotDTO](t, rec)
	if body.Data.SnapshotID != "seed" || body.Data.Source != "memory" {
		t.Fatalf("unexpected snapshot: %+v", body.Data)
	}
	if body.Data.Players != 9 || body.Data.Matches != 3 || body.Data.Events != 15 {
		t.Fatalf("unexpected row counts: %+v", body.Data)
	}
}

func TestHandler_ValidationReportIsNeverNull(t *testing.T) {
	t.Parallel()

	rec := serve(t, newSeedRouter(t, ""), http.MethodGet, "/v1/validation")
	if !strings.Contains(rec.Body.String(), `"problems":[]`) {
		t.Fatalf("expected empty problems array, got %s", rec.Body.String())
	}

	body := decode[validationDTO](t, rec)
	if !body.Data.Valid || body.Data.EmptySeason {
		t.Fatalf("unexpected validation: %+v", body.Data)
	}
}

func TestBuildReport_CoversEveryBoard(t *testing.T) {
	t.Parallel()

	rec := serve(t, newSeedRouter(t, ""), http.MethodGet, "/v1/report")
	body := decode[ReportDocument](t, rec)

	if body.Data.SnapshotID != "seed" || body.Data.RuleSet != "2026" {
		t.Fatalf("unexpected report metadata: %+v", body.Data)
	}
	if len(body.Data.Events) != 15 || len(body.Data.Season) != 9 {
		t.Fatalf("unexpected row counts: events=%d season=%d", len(body.Data.Events), len(body.Data.Season))
	}
	if len(body.Data.SeasonBoards) != 4 || len(body.Data.SpecialtyBoards) != 6 {
		t.Fatalf("expected every position and specialty board, got %d/%d", len(body.Data.SeasonBoards), len(body.Data.SpecialtyBoards))
	}
	if body.Data.MatchDay.Date != "2026-03-14" || len(body.Data.PlayersOfTheDate) != 2 {
		t.Fatalf("unexpected match-day views: %+v", body.Data.MatchDay)
	}
}
