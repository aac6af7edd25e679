package httpapi

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/riskibarqy/league-ranking/internal/domain/leaderboard"
	"github.com/riskibarqy/league-ranking/internal/domain/player"
	"github.com/riskibarqy/league-ranking/internal/domain/seasonstats"
	"github.com/riskibarqy/league-ranking/internal/usecase"
)

// ReportDocument is the complete computed pass in its wire form. The report
// CLI prints it and GET /v1/report serves it.
type ReportDocument struct {
	SnapshotID       string                           `json:"snapshotId"`
	Source           string                           `json:"source"`
	LoadedAt         string                           `json:"loadedAt"`
	RuleSet          string                           `json:"ruleSet"`
	EmptySeason      bool                             `json:"emptySeason"`
	DroppedEvents    int                              `json:"droppedEvents"`
	Problems         []string                         `json:"problems"`
	Notes            []string                         `json:"notes"`
	Events           []scoredEventDTO                 `json:"events"`
	Season           []playerSeasonDTO                `json:"season"`
	SeasonBoards     map[string][]leaderboardEntryDTO `json:"seasonBoards"`
	SpecialtyBoards  map[string][]leaderboardEntryDTO `json:"specialtyBoards"`
	GoalsAgainst     []leaderboardEntryDTO            `json:"goalsAgainst"`
	Regularity       []leaderboardEntryDTO            `json:"regularity"`
	MVP              []leaderboardEntryDTO            `json:"mvp"`
	MatchDay         matchDayBoardDTO                 `json:"matchDay"`
	Matches          []matchSummaryDTO                `json:"matches"`
	TeamTotals       teamTotalsDTO                    `json:"teamTotals"`
	PlayersOfTheDate []playerOfTheDateDTO             `json:"playersOfTheDate"`
}

// BuildReport renders every view of the current pass.
func BuildReport(ctx context.Context, ranking *usecase.RankingService) (ReportDocument, error) {
	report, err := ranking.Report(ctx)
	if err != nil {
		return ReportDocument{}, err
	}

	doc := ReportDocument{
		SnapshotID:      report.SnapshotID,
		Source:          report.Source,
		LoadedAt:        report.LoadedAt.UTC().Format(time.RFC3339),
		RuleSet:         report.RuleSet,
		EmptySeason:     report.EmptySeason,
		DroppedEvents:   report.DroppedEvents,
		Problems:        nonNilStrings(report.Problems),
		Notes:           nonNilStrings(report.Notes),
		Events:          scoredEventsToDTO(report.Events),
		Season:          seasonTableToDTO(report.Season),
		SeasonBoards:    make(map[string][]leaderboardEntryDTO, len(player.OrderedPositions)),
		SpecialtyBoards: make(map[string][]leaderboardEntryDTO, len(leaderboard.AllKinds)),
		GoalsAgainst:    leaderboardToDTO(leaderboard.GoalsAgainst(report.Season)),
		Regularity:      leaderboardToDTO(leaderboard.Regularity(report.Season)),
		MVP:             leaderboardToDTO(leaderboard.MVP(report.Season)),
		Matches:         matchSummariesToDTO(seasonstats.MatchSummaries(report.Matches)),
		TeamTotals:      teamTotalsToDTO(seasonstats.Totals(report.Matches)),
	}
	for _, pos := range player.OrderedPositions {
		doc.SeasonBoards[string(pos)] = leaderboardToDTO(leaderboard.Season(report.Season, pos))
	}
	for _, kind := range leaderboard.AllKinds {
		doc.SpecialtyBoards[string(kind)] = leaderboardToDTO(leaderboard.Specialty(report.Season, kind))
	}

	board, err := ranking.MatchDayLeaderboard(ctx, nil, "")
	if err != nil {
		return ReportDocument{}, fmt.Errorf("match-day board: %w", err)
	}
	doc.MatchDay = matchDayBoardToDTO(board)

	winners, err := ranking.PlayersOfTheDate(ctx)
	if err != nil {
		return ReportDocument{}, fmt.Errorf("players of the date: %w", err)
	}
	doc.PlayersOfTheDate = playersOfTheDateToDTO(winners)

	return doc, nil
}

func (h *Handler) GetReport(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetReport")
	defer span.End()

	doc, err := BuildReport(ctx, h.rankingService)
	if err != nil {
		h.logger.ErrorContext(ctx, "build report failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, doc)
}
