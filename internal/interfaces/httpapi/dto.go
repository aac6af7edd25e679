package httpapi

import (
	"time"

	"github.com/riskibarqy/league-ranking/internal/domain/dataset"
	"github.com/riskibarqy/league-ranking/internal/domain/leaderboard"
	"github.com/riskibarqy/league-ranking/internal/domain/player"
	"github.com/riskibarqy/league-ranking/internal/domain/scoring"
	"github.com/riskibarqy/league-ranking/internal/domain/seasonstats"
	"github.com/riskibarqy/league-ranking/internal/usecase"
)

const dateLayout = "2006-01-02"

type validationDTO struct {
	SnapshotID  string   `json:"snapshotId"`
	Valid       bool     `json:"valid"`
	EmptySeason bool     `json:"emptySeason"`
	Problems    []string `json:"problems"`
	Notes       []string `json:"notes"`
}

type snapshotDTO struct {
	SnapshotID string `json:"snapshotId"`
	Source     string `json:"source"`
	LoadedAt   string `json:"loadedAt"`
	Players    int    `json:"players"`
	Matches    int    `json:"matches"`
	Events     int    `json:"events"`
}

type scoredEventDTO struct {
	MatchID             int     `json:"matchId"`
	PlayerID            int     `json:"playerId"`
	PlayerName          string  `json:"playerName"`
	Position            string  `json:"position"`
	Team                string  `json:"team"`
	Date                string  `json:"date,omitempty"`
	KnownPlayer         bool    `json:"knownPlayer"`
	KnownMatch          bool    `json:"knownMatch"`
	FirstHalfGoals      int     `json:"firstHalfGoals"`
	SecondHalfGoals     int     `json:"secondHalfGoals"`
	Goals               int     `json:"goals"`
	Assists             int     `json:"assists"`
	OwnGoals            int     `json:"ownGoals"`
	YellowCards         int     `json:"yellowCards"`
	RedCards            int     `json:"redCards"`
	SavedPenalties      int     `json:"savedPenalties"`
	PlayedAsForward     bool    `json:"playedAsForward"`
	Completion          float64 `json:"completion"`
	ResultPoints        float64 `json:"resultPoints"`
	GoalsConcededByTeam int     `json:"goalsConcededByTeam"`
	CleanSheet          int     `json:"cleanSheet"`
	CardPenalty         float64 `json:"cardPenalty"`
	PositionPoints      float64 `json:"positionPoints"`
	ParticipationPoints float64 `json:"participationPoints"`
	Points              float64 `json:"points"`
}

type regularityDTO struct {
	Availability      float64 `json:"availability"`
	Role              float64 `json:"role"`
	Offense           float64 `json:"offense"`
	Discipline        float64 `json:"discipline"`
	DisciplinePenalty float64 `json:"disciplinePenalty"`
	Index             float64 `json:"index"`
}

type playerSeasonDTO struct {
	PlayerID             int            `json:"playerId"`
	Name                 string         `json:"name"`
	Position             string         `json:"position"`
	Active               bool           `json:"active"`
	SevereSanction       bool           `json:"severeSanction"`
	PointsRaw            float64        `json:"pointsRaw"`
	MatchesPlayed        int            `json:"matchesPlayed"`
	CompletionEquivalent float64        `json:"completionEquivalent"`
	Goals                int            `json:"goals"`
	Assists              int            `json:"assists"`
	OwnGoals             int            `json:"ownGoals"`
	YellowCards          int            `json:"yellowCards"`
	RedCards             int            `json:"redCards"`
	SavedPenalties       int            `json:"savedPenalties"`
	GoalsConceded        int            `json:"goalsConceded"`
	YellowPenalty        float64        `json:"yellowPenalty"`
	RedPenalty           float64        `json:"redPenalty"`
	PointsTotal          float64        `json:"pointsTotal"`
	GoalsAgainstAverage  *float64       `json:"goalsAgainstAverage,omitempty"`
	AdjustedPoints       float64        `json:"adjustedPoints"`
	Regularity           *regularityDTO `json:"regularity,omitempty"`
}

type leaderboardEntryDTO struct {
	Rank     int             `json:"rank"`
	Metric   float64         `json:"metric"`
	Mentions int             `json:"mentions,omitempty"`
	Player   playerSeasonDTO `json:"player"`
}

type matchDayEntryDTO struct {
	Rank        int     `json:"rank"`
	PlayerID    int     `json:"playerId"`
	Name        string  `json:"name"`
	Position    string  `json:"position"`
	Points      float64 `json:"points"`
	Completion  float64 `json:"completion"`
	Matches     int     `json:"matches"`
	Goals       int     `json:"goals"`
	Assists     int     `json:"assists"`
	YellowCards int     `json:"yellowCards"`
	RedCards    int     `json:"redCards"`
}

type matchDayBoardDTO struct {
	Date     string             `json:"date,omitempty"`
	Position string             `json:"position,omitempty"`
	Entries  []matchDayEntryDTO `json:"entries"`
}

type matchSummaryDTO struct {
	MatchID     int    `json:"matchId"`
	Date        string `json:"date"`
	ScoreYellow int    `json:"scoreYellow"`
	ScoreBlue   int    `json:"scoreBlue"`
	TotalGoals  int    `json:"totalGoals"`
	Winner      string `json:"winner"`
}

type teamTotalsDTO struct {
	GoalsYellow          int     `json:"goalsYellow"`
	GoalsBlue            int     `json:"goalsBlue"`
	Matches              int     `json:"matches"`
	AverageGoalsPerMatch float64 `json:"averageGoalsPerMatch"`
}

type playerOfTheDateDTO struct {
	Date  string           `json:"date"`
	Entry matchDayEntryDTO `json:"entry"`
}

type evolutionPointDTO struct {
	Date           string  `json:"date"`
	MatchDayPoints float64 `json:"matchDayPoints"`
	SeasonToDate   float64 `json:"seasonToDate"`
	Rank           int     `json:"rank"`
}

type dashboardDTO struct {
	SnapshotID       string                           `json:"snapshotId"`
	RuleSet          string                           `json:"ruleSet"`
	EmptySeason      bool                             `json:"emptySeason"`
	Problems         int                              `json:"problems"`
	LastMatch        *matchSummaryDTO                 `json:"lastMatch,omitempty"`
	TeamTotals       teamTotalsDTO                    `json:"teamTotals"`
	MatchDay         matchDayBoardDTO                 `json:"matchDay"`
	SeasonLeaders    map[string][]leaderboardEntryDTO `json:"seasonLeaders"`
	TopScorers       []leaderboardEntryDTO            `json:"topScorers"`
	Regularity       []leaderboardEntryDTO            `json:"regularity"`
	PlayersOfTheDate []playerOfTheDateDTO             `json:"playersOfTheDate"`
}

func formatDate(t time.Time) string {
	return t.Format(dateLayout)
}

func validationToDTO(v usecase.Validation) validationDTO {
	return validationDTO{
		SnapshotID:  v.SnapshotID,
		Valid:       v.Valid,
		EmptySeason: v.EmptySeason,
		Problems:    nonNilStrings(v.Problems),
		Notes:       nonNilStrings(v.Notes),
	}
}

func snapshotToDTO(snap dataset.Snapshot) snapshotDTO {
	return snapshotDTO{
		SnapshotID: snap.ID,
		Source:     snap.Source,
		LoadedAt:   snap.LoadedAt.UTC().Format(time.RFC3339),
		Players:    snap.Players.Len(),
		Matches:    snap.Matches.Len(),
		Events:     snap.Events.Len(),
	}
}

func scoredEventsToDTO(events []scoring.ScoredEvent) []scoredEventDTO {
	out := make([]scoredEventDTO, 0, len(events))
	for _, e := range events {
		item := scoredEventDTO{
			MatchID:             e.MatchID,
			PlayerID:            e.PlayerID,
			PlayerName:          e.PlayerName,
			Position:            string(e.Position),
			Team:                string(e.Team),
			KnownPlayer:         e.KnownPlayer,
			KnownMatch:          e.KnownMatch,
			FirstHalfGoals:      e.FirstHalfGoals,
			SecondHalfGoals:     e.SecondHalfGoals,
			Goals:               e.TotalGoals(),
			Assists:             e.Assists,
			OwnGoals:            e.OwnGoals,
			YellowCards:         e.YellowCards,
			RedCards:            e.RedCards,
			SavedPenalties:      e.SavedPenalties,
			PlayedAsForward:     e.PlayedAsForward,
			Completion:          e.Completion,
			ResultPoints:        e.ResultPoints,
			GoalsConcededByTeam: e.GoalsConcededByTeam,
			CleanSheet:          e.CleanSheet,
			CardPenalty:         e.CardPenalty,
			PositionPoints:      e.PositionPoints,
			ParticipationPoints: e.ParticipationPoints,
			Points:              e.Points,
		}
		if e.MatchDate != nil {
			item.Date = formatDate(*e.MatchDate)
		}
		out = append(out, item)
	}
	return out
}

func playerSeasonToDTO(row seasonstats.PlayerSeason) playerSeasonDTO {
	out := playerSeasonDTO{
		PlayerID:             row.PlayerID,
		Name:                 row.Name,
		Position:             string(row.Position),
		Active:               row.Active,
		SevereSanction:       row.SevereSanction,
		PointsRaw:            row.PointsRaw,
		MatchesPlayed:        row.MatchesPlayed,
		CompletionEquivalent: row.CompletionEquivalent,
		Goals:                row.Goals,
		Assists:              row.Assists,
		OwnGoals:             row.OwnGoals,
		YellowCards:          row.YellowCards,
		RedCards:             row.RedCards,
		SavedPenalties:       row.SavedPenalties,
		GoalsConceded:        row.GoalsConceded,
		YellowPenalty:        row.YellowPenalty,
		RedPenalty:           row.RedPenalty,
		PointsTotal:          row.PointsTotal,
		GoalsAgainstAverage:  row.GoalsAgainstAverage,
		AdjustedPoints:       row.AdjustedPoints,
	}
	if row.Regularity != nil {
		out.Regularity = &regularityDTO{
			Availability:      row.Regularity.Availability,
			Role:              row.Regularity.Role,
			Offense:           row.Regularity.Offense,
			Discipline:        row.Regularity.Discipline,
			DisciplinePenalty: row.Regularity.DisciplinePenalty,
			Index:             row.Regularity.Index,
		}
	}
	return out
}

func seasonTableToDTO(table seasonstats.Table) []playerSeasonDTO {
	out := make([]playerSeasonDTO, 0, len(table))
	for _, row := range table {
		out = append(out, playerSeasonToDTO(row))
	}
	return out
}

func leaderboardToDTO(entries []leaderboard.Entry) []leaderboardEntryDTO {
	out := make([]leaderboardEntryDTO, 0, len(entries))
	for _, e := range entries {
		out = append(out, leaderboardEntryDTO{
			Rank:     e.Rank,
			Metric:   e.Metric,
			Mentions: e.Mentions,
			Player:   playerSeasonToDTO(e.Player),
		})
	}
	return out
}

func matchDayEntryToDTO(e leaderboard.MatchDayEntry) matchDayEntryDTO {
	return matchDayEntryDTO{
		Rank:        e.Rank,
		PlayerID:    e.PlayerID,
		Name:        e.Name,
		Position:    string(e.Position),
		Points:      e.Points,
		Completion:  e.Completion,
		Matches:     e.Matches,
		Goals:       e.Goals,
		Assists:     e.Assists,
		YellowCards: e.YellowCards,
		RedCards:    e.RedCards,
	}
}

func matchDayBoardToDTO(board usecase.MatchDayBoard) matchDayBoardDTO {
	out := matchDayBoardDTO{
		Position: string(board.Position),
		Entries:  make([]matchDayEntryDTO, 0, len(board.Entries)),
	}
	if board.HasDate {
		out.Date = formatDate(board.Date)
	}
	for _, e := range board.Entries {
		out.Entries = append(out.Entries, matchDayEntryToDTO(e))
	}
	return out
}

func matchSummaryToDTO(m seasonstats.MatchSummary) matchSummaryDTO {
	return matchSummaryDTO{
		MatchID:     m.MatchID,
		Date:        formatDate(m.Date),
		ScoreYellow: m.ScoreYellow,
		ScoreBlue:   m.ScoreBlue,
		TotalGoals:  m.TotalGoals,
		Winner:      m.Winner,
	}
}

func matchSummariesToDTO(items []seasonstats.MatchSummary) []matchSummaryDTO {
	out := make([]matchSummaryDTO, 0, len(items))
	for _, m := range items {
		out = append(out, matchSummaryToDTO(m))
	}
	return out
}

func teamTotalsToDTO(t seasonstats.TeamTotals) teamTotalsDTO {
	return teamTotalsDTO{
		GoalsYellow:          t.GoalsYellow,
		GoalsBlue:            t.GoalsBlue,
		Matches:              t.Matches,
		AverageGoalsPerMatch: t.AverageGoalsPerMatch,
	}
}

func playersOfTheDateToDTO(items []leaderboard.PlayerOfTheDate) []playerOfTheDateDTO {
	out := make([]playerOfTheDateDTO, 0, len(items))
	for _, item := range items {
		out = append(out, playerOfTheDateDTO{
			Date:  formatDate(item.Date),
			Entry: matchDayEntryToDTO(item.Entry),
		})
	}
	return out
}

func evolutionToDTO(points []usecase.EvolutionPoint) []evolutionPointDTO {
	out := make([]evolutionPointDTO, 0, len(points))
	for _, p := range points {
		out = append(out, evolutionPointDTO{
			Date:           formatDate(p.Date),
			MatchDayPoints: p.MatchDayPoints,
			SeasonToDate:   p.SeasonToDate,
			Rank:           p.Rank,
		})
	}
	return out
}

func dashboardToDTO(d usecase.Dashboard) dashboardDTO {
	out := dashboardDTO{
		SnapshotID:       d.SnapshotID,
		RuleSet:          d.RuleSet,
		EmptySeason:      d.EmptySeason,
		Problems:         d.Problems,
		TeamTotals:       teamTotalsToDTO(d.TeamTotals),
		MatchDay:         matchDayBoardToDTO(d.MatchDay),
		SeasonLeaders:    make(map[string][]leaderboardEntryDTO, len(player.OrderedPositions)),
		TopScorers:       leaderboardToDTO(d.TopScorers),
		Regularity:       leaderboardToDTO(d.Regularity),
		PlayersOfTheDate: playersOfTheDateToDTO(d.PlayersOfTheDate),
	}
	if d.LastMatch != nil {
		last := matchSummaryToDTO(*d.LastMatch)
		out.LastMatch = &last
	}
	for _, pos := range player.OrderedPositions {
		out.SeasonLeaders[string(pos)] = leaderboardToDTO(d.SeasonLeaders[pos])
	}
	return out
}

func nonNilStrings(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}
