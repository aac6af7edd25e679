package dataset

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/riskibarqy/league-ranking/internal/domain/match"
	"github.com/riskibarqy/league-ranking/internal/domain/player"
)

// Validate checks the structural integrity of the three raw tables and
// returns human-readable problems. It never fails; callers decide whether a
// non-empty report halts computation.
func Validate(snap Snapshot) []string {
	problems := make([]string, 0)

	problems = appendMissingColumns(problems, snap.Players, RequiredPlayerColumns)
	problems = appendMissingColumns(problems, snap.Matches, RequiredMatchColumns)
	problems = appendMissingColumns(problems, snap.Events, RequiredEventColumns)

	if snap.Events.Len() == 0 {
		return problems
	}

	playerIDs := idSet(snap.Players, ColPlayerID)
	matchIDs := idSet(snap.Matches, ColMatchID)

	danglingPlayers := 0
	danglingMatches := 0
	for _, row := range snap.Events.Rows {
		matchID, okMatch := ParseID(row.Get(ColMatchID))
		playerID, okPlayer := ParseID(row.Get(ColPlayerID))
		if !okMatch || !okPlayer {
			continue
		}
		if _, ok := playerIDs[playerID]; !ok {
			danglingPlayers++
		}
		if _, ok := matchIDs[matchID]; !ok {
			danglingMatches++
		}
	}
	if danglingPlayers > 0 {
		problems = append(problems, fmt.Sprintf("%s: %d rows reference %s values missing from %s", TableEvents, danglingPlayers, ColPlayerID, TablePlayers))
	}
	if danglingMatches > 0 {
		problems = append(problems, fmt.Sprintf("%s: %d rows reference %s values missing from %s", TableEvents, danglingMatches, ColMatchID, TableMatches))
	}

	badTeams := 0
	for _, row := range snap.Events.Rows {
		if !match.NormalizeTeam(row.Get(ColTeam)).Valid() {
			badTeams++
		}
	}
	if badTeams > 0 {
		problems = append(problems, fmt.Sprintf("%s: %d rows have %s outside %s/%s", TableEvents, badTeams, ColTeam, match.TeamYellow, match.TeamBlue))
	}

	badPositions := 0
	for _, row := range snap.Players.Rows {
		if !player.NormalizePosition(row.Get(ColPosition)).Valid() {
			badPositions++
		}
	}
	if badPositions > 0 {
		problems = append(problems, fmt.Sprintf("%s: %d rows have %s outside %s", TablePlayers, badPositions, ColPosition, positionList()))
	}

	if dup := CountDuplicateEvents(snap.Events); dup > 0 {
		problems = append(problems, fmt.Sprintf("%s: %d duplicate rows (%s + %s); expected one row per player per match", TableEvents, dup, ColMatchID, ColPlayerID))
	}

	return problems
}

// CountDuplicateEvents counts excess rows sharing the same (match, player)
// pair. Unparseable ids are compared by their trimmed raw text.
func CountDuplicateEvents(events Table) int {
	seen := make(map[string]struct{}, events.Len())
	dup := 0
	for _, row := range events.Rows {
		key := idKey(row.Get(ColMatchID)) + "|" + idKey(row.Get(ColPlayerID))
		if _, exists := seen[key]; exists {
			dup++
			continue
		}
		seen[key] = struct{}{}
	}
	return dup
}

func appendMissingColumns(problems []string, t Table, required []string) []string {
	missing := make([]string, 0)
	for _, col := range required {
		if !t.HasColumn(col) {
			missing = append(missing, col)
		}
	}
	if len(missing) == 0 {
		return problems
	}
	sort.Strings(missing)
	return append(problems, fmt.Sprintf("%s: missing columns: [%s]", t.Name, strings.Join(missing, ", ")))
}

func idSet(t Table, column string) map[int]struct{} {
	out := make(map[int]struct{}, t.Len())
	for _, row := range t.Rows {
		id, ok := ParseID(row.Get(column))
		if !ok {
			continue
		}
		out[id] = struct{}{}
	}
	return out
}

func idKey(raw string) string {
	if id, ok := ParseID(raw); ok {
		return strconv.Itoa(id)
	}
	return strings.TrimSpace(raw)
}

func positionList() string {
	parts := make([]string, 0, len(player.OrderedPositions))
	for _, pos := range player.OrderedPositions {
		parts = append(parts, string(pos))
	}
	return strings.Join(parts, "/")
}
