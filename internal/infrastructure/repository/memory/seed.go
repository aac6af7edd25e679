package memory

import "github.com/riskibarqy/league-ranking/internal/domain/dataset"

var seedPlayerColumns = []string{
	dataset.ColPlayerID, dataset.ColPlayerName, dataset.ColPosition, dataset.ColActive, dataset.ColSevereSanction,
}

var seedMatchColumns = []string{
	dataset.ColMatchID, dataset.ColDate, dataset.ColResultYellow, dataset.ColResultBlue,
	dataset.ColScoreYellow, dataset.ColScoreBlue, dataset.ColVenue,
}

var seedEventColumns = []string{
	dataset.ColMatchID, dataset.ColPlayerID, dataset.ColTeam, dataset.ColGoalsConceded, dataset.ColPlayedAsForward,
	dataset.ColFirstHalfGoals, dataset.ColSecondHalfGoals, dataset.ColTotalGoals, dataset.ColOwnGoals,
	dataset.ColAssists, dataset.ColYellowCards, dataset.ColRedCards, dataset.ColSavedPenalties, dataset.ColCompletion,
}

// SeedSnapshot is a small two-date season used for local runs and tests.
func SeedSnapshot() dataset.Snapshot {
	return dataset.Snapshot{
		Players: dataset.NewTable(dataset.TablePlayers, seedPlayerColumns, [][]string{
			{"1", "Matías Rojas", "arquero", "1", "0"},
			{"2", "Diego Fuentes", "arquero", "1", "0"},
			{"3", "Tomás Vera", "defensa", "1", "0"},
			{"4", "Ignacio Soto", "defensa", "1", "0"},
			{"5", "Felipe Araya", "mediocampista", "1", "0"},
			{"6", "Benjamín Pino", "mediocampista", "1", "1"},
			{"7", "Cristóbal Muñoz", "delantero", "1", "0"},
			{"8", "Joaquín Lagos", "delantero", "1", "0"},
			{"9", "Sebastián Reyes", "delantero", "0", "0"},
		}),
		Matches: dataset.NewTable(dataset.TableMatches, seedMatchColumns, [][]string{
			{"1", "2026-03-07", "g", "p", "3", "1", "Cancha 1"},
			{"2", "2026-03-14", "e", "e", "2", "2", "Cancha 2"},
			{"3", "2026-03-14", "p", "g", "0", "1", "Cancha 2"},
		}),
		Events: dataset.NewTable(dataset.TableEvents, seedEventColumns, [][]string{
			// match 1: amarillo 3 - 1 azul
			{"1", "1", "amarillo", "1", "0", "0", "0", "0", "0", "0", "0", "0", "1", "1"},
			{"1", "2", "azul", "3", "0", "0", "0", "0", "0", "0", "0", "0", "0", "1"},
			{"1", "3", "amarillo", "0", "1", "1", "2", "3", "0", "0", "0", "0", "0", "1"},
			{"1", "4", "azul", "0", "0", "0", "0", "0", "1", "0", "1", "0", "0", "1"},
			{"1", "5", "amarillo", "0", "0", "0", "0", "0", "0", "2", "0", "0", "0", "0,5"},
			{"1", "7", "azul", "0", "0", "1", "0", "1", "0", "0", "0", "0", "0", "1"},
			{"1", "9", "amarillo", "0", "0", "0", "0", "0", "0", "1", "0", "0", "0", "1"},
			// match 2: amarillo 2 - 2 azul
			{"2", "1", "azul", "2", "0", "0", "0", "0", "0", "0", "0", "0", "0", "1"},
			{"2", "2", "amarillo", "2", "0", "0", "0", "0", "0", "0", "0", "0", "0", "1"},
			{"2", "5", "amarillo", "0", "0", "1", "1", "2", "0", "0", "1", "0", "0", "1"},
			{"2", "6", "azul", "0", "0", "0", "2", "2", "0", "1", "0", "0", "0", "1"},
			{"2", "8", "azul", "0", "0", "0", "0", "0", "0", "1", "0", "1", "0", "1"},
			// match 3: amarillo 0 - 1 azul
			{"3", "3", "azul", "0", "0", "0", "0", "0", "0", "0", "0", "0", "0", "1"},
			{"3", "7", "azul", "0", "0", "1", "0", "1", "0", "0", "0", "0", "0", "0,5"},
			{"3", "8", "amarillo", "0", "0", "0", "0", "0", "1", "0", "1", "0", "0", "1"},
		}),
	}
}
