package dataset

func playersTable(records ...[]string) Table {
	return NewTable(TablePlayers, RequiredPlayerColumns, records)
}

func matchesTable(records ...[]string) Table {
	return NewTable(TableMatches, RequiredMatchColumns, records)
}

func eventsTable(records ...[]string) Table {
	return NewTable(TableEvents, RequiredEventColumns, records)
}

// eventRecord follows RequiredEventColumns order.
func eventRecord(matchID, playerID, team string) []string {
	return []string{matchID, playerID, team, "0", "0", "0", "0", "0", "0", "0", "0", "0", "0"}
}

func validSnapshot() Snapshot {
	return Snapshot{
		Players: playersTable(
			[]string{"1", "Ana", "Arquero", "1", "0"},
			[]string{"2", "Beto", " defensa ", "1", "0"},
		),
		Matches: matchesTable(
			[]string{"10", "2026-03-01", "g", "p", "2", "0"},
		),
		Events: eventsTable(
			eventRecord("10", "1", "amarillo"),
			eventRecord("10", "2", " Azul"),
		),
	}
}
