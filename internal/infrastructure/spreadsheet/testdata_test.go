package spreadsheet

import (
	"testing"

	"github.com/riskibarqy/league-ranking/internal/domain/dataset"
	"github.com/xuri/excelize/v2"
)

// workbookBytes renders tables into an xlsx file, one sheet per table. Cells
// holding a float64 in overrides are written as numbers.
func workbookBytes(t *testing.T, tables []dataset.Table, overrides map[string]float64) []byte {
	t.Helper()

	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	for i, tbl := range tables {
		if i == 0 {
			if err := f.SetSheetName("Sheet1", tbl.Name); err != nil {
				t.Fatalf("rename sheet: %v", err)
			}
		} else if _, err := f.NewSheet(tbl.Name); err != nil {
			t.Fatalf("new sheet: %v", err)
		}

		header := make([]any, 0, len(tbl.Columns))
		for _, col := range tbl.Columns {
			header = append(header, col)
		}
		if err := f.SetSheetRow(tbl.Name, "A1", &header); err != nil {
			t.Fatalf("write header: %v", err)
		}

		for r, row := range tbl.Rows {
			cells := make([]any, 0, len(tbl.Columns))
			for _, col := range tbl.Columns {
				if value, ok := overrides[tbl.Name+"."+col+"."+row.Get(tbl.Columns[0])]; ok {
					cells = append(cells, value)
					continue
				}
				cells = append(cells, row[col])
			}
			cell, err := excelize.CoordinatesToCellName(1, r+2)
			if err != nil {
				t.Fatalf("cell name: %v", err)
			}
			if err := f.SetSheetRow(tbl.Name, cell, &cells); err != nil {
				t.Fatalf("write row: %v", err)
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		t.Fatalf("write workbook: %v", err)
	}
	return buf.Bytes()
}

func smallSnapshot() dataset.Snapshot {
	return dataset.Snapshot{
		Players: dataset.NewTable(dataset.TablePlayers,
			[]string{dataset.ColPlayerID, dataset.ColPlayerName, dataset.ColPosition, dataset.ColActive, dataset.ColSevereSanction},
			[][]string{
				{"1", "Matías Rojas", "arquero", "1", "0"},
				{"2", "Tomás Vera", "defensa", "si", "0"},
			}),
		Matches: dataset.NewTable(dataset.TableMatches,
			[]string{dataset.ColMatchID, dataset.ColDate, dataset.ColResultYellow, dataset.ColResultBlue, dataset.ColScoreYellow, dataset.ColScoreBlue},
			[][]string{
				{"1", "2026-03-07", "g", "p", "1", "0"},
			}),
		Events: dataset.NewTable(dataset.TableEvents,
			[]string{
				dataset.ColMatchID, dataset.ColPlayerID, dataset.ColTeam, dataset.ColGoalsConceded, dataset.ColPlayedAsForward,
				dataset.ColFirstHalfGoals, dataset.ColSecondHalfGoals, dataset.ColTotalGoals, dataset.ColOwnGoals,
				dataset.ColAssists, dataset.ColYellowCards, dataset.ColRedCards, dataset.ColSavedPenalties, dataset.ColCompletion,
			},
			[][]string{
				{"1", "1", "amarillo", "0", "0", "0", "0", "0", "0", "0", "0", "0", "1", "1"},
				{"1", "2", "amarillo", "0", "0", "1", "0", "1", "0", "0", "0", "0", "0", "0,5"},
			}),
	}
}
