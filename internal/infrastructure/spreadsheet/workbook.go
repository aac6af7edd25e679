package spreadsheet

import (
	"context"
	"strings"

	crerr "github.com/cockroachdb/errors"
	"github.com/riskibarqy/league-ranking/internal/domain/dataset"
	"github.com/riskibarqy/league-ranking/internal/platform/logging"
	"github.com/xuri/excelize/v2"
)

var sheetNames = []string{dataset.TablePlayers, dataset.TableMatches, dataset.TableEvents}

// readWorkbook reads the three league sheets. A missing sheet yields an empty
// table without columns so validation reports it instead of failing the load.
func readWorkbook(ctx context.Context, f *excelize.File, logger *logging.Logger) (dataset.Snapshot, error) {
	tables := make(map[string]dataset.Table, len(sheetNames))
	for _, name := range sheetNames {
		sheet, ok := findSheet(f, name)
		if !ok {
			logger.WarnContext(ctx, "workbook sheet missing", "sheet", name)
			tables[name] = dataset.Table{Name: name}
			continue
		}

		rows, err := f.GetRows(sheet, excelize.Options{RawCellValue: true})
		if err != nil {
			return dataset.Snapshot{}, crerr.Wrapf(err, "read sheet %s", name)
		}
		tables[name] = tableFromRecords(name, rows)
	}

	return dataset.Snapshot{
		Players: tables[dataset.TablePlayers],
		Matches: tables[dataset.TableMatches],
		Events:  tables[dataset.TableEvents],
	}, nil
}

// findSheet matches sheet names case-insensitively.
func findSheet(f *excelize.File, name string) (string, bool) {
	for _, sheet := range f.GetSheetList() {
		if strings.EqualFold(strings.TrimSpace(sheet), name) {
			return sheet, true
		}
	}
	return "", false
}

func tableFromRecords(name string, records [][]string) dataset.Table {
	if len(records) == 0 {
		return dataset.Table{Name: name}
	}
	header := make([]string, len(records[0]))
	for i, col := range records[0] {
		header[i] = strings.TrimPrefix(col, "\ufeff")
	}
	return dataset.NewTable(name, header, records[1:])
}
