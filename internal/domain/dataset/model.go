package dataset

import (
	"strings"
	"time"
)

const (
	TablePlayers = "Jugadores"
	TableMatches = "Partidos"
	TableEvents  = "Eventos"
)

// Row is one source row keyed by column name. Values are raw cell text.
type Row map[string]string

// Get returns the trimmed raw value of column, or "" when the column is absent.
func (r Row) Get(column string) string {
	if r == nil {
		return ""
	}
	return strings.TrimSpace(r[column])
}

// Table is one in-memory source table with named columns.
type Table struct {
	Name    string
	Columns []string
	Rows    []Row
}

// NewTable builds a table from a header record and data records. Header cells
// are trimmed; short records are padded with empty values.
func NewTable(name string, header []string, records [][]string) Table {
	columns := make([]string, 0, len(header))
	for _, col := range header {
		columns = append(columns, strings.TrimSpace(col))
	}

	rows := make([]Row, 0, len(records))
	for _, record := range records {
		if isBlankRecord(record) {
			continue
		}
		row := make(Row, len(columns))
		for i, col := range columns {
			if col == "" {
				continue
			}
			if i < len(record) {
				row[col] = record[i]
			} else {
				row[col] = ""
			}
		}
		rows = append(rows, row)
	}

	return Table{Name: name, Columns: columns, Rows: rows}
}

func isBlankRecord(record []string) bool {
	for _, cell := range record {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}

func (t Table) HasColumn(name string) bool {
	for _, col := range t.Columns {
		if col == name {
			return true
		}
	}
	return false
}

func (t Table) Len() int {
	return len(t.Rows)
}

// Snapshot is an atomic read of the three source tables. It is never mutated
// after load; every computation pass works on one snapshot.
type Snapshot struct {
	ID       string
	Source   string
	LoadedAt time.Time
	Players  Table
	Matches  Table
	Events   Table
}

// IsEmptySeason reports whether no match events have been recorded yet.
func (s Snapshot) IsEmptySeason() bool {
	return s.Events.Len() == 0
}
