package dataset

import (
	"math"
	"strconv"
	"strings"
	"time"
)

// Spreadsheet serial dates count days from 1899-12-30.
var spreadsheetEpoch = time.Date(1899, time.December, 30, 0, 0, 0, 0, time.UTC)

var dateLayouts = []string{
	"2006-01-02",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	time.RFC3339,
	time.RFC3339Nano,
	"02/01/2006",
	"2/1/2006",
	"02-01-2006",
	"2006/01/02",
}

// ParseNumber parses a possibly locale-formatted numeric string. A comma is
// treated as the decimal separator.
func ParseNumber(raw string) (float64, bool) {
	value := strings.TrimSpace(strings.ReplaceAll(raw, ",", "."))
	if value == "" {
		return 0, false
	}
	parsed, err := strconv.ParseFloat(value, 64)
	if err != nil || math.IsNaN(parsed) || math.IsInf(parsed, 0) {
		return 0, false
	}
	return parsed, true
}

// ParseCount coerces a count field to a whole number, 0 when unparseable.
func ParseCount(raw string) int {
	value, ok := ParseNumber(raw)
	if !ok {
		return 0
	}
	return int(value)
}

// ParseWeight parses the match completion weight, 1.0 when unparseable.
func ParseWeight(raw string) float64 {
	value, ok := ParseNumber(raw)
	if !ok {
		return 1.0
	}
	return value
}

// ParseID parses an integer identifier. Fractional ids are truncated.
func ParseID(raw string) (int, bool) {
	value, ok := ParseNumber(raw)
	if !ok {
		return 0, false
	}
	return int(value), true
}

// ParseFlag parses a 0/1 style flag. Numeric values count as set only when
// they equal 1; a few boolean words are also accepted.
func ParseFlag(raw string) bool {
	if value, ok := ParseNumber(raw); ok {
		return int(value) == 1
	}
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "true", "si", "sí", "yes", "y", "x", "verdadero":
		return true
	default:
		return false
	}
}

// ParseScore parses a final score, nil when missing or unparseable.
func ParseScore(raw string) *int {
	value, ok := ParseNumber(raw)
	if !ok {
		return nil
	}
	score := int(value)
	return &score
}

// ParseDate parses a calendar date. Unparseable values return nil and are
// excluded from date-based views.
func ParseDate(raw string) *time.Time {
	value := strings.TrimSpace(raw)
	if value == "" {
		return nil
	}

	for _, layout := range dateLayouts {
		parsed, err := time.Parse(layout, value)
		if err == nil {
			day := truncateDay(parsed)
			return &day
		}
	}

	if serial, ok := ParseNumber(value); ok && serial >= 1 && serial < 2958466 {
		day := spreadsheetEpoch.AddDate(0, 0, int(serial))
		return &day
	}

	return nil
}

func truncateDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
