package spreadsheet

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/riskibarqy/league-ranking/internal/domain/dataset"
	"github.com/riskibarqy/league-ranking/internal/platform/logging"
)

func TestXLSXSourceLoad(t *testing.T) {
	t.Parallel()

	snap := smallSnapshot()
	raw := workbookBytes(t, []dataset.Table{snap.Players, snap.Matches, snap.Events}, map[string]float64{
		dataset.TableMatches + "." + dataset.ColDate + ".1": 46088,
	})
	path := filepath.Join(t.TempDir(), "liga.xlsx")
	if err := os.WriteFile(path, raw, 0o600); err != nil {
		t.Fatalf("write workbook: %v", err)
	}

	src := NewXLSXSource(path, logging.NewNop())
	got, err := src.Load(context.Background())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got.Source != XLSXSourceName {
		t.Fatalf("unexpected source: %q", got.Source)
	}
	if got.Players.Len() != 2 || got.Matches.Len() != 1 || got.Events.Len() != 2 {
		t.Fatalf("unexpected row counts: players=%d matches=%d events=%d",
			got.Players.Len(), got.Matches.Len(), got.Events.Len())
	}
	if problems := dataset.Validate(got); len(problems) != 0 {
		t.Fatalf("expected no problems, got %v", problems)
	}

	matches, _ := dataset.NormalizeMatches(got.Matches)
	if len(matches) != 1 || matches[0].Date == nil || matches[0].Date.Format("2006-01-02") != "2026-03-07" {
		t.Fatalf("expected serial date to parse as 2026-03-07, got %+v", matches)
	}

	events, _ := dataset.NormalizeEvents(got.Events)
	if events[1].Completion != 0.5 {
		t.Fatalf("expected locale completion 0.5, got %v", events[1].Completion)
	}
}

func TestXLSXSourceMissingSheet(t *testing.T) {
	t.Parallel()

	snap := smallSnapshot()
	raw := workbookBytes(t, []dataset.Table{snap.Players, snap.Events}, nil)
	path := filepath.Join(t.TempDir(), "liga.xlsx")
	if err := os.WriteFile(path, raw, 0o600); err != nil {
		t.Fatalf("write workbook: %v", err)
	}

	got, err := NewXLSXSource(path, nil).Load(context.Background())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(got.Matches.Columns) != 0 || got.Matches.Name != dataset.TableMatches {
		t.Fatalf("expected empty matches table, got %+v", got.Matches)
	}

	problems := dataset.Validate(got)
	if len(problems) == 0 {
		t.Fatalf("expected missing columns to be reported")
	}
}

func TestXLSXSourceMissingFile(t *testing.T) {
	t.Parallel()

	_, err := NewXLSXSource(filepath.Join(t.TempDir(), "nope.xlsx"), nil).Load(context.Background())
	if err == nil {
		t.Fatalf("expected error for missing workbook")
	}
}
