package memory

import (
	"context"
	"sync"
	"time"

	"github.com/riskibarqy/league-ranking/internal/domain/dataset"
)

const SourceName = "memory"

// Source serves a fixed in-memory snapshot. Replace swaps the tables, e.g.
// to simulate fresher source data.
type Source struct {
	mu   sync.RWMutex
	snap dataset.Snapshot
	now  func() time.Time
}

func NewSource(snap dataset.Snapshot) *Source {
	return &Source{snap: snap, now: time.Now}
}

func (s *Source) Name() string {
	return SourceName
}

func (s *Source) Load(_ context.Context) (dataset.Snapshot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := dataset.Snapshot{
		Source:   SourceName,
		LoadedAt: s.now().UTC(),
		Players:  cloneTable(s.snap.Players),
		Matches:  cloneTable(s.snap.Matches),
		Events:   cloneTable(s.snap.Events),
	}
	return out, nil
}

func (s *Source) Replace(snap dataset.Snapshot) {
	s.mu.Lock()
	s.snap = snap
	s.mu.Unlock()
}

func cloneTable(t dataset.Table) dataset.Table {
	out := dataset.Table{
		Name:    t.Name,
		Columns: append([]string{}, t.Columns...),
		Rows:    make([]dataset.Row, 0, len(t.Rows)),
	}
	for _, row := range t.Rows {
		copied := make(dataset.Row, len(row))
		for k, v := range row {
			copied[k] = v
		}
		out.Rows = append(out.Rows, copied)
	}
	return out
}
