package dataset

import "context"

// Source describes the ingestion collaborator that reads the three tables.
type Source interface {
	Name() string
	Load(ctx context.Context) (Snapshot, error)
}
