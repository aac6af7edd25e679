package spreadsheet

import (
	"context"
	"time"

	crerr "github.com/cockroachdb/errors"
	"github.com/riskibarqy/league-ranking/internal/domain/dataset"
	"github.com/riskibarqy/league-ranking/internal/platform/logging"
	"github.com/xuri/excelize/v2"
)

const XLSXSourceName = "xlsx"

// XLSXSource reads a local workbook with the Jugadores, Partidos and Eventos
// sheets. The file is reopened on every load.
type XLSXSource struct {
	path   string
	logger *logging.Logger
	now    func() time.Time
}

func NewXLSXSource(path string, logger *logging.Logger) *XLSXSource {
	if logger == nil {
		logger = logging.Default()
	}
	return &XLSXSource{path: path, logger: logger, now: time.Now}
}

func (s *XLSXSource) Name() string {
	return XLSXSourceName
}

func (s *XLSXSource) Load(ctx context.Context) (dataset.Snapshot, error) {
	if err := ctx.Err(); err != nil {
		return dataset.Snapshot{}, err
	}

	f, err := excelize.OpenFile(s.path)
	if err != nil {
		return dataset.Snapshot{}, crerr.Wrapf(err, "open workbook %s", s.path)
	}
	defer func() { _ = f.Close() }()

	snap, err := readWorkbook(ctx, f, s.logger)
	if err != nil {
		return dataset.Snapshot{}, err
	}
	snap.Source = XLSXSourceName
	snap.LoadedAt = s.now().UTC()
	return snap, nil
}
