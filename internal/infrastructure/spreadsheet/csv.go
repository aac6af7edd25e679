package spreadsheet

import (
	"bufio"
	"context"
	"encoding/csv"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	crerr "github.com/cockroachdb/errors"
	"github.com/riskibarqy/league-ranking/internal/domain/dataset"
	"github.com/riskibarqy/league-ranking/internal/platform/logging"
)

const CSVSourceName = "csv"

var csvFiles = map[string]string{
	dataset.TablePlayers: "jugadores.csv",
	dataset.TableMatches: "partidos.csv",
	dataset.TableEvents:  "eventos.csv",
}

// CSVSource reads one CSV export per table from a directory. Comma and
// semicolon separated files are both accepted.
type CSVSource struct {
	dir    string
	logger *logging.Logger
	now    func() time.Time
}

func NewCSVSource(dir string, logger *logging.Logger) *CSVSource {
	if logger == nil {
		logger = logging.Default()
	}
	return &CSVSource{dir: dir, logger: logger, now: time.Now}
}

func (s *CSVSource) Name() string {
	return CSVSourceName
}

func (s *CSVSource) Load(ctx context.Context) (dataset.Snapshot, error) {
	tables := make(map[string]dataset.Table, len(csvFiles))
	for _, name := range sheetNames {
		if err := ctx.Err(); err != nil {
			return dataset.Snapshot{}, err
		}

		path := filepath.Join(s.dir, csvFiles[name])
		records, err := readCSV(path)
		if errors.Is(err, fs.ErrNotExist) {
			s.logger.WarnContext(ctx, "csv table missing", "table", name, "path", path)
			tables[name] = dataset.Table{Name: name}
			continue
		}
		if err != nil {
			return dataset.Snapshot{}, crerr.Wrapf(err, "read %s", path)
		}
		tables[name] = tableFromRecords(name, records)
	}

	return dataset.Snapshot{
		Source:   CSVSourceName,
		LoadedAt: s.now().UTC(),
		Players:  tables[dataset.TablePlayers],
		Matches:  tables[dataset.TableMatches],
		Events:   tables[dataset.TableEvents],
	}, nil
}

func readCSV(path string) ([][]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = file.Close() }()

	buffered := bufio.NewReader(file)
	headerLine, err := buffered.Peek(peekSize(buffered))
	if err != nil && len(headerLine) == 0 {
		return nil, nil
	}

	reader := csv.NewReader(buffered)
	reader.Comma = detectDelimiter(string(headerLine))
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true
	reader.TrimLeadingSpace = true

	return reader.ReadAll()
}

func peekSize(r *bufio.Reader) int {
	if r.Size() < 1024 {
		return r.Size()
	}
	return 1024
}

// detectDelimiter picks ';' when the header line uses it more than ','.
func detectDelimiter(sample string) rune {
	if idx := strings.IndexByte(sample, '\n'); idx >= 0 {
		sample = sample[:idx]
	}
	if strings.Count(sample, ";") > strings.Count(sample, ",") {
		return ';'
	}
	return ','
}
