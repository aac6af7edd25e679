package spreadsheet

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"time"

	crerr "github.com/cockroachdb/errors"
	"github.com/riskibarqy/league-ranking/internal/domain/dataset"
	"github.com/riskibarqy/league-ranking/internal/platform/logging"
	"github.com/riskibarqy/league-ranking/internal/platform/resilience"
	"github.com/riskibarqy/league-ranking/internal/usecase"
	"github.com/valyala/fasthttp"
	"github.com/xuri/excelize/v2"
)

const (
	RemoteSourceName = "remote"

	defaultRemoteTimeout = 20 * time.Second
	maxWorkbookSize      = 32 << 20
	maxRedirects         = 5
)

var errRemoteTransient = crerr.New("remote workbook transient failure")

type RemoteConfig struct {
	Client         *fasthttp.Client
	URL            string
	Timeout        time.Duration
	Logger         *logging.Logger
	CircuitBreaker resilience.CircuitBreakerConfig
}

// RemoteSource downloads a published workbook (e.g. a spreadsheet export
// link) and reads it like a local xlsx file.
type RemoteSource struct {
	client  *fasthttp.Client
	url     string
	logger  *logging.Logger
	breaker *resilience.CircuitBreaker
	flight  resilience.Group[[]byte]
	now     func() time.Time
}

func NewRemoteSource(cfg RemoteConfig) *RemoteSource {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultRemoteTimeout
	}

	client := cfg.Client
	if client == nil {
		client = &fasthttp.Client{
			Name:                "league-ranking",
			ReadTimeout:         timeout,
			WriteTimeout:        timeout,
			MaxResponseBodySize: maxWorkbookSize,
		}
	}

	return &RemoteSource{
		client:  client,
		url:     strings.TrimSpace(cfg.URL),
		logger:  logger,
		breaker: resilience.NewCircuitBreaker(cfg.CircuitBreaker),
		now:     time.Now,
	}
}

func (s *RemoteSource) Name() string {
	return RemoteSourceName
}

func (s *RemoteSource) Load(ctx context.Context) (dataset.Snapshot, error) {
	raw, err := s.download(ctx)
	if err != nil {
		return dataset.Snapshot{}, err
	}

	f, err := excelize.OpenReader(bytes.NewReader(raw))
	if err != nil {
		return dataset.Snapshot{}, crerr.Wrap(err, "decode remote workbook")
	}
	defer func() { _ = f.Close() }()

	snap, err := readWorkbook(ctx, f, s.logger)
	if err != nil {
		return dataset.Snapshot{}, err
	}
	snap.Source = RemoteSourceName
	snap.LoadedAt = s.now().UTC()
	return snap, nil
}

func (s *RemoteSource) download(ctx context.Context) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := s.breaker.Allow(); err != nil {
		s.logger.WarnContext(ctx, "remote workbook circuit breaker rejected request", "state", s.breaker.State())
		return nil, crerr.Wrap(usecase.ErrDependencyUnavailable, "remote workbook is temporarily unavailable")
	}

	raw, err, _ := s.flight.Do(s.url, func() ([]byte, error) {
		raw, reqErr := s.executeRequest()
		s.breaker.Record(reqErr != nil && crerr.Is(reqErr, errRemoteTransient))
		return raw, reqErr
	})
	if err != nil {
		s.logger.WarnContext(ctx, "remote workbook download failed", "error", err)
		if crerr.Is(err, errRemoteTransient) {
			return nil, fmt.Errorf("download remote workbook: %w: %w", usecase.ErrDependencyUnavailable, err)
		}
		return nil, crerr.Wrap(err, "download remote workbook")
	}
	return raw, nil
}

func (s *RemoteSource) executeRequest() ([]byte, error) {
	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseRequest(req)
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI(s.url)
	req.Header.SetMethod(fasthttp.MethodGet)

	if err := s.client.DoRedirects(req, resp, maxRedirects); err != nil {
		return nil, crerr.Mark(crerr.Wrap(err, "send request"), errRemoteTransient)
	}

	status := resp.StatusCode()
	if status >= 500 || status == fasthttp.StatusTooManyRequests {
		return nil, crerr.Mark(crerr.Newf("remote status=%d", status), errRemoteTransient)
	}
	if status < 200 || status >= 300 {
		return nil, crerr.Newf("remote status=%d", status)
	}

	return append([]byte(nil), resp.Body()...), nil
}
