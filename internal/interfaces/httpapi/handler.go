package httpapi

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/riskibarqy/league-ranking/internal/domain/dataset"
	"github.com/riskibarqy/league-ranking/internal/platform/logging"
	"github.com/riskibarqy/league-ranking/internal/usecase"
)

const (
	formatJSON = "json"
	formatCSV  = "csv"
)

type Handler struct {
	rankingService  *usecase.RankingService
	snapshotService *usecase.SnapshotService
	logger          *logging.Logger
	validator       *validator.Validate
}

func NewHandler(
	rankingService *usecase.RankingService,
	snapshotService *usecase.SnapshotService,
	logger *logging.Logger,
) *Handler {
	if logger == nil {
		logger = logging.Default()
	}

	return &Handler{
		rankingService:  rankingService,
		snapshotService: snapshotService,
		logger:          logger,
		validator:       validator.New(),
	}
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Healthz")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) validateRequest(ctx context.Context, payload any) error {
	ctx, span := startSpan(ctx, "httpapi.Handler.validateRequest")
	defer span.End()

	if err := h.validator.StructCtx(ctx, payload); err != nil {
		return fmt.Errorf("%w: validation failed: %v", usecase.ErrInvalidInput, err)
	}

	return nil
}

type leaderboardQuery struct {
	Format   string `validate:"omitempty,oneof=json csv"`
	Position string `validate:"omitempty,max=32"`
	Date     string `validate:"omitempty,max=32"`
}

type specialtyQuery struct {
	Kind   string `validate:"required,max=32"`
	Format string `validate:"omitempty,oneof=json csv"`
}

type playerEvolutionRequest struct {
	PlayerID int `validate:"required,gt=0"`
}

func readLeaderboardQuery(r *http.Request, dateParam string) leaderboardQuery {
	query := r.URL.Query()
	q := leaderboardQuery{
		Format:   strings.ToLower(strings.TrimSpace(query.Get("format"))),
		Position: strings.TrimSpace(query.Get("position")),
	}
	if dateParam != "" {
		q.Date = strings.TrimSpace(query.Get(dateParam))
	}
	return q
}

// parseDateParam accepts every date layout the source tables accept.
func parseDateParam(name, raw string) (*time.Time, error) {
	if raw == "" {
		return nil, nil
	}
	parsed := dataset.ParseDate(raw)
	if parsed == nil {
		return nil, fmt.Errorf("%w: %s must be a date, got %q", usecase.ErrInvalidInput, name, raw)
	}
	return parsed, nil
}

func parsePlayerID(raw string) (int, error) {
	value, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, fmt.Errorf("%w: player id must be an integer, got %q", usecase.ErrInvalidInput, raw)
	}
	return value, nil
}
