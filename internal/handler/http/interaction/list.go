package interaction

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"content-hub/internal/common/pagination"
	"content-hub/internal/domain/entity"
	"content-hub/internal/handler/http/auth"
	"content-hub/internal/handler/http/requestid"
	"content-hub/internal/handler/http/respond"
	"content-hub/internal/observability/logging"
	"content-hub/internal/repository"
	intUC "content-hub/internal/usecase/interaction"
)

type listResponse struct {
	Data       []DTO               `json:"data"`
	Pagination pagination.Metadata `json:"pagination"`
	Stats      StatsDTO            `json:"stats"`
}

type ListHandler struct {
	Svc           *intUC.Service
	PaginationCfg pagination.Config
	Logger        *slog.Logger
}

// parseFilters reads the optional interactionType and articleId query
// parameters. Malformed values are rejected rather than ignored.
func parseFilters(r *http.Request) (repository.InteractionFilters, error) {
	var filters repository.InteractionFilters

	if raw := r.URL.Query().Get("interactionType"); raw != "" {
		kind, err := entity.ParseKind(raw)
		if err != nil {
			return filters, err
		}
		filters.Kind = &kind
	}

	if raw := r.URL.Query().Get("articleId"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || id <= 0 {
			return filters, errors.New("articleId must be a positive integer")
		}
		filters.ArticleID = &id
	}

	return filters, nil
}

func (h ListHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	startTime := time.Now()

	reqID := requestid.FromContext(ctx)
	logger := logging.WithRequestID(ctx, h.Logger)

	userID, ok := auth.UserID(ctx)
	if !ok {
		respond.SafeError(w, http.StatusUnauthorized, errors.New("unauthorized"))
		return
	}

	params, err := pagination.ParseQueryParams(r, h.PaginationCfg)
	if err != nil {
		logger.Warn("Invalid pagination parameters",
			"error", err.Error(),
			"request_id", reqID)
		pagination.RecordError("validation")
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}
	resolved := params.Resolve(h.PaginationCfg)

	filters, err := parseFilters(r)
	if err != nil {
		logger.Warn("Invalid interaction filters",
			"error", err.Error(),
			"request_id", reqID)
		pagination.RecordError("validation")
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	result, err := h.Svc.List(ctx, userID, filters, resolved)
	if err != nil {
		logger.Error("Failed to list interactions",
			"error", err.Error(),
			"page", resolved.Page,
			"limit", resolved.Limit,
			"request_id", reqID)
		pagination.RecordError("database")
		respond.SafeError(w, http.StatusInternalServerError, err)
		return
	}

	dtos := make([]DTO, 0, len(result.Data))
	for _, record := range result.Data {
		dtos = append(dtos, toDTO(record.Interaction, record.Article))
	}

	response := listResponse{
		Data:       dtos,
		Pagination: result.Pagination,
		Stats: StatsDTO{
			TotalViews:  result.Stats.Views,
			TotalLikes:  result.Stats.Likes,
			TotalShares: result.Stats.Shares,
		},
	}

	duration := time.Since(startTime)
	pagination.RecordRequest(http.StatusOK, resolved.Page)
	pagination.RecordDuration("handler", duration.Seconds())

	logger.Info("Paginated response",
		"page", resolved.Page,
		"limit", resolved.Limit,
		"returned_count", len(dtos),
		"duration_ms", duration.Milliseconds(),
		"status", http.StatusOK,
		"request_id", reqID)

	respond.JSON(w, http.StatusOK, response)
}
