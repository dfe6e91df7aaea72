package article

import (
	"log/slog"
	"net/http"
	"time"

	"content-hub/internal/common/pagination"
	"content-hub/internal/handler/http/requestid"
	"content-hub/internal/handler/http/respond"
	"content-hub/internal/observability/logging"
	artUC "content-hub/internal/usecase/article"
)

type ListHandler struct {
	Svc           *artUC.Service
	PaginationCfg pagination.Config
	Logger        *slog.Logger
}

func (h ListHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	startTime := time.Now()

	reqID := requestid.FromContext(ctx)
	logger := logging.WithRequestID(ctx, h.Logger)

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

	result, err := h.Svc.ListPaginated(ctx, resolved)
	if err != nil {
		logger.Error("Failed to list articles",
			"error", err.Error(),
			"page", resolved.Page,
			"limit", resolved.Limit,
			"request_id", reqID)
		pagination.RecordError("database")
		respond.SafeError(w, http.StatusInternalServerError, err)
		return
	}

	dtos := make([]DTO, 0, len(result.Data))
	for _, art := range result.Data {
		dtos = append(dtos, toDTO(art))
	}

	response := pagination.NewResponse(dtos, result.Pagination)

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
