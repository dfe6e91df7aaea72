package article

import (
	"log/slog"
	"net/http"

	"content-hub/internal/common/pagination"
	artUC "content-hub/internal/usecase/article"
)

// Register registers all article-related HTTP handlers with the given mux.
// All routes require authentication; authz is applied per route so the mux
// can also carry public endpoints.
func Register(mux *http.ServeMux, svc *artUC.Service, paginationCfg pagination.Config, logger *slog.Logger, authz func(http.Handler) http.Handler) {
	mux.Handle("GET    /articles", authz(ListHandler{
		Svc:           svc,
		PaginationCfg: paginationCfg,
		Logger:        logger,
	}))
	mux.Handle("GET    /articles/", authz(GetHandler{svc}))

	mux.Handle("POST   /articles", authz(CreateHandler{svc}))
	mux.Handle("PUT    /articles/", authz(UpdateHandler{svc}))
	mux.Handle("DELETE /articles/", authz(DeleteHandler{svc}))
}
