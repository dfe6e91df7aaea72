package interaction

import (
	"log/slog"
	"net/http"

	"content-hub/internal/common/pagination"
	intUC "content-hub/internal/usecase/interaction"
)

// Register mounts the interaction routes. All routes require an
// authenticated user, so the whole group goes through authz.
func Register(mux *http.ServeMux, svc *intUC.Service, paginationCfg pagination.Config, logger *slog.Logger, authz func(http.Handler) http.Handler) {
	mux.Handle("POST   /interactions", authz(CreateHandler{Svc: svc}))
	mux.Handle("GET    /interactions", authz(ListHandler{
		Svc:           svc,
		PaginationCfg: paginationCfg,
		Logger:        logger,
	}))
}
