package article

import (
	"errors"
	"net/http"

	"content-hub/internal/handler/http/auth"
	"content-hub/internal/handler/http/pathutil"
	"content-hub/internal/handler/http/respond"
	artUC "content-hub/internal/usecase/article"
)

type DeleteHandler struct{ Svc *artUC.Service }

func (h DeleteHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserID(r.Context())
	if !ok {
		respond.SafeError(w, http.StatusUnauthorized, errors.New("unauthorized"))
		return
	}

	id, err := pathutil.ExtractID(r.URL.Path, "/articles/")
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	if err := h.Svc.Delete(r.Context(), id, userID); err != nil {
		code := http.StatusInternalServerError
		switch {
		case errors.Is(err, artUC.ErrInvalidArticleID):
			code = http.StatusBadRequest
		case errors.Is(err, artUC.ErrArticleNotFound):
			code = http.StatusNotFound
		case errors.Is(err, artUC.ErrNotOwner):
			code = http.StatusForbidden
		}
		respond.SafeError(w, code, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
