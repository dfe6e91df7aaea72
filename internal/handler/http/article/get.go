package article

import (
	"errors"
	"net/http"

	"content-hub/internal/handler/http/pathutil"
	"content-hub/internal/handler/http/respond"
	artUC "content-hub/internal/usecase/article"
)

type GetHandler struct{ Svc *artUC.Service }

func (h GetHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := pathutil.ExtractID(r.URL.Path, "/articles/")
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	art, err := h.Svc.Get(r.Context(), id)
	if err != nil {
		code := http.StatusInternalServerError
		if errors.Is(err, artUC.ErrInvalidArticleID) {
			code = http.StatusBadRequest
		} else if errors.Is(err, artUC.ErrArticleNotFound) {
			code = http.StatusNotFound
		}
		respond.SafeError(w, code, err)
		return
	}

	respond.JSON(w, http.StatusOK, toDTO(art))
}
