package article

import (
	"encoding/json"
	"errors"
	"net/http"

	"content-hub/internal/domain/entity"
	"content-hub/internal/handler/http/auth"
	"content-hub/internal/handler/http/pathutil"
	"content-hub/internal/handler/http/respond"
	artUC "content-hub/internal/usecase/article"
)

type UpdateHandler struct{ Svc *artUC.Service }

func (h UpdateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
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

	var req requestBody
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.SafeError(w, http.StatusBadRequest, errors.New("invalid request body"))
		return
	}

	art, err := h.Svc.Update(r.Context(), artUC.UpdateInput{
		ID:      id,
		UserID:  userID,
		Title:   req.Title,
		Content: req.Content,
		Author:  req.Author,
		Summary: req.Summary,
		Tags:    req.Tags,
	})
	if err != nil {
		var validationErr *entity.ValidationError
		code := http.StatusInternalServerError
		switch {
		case errors.As(err, &validationErr), errors.Is(err, artUC.ErrInvalidArticleID):
			code = http.StatusBadRequest
		case errors.Is(err, artUC.ErrArticleNotFound):
			code = http.StatusNotFound
		case errors.Is(err, artUC.ErrNotOwner):
			code = http.StatusForbidden
		}
		respond.SafeError(w, code, err)
		return
	}

	respond.JSON(w, http.StatusOK, toDTO(art))
}
