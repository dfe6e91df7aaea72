package article

import (
	"encoding/json"
	"errors"
	"net/http"

	"content-hub/internal/domain/entity"
	"content-hub/internal/handler/http/auth"
	"content-hub/internal/handler/http/respond"
	artUC "content-hub/internal/usecase/article"
)

type CreateHandler struct{ Svc *artUC.Service }

func (h CreateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserID(r.Context())
	if !ok {
		respond.SafeError(w, http.StatusUnauthorized, errors.New("unauthorized"))
		return
	}

	var req requestBody
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.SafeError(w, http.StatusBadRequest, errors.New("invalid request body"))
		return
	}
	if req.Title == nil || req.Content == nil {
		respond.SafeError(w, http.StatusBadRequest,
			errors.New("title, content are required"))
		return
	}

	var tags []string
	if req.Tags != nil {
		tags = *req.Tags
	}

	art, err := h.Svc.Create(r.Context(), artUC.CreateInput{
		UserID:  userID,
		Title:   *req.Title,
		Content: *req.Content,
		Author:  strOrEmpty(req.Author),
		Summary: strOrEmpty(req.Summary),
		Tags:    tags,
	})
	if err != nil {
		var validationErr *entity.ValidationError
		if errors.As(err, &validationErr) {
			respond.SafeError(w, http.StatusBadRequest, validationErr)
			return
		}
		respond.SafeError(w, http.StatusInternalServerError, err)
		return
	}

	respond.JSON(w, http.StatusCreated, toDTO(art))
}
