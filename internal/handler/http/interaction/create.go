package interaction

import (
	"encoding/json"
	"errors"
	"net/http"

	"content-hub/internal/domain/entity"
	"content-hub/internal/handler/http/auth"
	"content-hub/internal/handler/http/respond"
	intUC "content-hub/internal/usecase/interaction"
)

type createRequest struct {
	ArticleID       int64  `json:"articleId"`
	InteractionType string `json:"interactionType"`
}

type createResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Data    DTO    `json:"data"`
}

type CreateHandler struct{ Svc *intUC.Service }

// ServeHTTP records an interaction. A first-time (user, article, kind)
// triple returns 201; re-recording the same triple returns 200 with the
// original record, so clients can treat the call as idempotent.
func (h CreateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserID(r.Context())
	if !ok {
		respond.SafeError(w, http.StatusUnauthorized, errors.New("unauthorized"))
		return
	}

	var req createRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.SafeError(w, http.StatusBadRequest, errors.New("invalid request body"))
		return
	}

	kind, err := entity.ParseKind(req.InteractionType)
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	result, err := h.Svc.Record(r.Context(), userID, req.ArticleID, kind)
	if err != nil {
		var validationErr *entity.ValidationError
		code := http.StatusInternalServerError
		switch {
		case errors.As(err, &validationErr), errors.Is(err, intUC.ErrInvalidArticleID):
			code = http.StatusBadRequest
		case errors.Is(err, intUC.ErrArticleNotFound):
			code = http.StatusNotFound
		}
		respond.SafeError(w, code, err)
		return
	}

	resp := createResponse{
		Success: true,
		Data:    toDTO(result.Interaction, nil),
	}
	status := http.StatusCreated
	if !result.IsNew {
		status = http.StatusOK
		resp.Message = "already exists"
	}
	respond.JSON(w, status, resp)
}
