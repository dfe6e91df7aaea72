package auth

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"content-hub/internal/domain/entity"
	"content-hub/internal/handler/http/respond"
	"content-hub/internal/observability/metrics"
	"content-hub/internal/usecase/user"
)

type registerRequest struct {
	Username  string   `json:"username"`
	Email     string   `json:"email"`
	Password  string   `json:"password"`
	Interests []string `json:"interests"`
}

type userResponse struct {
	ID        int64    `json:"id"`
	Username  string   `json:"username"`
	Email     string   `json:"email"`
	Interests []string `json:"interests"`
	CreatedAt string   `json:"createdAt"`
}

func toUserResponse(u *entity.User) userResponse {
	interests := u.Interests
	if interests == nil {
		interests = []string{}
	}
	return userResponse{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		Interests: interests,
		CreatedAt: u.CreatedAt.UTC().Format(time.RFC3339),
	}
}

// RegisterHandler creates an HTTP handler for account registration.
// The response never includes the password hash.
func RegisterHandler(users *user.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		var req registerRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			RecordAuthRequest("register", "failure")
			respond.SafeError(w, http.StatusBadRequest, fmt.Errorf("invalid request body"))
			return
		}

		u, err := users.Register(r.Context(), user.RegisterInput{
			Username:  req.Username,
			Email:     req.Email,
			Password:  req.Password,
			Interests: req.Interests,
		})
		if err != nil {
			RecordAuthRequest("register", "failure")
			RecordAuthDuration("register", time.Since(start).Seconds())

			var validationErr *entity.ValidationError
			switch {
			case errors.As(err, &validationErr):
				respond.SafeError(w, http.StatusBadRequest, validationErr)
			case errors.Is(err, user.ErrDuplicateUser):
				respond.SafeError(w, http.StatusBadRequest, user.ErrDuplicateUser)
			default:
				respond.SafeError(w, http.StatusInternalServerError, err)
			}
			return
		}

		metrics.RecordUserRegistered()
		RecordAuthRequest("register", "success")
		RecordAuthDuration("register", time.Since(start).Seconds())

		respond.JSON(w, http.StatusCreated, toUserResponse(u))
	}
}
