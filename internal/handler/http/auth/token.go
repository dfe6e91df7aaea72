package auth

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"content-hub/internal/handler/http/requestid"
	"content-hub/internal/handler/http/respond"
	"content-hub/internal/usecase/user"

	"github.com/golang-jwt/jwt/v5"
)

// TokenTTL is how long an issued token remains valid.
const TokenTTL = 24 * time.Hour

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type tokenResponse struct {
	Token string `json:"token"`
}

// TokenHandler creates an HTTP handler that authenticates users and issues
// JWT tokens. The token's sub claim carries the user ID.
func TokenHandler(users *user.Service, secret []byte) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		requestID := requestid.FromContext(r.Context())
		logger := slog.With(slog.String("request_id", requestID))

		var req loginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logger.Warn("authentication failed",
				slog.String("reason", "invalid_request"),
				slog.Int64("duration_ms", time.Since(start).Milliseconds()))
			RecordAuthRequest("token", "failure")
			RecordAuthDuration("token", time.Since(start).Seconds())
			respond.SafeError(w, http.StatusBadRequest, fmt.Errorf("invalid request body"))
			return
		}

		u, err := users.Authenticate(r.Context(), req.Email, req.Password)
		if err != nil {
			RecordAuthRequest("token", "failure")
			RecordAuthDuration("token", time.Since(start).Seconds())
			if errors.Is(err, user.ErrInvalidCredentials) {
				logger.Warn("authentication failed",
					slog.String("reason", "invalid_credentials"),
					slog.Int64("duration_ms", time.Since(start).Milliseconds()))
				respond.SafeError(w, http.StatusUnauthorized, user.ErrInvalidCredentials)
				return
			}
			respond.SafeError(w, http.StatusInternalServerError, err)
			return
		}

		token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
			"sub": strconv.FormatInt(u.ID, 10),
			"exp": time.Now().Add(TokenTTL).Unix(),
		})

		signed, err := token.SignedString(secret)
		if err != nil {
			logger.Error("token generation failed",
				slog.String("error", err.Error()),
				slog.Int64("duration_ms", time.Since(start).Milliseconds()))
			RecordAuthRequest("token", "failure")
			RecordAuthDuration("token", time.Since(start).Seconds())
			respond.SafeError(w, http.StatusInternalServerError, fmt.Errorf("token generation failed"))
			return
		}

		logger.Info("authentication successful",
			slog.Int64("user_id", u.ID),
			slog.Int64("duration_ms", time.Since(start).Milliseconds()))

		RecordAuthRequest("token", "success")
		RecordAuthDuration("token", time.Since(start).Seconds())

		respond.JSON(w, http.StatusOK, tokenResponse{Token: signed})
	}
}
