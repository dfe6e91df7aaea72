// Package auth provides JWT-based authentication: token issuance, account
// registration, and the middleware that guards protected endpoints.
package auth

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"content-hub/internal/handler/http/respond"

	"github.com/golang-jwt/jwt/v5"
)

type ctxKey string

const ctxUserID ctxKey = "user_id"

// UserID retrieves the authenticated user's ID from the context.
// The second return value is false when the request was not authenticated.
func UserID(ctx context.Context) (int64, bool) {
	id, ok := ctx.Value(ctxUserID).(int64)
	return id, ok
}

// WithUserID adds an authenticated user ID to the context. Exported for
// handler tests.
func WithUserID(ctx context.Context, id int64) context.Context {
	return context.WithValue(ctx, ctxUserID, id)
}

// Middleware returns authorization middleware that requires a valid JWT for
// all HTTP methods on the wrapped handler. The token's sub claim carries the
// user ID, which is added to the request context for downstream handlers.
func Middleware(secret []byte) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userID, err := validateJWT(r.Header.Get("Authorization"), secret)
			if err != nil {
				respond.SafeError(w, http.StatusUnauthorized, fmt.Errorf("unauthorized: %w", err))
				return
			}
			ctx := WithUserID(r.Context(), userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func validateJWT(authz string, secret []byte) (int64, error) {
	const prefix = "Bearer "
	if !strings.HasPrefix(authz, prefix) {
		return 0, errors.New("missing bearer token")
	}
	tokenString := strings.TrimPrefix(authz, prefix)
	tok, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, errors.New("unexpected signing method")
		}
		return secret, nil
	})
	if err != nil || !tok.Valid {
		return 0, errors.New("invalid token")
	}
	claims, ok := tok.Claims.(jwt.MapClaims)
	if !ok {
		return 0, errors.New("invalid claims")
	}
	if exp, ok := claims["exp"].(float64); !ok || int64(exp) < time.Now().Unix() {
		return 0, errors.New("token expired")
	}
	sub, ok := claims["sub"].(string)
	if !ok {
		return 0, errors.New("invalid sub claim")
	}
	userID, err := strconv.ParseInt(sub, 10, 64)
	if err != nil || userID <= 0 {
		return 0, errors.New("invalid sub claim")
	}
	return userID, nil
}
