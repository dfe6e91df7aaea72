package requestid

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
)

func TestMiddlewareGeneratesID(t *testing.T) {
	var seen string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = FromContext(r.Context())
	})

	rec := httptest.NewRecorder()
	Middleware(next).ServeHTTP(rec, httptest.NewRequest("GET", "/", nil))

	if seen == "" {
		t.Fatal("no request ID in context")
	}
	if _, err := uuid.Parse(seen); err != nil {
		t.Errorf("generated ID %q is not a UUID: %v", seen, err)
	}
	if got := rec.Header().Get(RequestIDHeader); got != seen {
		t.Errorf("response header = %q, context = %q", got, seen)
	}
}

func TestMiddlewarePropagatesExistingID(t *testing.T) {
	var seen string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = FromContext(r.Context())
	})

	req := httptest.NewRequest("GET", "/", nil)
	req.Header.Set(RequestIDHeader, "client-supplied-id")
	rec := httptest.NewRecorder()
	Middleware(next).ServeHTTP(rec, req)

	if seen != "client-supplied-id" {
		t.Errorf("context ID = %q, want client-supplied-id", seen)
	}
	if got := rec.Header().Get(RequestIDHeader); got != "client-supplied-id" {
		t.Errorf("response header = %q", got)
	}
}

func TestFromContextEmpty(t *testing.T) {
	req := httptest.NewRequest("GET", "/", nil)
	if got := FromContext(req.Context()); got != "" {
		t.Errorf("FromContext on bare context = %q, want empty", got)
	}
}
