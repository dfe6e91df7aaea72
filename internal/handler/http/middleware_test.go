package http

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func TestLoggingRecordsStatus(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
		_, _ = w.Write([]byte("short and stout"))
	})

	rec := httptest.NewRecorder()
	Logging(logger)(next).ServeHTTP(rec, httptest.NewRequest("GET", "/articles?page=2", nil))

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("log line is not JSON: %v\n%s", err, buf.String())
	}
	if entry["status"] != float64(http.StatusTeapot) {
		t.Errorf("status = %v, want 418", entry["status"])
	}
	if entry["method"] != "GET" || entry["path"] != "/articles" {
		t.Errorf("method/path = %v %v", entry["method"], entry["path"])
	}
	if entry["bytes"] != float64(len("short and stout")) {
		t.Errorf("bytes = %v", entry["bytes"])
	}
}

func TestRecover(t *testing.T) {
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))

	next := http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	})

	rec := httptest.NewRecorder()
	Recover(logger)(next).ServeHTTP(rec, httptest.NewRequest("GET", "/", nil))

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", rec.Code)
	}
	if strings.Contains(rec.Body.String(), "boom") {
		t.Errorf("panic detail leaked into the response: %s", rec.Body.String())
	}
}

func TestLimitRequestBody(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, err := io.ReadAll(r.Body); err != nil {
			w.WriteHeader(http.StatusRequestEntityTooLarge)
			return
		}
		w.WriteHeader(http.StatusOK)
	})

	handler := LimitRequestBody(8)(next)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest("POST", "/", strings.NewReader("tiny")))
	if rec.Code != http.StatusOK {
		t.Errorf("small body status = %d, want 200", rec.Code)
	}

	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest("POST", "/", strings.NewReader("definitely more than eight bytes")))
	if rec.Code != http.StatusRequestEntityTooLarge {
		t.Errorf("oversized body status = %d, want 413", rec.Code)
	}
}

func TestRateLimiter(t *testing.T) {
	limiter := NewRateLimiter(3, time.Minute)
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	handler := limiter.Limit(next)

	request := func(remoteAddr string) int {
		req := httptest.NewRequest("POST", "/auth/token", nil)
		req.RemoteAddr = remoteAddr
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		return rec.Code
	}

	for i := 0; i < 3; i++ {
		if code := request("10.0.0.1:1234"); code != http.StatusOK {
			t.Fatalf("request %d status = %d, want 200", i+1, code)
		}
	}
	if code := request("10.0.0.1:1234"); code != http.StatusTooManyRequests {
		t.Fatalf("fourth request status = %d, want 429", code)
	}

	// A different client is unaffected.
	if code := request("10.0.0.2:1234"); code != http.StatusOK {
		t.Fatalf("other client status = %d, want 200", code)
	}
}

func TestExtractIP(t *testing.T) {
	tests := []struct {
		name       string
		remoteAddr string
		headers    map[string]string
		want       string
	}{
		{
			name:       "remote addr",
			remoteAddr: "192.0.2.1:5678",
			want:       "192.0.2.1",
		},
		{
			name:       "x-forwarded-for single",
			remoteAddr: "10.0.0.1:1",
			headers:    map[string]string{"X-Forwarded-For": "203.0.113.9"},
			want:       "203.0.113.9",
		},
		{
			name:       "x-forwarded-for chain uses first hop",
			remoteAddr: "10.0.0.1:1",
			headers:    map[string]string{"X-Forwarded-For": "203.0.113.9,198.51.100.2"},
			want:       "203.0.113.9",
		},
		{
			name:       "x-real-ip",
			remoteAddr: "10.0.0.1:1",
			headers:    map[string]string{"X-Real-IP": "203.0.113.7"},
			want:       "203.0.113.7",
		},
		{
			name:       "invalid forwarded header falls through",
			remoteAddr: "192.0.2.1:5678",
			headers:    map[string]string{"X-Forwarded-For": "not-an-ip"},
			want:       "192.0.2.1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/", nil)
			req.RemoteAddr = tt.remoteAddr
			for k, v := range tt.headers {
				req.Header.Set(k, v)
			}
			if got := extractIP(req); got != tt.want {
				t.Errorf("extractIP() = %q, want %q", got, tt.want)
			}
		})
	}
}
