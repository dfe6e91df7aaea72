package responsewriter

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestWrapDefaults(t *testing.T) {
	w := Wrap(httptest.NewRecorder())
	if w.StatusCode() != http.StatusOK {
		t.Errorf("StatusCode() = %d, want 200 before any write", w.StatusCode())
	}
	if w.BytesWritten() != 0 {
		t.Errorf("BytesWritten() = %d, want 0", w.BytesWritten())
	}
}

func TestWriteHeaderRecordsOnce(t *testing.T) {
	rec := httptest.NewRecorder()
	w := Wrap(rec)

	w.WriteHeader(http.StatusNotFound)
	w.WriteHeader(http.StatusInternalServerError) // ignored

	if w.StatusCode() != http.StatusNotFound {
		t.Errorf("StatusCode() = %d, want 404", w.StatusCode())
	}
	if rec.Code != http.StatusNotFound {
		t.Errorf("underlying code = %d, want 404", rec.Code)
	}
}

func TestWriteImplies200(t *testing.T) {
	rec := httptest.NewRecorder()
	w := Wrap(rec)

	n, err := w.Write([]byte("hello"))
	if err != nil || n != 5 {
		t.Fatalf("Write = (%d, %v)", n, err)
	}
	if w.StatusCode() != http.StatusOK {
		t.Errorf("StatusCode() = %d, want implicit 200", w.StatusCode())
	}
	if w.BytesWritten() != 5 {
		t.Errorf("BytesWritten() = %d, want 5", w.BytesWritten())
	}

	_, _ = w.Write([]byte(" world"))
	if w.BytesWritten() != 11 {
		t.Errorf("BytesWritten() = %d, want cumulative 11", w.BytesWritten())
	}
}

func TestUnwrap(t *testing.T) {
	rec := httptest.NewRecorder()
	w := Wrap(rec)
	if w.Unwrap() != rec {
		t.Error("Unwrap() does not return the wrapped writer")
	}
}
