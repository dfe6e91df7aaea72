package article

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"content-hub/internal/common/pagination"
	"content-hub/internal/domain/entity"
	"content-hub/internal/handler/http/auth"
	artUC "content-hub/internal/usecase/article"
)

const validContent = "This content is comfortably longer than the fifty character minimum required for articles."

/* ───────────────────────── stubs ───────────────────────── */

type stubArticleRepo struct {
	articles map[int64]*entity.Article
	nextID   int64

	listResult []*entity.Article
	countTotal int64
}

func newStubArticleRepo() *stubArticleRepo {
	return &stubArticleRepo{articles: map[int64]*entity.Article{}, nextID: 1}
}

func (r *stubArticleRepo) Create(_ context.Context, a *entity.Article) error {
	a.ID = r.nextID
	r.nextID++
	r.articles[a.ID] = a
	return nil
}

func (r *stubArticleRepo) Get(_ context.Context, id int64) (*entity.Article, error) {
	return r.articles[id], nil
}

func (r *stubArticleRepo) Exists(_ context.Context, id int64) (bool, error) {
	_, ok := r.articles[id]
	return ok, nil
}

func (r *stubArticleRepo) ListPaginated(context.Context, int, int) ([]*entity.Article, error) {
	return r.listResult, nil
}

func (r *stubArticleRepo) Count(context.Context) (int64, error) { return r.countTotal, nil }

func (r *stubArticleRepo) Update(_ context.Context, a *entity.Article) error {
	r.articles[a.ID] = a
	return nil
}

func (r *stubArticleRepo) Delete(_ context.Context, id int64) error {
	delete(r.articles, id)
	return nil
}

type stubSummaries struct{}

func (stubSummaries) Summarize(context.Context, string, string) (string, error) {
	return "generated summary", nil
}

func (stubSummaries) Fallback(string) string { return "fallback summary" }

func (stubSummaries) Available() bool { return false }

func newService(repo *stubArticleRepo) *artUC.Service {
	return &artUC.Service{Repo: repo, Summaries: stubSummaries{}}
}

func authedRequest(userID int64, method, target, body string) *http.Request {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
	}
	return req.WithContext(auth.WithUserID(req.Context(), userID))
}

/* ───────────────────────── Create ───────────────────────── */

func TestCreateHandler(t *testing.T) {
	repo := newStubArticleRepo()
	handler := CreateHandler{Svc: newService(repo)}

	body := `{"title":"A new article","content":"` + validContent + `","tags":["Go"]}`
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, authedRequest(7, "POST", "/articles", body))

	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201, body=%s", rec.Code, rec.Body.String())
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp["title"] != "A new article" {
		t.Errorf("title = %v", resp["title"])
	}
	if resp["summary"] == "" || resp["summary"] == nil {
		t.Error("summary not populated")
	}
	if repo.articles[1].UserID != 7 {
		t.Errorf("stored UserID = %d, want authenticated user 7", repo.articles[1].UserID)
	}
}

func TestCreateHandlerRejections(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		wantStatus int
	}{
		{
			name:       "malformed body",
			body:       "{not json",
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "missing title and content",
			body:       `{"author":"alice"}`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "title too short",
			body:       `{"title":"abcd","content":"` + validContent + `"}`,
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := CreateHandler{Svc: newService(newStubArticleRepo())}
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, authedRequest(7, "POST", "/articles", tt.body))

			if rec.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d, body=%s", rec.Code, tt.wantStatus, rec.Body.String())
			}
		})
	}
}

func TestCreateHandlerUnauthenticated(t *testing.T) {
	handler := CreateHandler{Svc: newService(newStubArticleRepo())}
	req := httptest.NewRequest("POST", "/articles", strings.NewReader(`{}`))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rec.Code)
	}
}

/* ───────────────────────── Get ───────────────────────── */

func TestGetHandler(t *testing.T) {
	repo := newStubArticleRepo()
	repo.articles[5] = &entity.Article{ID: 5, UserID: 7, Title: "Stored article", Summary: "s"}
	handler := GetHandler{Svc: newService(repo)}

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest("GET", "/articles/5", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200, body=%s", rec.Code, rec.Body.String())
	}
	var resp map[string]any
	_ = json.Unmarshal(rec.Body.Bytes(), &resp)
	if resp["title"] != "Stored article" {
		t.Errorf("title = %v", resp["title"])
	}
}

func TestGetHandlerRejections(t *testing.T) {
	repo := newStubArticleRepo()
	handler := GetHandler{Svc: newService(repo)}

	tests := []struct {
		name       string
		path       string
		wantStatus int
	}{
		{name: "missing article", path: "/articles/404", wantStatus: http.StatusNotFound},
		{name: "non-numeric id", path: "/articles/abc", wantStatus: http.StatusBadRequest},
		{name: "non-positive id", path: "/articles/0", wantStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, httptest.NewRequest("GET", tt.path, nil))
			if rec.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
		})
	}
}

/* ───────────────────────── List ───────────────────────── */

func TestListHandler(t *testing.T) {
	now := time.Now()
	repo := newStubArticleRepo()
	repo.countTotal = 12
	repo.listResult = []*entity.Article{
		{ID: 2, Title: "Newer", Summary: "s", CreatedAt: now, UpdatedAt: now},
		{ID: 1, Title: "Older", Summary: "s", CreatedAt: now, UpdatedAt: now},
	}
	handler := ListHandler{
		Svc:           newService(repo),
		PaginationCfg: pagination.DefaultConfig(),
		Logger:        slog.Default(),
	}

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest("GET", "/articles?page=1&limit=10", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200, body=%s", rec.Code, rec.Body.String())
	}

	var resp struct {
		Data       []DTO               `json:"data"`
		Pagination pagination.Metadata `json:"pagination"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(resp.Data) != 2 {
		t.Errorf("len(data) = %d, want 2", len(resp.Data))
	}
	if resp.Pagination.TotalCount != 12 || resp.Pagination.TotalPages != 2 || !resp.Pagination.HasNext {
		t.Errorf("pagination = %+v", resp.Pagination)
	}
}

func TestListHandlerBadPagination(t *testing.T) {
	handler := ListHandler{
		Svc:           newService(newStubArticleRepo()),
		PaginationCfg: pagination.DefaultConfig(),
		Logger:        slog.Default(),
	}

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest("GET", "/articles?page=first", nil))

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

/* ───────────────────────── Update / Delete ───────────────────────── */

func TestUpdateHandler(t *testing.T) {
	repo := newStubArticleRepo()
	repo.articles[1] = &entity.Article{ID: 1, UserID: 7, Title: "Original title", Content: validContent, Summary: "s"}
	handler := UpdateHandler{Svc: newService(repo)}

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, authedRequest(7, "PUT", "/articles/1", `{"title":"Updated title"}`))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200, body=%s", rec.Code, rec.Body.String())
	}
	var resp map[string]any
	_ = json.Unmarshal(rec.Body.Bytes(), &resp)
	if resp["title"] != "Updated title" {
		t.Errorf("title = %v", resp["title"])
	}
	if resp["content"] != validContent {
		t.Errorf("content changed unexpectedly: %v", resp["content"])
	}
}

func TestUpdateHandlerOwnership(t *testing.T) {
	repo := newStubArticleRepo()
	repo.articles[1] = &entity.Article{ID: 1, UserID: 7, Title: "Original title", Content: validContent}
	handler := UpdateHandler{Svc: newService(repo)}

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, authedRequest(8, "PUT", "/articles/1", `{"title":"Hijacked title"}`))

	if rec.Code != http.StatusForbidden {
		t.Fatalf("status = %d, want 403", rec.Code)
	}
	if repo.articles[1].Title != "Original title" {
		t.Error("article modified by non-owner")
	}
}

func TestUpdateHandlerMissing(t *testing.T) {
	handler := UpdateHandler{Svc: newService(newStubArticleRepo())}

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, authedRequest(7, "PUT", "/articles/404", `{"title":"Valid title"}`))

	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
}

func TestDeleteHandler(t *testing.T) {
	repo := newStubArticleRepo()
	repo.articles[1] = &entity.Article{ID: 1, UserID: 7}
	handler := DeleteHandler{Svc: newService(repo)}

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, authedRequest(8, "DELETE", "/articles/1", ""))
	if rec.Code != http.StatusForbidden {
		t.Fatalf("non-owner delete status = %d, want 403", rec.Code)
	}

	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, authedRequest(7, "DELETE", "/articles/1", ""))
	if rec.Code != http.StatusNoContent {
		t.Fatalf("owner delete status = %d, want 204", rec.Code)
	}
	if _, remains := repo.articles[1]; remains {
		t.Error("article still present after delete")
	}
}
