package postgres_test

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/go-cmp/cmp"
	"github.com/jackc/pgx/v5/pgconn"

	"content-hub/internal/domain/entity"
	pg "content-hub/internal/infra/adapter/persistence/postgres"
	"content-hub/internal/repository"
)

func userColumns() []string {
	return []string{"id", "username", "email", "password_hash", "interests", "created_at"}
}

/* ─────────────────────────── 1. Create ─────────────────────────── */

func TestUserRepo_Create(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	now := time.Now()
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO users")).
		WithArgs("alice", "alice@example.com", "$2a$hash", sqlmock.AnyArg(), now).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(5)))

	repo := pg.NewUserRepo(db)
	u := &entity.User{
		Username: "alice", Email: "alice@example.com",
		PasswordHash: "$2a$hash", Interests: []string{"go"}, CreatedAt: now,
	}
	if err := repo.Create(context.Background(), u); err != nil {
		t.Fatalf("Create err=%v", err)
	}
	if u.ID != 5 {
		t.Fatalf("ID=%d, want 5", u.ID)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

func TestUserRepo_CreateDuplicate(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO users")).
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "users_email_key"})

	repo := pg.NewUserRepo(db)
	err := repo.Create(context.Background(), &entity.User{
		Username: "alice", Email: "alice@example.com", PasswordHash: "h",
	})
	if !errors.Is(err, repository.ErrDuplicateKey) {
		t.Fatalf("Create err=%v, want ErrDuplicateKey", err)
	}
}

/* ─────────────────────────── 2. GetByEmail / GetByID ─────────────────────────── */

func TestUserRepo_GetByEmail(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	now := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	want := &entity.User{
		ID: 5, Username: "alice", Email: "alice@example.com",
		PasswordHash: "$2a$hash", Interests: []string{"go", "sql"}, CreatedAt: now,
	}

	mock.ExpectQuery("FROM users").
		WithArgs("alice@example.com").
		WillReturnRows(sqlmock.NewRows(userColumns()).AddRow(
			want.ID, want.Username, want.Email, want.PasswordHash,
			`{"go","sql"}`, want.CreatedAt,
		))

	repo := pg.NewUserRepo(db)
	got, err := repo.GetByEmail(context.Background(), "alice@example.com")
	if err != nil {
		t.Fatalf("GetByEmail err=%v", err)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("mismatch (-want +got):\n%s", diff)
	}
}

func TestUserRepo_GetByEmailMissing(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	mock.ExpectQuery("FROM users").
		WithArgs("nobody@example.com").
		WillReturnRows(sqlmock.NewRows(userColumns()))

	repo := pg.NewUserRepo(db)
	got, err := repo.GetByEmail(context.Background(), "nobody@example.com")
	if err != nil || got != nil {
		t.Fatalf("GetByEmail=(%+v, %v), want (nil, nil)", got, err)
	}
}

func TestUserRepo_GetByID(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	now := time.Now()
	mock.ExpectQuery("FROM users").
		WithArgs(int64(5)).
		WillReturnRows(sqlmock.NewRows(userColumns()).AddRow(
			int64(5), "alice", "alice@example.com", "h", `{}`, now,
		))

	repo := pg.NewUserRepo(db)
	got, err := repo.GetByID(context.Background(), 5)
	if err != nil {
		t.Fatalf("GetByID err=%v", err)
	}
	if got == nil || got.Username != "alice" {
		t.Fatalf("GetByID=%+v", got)
	}
}
