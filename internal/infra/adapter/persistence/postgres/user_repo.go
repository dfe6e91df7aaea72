package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"content-hub/internal/domain/entity"
	"content-hub/internal/repository"

	"github.com/lib/pq"
)

type UserRepo struct {
	db *sql.DB
}

func NewUserRepo(db *sql.DB) repository.UserRepository {
	return &UserRepo{db: db}
}

func (repo *UserRepo) Create(ctx context.Context, user *entity.User) error {
	const query = `
INSERT INTO users (username, email, password_hash, interests, created_at)
VALUES ($1, $2, $3, $4, $5)
RETURNING id`
	err := repo.db.QueryRowContext(ctx, query,
		user.Username, user.Email, user.PasswordHash,
		pq.Array(user.Interests), user.CreatedAt,
	).Scan(&user.ID)
	if isUniqueViolation(err) {
		return fmt.Errorf("Create: %w", repository.ErrDuplicateKey)
	}
	if err != nil {
		return fmt.Errorf("Create: %w", err)
	}
	return nil
}

func (repo *UserRepo) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	const query = `
SELECT id, username, email, password_hash, interests, created_at
FROM users
WHERE email = $1
LIMIT 1`
	return repo.scanOne(repo.db.QueryRowContext(ctx, query, email), "GetByEmail")
}

func (repo *UserRepo) GetByID(ctx context.Context, id int64) (*entity.User, error) {
	const query = `
SELECT id, username, email, password_hash, interests, created_at
FROM users
WHERE id = $1
LIMIT 1`
	return repo.scanOne(repo.db.QueryRowContext(ctx, query, id), "GetByID")
}

func (repo *UserRepo) scanOne(row *sql.Row, op string) (*entity.User, error) {
	var user entity.User
	err := row.Scan(&user.ID, &user.Username, &user.Email,
		&user.PasswordHash, pq.Array(&user.Interests), &user.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &user, nil
}
