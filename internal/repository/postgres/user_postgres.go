package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"

	"cdms/internal/model"
	"cdms/internal/repository"
)

// uniqueViolation is the PostgreSQL error code for unique constraint breaches.
const uniqueViolation = "23505"

// UserPostgres is a PostgreSQL implementation of repository.UserRepository.
type UserPostgres struct {
	db *sql.DB
}

// NewUserPostgres creates a new UserPostgres repository.
func NewUserPostgres(db *sql.DB) *UserPostgres {
	return &UserPostgres{db: db}
}

var _ repository.UserRepository = (*UserPostgres)(nil)

// Create inserts a new user row. A unique-index breach on email is reported
// as repository.ErrDuplicate so the service layer stays driver-agnostic.
func (r *UserPostgres) Create(ctx context.Context, user *model.User) (*model.User, error) {
	const q = `
		INSERT INTO users (id, email, password_hash, department, created_at)
		VALUES ($1, $2, $3, NULLIF($4, ''), $5)
		RETURNING id, email, password_hash, department, created_at
	`
	row := r.db.QueryRowContext(ctx, q,
		user.ID,
		user.Email,
		user.PasswordHash,
		user.Department,
		user.CreatedAt,
	)
	out, err := scanUser(row)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return nil, fmt.Errorf("%w: email %s", repository.ErrDuplicate, user.Email)
		}
		return nil, err
	}
	return out, nil
}

// FindByEmail fetches a user by email.
func (r *UserPostgres) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	const q = `
		SELECT id, email, password_hash, department, created_at
		FROM users
		WHERE email = $1
	`
	return scanUser(r.db.QueryRowContext(ctx, q, email))
}

// FindByID fetches a user by ID.
func (r *UserPostgres) FindByID(ctx context.Context, id string) (*model.User, error) {
	const q = `
		SELECT id, email, password_hash, department, created_at
		FROM users
		WHERE id = $1
	`
	return scanUser(r.db.QueryRowContext(ctx, q, id))
}

func scanUser(row *sql.Row) (*model.User, error) {
	var (
		u          model.User
		department sql.NullString
	)
	if err := row.Scan(
		&u.ID,
		&u.Email,
		&u.PasswordHash,
		&department,
		&u.CreatedAt,
	); err != nil {
		return nil, err
	}
	u.Department = model.Department(department.String)
	return &u, nil
}
