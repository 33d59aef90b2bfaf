package postgres

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"

	"cdms/internal/model"
	"cdms/internal/repository"
)

var userColumns = []string{"id", "email", "password_hash", "department", "created_at"}

func TestUserPostgres_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewUserPostgres(db)
	ctx := context.Background()

	now := time.Now().UTC()
	user := &model.User{
		ID:           "test-uuid",
		Email:        "a@x.com",
		PasswordHash: "hashed",
		Department:   model.DepartmentLegal,
		CreatedAt:    now,
	}

	t.Run("success", func(t *testing.T) {
		rows := sqlmock.NewRows(userColumns).
			AddRow(user.ID, user.Email, user.PasswordHash, string(user.Department), user.CreatedAt)

		mock.ExpectQuery("INSERT INTO users").
			WithArgs(user.ID, user.Email, user.PasswordHash, user.Department, user.CreatedAt).
			WillReturnRows(rows)

		result, err := repo.Create(ctx, user)

		assert.NoError(t, err)
		assert.Equal(t, "a@x.com", result.Email)
		assert.Equal(t, model.DepartmentLegal, result.Department)
	})

	t.Run("unique violation maps to ErrDuplicate", func(t *testing.T) {
		mock.ExpectQuery("INSERT INTO users").
			WithArgs(user.ID, user.Email, user.PasswordHash, user.Department, user.CreatedAt).
			WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "users_email_key"})

		result, err := repo.Create(ctx, user)

		assert.ErrorIs(t, err, repository.ErrDuplicate)
		assert.Nil(t, result)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserPostgres_FindByEmail(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewUserPostgres(db)
	ctx := context.Background()

	t.Run("found", func(t *testing.T) {
		rows := sqlmock.NewRows(userColumns).
			AddRow("test-uuid", "a@x.com", "hashed", "Legal", time.Now())

		mock.ExpectQuery("SELECT (.+) FROM users WHERE email = ?").
			WithArgs("a@x.com").
			WillReturnRows(rows)

		user, err := repo.FindByEmail(ctx, "a@x.com")

		assert.NoError(t, err)
		assert.Equal(t, "test-uuid", user.ID)
		assert.Equal(t, model.DepartmentLegal, user.Department)
	})

	t.Run("nullable department", func(t *testing.T) {
		rows := sqlmock.NewRows(userColumns).
			AddRow("test-uuid", "a@x.com", "hashed", nil, time.Now())

		mock.ExpectQuery("SELECT (.+) FROM users WHERE email = ?").
			WithArgs("a@x.com").
			WillReturnRows(rows)

		user, err := repo.FindByEmail(ctx, "a@x.com")

		assert.NoError(t, err)
		assert.Empty(t, user.Department)
	})

	t.Run("not found", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM users WHERE email = ?").
			WithArgs("ghost@x.com").
			WillReturnError(sql.ErrNoRows)

		user, err := repo.FindByEmail(ctx, "ghost@x.com")

		assert.ErrorIs(t, err, sql.ErrNoRows)
		assert.Nil(t, user)
	})
}

func TestUserPostgres_FindByID(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewUserPostgres(db)
	ctx := context.Background()

	rows := sqlmock.NewRows(userColumns).
		AddRow("test-uuid", "a@x.com", "hashed", "Legal", time.Now())

	mock.ExpectQuery("SELECT (.+) FROM users WHERE id = ?").
		WithArgs("test-uuid").
		WillReturnRows(rows)

	user, err := repo.FindByID(ctx, "test-uuid")

	assert.NoError(t, err)
	assert.Equal(t, "a@x.com", user.Email)
	assert.NoError(t, mock.ExpectationsWereMet())
}
