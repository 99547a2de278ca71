package postgres

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"symposium/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/require"
)

func TestUserRepository_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery(`INSERT INTO users \(email, name, password_hash, salt, created_at, updated_at\)`).
			WithArgs("admin@example.com", "Admin", "hash", "salt", sqlmock.AnyArg(), sqlmock.AnyArg()).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(1)))

		repo := NewUserRepository(db)
		user := &domain.User{Email: "admin@example.com", Name: "Admin", PasswordHash: "hash", Salt: "salt"}
		require.NoError(t, repo.Create(ctx, user))
		require.Equal(t, int64(1), user.ID)
	})

	t.Run("duplicate email", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery(`INSERT INTO users`).
			WillReturnError(&pq.Error{Code: "23505", Constraint: "users_email_key"})

		repo := NewUserRepository(db)
		err = repo.Create(ctx, &domain.User{Email: "admin@example.com"})
		require.ErrorIs(t, err, domain.ErrDuplicateEmail)
	})
}

func TestUserRepository_GetByEmail(t *testing.T) {
	ctx := context.Background()

	t.Run("found", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery(`SELECT id, email, name, password_hash, salt, created_at, updated_at`).
			WithArgs("admin@example.com").
			WillReturnRows(sqlmock.NewRows([]string{"id", "email", "name", "password_hash", "salt", "created_at", "updated_at"}).
				AddRow(int64(1), "admin@example.com", "Admin", "hash", "salt", time.Now(), time.Now()))

		repo := NewUserRepository(db)
		user, err := repo.GetByEmail(ctx, "admin@example.com")
		require.NoError(t, err)
		require.Equal(t, int64(1), user.ID)
		require.Equal(t, "hash", user.PasswordHash)
	})

	t.Run("not found", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery(`SELECT id, email, name, password_hash, salt, created_at, updated_at`).
			WithArgs("nobody@example.com").
			WillReturnError(sql.ErrNoRows)

		repo := NewUserRepository(db)
		_, err = repo.GetByEmail(ctx, "nobody@example.com")
		require.ErrorIs(t, err, domain.ErrUserNotFound)
	})
}
