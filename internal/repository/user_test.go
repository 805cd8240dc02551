package repository

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/nikgolev/TicketGate/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserRepository_Create_EmailTaken(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepo(db)

	mock.ExpectExec("INSERT INTO users").
		WillReturnError(&pq.Error{Code: "23505"})

	err := repo.Create(context.Background(), &domain.User{
		ID:    "u1",
		Email: "taken@example.com",
	})

	assert.ErrorIs(t, err, domain.ErrEmailTaken)
}

func TestUserRepository_GetByEmail(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepo(db)

	now := time.Now().UTC()
	mock.ExpectQuery("SELECT (.+) FROM users").
		WithArgs("alice@example.com").
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "name", "email", "password_hash", "role", "telegram_chat_id", "created_at",
		}).AddRow("u1", "Alice", "alice@example.com", "hash", "user", nil, now))

	user, err := repo.GetByEmail(context.Background(), "alice@example.com")

	require.NoError(t, err)
	assert.Equal(t, "u1", user.ID)
	assert.Equal(t, domain.RoleUser, user.Role)
	assert.Nil(t, user.TelegramChatID)
}

func TestUserRepository_GetByID_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepo(db)

	mock.ExpectQuery("SELECT (.+) FROM users").
		WithArgs("missing").
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "name", "email", "password_hash", "role", "telegram_chat_id", "created_at",
		}))

	_, err := repo.GetByID(context.Background(), "missing")

	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}
