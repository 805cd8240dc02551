package service

import (
	"context"
	"testing"
	"time"

	"github.com/nikgolev/TicketGate/internal/auth"
	"github.com/nikgolev/TicketGate/internal/domain"
	"github.com/nikgolev/TicketGate/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newAuthService(t *testing.T) (*AuthService, *mocks.MockUserRepo) {
	t.Helper()
	repo := mocks.NewMockUserRepo(t)
	tokens := auth.NewManager("test-secret", time.Hour)
	return NewAuthService(repo, tokens), repo
}

func TestAuthService_Register_Success(t *testing.T) {
	svc, repo := newAuthService(t)

	var created *domain.User
	repo.EXPECT().Create(mock.Anything, mock.Anything).RunAndReturn(func(_ context.Context, u *domain.User) error {
		created = u
		return nil
	})

	user, token, err := svc.Register(context.Background(), domain.RegisterInput{
		Name:     "Alice",
		Email:    "  Alice@Example.COM ",
		Password: "sup3rsecret",
	})

	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, "alice@example.com", user.Email)
	assert.Equal(t, domain.RoleUser, user.Role)
	require.NotNil(t, created)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(created.PasswordHash), []byte("sup3rsecret")))
}

func TestAuthService_Register_ShortPassword(t *testing.T) {
	svc, _ := newAuthService(t)

	_, _, err := svc.Register(context.Background(), domain.RegisterInput{
		Name:     "Alice",
		Email:    "alice@example.com",
		Password: "short",
	})

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestAuthService_Register_EmailTaken(t *testing.T) {
	svc, repo := newAuthService(t)

	repo.EXPECT().Create(mock.Anything, mock.Anything).Return(domain.ErrEmailTaken)

	_, _, err := svc.Register(context.Background(), domain.RegisterInput{
		Name:     "Alice",
		Email:    "alice@example.com",
		Password: "sup3rsecret",
	})

	assert.ErrorIs(t, err, domain.ErrEmailTaken)
}

func TestAuthService_Login_Success(t *testing.T) {
	svc, repo := newAuthService(t)

	hash, err := bcrypt.GenerateFromPassword([]byte("sup3rsecret"), bcrypt.MinCost)
	require.NoError(t, err)

	repo.EXPECT().GetByEmail(mock.Anything, "alice@example.com").Return(&domain.User{
		ID:           "u1",
		Email:        "alice@example.com",
		PasswordHash: string(hash),
		Role:         domain.RoleUser,
	}, nil)

	user, token, err := svc.Login(context.Background(), "Alice@Example.com", "sup3rsecret")

	require.NoError(t, err)
	assert.Equal(t, "u1", user.ID)
	assert.NotEmpty(t, token)
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	svc, repo := newAuthService(t)

	hash, err := bcrypt.GenerateFromPassword([]byte("sup3rsecret"), bcrypt.MinCost)
	require.NoError(t, err)

	repo.EXPECT().GetByEmail(mock.Anything, "alice@example.com").Return(&domain.User{
		ID:           "u1",
		PasswordHash: string(hash),
	}, nil)

	_, _, err = svc.Login(context.Background(), "alice@example.com", "wrong")

	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestAuthService_Login_UnknownEmailHidesExistence(t *testing.T) {
	svc, repo := newAuthService(t)

	repo.EXPECT().GetByEmail(mock.Anything, "ghost@example.com").Return(nil, domain.ErrUserNotFound)

	_, _, err := svc.Login(context.Background(), "ghost@example.com", "whatever")

	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}
