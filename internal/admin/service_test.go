package admin

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// --- Mocks ---

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) Create(ctx context.Context, email, password, role string) (AdminUser, error) {
	args := m.Called(ctx, email, password, role)
	return args.Get(0).(AdminUser), args.Error(1)
}

func (m *MockRepository) FindByEmail(ctx context.Context, email string) (AdminUser, error) {
	args := m.Called(ctx, email)
	return args.Get(0).(AdminUser), args.Error(1)
}

// --- Tests ---

func TestService_Login(t *testing.T) {
	ctx := context.Background()
	t.Setenv("JWT_SECRET", "test-secret")

	hash, err := HashPassword("s3cret")
	require.NoError(t, err)

	stored := AdminUser{ID: 1, Email: "admin@example.com", Password: hash, Role: RoleAdmin}

	t.Run("Success", func(t *testing.T) {
		mockRepo := new(MockRepository)
		svc := NewService(mockRepo)

		mockRepo.On("FindByEmail", ctx, "admin@example.com").Return(stored, nil)

		token, u, err := svc.Login(ctx, "admin@example.com", "s3cret")
		assert.NoError(t, err)
		assert.NotEmpty(t, token)
		assert.Equal(t, 1, u.ID)

		claims, err := ParseJWT(token)
		require.NoError(t, err)
		assert.Equal(t, "admin", claims.Role)
	})

	t.Run("WrongPassword", func(t *testing.T) {
		mockRepo := new(MockRepository)
		svc := NewService(mockRepo)

		mockRepo.On("FindByEmail", ctx, "admin@example.com").Return(stored, nil)

		_, _, err := svc.Login(ctx, "admin@example.com", "nope")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("UnknownEmail", func(t *testing.T) {
		mockRepo := new(MockRepository)
		svc := NewService(mockRepo)

		mockRepo.On("FindByEmail", ctx, "ghost@example.com").Return(AdminUser{}, sql.ErrNoRows)

		_, _, err := svc.Login(ctx, "ghost@example.com", "s3cret")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("RepoError", func(t *testing.T) {
		mockRepo := new(MockRepository)
		svc := NewService(mockRepo)

		mockRepo.On("FindByEmail", ctx, "admin@example.com").Return(AdminUser{}, errors.New("db error"))

		_, _, err := svc.Login(ctx, "admin@example.com", "s3cret")
		assert.Error(t, err)
		assert.NotErrorIs(t, err, ErrInvalidCredentials)
	})
}

func TestService_Register(t *testing.T) {
	ctx := context.Background()
	t.Setenv("JWT_SECRET", "test-secret")

	t.Run("Success", func(t *testing.T) {
		mockRepo := new(MockRepository)
		svc := NewService(mockRepo)

		created := AdminUser{ID: 2, Email: "new@example.com", Role: RoleEditor}
		mockRepo.On("Create", ctx, "new@example.com", mock.AnythingOfType("string"), "editor").
			Return(created, nil)

		token, u, err := svc.Register(ctx, "new@example.com", "s3cret", RoleEditor)
		assert.NoError(t, err)
		assert.NotEmpty(t, token)
		assert.Equal(t, 2, u.ID)
	})

	t.Run("DuplicateEmail", func(t *testing.T) {
		mockRepo := new(MockRepository)
		svc := NewService(mockRepo)

		mockRepo.On("Create", ctx, "dup@example.com", mock.AnythingOfType("string"), "admin").
			Return(AdminUser{}, errors.New(`pq: duplicate key value violates unique constraint "admin_users_email_key"`))

		_, _, err := svc.Register(ctx, "dup@example.com", "s3cret", RoleAdmin)
		assert.ErrorIs(t, err, ErrEmailExists)
	})
}
