package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"

	"rentez-backend/internal/domain"
	"rentez-backend/internal/security"
)

func newAuthService(userRepo *MockUserRepo) AuthService {
	tokens := security.NewTokenManager("test-secret", 60, 60*24*7)
	return NewAuthService(userRepo, tokens)
}

func TestAuthService_Signup(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		svc := newAuthService(userRepo)

		userRepo.On("GetByEmail", ctx, "alice@test.com").Return(nil, domain.ErrNotFound)
		userRepo.On("Create", ctx, mock.AnythingOfType("*domain.User")).
			Run(func(args mock.Arguments) {
				args.Get(1).(*domain.User).ID = 1
			}).Return(nil)

		user, access, refresh, err := svc.Signup(ctx, "alice", "Alice@Test.com", "longenough", domain.UserRoleSupplier)
		assert.NoError(t, err)
		assert.Equal(t, "alice@test.com", user.Email)
		assert.Equal(t, domain.UserRoleSupplier, user.Role)
		assert.NotEmpty(t, access)
		assert.NotEmpty(t, refresh)
	})

	t.Run("Short Password", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		svc := newAuthService(userRepo)

		_, _, _, err := svc.Signup(ctx, "alice", "alice@test.com", "short", domain.UserRoleCustomer)
		assert.ErrorIs(t, err, domain.ErrValidation)
	})

	t.Run("Duplicate Email", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		svc := newAuthService(userRepo)

		userRepo.On("GetByEmail", ctx, "alice@test.com").Return(&domain.User{ID: 1}, nil)

		_, _, _, err := svc.Signup(ctx, "alice", "alice@test.com", "longenough", domain.UserRoleCustomer)
		assert.ErrorIs(t, err, domain.ErrValidation)
	})

	t.Run("Unknown Role Defaults To Customer", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		svc := newAuthService(userRepo)

		userRepo.On("GetByEmail", ctx, "bob@test.com").Return(nil, domain.ErrNotFound)
		userRepo.On("Create", ctx, mock.AnythingOfType("*domain.User")).Return(nil)

		user, _, _, err := svc.Signup(ctx, "bob", "bob@test.com", "longenough", "admin")
		assert.NoError(t, err)
		assert.Equal(t, domain.UserRoleCustomer, user.Role)
	})
}

func TestAuthService_Signin(t *testing.T) {
	ctx := context.Background()
	hash, _ := bcrypt.GenerateFromPassword([]byte("longenough"), bcrypt.DefaultCost)
	stored := &domain.User{ID: 1, Email: "alice@test.com", PasswordHash: string(hash), Role: domain.UserRoleCustomer}

	t.Run("Success", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		svc := newAuthService(userRepo)

		userRepo.On("GetByEmail", ctx, "alice@test.com").Return(stored, nil)

		user, access, refresh, err := svc.Signin(ctx, "alice@test.com", "longenough")
		assert.NoError(t, err)
		assert.Equal(t, int32(1), user.ID)
		assert.NotEmpty(t, access)
		assert.NotEmpty(t, refresh)
	})

	t.Run("Wrong Password", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		svc := newAuthService(userRepo)

		userRepo.On("GetByEmail", ctx, "alice@test.com").Return(stored, nil)

		_, _, _, err := svc.Signin(ctx, "alice@test.com", "wrongpass")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("Unknown Email", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		svc := newAuthService(userRepo)

		userRepo.On("GetByEmail", ctx, "nobody@test.com").Return(nil, domain.ErrNotFound)

		_, _, _, err := svc.Signin(ctx, "nobody@test.com", "whatever")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})
}

func TestAuthService_Refresh(t *testing.T) {
	ctx := context.Background()
	tokens := security.NewTokenManager("test-secret", 60, 60*24*7)

	t.Run("Success", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		svc := NewAuthService(userRepo, tokens)

		refresh, err := tokens.GenerateRefreshToken(1, "alice@test.com")
		assert.NoError(t, err)

		userRepo.On("GetByID", ctx, int32(1)).Return(&domain.User{ID: 1, Email: "alice@test.com"}, nil)

		access, newRefresh, err := svc.Refresh(ctx, refresh)
		assert.NoError(t, err)
		assert.NotEmpty(t, access)
		assert.NotEmpty(t, newRefresh)
	})

	t.Run("Access Token Rejected", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		svc := NewAuthService(userRepo, tokens)

		access, err := tokens.GenerateAccessToken(1, "alice@test.com", domain.UserRoleCustomer)
		assert.NoError(t, err)

		_, _, err = svc.Refresh(ctx, access)
		assert.ErrorIs(t, err, security.ErrWrongTokenType)
	})
}
