package service

import (
	"context"
	"testing"

	"carshowroom-backend/internal/domain"
	"carshowroom-backend/internal/security"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
)

const testSecret = "test-secret-0123456789abcdef0123456789"

func TestAuthService_Signup(t *testing.T) {
	ctx := context.Background()
	tokens := security.NewTokenManager(testSecret, 24)

	t.Run("Success", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		svc := NewAuthService(userRepo, tokens)

		userRepo.On("GetByEmail", ctx, "anita@example.com").Return(nil, domain.ErrNotFound)
		userRepo.On("Create", ctx, mock.AnythingOfType("*domain.User")).
			Run(func(args mock.Arguments) {
				args.Get(1).(*domain.User).ID = 3
			}).Return(nil)

		user, token, err := svc.Signup(ctx, SignupInput{
			Email:     "Anita@Example.com",
			Password:  "secret123",
			FirstName: "Anita",
			UserType:  domain.UserTypeCustomer,
		})

		assert.NoError(t, err)
		assert.Equal(t, "anita@example.com", user.Email)
		assert.Equal(t, domain.DefaultProfilePic, user.ProfilePic)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("secret123")))

		claims, err := tokens.Validate(token)
		assert.NoError(t, err)
		assert.Equal(t, int32(3), claims.UserID)
		assert.Equal(t, "anita@example.com", claims.Email)
		assert.Equal(t, domain.UserTypeCustomer, claims.UserType)
	})

	t.Run("DuplicateEmail", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		svc := NewAuthService(userRepo, tokens)

		userRepo.On("GetByEmail", ctx, "anita@example.com").Return(&domain.User{ID: 3}, nil)

		_, _, err := svc.Signup(ctx, SignupInput{
			Email:     "anita@example.com",
			Password:  "secret123",
			FirstName: "Anita",
		})
		assert.ErrorIs(t, err, domain.ErrConflict)
		userRepo.AssertNotCalled(t, "Create")
	})

	t.Run("MissingRequiredFields", func(t *testing.T) {
		svc := NewAuthService(new(MockUserRepo), tokens)

		var ve *domain.ValidationError
		_, _, err := svc.Signup(ctx, SignupInput{})
		assert.ErrorAs(t, err, &ve)
		assert.Len(t, ve.Fields, 3)
	})
}

func TestAuthService_Login(t *testing.T) {
	ctx := context.Background()
	tokens := security.NewTokenManager(testSecret, 24)

	hash, err := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.DefaultCost)
	assert.NoError(t, err)
	user := &domain.User{
		ID:           3,
		Email:        "anita@example.com",
		PasswordHash: string(hash),
		UserType:     domain.UserTypeCustomer,
	}

	t.Run("Success", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		svc := NewAuthService(userRepo, tokens)

		userRepo.On("GetByEmail", ctx, "anita@example.com").Return(user, nil)

		got, token, err := svc.Login(ctx, "anita@example.com", "secret123")
		assert.NoError(t, err)
		assert.Equal(t, user.ID, got.ID)

		claims, err := tokens.Validate(token)
		assert.NoError(t, err)
		assert.Equal(t, int32(3), claims.UserID)
	})

	t.Run("WrongPassword", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		svc := NewAuthService(userRepo, tokens)

		userRepo.On("GetByEmail", ctx, "anita@example.com").Return(user, nil)

		_, _, err := svc.Login(ctx, "anita@example.com", "not-the-password")
		assert.ErrorIs(t, err, domain.ErrUnauthorized)
	})

	t.Run("UnknownAccount", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		svc := NewAuthService(userRepo, tokens)

		userRepo.On("GetByEmail", ctx, "nobody@example.com").Return(nil, domain.ErrNotFound)

		_, _, err := svc.Login(ctx, "nobody@example.com", "secret123")
		assert.ErrorIs(t, err, domain.ErrUnauthorized)
	})
}
