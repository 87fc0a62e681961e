package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"carshowroom-backend/internal/domain"
	"carshowroom-backend/internal/repository"
	"carshowroom-backend/internal/security"

	"golang.org/x/crypto/bcrypt"
)

var ErrInvalidCredentials = errors.New("invalid email or password")

type authService struct {
	userRepo repository.UserRepository
	tokens   security.TokenManager
}

func NewAuthService(userRepo repository.UserRepository, tokens security.TokenManager) AuthService {
	return &authService{
		userRepo: userRepo,
		tokens:   tokens,
	}
}

func (s *authService) Signup(ctx context.Context, input SignupInput) (*domain.User, string, error) {
	var fields []string
	email := strings.ToLower(strings.TrimSpace(input.Email))
	if email == "" {
		fields = append(fields, "email is required")
	}
	if input.Password == "" {
		fields = append(fields, "password is required")
	}
	if strings.TrimSpace(input.FirstName) == "" {
		fields = append(fields, "firstName is required")
	}
	userType := input.UserType
	if userType == "" {
		userType = domain.UserTypeCustomer
	}
	if userType != domain.UserTypeOwner && userType != domain.UserTypeCustomer {
		fields = append(fields, "userType must be Owner or Customer")
	}
	if len(fields) > 0 {
		return nil, "", domain.NewValidationError(fields...)
	}

	if _, err := s.userRepo.GetByEmail(ctx, email); err == nil {
		return nil, "", fmt.Errorf("account with this email %w", domain.ErrConflict)
	} else if !errors.Is(err, domain.ErrNotFound) {
		return nil, "", err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", err
	}

	profilePic := input.ProfilePic
	if profilePic == "" {
		profilePic = domain.DefaultProfilePic
	}

	user := &domain.User{
		Email:        email,
		PasswordHash: string(hash),
		FirstName:    strings.TrimSpace(input.FirstName),
		LastName:     strings.TrimSpace(input.LastName),
		UserType:     userType,
		ProfilePic:   profilePic,
	}
	if userType == domain.UserTypeOwner {
		user.Showroom = domain.ShowroomDetails{
			Location: strings.TrimSpace(input.ShowroomLocation),
			Name:     strings.TrimSpace(input.ShowroomName),
		}
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, "", err
	}

	token, err := s.tokens.Generate(user.ID, user.Email, user.UserType)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

func (s *authService) Login(ctx context.Context, email, password string) (*domain.User, string, error) {
	user, err := s.userRepo.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, "", fmt.Errorf("%w: %s", domain.ErrUnauthorized, ErrInvalidCredentials)
		}
		return nil, "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, "", fmt.Errorf("%w: %s", domain.ErrUnauthorized, ErrInvalidCredentials)
	}

	token, err := s.tokens.Generate(user.ID, user.Email, user.UserType)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}
