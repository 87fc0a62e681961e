package service

import (
	"context"
	"strings"

	"carshowroom-backend/internal/domain"
	"carshowroom-backend/internal/repository"

	"golang.org/x/crypto/bcrypt"
)

type userService struct {
	userRepo repository.UserRepository
}

func NewUserService(userRepo repository.UserRepository) UserService {
	return &userService{userRepo: userRepo}
}

func (s *userService) GetUser(ctx context.Context, id int32) (*domain.User, error) {
	return s.userRepo.GetByID(ctx, id)
}

func (s *userService) CompleteOwnerDetails(ctx context.Context, userID int32, location, showroomName, coverPic string) (*domain.User, error) {
	var fields []string
	if strings.TrimSpace(location) == "" {
		fields = append(fields, "showroom location is required")
	}
	if strings.TrimSpace(showroomName) == "" {
		fields = append(fields, "showroom name is required")
	}
	if len(fields) > 0 {
		return nil, domain.NewValidationError(fields...)
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user.UserType != domain.UserTypeOwner {
		return nil, domain.ErrForbidden
	}

	user.Showroom.Location = strings.TrimSpace(location)
	user.Showroom.Name = strings.TrimSpace(showroomName)
	if coverPic != "" {
		user.Showroom.CoverPic = coverPic
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// ChangeProfileDetails updates the caller's profile. The current password
// must be re-supplied and match before any field is touched.
func (s *userService) ChangeProfileDetails(ctx context.Context, userID int32, input ProfileUpdateInput) (*domain.User, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.ConfirmPassword)); err != nil {
		return nil, domain.NewValidationError("wrong password")
	}

	if name := strings.TrimSpace(input.FirstName); name != "" {
		user.FirstName = name
	}
	if name := strings.TrimSpace(input.LastName); name != "" {
		user.LastName = name
	}
	if input.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = string(hash)
	}
	if input.NewProfilePic != "" {
		user.ProfilePic = input.NewProfilePic
	}
	if user.UserType == domain.UserTypeOwner {
		if loc := strings.TrimSpace(input.NewLocation); loc != "" {
			user.Showroom.Location = loc
		}
		if input.NewShowroomPic != "" {
			user.Showroom.CoverPic = input.NewShowroomPic
		}
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}
