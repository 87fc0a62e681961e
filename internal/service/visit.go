package service

import (
	"context"
	"errors"

	"carshowroom-backend/internal/domain"
	"carshowroom-backend/internal/repository"
)

type visitService struct {
	visitRepo repository.VisitRepository
	userRepo  repository.UserRepository
}

func NewVisitService(visitRepo repository.VisitRepository, userRepo repository.UserRepository) VisitService {
	return &visitService{
		visitRepo: visitRepo,
		userRepo:  userRepo,
	}
}

func (s *visitService) RecordVisit(ctx context.Context, customerID, ownerID int32) ([]domain.ShowroomVisit, error) {
	owner, err := s.userRepo.GetByID(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	if owner.UserType != domain.UserTypeOwner {
		return nil, domain.NewValidationError("visited user is not a showroom owner")
	}

	if err := s.visitRepo.Record(ctx, customerID, ownerID); err != nil {
		return nil, err
	}
	return s.visitRepo.ListByCustomer(ctx, customerID)
}

// ListVisits returns the customer's history resolved to showroom profiles.
// Visits whose owner account has since been deleted are skipped.
func (s *visitService) ListVisits(ctx context.Context, customerID int32) ([]domain.VisitedShowroom, error) {
	visits, err := s.visitRepo.ListByCustomer(ctx, customerID)
	if err != nil {
		return nil, err
	}

	showrooms := make([]domain.VisitedShowroom, 0, len(visits))
	for _, v := range visits {
		owner, err := s.userRepo.GetByID(ctx, v.OwnerID)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				continue
			}
			return nil, err
		}
		showrooms = append(showrooms, domain.VisitedShowroom{
			OwnerID:    owner.ID,
			VisitedAt:  v.VisitedAt,
			Email:      owner.Email,
			FirstName:  owner.FirstName,
			LastName:   owner.LastName,
			ProfilePic: owner.ProfilePic,
			Showroom:   owner.Showroom,
		})
	}
	return showrooms, nil
}

func (s *visitService) RemoveVisit(ctx context.Context, customerID, ownerID int32) ([]domain.VisitedShowroom, error) {
	hasHistory, err := s.visitRepo.HasHistory(ctx, customerID)
	if err != nil {
		return nil, err
	}
	if !hasHistory {
		return nil, domain.ErrNotFound
	}

	// Removing an entry that is not in the history is a no-op.
	if err := s.visitRepo.Remove(ctx, customerID, ownerID); err != nil {
		return nil, err
	}
	return s.ListVisits(ctx, customerID)
}
