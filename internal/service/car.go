package service

import (
	"context"
	"fmt"
	"strings"

	"carshowroom-backend/internal/domain"
	"carshowroom-backend/internal/repository"
	"carshowroom-backend/internal/utils"
)

type carService struct {
	carRepo  repository.CarRepository
	userRepo repository.UserRepository
}

func NewCarService(carRepo repository.CarRepository, userRepo repository.UserRepository) CarService {
	return &carService{
		carRepo:  carRepo,
		userRepo: userRepo,
	}
}

func (s *carService) AddCar(ctx context.Context, car *domain.Car) error {
	if fields := validateCar(car); len(fields) > 0 {
		return domain.NewValidationError(fields...)
	}

	count, err := s.carRepo.CountByOwner(ctx, car.OwnerID)
	if err != nil {
		return err
	}
	if count >= domain.MaxCarsPerOwner {
		return fmt.Errorf("showroom %w: cannot list more than %d cars", domain.ErrConflict, domain.MaxCarsPerOwner)
	}

	return s.carRepo.Create(ctx, car)
}

func validateCar(car *domain.Car) []string {
	var fields []string
	if strings.TrimSpace(car.ModelName) == "" {
		fields = append(fields, "modelName is required")
	}
	if !domain.ValidEngineType(car.EngineType) {
		fields = append(fields, "engineType must be Petrol, Diesel, Electric or Hybrid")
	}
	if !domain.ValidCarColor(car.Color) {
		fields = append(fields, "color must be Red, Blue, White or Black")
	}
	if !domain.ValidTransmission(car.Transmission) {
		fields = append(fields, "transmissionType must be Automatic or Manual")
	}
	if car.SeatingCapacity < domain.MinSeats || car.SeatingCapacity > domain.MaxSeats {
		fields = append(fields, fmt.Sprintf("seatingCapacity must be between %d and %d", domain.MinSeats, domain.MaxSeats))
	}
	if car.Price < 0 {
		fields = append(fields, "price cannot be negative")
	}
	if car.Mileage < 0 {
		fields = append(fields, "mileage cannot be negative")
	}
	if car.CarsCount < 1 {
		fields = append(fields, "carsCount must be at least 1")
	}
	if len(car.Images) < 1 || len(car.Images) > domain.MaxCarImages {
		fields = append(fields, fmt.Sprintf("between 1 and %d images are required", domain.MaxCarImages))
	}
	if strings.TrimSpace(car.Description) == "" {
		fields = append(fields, "description is required")
	}
	return fields
}

func (s *carService) GetCar(ctx context.Context, id int32) (*domain.Car, error) {
	return s.carRepo.GetByID(ctx, id)
}

func (s *carService) UpdateCar(ctx context.Context, ownerID int32, input CarUpdateInput) (*domain.Car, error) {
	car, err := s.carRepo.GetByID(ctx, input.CarID)
	if err != nil {
		return nil, err
	}
	if car.OwnerID != ownerID {
		return nil, domain.ErrForbidden
	}

	var fields []string
	if input.Price != nil {
		if *input.Price < 0 {
			fields = append(fields, "price cannot be negative")
		}
		car.Price = *input.Price
	}
	if input.CarsCount != nil {
		if *input.CarsCount < 0 {
			fields = append(fields, "carsCount cannot be negative")
		}
		car.CarsCount = *input.CarsCount
	}
	if desc := strings.TrimSpace(input.Description); desc != "" {
		car.Description = desc
	}
	if len(input.Images) > 0 {
		if len(input.Images) > domain.MaxCarImages {
			fields = append(fields, fmt.Sprintf("between 1 and %d images are required", domain.MaxCarImages))
		}
		car.Images = input.Images
	}
	if len(fields) > 0 {
		return nil, domain.NewValidationError(fields...)
	}

	if err := s.carRepo.Update(ctx, car); err != nil {
		return nil, err
	}
	return car, nil
}

func (s *carService) DeleteCar(ctx context.Context, ownerID, carID int32) error {
	car, err := s.carRepo.GetByID(ctx, carID)
	if err != nil {
		return err
	}
	if car.OwnerID != ownerID {
		return domain.ErrForbidden
	}
	return s.carRepo.Delete(ctx, carID)
}

func (s *carService) ListMyCars(ctx context.Context, ownerID int32) ([]domain.Car, error) {
	return s.carRepo.ListByOwner(ctx, ownerID)
}

func (s *carService) ListShowrooms(ctx context.Context) ([]domain.Showroom, error) {
	return s.userRepo.ListOwners(ctx)
}

func (s *carService) SearchShowrooms(ctx context.Context, searchTerm string) ([]domain.Showroom, error) {
	term := utils.NormalizeLocationTerm(searchTerm)
	if term == "" {
		return nil, domain.NewValidationError("searchTerm is required")
	}
	return s.userRepo.SearchOwnersByLocation(ctx, term)
}
