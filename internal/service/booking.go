package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"carshowroom-backend/internal/domain"
	"carshowroom-backend/internal/logger"
	"carshowroom-backend/internal/repository"
)

type bookingService struct {
	bookingRepo repository.BookingRepository
	carRepo     repository.CarRepository
	userRepo    repository.UserRepository
	emailSvc    EmailService
}

func NewBookingService(
	bookingRepo repository.BookingRepository,
	carRepo repository.CarRepository,
	userRepo repository.UserRepository,
	emailSvc EmailService,
) BookingService {
	return &bookingService{
		bookingRepo: bookingRepo,
		carRepo:     carRepo,
		userRepo:    userRepo,
		emailSvc:    emailSvc,
	}
}

func (s *bookingService) CreateBooking(ctx context.Context, customerID, carID, ownerID int32, bookingText string) (*domain.Booking, error) {
	text := strings.TrimSpace(bookingText)
	if n := utf8.RuneCountInString(text); n < domain.MinBookingText || n > domain.MaxBookingText {
		return nil, domain.NewValidationError(
			fmt.Sprintf("bookingText must be between %d and %d characters", domain.MinBookingText, domain.MaxBookingText))
	}

	car, err := s.carRepo.GetByID(ctx, carID)
	if err != nil {
		return nil, err
	}
	if ownerID != 0 && ownerID != car.OwnerID {
		return nil, domain.NewValidationError("ownerId does not match the car's showroom")
	}

	booking := &domain.Booking{
		CustomerID:  customerID,
		CarID:       carID,
		OwnerID:     car.OwnerID,
		BookingText: text,
	}
	if err := s.bookingRepo.Create(ctx, booking); err != nil {
		return nil, err
	}

	// Notify the showroom owner; delivery failures never fail the booking.
	owner, oerr := s.userRepo.GetByID(ctx, car.OwnerID)
	customer, cerr := s.userRepo.GetByID(ctx, customerID)
	if oerr == nil && cerr == nil {
		if err := s.emailSvc.SendBookingRequestNotification(ctx, owner.Email, customer.FullName(), car.ModelName); err != nil {
			logger.Warn("booking request email failed", "bookingId", booking.ID, "error", err)
		}
	}

	return booking, nil
}

func (s *bookingService) AcceptBooking(ctx context.Context, ownerID, bookingID, carID int32, reply string) (*domain.Booking, error) {
	reply = strings.TrimSpace(reply)
	if utf8.RuneCountInString(reply) < domain.MinOwnerReply {
		return nil, domain.NewValidationError(
			fmt.Sprintf("reply must be at least %d characters", domain.MinOwnerReply))
	}

	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if booking.OwnerID != ownerID {
		return nil, domain.ErrForbidden
	}
	if booking.Status != domain.BookingStatusPending {
		return nil, fmt.Errorf("booking %w: already %s", domain.ErrConflict, strings.ToLower(string(booking.Status)))
	}
	if carID != 0 && carID != booking.CarID {
		return nil, domain.NewValidationError("carId does not match the booking")
	}

	accepted, err := s.bookingRepo.Accept(ctx, bookingID, booking.CarID, reply)
	if err != nil {
		return nil, err
	}

	s.notifyDecision(ctx, accepted)
	return accepted, nil
}

func (s *bookingService) RejectBooking(ctx context.Context, ownerID, bookingID int32, reason string) (*domain.Booking, error) {
	reason = strings.TrimSpace(reason)
	if utf8.RuneCountInString(reason) < domain.MinOwnerReply {
		return nil, domain.NewValidationError(
			fmt.Sprintf("reason must be at least %d characters", domain.MinOwnerReply))
	}

	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if booking.OwnerID != ownerID {
		return nil, domain.ErrForbidden
	}
	if booking.Status != domain.BookingStatusPending {
		return nil, fmt.Errorf("booking %w: already %s", domain.ErrConflict, strings.ToLower(string(booking.Status)))
	}

	rejected, err := s.bookingRepo.Reject(ctx, bookingID, reason)
	if err != nil {
		return nil, err
	}

	s.notifyDecision(ctx, rejected)
	return rejected, nil
}

func (s *bookingService) notifyDecision(ctx context.Context, booking *domain.Booking) {
	customer, cerr := s.userRepo.GetByID(ctx, booking.CustomerID)
	owner, oerr := s.userRepo.GetByID(ctx, booking.OwnerID)
	car, kerr := s.carRepo.GetByID(ctx, booking.CarID)
	if cerr != nil || oerr != nil || kerr != nil {
		return
	}

	var err error
	switch booking.Status {
	case domain.BookingStatusAccepted:
		err = s.emailSvc.SendBookingAcceptedNotification(ctx, customer.Email, car.ModelName, owner.FullName(), booking.OwnerReply)
	case domain.BookingStatusRejected:
		err = s.emailSvc.SendBookingRejectedNotification(ctx, customer.Email, car.ModelName, owner.FullName(), booking.OwnerReply)
	}
	if err != nil {
		logger.Warn("booking decision email failed", "bookingId", booking.ID, "error", err)
	}
}

func (s *bookingService) ListForOwner(ctx context.Context, ownerID int32, status domain.BookingStatus) ([]domain.BookingDetails, error) {
	bookings, err := s.bookingRepo.ListByOwner(ctx, ownerID, status)
	if err != nil {
		return nil, err
	}
	return s.enrich(ctx, bookings)
}

func (s *bookingService) ListForCustomer(ctx context.Context, customerID int32, status domain.BookingStatus) ([]domain.BookingDetails, error) {
	bookings, err := s.bookingRepo.ListByCustomer(ctx, customerID, status)
	if err != nil {
		return nil, err
	}
	return s.enrich(ctx, bookings)
}

func (s *bookingService) ListForCar(ctx context.Context, ownerID, carID int32) ([]domain.BookingDetails, error) {
	bookings, err := s.bookingRepo.ListByCar(ctx, ownerID, carID, domain.BookingStatusPending)
	if err != nil {
		return nil, err
	}
	return s.enrich(ctx, bookings)
}

func (s *bookingService) ListForOtherCars(ctx context.Context, ownerID, carID int32) ([]domain.BookingDetails, error) {
	bookings, err := s.bookingRepo.ListByOwnerExcludingCar(ctx, ownerID, carID, domain.BookingStatusPending)
	if err != nil {
		return nil, err
	}
	return s.enrich(ctx, bookings)
}

// enrich resolves the customer, owner and car of each booking. Bookings
// whose referenced records no longer exist are skipped rather than failing
// the whole listing.
func (s *bookingService) enrich(ctx context.Context, bookings []domain.Booking) ([]domain.BookingDetails, error) {
	users := make(map[int32]*domain.User)
	cars := make(map[int32]*domain.Car)
	details := make([]domain.BookingDetails, 0, len(bookings))

	for _, b := range bookings {
		customer, err := s.cachedUser(ctx, users, b.CustomerID)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				continue
			}
			return nil, err
		}
		owner, err := s.cachedUser(ctx, users, b.OwnerID)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				continue
			}
			return nil, err
		}
		car, err := s.cachedCar(ctx, cars, b.CarID)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				continue
			}
			return nil, err
		}

		details = append(details, domain.BookingDetails{
			Booking:       b,
			CustomerName:  customer.FullName(),
			CustomerEmail: customer.Email,
			CustomerPFP:   customer.ProfilePic,
			OwnerName:     owner.FullName(),
			OwnerEmail:    owner.Email,
			OwnerPFP:      owner.ProfilePic,
			CarName:       car.ModelName,
			CarImages:     car.Images,
			CarPrice:      car.Price,
			CarCount:      car.CarsCount,
		})
	}
	return details, nil
}

func (s *bookingService) cachedUser(ctx context.Context, cache map[int32]*domain.User, id int32) (*domain.User, error) {
	if u, ok := cache[id]; ok {
		if u == nil {
			return nil, domain.ErrNotFound
		}
		return u, nil
	}
	u, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			cache[id] = nil
		}
		return nil, err
	}
	cache[id] = u
	return u, nil
}

func (s *bookingService) cachedCar(ctx context.Context, cache map[int32]*domain.Car, id int32) (*domain.Car, error) {
	if c, ok := cache[id]; ok {
		if c == nil {
			return nil, domain.ErrNotFound
		}
		return c, nil
	}
	c, err := s.carRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			cache[id] = nil
		}
		return nil, err
	}
	cache[id] = c
	return c, nil
}
