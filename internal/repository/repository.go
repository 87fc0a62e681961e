package repository

import (
	"context"

	"carshowroom-backend/internal/domain"
)

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id int32) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	Update(ctx context.Context, user *domain.User) error
	ListOwners(ctx context.Context) ([]domain.Showroom, error)
	SearchOwnersByLocation(ctx context.Context, location string) ([]domain.Showroom, error)
}

type CarRepository interface {
	Create(ctx context.Context, car *domain.Car) error
	GetByID(ctx context.Context, id int32) (*domain.Car, error)
	Update(ctx context.Context, car *domain.Car) error
	Delete(ctx context.Context, id int32) error
	ListByOwner(ctx context.Context, ownerID int32) ([]domain.Car, error)
	CountByOwner(ctx context.Context, ownerID int32) (int32, error)
}

type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) error
	GetByID(ctx context.Context, id int32) (*domain.Booking, error)

	// Accept decrements the car's available count and marks the booking
	// accepted in a single transaction. It returns domain.ErrNoInventory
	// when the count is already zero, leaving the booking untouched.
	Accept(ctx context.Context, bookingID, carID int32, reply string) (*domain.Booking, error)
	Reject(ctx context.Context, bookingID int32, reason string) (*domain.Booking, error)

	ListByOwner(ctx context.Context, ownerID int32, status domain.BookingStatus) ([]domain.Booking, error)
	ListByCustomer(ctx context.Context, customerID int32, status domain.BookingStatus) ([]domain.Booking, error)
	ListByCar(ctx context.Context, ownerID, carID int32, status domain.BookingStatus) ([]domain.Booking, error)
	ListByOwnerExcludingCar(ctx context.Context, ownerID, carID int32, status domain.BookingStatus) ([]domain.Booking, error)

	ExpirePending(ctx context.Context, reason string) (int64, error)
}

type VisitRepository interface {
	// Record upserts (customerID, ownerID) with a fresh timestamp and trims
	// the customer's history to the newest entries, all in one statement.
	Record(ctx context.Context, customerID, ownerID int32) error
	ListByCustomer(ctx context.Context, customerID int32) ([]domain.ShowroomVisit, error)
	HasHistory(ctx context.Context, customerID int32) (bool, error)
	Remove(ctx context.Context, customerID, ownerID int32) error
}
