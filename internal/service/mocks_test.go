package service

import (
	"context"

	"carshowroom-backend/internal/domain"

	"github.com/stretchr/testify/mock"
)

// MockUserRepo
type MockUserRepo struct {
	mock.Mock
}

func (m *MockUserRepo) Create(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}
func (m *MockUserRepo) GetByID(ctx context.Context, id int32) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserRepo) Update(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}
func (m *MockUserRepo) ListOwners(ctx context.Context) ([]domain.Showroom, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Showroom), args.Error(1)
}
func (m *MockUserRepo) SearchOwnersByLocation(ctx context.Context, location string) ([]domain.Showroom, error) {
	args := m.Called(ctx, location)
	return args.Get(0).([]domain.Showroom), args.Error(1)
}

// MockCarRepo
type MockCarRepo struct {
	mock.Mock
}

func (m *MockCarRepo) Create(ctx context.Context, car *domain.Car) error {
	args := m.Called(ctx, car)
	return args.Error(0)
}
func (m *MockCarRepo) GetByID(ctx context.Context, id int32) (*domain.Car, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Car), args.Error(1)
}
func (m *MockCarRepo) Update(ctx context.Context, car *domain.Car) error {
	args := m.Called(ctx, car)
	return args.Error(0)
}
func (m *MockCarRepo) Delete(ctx context.Context, id int32) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockCarRepo) ListByOwner(ctx context.Context, ownerID int32) ([]domain.Car, error) {
	args := m.Called(ctx, ownerID)
	return args.Get(0).([]domain.Car), args.Error(1)
}
func (m *MockCarRepo) CountByOwner(ctx context.Context, ownerID int32) (int32, error) {
	args := m.Called(ctx, ownerID)
	return args.Get(0).(int32), args.Error(1)
}

// MockBookingRepo
type MockBookingRepo struct {
	mock.Mock
}

func (m *MockBookingRepo) Create(ctx context.Context, booking *domain.Booking) error {
	args := m.Called(ctx, booking)
	return args.Error(0)
}
func (m *MockBookingRepo) GetByID(ctx context.Context, id int32) (*domain.Booking, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}
func (m *MockBookingRepo) Accept(ctx context.Context, bookingID, carID int32, reply string) (*domain.Booking, error) {
	args := m.Called(ctx, bookingID, carID, reply)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}
func (m *MockBookingRepo) Reject(ctx context.Context, bookingID int32, reason string) (*domain.Booking, error) {
	args := m.Called(ctx, bookingID, reason)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}
func (m *MockBookingRepo) ListByOwner(ctx context.Context, ownerID int32, status domain.BookingStatus) ([]domain.Booking, error) {
	args := m.Called(ctx, ownerID, status)
	return args.Get(0).([]domain.Booking), args.Error(1)
}
func (m *MockBookingRepo) ListByCustomer(ctx context.Context, customerID int32, status domain.BookingStatus) ([]domain.Booking, error) {
	args := m.Called(ctx, customerID, status)
	return args.Get(0).([]domain.Booking), args.Error(1)
}
func (m *MockBookingRepo) ListByCar(ctx context.Context, ownerID, carID int32, status domain.BookingStatus) ([]domain.Booking, error) {
	args := m.Called(ctx, ownerID, carID, status)
	return args.Get(0).([]domain.Booking), args.Error(1)
}
func (m *MockBookingRepo) ListByOwnerExcludingCar(ctx context.Context, ownerID, carID int32, status domain.BookingStatus) ([]domain.Booking, error) {
	args := m.Called(ctx, ownerID, carID, status)
	return args.Get(0).([]domain.Booking), args.Error(1)
}
func (m *MockBookingRepo) ExpirePending(ctx context.Context, reason string) (int64, error) {
	args := m.Called(ctx, reason)
	return args.Get(0).(int64), args.Error(1)
}

// MockVisitRepo
type MockVisitRepo struct {
	mock.Mock
}

func (m *MockVisitRepo) Record(ctx context.Context, customerID, ownerID int32) error {
	args := m.Called(ctx, customerID, ownerID)
	return args.Error(0)
}
func (m *MockVisitRepo) ListByCustomer(ctx context.Context, customerID int32) ([]domain.ShowroomVisit, error) {
	args := m.Called(ctx, customerID)
	return args.Get(0).([]domain.ShowroomVisit), args.Error(1)
}
func (m *MockVisitRepo) HasHistory(ctx context.Context, customerID int32) (bool, error) {
	args := m.Called(ctx, customerID)
	return args.Bool(0), args.Error(1)
}
func (m *MockVisitRepo) Remove(ctx context.Context, customerID, ownerID int32) error {
	args := m.Called(ctx, customerID, ownerID)
	return args.Error(0)
}

// MockEmailService
type MockEmailService struct {
	mock.Mock
}

func (m *MockEmailService) SendBookingRequestNotification(ctx context.Context, ownerEmail, customerName, carName string) error {
	args := m.Called(ctx, ownerEmail, customerName, carName)
	return args.Error(0)
}
func (m *MockEmailService) SendBookingAcceptedNotification(ctx context.Context, customerEmail, carName, ownerName, reply string) error {
	args := m.Called(ctx, customerEmail, carName, ownerName, reply)
	return args.Error(0)
}
func (m *MockEmailService) SendBookingRejectedNotification(ctx context.Context, customerEmail, carName, ownerName, reason string) error {
	args := m.Called(ctx, customerEmail, carName, ownerName, reason)
	return args.Error(0)
}
