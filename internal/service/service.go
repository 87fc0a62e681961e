package service

import (
	"context"

	"carshowroom-backend/internal/domain"
)

type SignupInput struct {
	Email            string
	Password         string
	FirstName        string
	LastName         string
	UserType         domain.UserType
	ProfilePic       string
	ShowroomLocation string
	ShowroomName     string
}

type ProfileUpdateInput struct {
	FirstName       string
	LastName        string
	Password        string
	ConfirmPassword string
	NewLocation     string
	NewProfilePic   string
	NewShowroomPic  string
}

type CarUpdateInput struct {
	CarID       int32
	Price       *int64
	CarsCount   *int32
	Description string
	Images      []string
}

type AuthService interface {
	Signup(ctx context.Context, input SignupInput) (*domain.User, string, error)
	Login(ctx context.Context, email, password string) (*domain.User, string, error)
}

type UserService interface {
	GetUser(ctx context.Context, id int32) (*domain.User, error)
	CompleteOwnerDetails(ctx context.Context, userID int32, location, showroomName, coverPic string) (*domain.User, error)
	ChangeProfileDetails(ctx context.Context, userID int32, input ProfileUpdateInput) (*domain.User, error)
}

type CarService interface {
	AddCar(ctx context.Context, car *domain.Car) error
	GetCar(ctx context.Context, id int32) (*domain.Car, error)
	UpdateCar(ctx context.Context, ownerID int32, input CarUpdateInput) (*domain.Car, error)
	DeleteCar(ctx context.Context, ownerID, carID int32) error
	ListMyCars(ctx context.Context, ownerID int32) ([]domain.Car, error)
	ListShowrooms(ctx context.Context) ([]domain.Showroom, error)
	SearchShowrooms(ctx context.Context, searchTerm string) ([]domain.Showroom, error)
}

type BookingService interface {
	CreateBooking(ctx context.Context, customerID, carID, ownerID int32, bookingText string) (*domain.Booking, error)
	AcceptBooking(ctx context.Context, ownerID, bookingID, carID int32, reply string) (*domain.Booking, error)
	RejectBooking(ctx context.Context, ownerID, bookingID int32, reason string) (*domain.Booking, error)
	ListForOwner(ctx context.Context, ownerID int32, status domain.BookingStatus) ([]domain.BookingDetails, error)
	ListForCustomer(ctx context.Context, customerID int32, status domain.BookingStatus) ([]domain.BookingDetails, error)
	ListForCar(ctx context.Context, ownerID, carID int32) ([]domain.BookingDetails, error)
	ListForOtherCars(ctx context.Context, ownerID, carID int32) ([]domain.BookingDetails, error)
}

type VisitService interface {
	RecordVisit(ctx context.Context, customerID, ownerID int32) ([]domain.ShowroomVisit, error)
	ListVisits(ctx context.Context, customerID int32) ([]domain.VisitedShowroom, error)
	RemoveVisit(ctx context.Context, customerID, ownerID int32) ([]domain.VisitedShowroom, error)
}

type EmailService interface {
	SendBookingRequestNotification(ctx context.Context, ownerEmail, customerName, carName string) error
	SendBookingAcceptedNotification(ctx context.Context, customerEmail, carName, ownerName, reply string) error
	SendBookingRejectedNotification(ctx context.Context, customerEmail, carName, ownerName, reason string) error
}
