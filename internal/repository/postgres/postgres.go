package postgres

import (
	"database/sql"
	"errors"

	"carshowroom-backend/internal/repository"

	"github.com/lib/pq"
)

type Store struct {
	db *sql.DB
	repository.UserRepository
	repository.CarRepository
	repository.BookingRepository
	repository.VisitRepository
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		db:                db,
		UserRepository:    NewUserRepository(db),
		CarRepository:     NewCarRepository(db),
		BookingRepository: NewBookingRepository(db),
		VisitRepository:   NewVisitRepository(db),
	}
}

// isUniqueViolation reports whether err is a Postgres unique-constraint
// violation (duplicate email, duplicate booking for the same car).
func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == "23505"
}
