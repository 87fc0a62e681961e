package postgres

import (
	"context"
	"testing"
	"time"

	"carshowroom-backend/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
)

func bookingRows(id, customerID, carID, ownerID int32, status domain.BookingStatus, reply string) *sqlmock.Rows {
	now := time.Now()
	var replyDate interface{}
	if status != domain.BookingStatusPending {
		replyDate = now
	}
	return sqlmock.NewRows([]string{"id", "customer_id", "car_id", "owner_id", "booking_text", "status", "booking_date", "expiry_date", "owner_reply", "owner_reply_date"}).
		AddRow(id, customerID, carID, ownerID, "Interested in this SUV, please call me", status, now, now.Add(domain.BookingExpiry), reply, replyDate)
}

func TestBookingRepository_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := NewBookingRepository(db)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		booking := &domain.Booking{
			CustomerID:  3,
			CarID:       7,
			OwnerID:     4,
			BookingText: "Interested in this SUV, please call me",
		}

		mock.ExpectQuery("INSERT INTO bookings").
			WithArgs(booking.CustomerID, booking.CarID, booking.OwnerID, booking.BookingText, domain.BookingStatusPending, sqlmock.AnyArg(), sqlmock.AnyArg()).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))

		err := repo.Create(ctx, booking)
		assert.NoError(t, err)
		assert.Equal(t, int32(1), booking.ID)
		assert.Equal(t, domain.BookingStatusPending, booking.Status)
		assert.Equal(t, booking.BookingDate.Add(domain.BookingExpiry), booking.ExpiryDate)
	})

	t.Run("DuplicateBooking", func(t *testing.T) {
		booking := &domain.Booking{
			CustomerID:  3,
			CarID:       7,
			OwnerID:     4,
			BookingText: "Interested in this SUV, please call me",
		}

		mock.ExpectQuery("INSERT INTO bookings").
			WillReturnError(&pq.Error{Code: "23505"})

		err := repo.Create(ctx, booking)
		assert.ErrorIs(t, err, domain.ErrConflict)
	})
}

func TestBookingRepository_Accept(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := NewBookingRepository(db)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectExec("UPDATE cars SET cars_count = cars_count - 1").
			WithArgs(int32(7)).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectQuery("UPDATE bookings SET status").
			WithArgs(domain.BookingStatusAccepted, "Sure, come by on Saturday", int32(1)).
			WillReturnRows(bookingRows(1, 3, 7, 4, domain.BookingStatusAccepted, "Sure, come by on Saturday"))
		mock.ExpectCommit()

		booking, err := repo.Accept(ctx, 1, 7, "Sure, come by on Saturday")
		assert.NoError(t, err)
		assert.Equal(t, domain.BookingStatusAccepted, booking.Status)
		assert.Equal(t, "Sure, come by on Saturday", booking.OwnerReply)
		assert.NotNil(t, booking.OwnerReplyDate)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("NoInventoryLeavesBookingUntouched", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectExec("UPDATE cars SET cars_count = cars_count - 1").
			WithArgs(int32(7)).
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectRollback()

		booking, err := repo.Accept(ctx, 1, 7, "Sure, come by on Saturday")
		assert.ErrorIs(t, err, domain.ErrNoInventory)
		assert.Nil(t, booking)
		// No booking update reached the database before the rollback.
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("BookingMissingRollsBackDecrement", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectExec("UPDATE cars SET cars_count = cars_count - 1").
			WithArgs(int32(7)).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectQuery("UPDATE bookings SET status").
			WithArgs(domain.BookingStatusAccepted, "Sure, come by on Saturday", int32(99)).
			WillReturnRows(sqlmock.NewRows([]string{"id"}))
		mock.ExpectRollback()

		_, err := repo.Accept(ctx, 99, 7, "Sure, come by on Saturday")
		assert.ErrorIs(t, err, domain.ErrNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestBookingRepository_Reject(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := NewBookingRepository(db)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		mock.ExpectQuery("UPDATE bookings SET status").
			WithArgs(domain.BookingStatusRejected, "Car is no longer for sale", int32(1)).
			WillReturnRows(bookingRows(1, 3, 7, 4, domain.BookingStatusRejected, "Car is no longer for sale"))

		booking, err := repo.Reject(ctx, 1, "Car is no longer for sale")
		assert.NoError(t, err)
		assert.Equal(t, domain.BookingStatusRejected, booking.Status)
		assert.Equal(t, "Car is no longer for sale", booking.OwnerReply)
		// Rejection never touches the car count.
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("NotFound", func(t *testing.T) {
		mock.ExpectQuery("UPDATE bookings SET status").
			WillReturnRows(sqlmock.NewRows([]string{"id"}))

		_, err := repo.Reject(ctx, 99, "Car is no longer for sale")
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestBookingRepository_ExpirePending(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := NewBookingRepository(db)

	mock.ExpectExec("UPDATE bookings SET status").
		WithArgs(domain.BookingStatusRejected, "expired", domain.BookingStatusPending).
		WillReturnResult(sqlmock.NewResult(0, 3))

	count, err := repo.ExpirePending(context.Background(), "expired")
	assert.NoError(t, err)
	assert.Equal(t, int64(3), count)
}

func TestBookingRepository_ListByOwnerExcludingCar(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := NewBookingRepository(db)

	mock.ExpectQuery("SELECT (.+) FROM bookings WHERE owner_id = \\$1 AND car_id <> \\$2").
		WithArgs(int32(4), int32(7), domain.BookingStatusPending).
		WillReturnRows(bookingRows(2, 3, 8, 4, domain.BookingStatusPending, ""))

	bookings, err := repo.ListByOwnerExcludingCar(context.Background(), 4, 7, domain.BookingStatusPending)
	assert.NoError(t, err)
	assert.Len(t, bookings, 1)
	assert.Equal(t, int32(8), bookings[0].CarID)
}
