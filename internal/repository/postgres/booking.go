package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"carshowroom-backend/internal/domain"
	"carshowroom-backend/internal/repository"
)

type bookingRepository struct {
	db *sql.DB
}

func NewBookingRepository(db *sql.DB) repository.BookingRepository {
	return &bookingRepository{db: db}
}

const bookingColumns = `id, customer_id, car_id, owner_id, booking_text, status, booking_date, expiry_date,
	COALESCE(owner_reply, ''), owner_reply_date`

func (r *bookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	query := `INSERT INTO bookings (customer_id, car_id, owner_id, booking_text, status, booking_date, expiry_date)
	          VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id`
	now := time.Now()
	b.Status = domain.BookingStatusPending
	b.BookingDate = now
	b.ExpiryDate = now.Add(domain.BookingExpiry)
	err := r.db.QueryRowContext(ctx, query,
		b.CustomerID, b.CarID, b.OwnerID, b.BookingText, b.Status, b.BookingDate, b.ExpiryDate,
	).Scan(&b.ID)
	if isUniqueViolation(err) {
		return domain.ErrConflict
	}
	return err
}

func (r *bookingRepository) GetByID(ctx context.Context, id int32) (*domain.Booking, error) {
	b := &domain.Booking{}
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&b.ID, &b.CustomerID, &b.CarID, &b.OwnerID, &b.BookingText, &b.Status,
		&b.BookingDate, &b.ExpiryDate, &b.OwnerReply, &b.OwnerReplyDate,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return b, nil
}

// Accept runs the two writes as one transaction so inventory and booking
// state cannot diverge: the car count decrement is guarded by cars_count > 0
// and the status flip only commits alongside it.
func (r *bookingRepository) Accept(ctx context.Context, bookingID, carID int32, reply string) (*domain.Booking, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx,
		`UPDATE cars SET cars_count = cars_count - 1, updated_on = NOW() WHERE id = $1 AND cars_count > 0`, carID)
	if err != nil {
		return nil, err
	}
	if n, err := res.RowsAffected(); err != nil {
		return nil, err
	} else if n == 0 {
		return nil, domain.ErrNoInventory
	}

	b := &domain.Booking{}
	query := `UPDATE bookings SET status = $1, owner_reply = $2, owner_reply_date = NOW()
	          WHERE id = $3 RETURNING ` + bookingColumns
	err = tx.QueryRowContext(ctx, query, domain.BookingStatusAccepted, reply, bookingID).Scan(
		&b.ID, &b.CustomerID, &b.CarID, &b.OwnerID, &b.BookingText, &b.Status,
		&b.BookingDate, &b.ExpiryDate, &b.OwnerReply, &b.OwnerReplyDate,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return b, nil
}

func (r *bookingRepository) Reject(ctx context.Context, bookingID int32, reason string) (*domain.Booking, error) {
	b := &domain.Booking{}
	query := `UPDATE bookings SET status = $1, owner_reply = $2, owner_reply_date = NOW()
	          WHERE id = $3 RETURNING ` + bookingColumns
	err := r.db.QueryRowContext(ctx, query, domain.BookingStatusRejected, reason, bookingID).Scan(
		&b.ID, &b.CustomerID, &b.CarID, &b.OwnerID, &b.BookingText, &b.Status,
		&b.BookingDate, &b.ExpiryDate, &b.OwnerReply, &b.OwnerReplyDate,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return b, nil
}

func (r *bookingRepository) ListByOwner(ctx context.Context, ownerID int32, status domain.BookingStatus) ([]domain.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE owner_id = $1 AND status = $2 ORDER BY booking_date DESC`
	return r.list(ctx, query, ownerID, status)
}

func (r *bookingRepository) ListByCustomer(ctx context.Context, customerID int32, status domain.BookingStatus) ([]domain.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE customer_id = $1 AND status = $2 ORDER BY booking_date DESC`
	return r.list(ctx, query, customerID, status)
}

func (r *bookingRepository) ListByCar(ctx context.Context, ownerID, carID int32, status domain.BookingStatus) ([]domain.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE owner_id = $1 AND car_id = $2 AND status = $3 ORDER BY booking_date DESC`
	return r.list(ctx, query, ownerID, carID, status)
}

func (r *bookingRepository) ListByOwnerExcludingCar(ctx context.Context, ownerID, carID int32, status domain.BookingStatus) ([]domain.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE owner_id = $1 AND car_id <> $2 AND status = $3 ORDER BY booking_date DESC`
	return r.list(ctx, query, ownerID, carID, status)
}

// ExpirePending rejects pending bookings whose expiry date has passed.
func (r *bookingRepository) ExpirePending(ctx context.Context, reason string) (int64, error) {
	query := `UPDATE bookings SET status = $1, owner_reply = $2, owner_reply_date = NOW()
	          WHERE status = $3 AND expiry_date < NOW()`
	res, err := r.db.ExecContext(ctx, query, domain.BookingStatusRejected, reason, domain.BookingStatusPending)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (r *bookingRepository) list(ctx context.Context, query string, args ...interface{}) ([]domain.Booking, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var bookings []domain.Booking
	for rows.Next() {
		var b domain.Booking
		if err := rows.Scan(
			&b.ID, &b.CustomerID, &b.CarID, &b.OwnerID, &b.BookingText, &b.Status,
			&b.BookingDate, &b.ExpiryDate, &b.OwnerReply, &b.OwnerReplyDate,
		); err != nil {
			return nil, err
		}
		bookings = append(bookings, b)
	}
	return bookings, rows.Err()
}
