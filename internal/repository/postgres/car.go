package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"carshowroom-backend/internal/domain"
	"carshowroom-backend/internal/repository"

	"github.com/lib/pq"
)

type carRepository struct {
	db *sql.DB
}

func NewCarRepository(db *sql.DB) repository.CarRepository {
	return &carRepository{db: db}
}

const carColumns = `id, owner_id, model_name, engine_type, price, color, seating_capacity, mileage,
	transmission, images, description, emi_per_month, cars_count, created_on, updated_on`

func (r *carRepository) Create(ctx context.Context, c *domain.Car) error {
	query := `INSERT INTO cars (owner_id, model_name, engine_type, price, color, seating_capacity, mileage, transmission, images, description, emi_per_month, cars_count, created_on, updated_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14) RETURNING id`
	now := time.Now()
	c.CreatedOn = now.Format("2006-01-02")
	c.UpdatedOn = c.CreatedOn
	return r.db.QueryRowContext(ctx, query,
		c.OwnerID, c.ModelName, c.EngineType, c.Price, c.Color, c.SeatingCapacity, c.Mileage,
		c.Transmission, pq.Array(c.Images), c.Description, c.EMIPerMonth, c.CarsCount, now, now,
	).Scan(&c.ID)
}

func (r *carRepository) GetByID(ctx context.Context, id int32) (*domain.Car, error) {
	c := &domain.Car{}
	query := `SELECT ` + carColumns + ` FROM cars WHERE id = $1`
	var createdOn, updatedOn time.Time
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&c.ID, &c.OwnerID, &c.ModelName, &c.EngineType, &c.Price, &c.Color, &c.SeatingCapacity,
		&c.Mileage, &c.Transmission, pq.Array(&c.Images), &c.Description, &c.EMIPerMonth, &c.CarsCount,
		&createdOn, &updatedOn,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	c.CreatedOn = createdOn.Format("2006-01-02")
	c.UpdatedOn = updatedOn.Format("2006-01-02")
	return c, nil
}

func (r *carRepository) Update(ctx context.Context, c *domain.Car) error {
	query := `UPDATE cars SET price=$1, cars_count=$2, description=$3, images=$4, updated_on=$5 WHERE id=$6`
	now := time.Now()
	c.UpdatedOn = now.Format("2006-01-02")
	res, err := r.db.ExecContext(ctx, query, c.Price, c.CarsCount, c.Description, pq.Array(c.Images), now, c.ID)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *carRepository) Delete(ctx context.Context, id int32) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM cars WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *carRepository) ListByOwner(ctx context.Context, ownerID int32) ([]domain.Car, error) {
	query := `SELECT ` + carColumns + ` FROM cars WHERE owner_id = $1 ORDER BY created_on DESC`
	rows, err := r.db.QueryContext(ctx, query, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var cars []domain.Car
	for rows.Next() {
		var c domain.Car
		var createdOn, updatedOn time.Time
		if err := rows.Scan(
			&c.ID, &c.OwnerID, &c.ModelName, &c.EngineType, &c.Price, &c.Color, &c.SeatingCapacity,
			&c.Mileage, &c.Transmission, pq.Array(&c.Images), &c.Description, &c.EMIPerMonth, &c.CarsCount,
			&createdOn, &updatedOn,
		); err != nil {
			return nil, err
		}
		c.CreatedOn = createdOn.Format("2006-01-02")
		c.UpdatedOn = updatedOn.Format("2006-01-02")
		cars = append(cars, c)
	}
	return cars, rows.Err()
}

func (r *carRepository) CountByOwner(ctx context.Context, ownerID int32) (int32, error) {
	var count int32
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM cars WHERE owner_id = $1`, ownerID).Scan(&count)
	return count, err
}
