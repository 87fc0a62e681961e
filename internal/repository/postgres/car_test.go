package postgres

import (
	"context"
	"testing"
	"time"

	"carshowroom-backend/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

func TestCarRepository_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := NewCarRepository(db)

	car := &domain.Car{
		OwnerID:         4,
		ModelName:       "Creta",
		EngineType:      domain.EnginePetrol,
		Price:           1500000,
		Color:           domain.ColorWhite,
		SeatingCapacity: 5,
		Mileage:         17,
		Transmission:    domain.TransmissionManual,
		Images:          []string{"/CarImages/a.jpg", "/CarImages/b.jpg"},
		Description:     "Well maintained, single owner",
		CarsCount:       2,
	}

	mock.ExpectQuery("INSERT INTO cars").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(7))

	err = repo.Create(context.Background(), car)
	assert.NoError(t, err)
	assert.Equal(t, int32(7), car.ID)
	assert.NotEmpty(t, car.CreatedOn)
}

func TestCarRepository_GetByID(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := NewCarRepository(db)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		rows := sqlmock.NewRows([]string{"id", "owner_id", "model_name", "engine_type", "price", "color", "seating_capacity", "mileage", "transmission", "images", "description", "emi_per_month", "cars_count", "created_on", "updated_on"}).
			AddRow(7, 4, "Creta", "Petrol", 1500000, "White", 5, 17, "Manual", "{/CarImages/a.jpg}", "Well maintained", nil, 2, time.Now(), time.Now())

		mock.ExpectQuery("SELECT (.+) FROM cars WHERE id = \\$1").
			WithArgs(int32(7)).
			WillReturnRows(rows)

		car, err := repo.GetByID(ctx, 7)
		assert.NoError(t, err)
		assert.Equal(t, "Creta", car.ModelName)
		assert.Equal(t, []string{"/CarImages/a.jpg"}, car.Images)
		assert.Nil(t, car.EMIPerMonth)
	})

	t.Run("NotFound", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM cars WHERE id = \\$1").
			WithArgs(int32(99)).
			WillReturnRows(sqlmock.NewRows([]string{"id"}))

		_, err := repo.GetByID(ctx, 99)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestCarRepository_CountByOwner(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := NewCarRepository(db)

	mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM cars WHERE owner_id = \\$1").
		WithArgs(int32(4)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(5))

	count, err := repo.CountByOwner(context.Background(), 4)
	assert.NoError(t, err)
	assert.Equal(t, int32(5), count)
}

func TestCarRepository_Delete(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := NewCarRepository(db)

	t.Run("NotFound", func(t *testing.T) {
		mock.ExpectExec("DELETE FROM cars WHERE id = \\$1").
			WithArgs(int32(99)).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.Delete(context.Background(), 99)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}
