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

func TestUserRepository_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := NewUserRepository(db)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		user := &domain.User{
			Email:        "owner@example.com",
			PasswordHash: "hash",
			FirstName:    "Ravi",
			LastName:     "Kumar",
			UserType:     domain.UserTypeOwner,
			ProfilePic:   domain.DefaultProfilePic,
		}

		mock.ExpectQuery("INSERT INTO users").
			WithArgs(user.Email, user.PasswordHash, user.FirstName, user.LastName, user.UserType, user.ProfilePic,
				"", "", "", sqlmock.AnyArg(), sqlmock.AnyArg()).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))

		err := repo.Create(ctx, user)
		assert.NoError(t, err)
		assert.Equal(t, int32(1), user.ID)
	})

	t.Run("DuplicateEmail", func(t *testing.T) {
		user := &domain.User{Email: "owner@example.com", PasswordHash: "hash", FirstName: "Ravi"}

		mock.ExpectQuery("INSERT INTO users").
			WillReturnError(&pq.Error{Code: "23505"})

		err := repo.Create(ctx, user)
		assert.ErrorIs(t, err, domain.ErrConflict)
	})
}

func TestUserRepository_GetByEmail(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := NewUserRepository(db)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		rows := sqlmock.NewRows([]string{"id", "email", "password_hash", "first_name", "last_name", "user_type", "profile_pic", "showroom_location", "showroom_name", "showroom_cover", "created_on", "updated_on"}).
			AddRow(1, "owner@example.com", "hash", "Ravi", "Kumar", "Owner", "/UserPFPs/a.jpg", "Chennai", "Ravi Motors", "/ShowroomPFPs/b.jpg", time.Now(), time.Now())

		mock.ExpectQuery("SELECT (.+) FROM users WHERE LOWER\\(email\\) = LOWER\\(\\$1\\)").
			WithArgs("Owner@Example.com").
			WillReturnRows(rows)

		user, err := repo.GetByEmail(ctx, "Owner@Example.com")
		assert.NoError(t, err)
		assert.Equal(t, domain.UserTypeOwner, user.UserType)
		assert.Equal(t, "Ravi Motors", user.Showroom.Name)
	})

	t.Run("NotFound", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM users WHERE LOWER\\(email\\) = LOWER\\(\\$1\\)").
			WithArgs("nobody@example.com").
			WillReturnRows(sqlmock.NewRows([]string{"id"}))

		_, err := repo.GetByEmail(ctx, "nobody@example.com")
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestUserRepository_SearchOwnersByLocation(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := NewUserRepository(db)

	rows := sqlmock.NewRows([]string{"id", "email", "password_hash", "first_name", "last_name", "user_type", "profile_pic", "showroom_location", "showroom_name", "showroom_cover", "created_on", "updated_on", "count"}).
		AddRow(1, "owner@example.com", "hash", "Ravi", "Kumar", "Owner", "", "Chennai", "Ravi Motors", "", time.Now(), time.Now(), 3)

	mock.ExpectQuery("SELECT (.+) FROM users u").
		WithArgs(domain.UserTypeOwner, "%Chennai%").
		WillReturnRows(rows)

	showrooms, err := repo.SearchOwnersByLocation(context.Background(), "Chennai")
	assert.NoError(t, err)
	assert.Len(t, showrooms, 1)
	assert.Equal(t, int32(3), showrooms[0].CarCount)
}
