package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"carshowroom-backend/internal/domain"
	"carshowroom-backend/internal/repository"
)

type userRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) repository.UserRepository {
	return &userRepository{db: db}
}

const userColumns = `id, email, password_hash, first_name, COALESCE(last_name, ''), user_type, profile_pic,
	COALESCE(showroom_location, ''), COALESCE(showroom_name, ''), COALESCE(showroom_cover, ''), created_on, updated_on`

func (r *userRepository) Create(ctx context.Context, u *domain.User) error {
	query := `INSERT INTO users (email, password_hash, first_name, last_name, user_type, profile_pic, showroom_location, showroom_name, showroom_cover, created_on, updated_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11) RETURNING id`
	now := time.Now()
	u.CreatedOn = now.Format("2006-01-02")
	u.UpdatedOn = u.CreatedOn
	err := r.db.QueryRowContext(ctx, query,
		u.Email, u.PasswordHash, u.FirstName, u.LastName, u.UserType, u.ProfilePic,
		u.Showroom.Location, u.Showroom.Name, u.Showroom.CoverPic, now, now,
	).Scan(&u.ID)
	if isUniqueViolation(err) {
		return domain.ErrConflict
	}
	return err
}

func (r *userRepository) GetByID(ctx context.Context, id int32) (*domain.User, error) {
	u := &domain.User{}
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	var createdOn, updatedOn time.Time
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&u.ID, &u.Email, &u.PasswordHash, &u.FirstName, &u.LastName, &u.UserType, &u.ProfilePic,
		&u.Showroom.Location, &u.Showroom.Name, &u.Showroom.CoverPic, &createdOn, &updatedOn,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	u.CreatedOn = createdOn.Format("2006-01-02")
	u.UpdatedOn = updatedOn.Format("2006-01-02")
	return u, nil
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	u := &domain.User{}
	query := `SELECT ` + userColumns + ` FROM users WHERE LOWER(email) = LOWER($1)`
	var createdOn, updatedOn time.Time
	err := r.db.QueryRowContext(ctx, query, email).Scan(
		&u.ID, &u.Email, &u.PasswordHash, &u.FirstName, &u.LastName, &u.UserType, &u.ProfilePic,
		&u.Showroom.Location, &u.Showroom.Name, &u.Showroom.CoverPic, &createdOn, &updatedOn,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	u.CreatedOn = createdOn.Format("2006-01-02")
	u.UpdatedOn = updatedOn.Format("2006-01-02")
	return u, nil
}

func (r *userRepository) Update(ctx context.Context, u *domain.User) error {
	query := `UPDATE users SET password_hash=$1, first_name=$2, last_name=$3, profile_pic=$4,
	          showroom_location=$5, showroom_name=$6, showroom_cover=$7, updated_on=$8 WHERE id=$9`
	now := time.Now()
	u.UpdatedOn = now.Format("2006-01-02")
	res, err := r.db.ExecContext(ctx, query,
		u.PasswordHash, u.FirstName, u.LastName, u.ProfilePic,
		u.Showroom.Location, u.Showroom.Name, u.Showroom.CoverPic, now, u.ID,
	)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *userRepository) ListOwners(ctx context.Context) ([]domain.Showroom, error) {
	query := `SELECT ` + prefixedUserColumns("u") + `, COUNT(c.id)
	          FROM users u
	          LEFT JOIN cars c ON c.owner_id = u.id
	          WHERE u.user_type = $1
	          GROUP BY u.id`
	rows, err := r.db.QueryContext(ctx, query, domain.UserTypeOwner)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanShowrooms(rows)
}

func (r *userRepository) SearchOwnersByLocation(ctx context.Context, location string) ([]domain.Showroom, error) {
	query := `SELECT ` + prefixedUserColumns("u") + `, COUNT(c.id)
	          FROM users u
	          LEFT JOIN cars c ON c.owner_id = u.id
	          WHERE u.user_type = $1 AND u.showroom_location ILIKE $2
	          GROUP BY u.id`
	rows, err := r.db.QueryContext(ctx, query, domain.UserTypeOwner, "%"+location+"%")
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanShowrooms(rows)
}

func prefixedUserColumns(alias string) string {
	return alias + `.id, ` + alias + `.email, ` + alias + `.password_hash, ` + alias + `.first_name, COALESCE(` + alias + `.last_name, ''), ` +
		alias + `.user_type, ` + alias + `.profile_pic, COALESCE(` + alias + `.showroom_location, ''), COALESCE(` + alias + `.showroom_name, ''), ` +
		`COALESCE(` + alias + `.showroom_cover, ''), ` + alias + `.created_on, ` + alias + `.updated_on`
}

func scanShowrooms(rows *sql.Rows) ([]domain.Showroom, error) {
	var showrooms []domain.Showroom
	for rows.Next() {
		var s domain.Showroom
		var createdOn, updatedOn time.Time
		if err := rows.Scan(
			&s.ID, &s.Email, &s.PasswordHash, &s.FirstName, &s.LastName, &s.UserType, &s.ProfilePic,
			&s.Showroom.Location, &s.Showroom.Name, &s.Showroom.CoverPic, &createdOn, &updatedOn,
			&s.CarCount,
		); err != nil {
			return nil, err
		}
		s.CreatedOn = createdOn.Format("2006-01-02")
		s.UpdatedOn = updatedOn.Format("2006-01-02")
		showrooms = append(showrooms, s)
	}
	return showrooms, rows.Err()
}
