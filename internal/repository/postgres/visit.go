package postgres

import (
	"context"
	"database/sql"

	"carshowroom-backend/internal/domain"
	"carshowroom-backend/internal/repository"
)

type visitRepository struct {
	db *sql.DB
}

func NewVisitRepository(db *sql.DB) repository.VisitRepository {
	return &visitRepository{db: db}
}

// Record is a single statement: the CTE upserts the visit and the DELETE
// trims the history to the cap. The trim keeps the 4 newest other entries
// plus the one just written, because data-modifying CTE results are not
// visible to the outer statement. One round trip, no read-modify-write, so
// concurrent visits cannot lose updates.
func (r *visitRepository) Record(ctx context.Context, customerID, ownerID int32) error {
	query := `
		WITH upsert AS (
			INSERT INTO showroom_visits (customer_id, owner_id, visited_at)
			VALUES ($1, $2, NOW())
			ON CONFLICT (customer_id, owner_id) DO UPDATE SET visited_at = NOW()
		)
		DELETE FROM showroom_visits
		WHERE customer_id = $1
		  AND owner_id <> $2
		  AND owner_id NOT IN (
			SELECT owner_id FROM showroom_visits
			WHERE customer_id = $1 AND owner_id <> $2
			ORDER BY visited_at DESC
			LIMIT $3
		  )`
	_, err := r.db.ExecContext(ctx, query, customerID, ownerID, domain.MaxRecentVisits-1)
	return err
}

func (r *visitRepository) ListByCustomer(ctx context.Context, customerID int32) ([]domain.ShowroomVisit, error) {
	query := `SELECT customer_id, owner_id, visited_at FROM showroom_visits
	          WHERE customer_id = $1 ORDER BY visited_at DESC`
	rows, err := r.db.QueryContext(ctx, query, customerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var visits []domain.ShowroomVisit
	for rows.Next() {
		var v domain.ShowroomVisit
		if err := rows.Scan(&v.CustomerID, &v.OwnerID, &v.VisitedAt); err != nil {
			return nil, err
		}
		visits = append(visits, v)
	}
	return visits, rows.Err()
}

func (r *visitRepository) HasHistory(ctx context.Context, customerID int32) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM showroom_visits WHERE customer_id = $1)`, customerID).Scan(&exists)
	return exists, err
}

// Remove deletes one entry. Removing an owner that is not in the history is
// a no-op, not an error.
func (r *visitRepository) Remove(ctx context.Context, customerID, ownerID int32) error {
	_, err := r.db.ExecContext(ctx,
		`DELETE FROM showroom_visits WHERE customer_id = $1 AND owner_id = $2`, customerID, ownerID)
	return err
}
