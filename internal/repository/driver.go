package repository

import (
	"context"
	"fmt"

	"freight-booking/internal/apperr"
	"freight-booking/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
)

const driverColumns = `id, name, phone_number, license_number, is_available, created_at`

// DriverRepo represents driver repository.
type DriverRepo struct{ db *pgxpool.Pool }

// NewDriverRepo creates a new DriverRepo.
func NewDriverRepo(db *pgxpool.Pool) *DriverRepo { return &DriverRepo{db: db} }

// GetDriver - returns driver by its ID.
func (r *DriverRepo) GetDriver(ctx context.Context, id int64) (*domain.Driver, error) {
	d, err := scanDriver(r.db.QueryRow(ctx, `SELECT `+driverColumns+` FROM drivers WHERE id=$1`, id))
	if err != nil {
		if IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get driver %d: %w", id, err)
	}
	return d, nil
}

// ListDrivers returns drivers in claim order. If limit/offset are nil, returns the full list.
func (r *DriverRepo) ListDrivers(ctx context.Context, limit, offset *int) ([]domain.Driver, error) {
	q := `SELECT ` + driverColumns + ` FROM drivers ORDER BY created_at, id`
	args := make([]any, 0, 2)
	if limit != nil {
		q += fmt.Sprintf(" LIMIT $%d", len(args)+1)
		args = append(args, *limit)
	}
	if offset != nil {
		q += fmt.Sprintf(" OFFSET $%d", len(args)+1)
		args = append(args, *offset)
	}

	rows, err := r.db.Query(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("list drivers: %w", err)
	}
	defer rows.Close()

	capacity := 0
	if limit != nil && *limit > 0 {
		capacity = *limit
	}
	out := make([]domain.Driver, 0, capacity)
	for rows.Next() {
		d, err := scanDriver(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *d)
	}
	return out, rows.Err()
}

// CreateDriver - registers a new available driver.
func (r *DriverRepo) CreateDriver(ctx context.Context, d *domain.Driver) (int64, error) {
	var id int64
	err := r.db.QueryRow(ctx,
		`INSERT INTO drivers(name, phone_number, license_number, is_available) VALUES($1,$2,$3,TRUE) RETURNING id`,
		d.Name, d.Phone, d.LicenseNumber).Scan(&id)
	if err != nil {
		if IsDuplicate(err) {
			return 0, apperr.ErrConflict
		}
		return 0, fmt.Errorf("create driver: %w", err)
	}
	return id, nil
}
