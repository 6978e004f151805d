package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"freight-booking/internal/apperr"
	"freight-booking/internal/domain"
	"freight-booking/internal/ports/bookingtx"
)

const shipmentColumns = `id, shipment_type, weight, phone_number, email, tariff, status, assigned_driver_id, created_at, updated_at`

// BookingRepo represents the shipment/driver store used by the booking workflow.
type BookingRepo struct {
	db *pgxpool.Pool
}

// NewBookingRepo creates a new BookingRepo.
func NewBookingRepo(db *pgxpool.Pool) *BookingRepo {
	return &BookingRepo{db: db}
}

// WithTx opens a transaction and executes fn within it.
func (r *BookingRepo) WithTx(ctx context.Context, fn func(tx bookingtx.Repository) error) (err error) {
	tx, err := r.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback(ctx)
			panic(p)
		}
	}()

	if err := fn(&TxRepo{tx: tx}); err != nil {
		if rbErr := tx.Rollback(ctx); rbErr != nil {
			return fmt.Errorf("rollback tx: %w (original error: %s)", rbErr, err.Error())
		}
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}
	return nil
}

// GetShipment returns a shipment without locking it; nil if absent.
func (r *BookingRepo) GetShipment(ctx context.Context, id int64) (*domain.Shipment, error) {
	row := r.db.QueryRow(ctx, `SELECT `+shipmentColumns+` FROM shipments WHERE id = $1`, id)
	s, err := scanShipment(row)
	if err != nil {
		if IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get shipment %d: %w", id, err)
	}
	return s, nil
}

// TxRepo represents transaction repository.
type TxRepo struct {
	tx pgx.Tx
}

var _ bookingtx.Repository = (*TxRepo)(nil)

// InsertShipment - insert a new shipment.
func (r *TxRepo) InsertShipment(ctx context.Context, s *domain.Shipment) error {
	err := r.tx.QueryRow(ctx, `
        INSERT INTO shipments (shipment_type, weight, phone_number, email, tariff, status)
        VALUES ($1, $2, $3, $4, $5, $6)
        RETURNING id, created_at, updated_at
    `, string(s.Type), s.Weight, s.Phone, s.Email, s.Tariff, string(s.Status)).Scan(&s.ID, &s.CreatedAt, &s.UpdatedAt)
	return classify("insert shipment", err)
}

// GetShipmentForUpdate - get shipment and lock its row.
func (r *TxRepo) GetShipmentForUpdate(ctx context.Context, id int64) (*domain.Shipment, error) {
	row := r.tx.QueryRow(ctx, `SELECT `+shipmentColumns+` FROM shipments WHERE id = $1 FOR UPDATE`, id)
	s, err := scanShipment(row)
	if err != nil {
		if IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get shipment %d for update: %w", id, err)
	}
	return s, nil
}

// ClaimAvailableDriver - reserve the earliest registered available driver.
// Rows locked by concurrent claims are skipped, so two transactions never get the same driver.
func (r *TxRepo) ClaimAvailableDriver(ctx context.Context) (*domain.Driver, error) {
	row := r.tx.QueryRow(ctx, `
        UPDATE drivers d
        SET is_available = FALSE, updated_at = now()
        FROM (
            SELECT id
            FROM drivers
            WHERE is_available
            ORDER BY created_at ASC, id ASC
            LIMIT 1
            FOR UPDATE SKIP LOCKED
        ) c
        WHERE d.id = c.id AND d.is_available
        RETURNING d.id, d.name, d.phone_number, d.license_number, d.is_available, d.created_at
    `)

	d, err := scanDriver(row)
	if err != nil {
		if IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("claim available driver: %w", err)
	}
	return d, nil
}

// UpdateShipmentStatus - move a pending shipment to its resolved status.
func (r *TxRepo) UpdateShipmentStatus(ctx context.Context, id int64, status domain.ShipmentStatus, driverID *int64) error {
	ct, err := r.tx.Exec(ctx, `
        UPDATE shipments
        SET status = $2, assigned_driver_id = $3, updated_at = now()
        WHERE id = $1 AND status = $4
    `, id, string(status), driverID, string(domain.StatusPendingPayment))
	if err != nil {
		return classify(fmt.Sprintf("update shipment status %d", id), err)
	}
	if ct.RowsAffected() == 0 {
		return fmt.Errorf("shipment %d is not pending payment: %w", id, apperr.ErrConflict)
	}
	return nil
}

func scanShipment(row pgx.Row) (*domain.Shipment, error) {
	var s domain.Shipment
	if err := row.Scan(
		&s.ID, &s.Type, &s.Weight, &s.Phone, &s.Email, &s.Tariff,
		&s.Status, &s.DriverID, &s.CreatedAt, &s.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &s, nil
}

func scanDriver(row pgx.Row) (*domain.Driver, error) {
	var d domain.Driver
	if err := row.Scan(&d.ID, &d.Name, &d.Phone, &d.LicenseNumber, &d.Available, &d.CreatedAt); err != nil {
		return nil, err
	}
	return &d, nil
}
