package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"freight-booking/internal/domain"
)

// DashboardRepo reads aggregate booking figures.
type DashboardRepo struct{ db *pgxpool.Pool }

// NewDashboardRepo creates a new DashboardRepo.
func NewDashboardRepo(db *pgxpool.Pool) *DashboardRepo { return &DashboardRepo{db: db} }

// Summary counts confirmed shipments, their revenue and the available drivers.
func (r *DashboardRepo) Summary(ctx context.Context) (domain.DashboardSummary, error) {
	var s domain.DashboardSummary
	err := r.db.QueryRow(ctx, `
        SELECT
            (SELECT COUNT(*) FROM shipments WHERE status = $1),
            (SELECT COALESCE(SUM(tariff), 0)::BIGINT FROM shipments WHERE status = $1),
            (SELECT COUNT(*) FROM drivers WHERE is_available)
    `, string(domain.StatusConfirmed)).Scan(&s.ActiveTrucks, &s.TotalRevenue, &s.AvailableDrivers)
	if err != nil {
		return domain.DashboardSummary{}, fmt.Errorf("dashboard summary: %w", err)
	}
	return s, nil
}
