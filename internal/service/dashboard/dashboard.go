// Package dashboard serves operator summaries.
package dashboard

import (
	"context"
	"time"

	"freight-booking/internal/domain"
)

type summaryRepository interface {
	Summary(ctx context.Context) (domain.DashboardSummary, error)
}

// Service reads dashboard aggregates.
type Service struct {
	repo             summaryRepository
	operationTimeout time.Duration
}

// NewService creates a dashboard Service.
func NewService(r summaryRepository, timeout time.Duration) *Service {
	if timeout <= 0 {
		timeout = 3 * time.Second
	}
	return &Service{repo: r, operationTimeout: timeout}
}

// Summary returns active trucks, confirmed revenue and available drivers.
func (s *Service) Summary(ctx context.Context) (domain.DashboardSummary, error) {
	ctx, cancel := context.WithTimeout(ctx, s.operationTimeout)
	defer cancel()
	return s.repo.Summary(ctx)
}
