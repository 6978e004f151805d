// Package memory is an in-process store with the same contract as the Postgres repositories.
package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"freight-booking/internal/apperr"
	"freight-booking/internal/domain"
	"freight-booking/internal/ports/bookingtx"
)

// Store keeps shipments and drivers in memory.
// A transaction holds the write lock for its whole duration and works on a copy
// of the state that replaces the live state on commit.
type Store struct {
	mu    sync.RWMutex
	state state
	now   func() time.Time
}

type state struct {
	shipments    map[int64]domain.Shipment
	drivers      map[int64]domain.Driver
	nextShipment int64
	nextDriver   int64
}

func (s state) clone() state {
	out := state{
		shipments:    make(map[int64]domain.Shipment, len(s.shipments)),
		drivers:      make(map[int64]domain.Driver, len(s.drivers)),
		nextShipment: s.nextShipment,
		nextDriver:   s.nextDriver,
	}
	for id, sh := range s.shipments {
		out.shipments[id] = copyShipment(sh)
	}
	for id, d := range s.drivers {
		out.drivers[id] = d
	}
	return out
}

// New returns an empty Store.
func New() *Store {
	return &Store{
		state: state{
			shipments: map[int64]domain.Shipment{},
			drivers:   map[int64]domain.Driver{},
		},
		now: time.Now,
	}
}

var _ bookingtx.Runner = (*Store)(nil)

// WithTx runs fn against a private copy of the state and publishes it when fn returns nil.
func (s *Store) WithTx(ctx context.Context, fn func(tx bookingtx.Repository) error) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	work := s.state.clone()
	if err := fn(&txRepo{state: &work, now: s.now}); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}
	s.state = work
	return nil
}

// Ping reports whether the store can serve requests.
func (s *Store) Ping(ctx context.Context) error {
	return ctx.Err()
}

// GetShipment returns a committed shipment; nil if absent.
func (s *Store) GetShipment(_ context.Context, id int64) (*domain.Shipment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sh, ok := s.state.shipments[id]
	if !ok {
		return nil, nil
	}
	out := copyShipment(sh)
	return &out, nil
}

// CreateDriver registers a new available driver.
func (s *Store) CreateDriver(_ context.Context, d *domain.Driver) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.state.drivers {
		if existing.LicenseNumber == d.LicenseNumber {
			return 0, apperr.ErrConflict
		}
	}
	s.state.nextDriver++
	stored := *d
	stored.ID = s.state.nextDriver
	stored.Available = true
	stored.CreatedAt = s.now()
	s.state.drivers[stored.ID] = stored
	return stored.ID, nil
}

// GetDriver returns a driver by id; nil if absent.
func (s *Store) GetDriver(_ context.Context, id int64) (*domain.Driver, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	d, ok := s.state.drivers[id]
	if !ok {
		return nil, nil
	}
	return &d, nil
}

// ListDrivers returns drivers in claim order. If limit/offset are nil, returns the full list.
func (s *Store) ListDrivers(_ context.Context, limit, offset *int) ([]domain.Driver, error) {
	s.mu.RLock()
	all := sortedDrivers(s.state.drivers)
	s.mu.RUnlock()

	start := 0
	if offset != nil {
		start = min(max(*offset, 0), len(all))
	}
	end := len(all)
	if limit != nil {
		end = min(start+max(*limit, 0), len(all))
	}
	return all[start:end], nil
}

// Summary aggregates confirmed shipments and available drivers.
func (s *Store) Summary(_ context.Context) (domain.DashboardSummary, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var sum domain.DashboardSummary
	for _, sh := range s.state.shipments {
		if sh.Status == domain.StatusConfirmed {
			sum.ActiveTrucks++
			sum.TotalRevenue += sh.Tariff
		}
	}
	for _, d := range s.state.drivers {
		if d.Available {
			sum.AvailableDrivers++
		}
	}
	return sum, nil
}

type txRepo struct {
	state *state
	now   func() time.Time
}

func (r *txRepo) InsertShipment(_ context.Context, sh *domain.Shipment) error {
	r.state.nextShipment++
	ts := r.now()
	sh.ID = r.state.nextShipment
	sh.CreatedAt, sh.UpdatedAt = ts, ts
	r.state.shipments[sh.ID] = copyShipment(*sh)
	return nil
}

func (r *txRepo) GetShipmentForUpdate(_ context.Context, id int64) (*domain.Shipment, error) {
	sh, ok := r.state.shipments[id]
	if !ok {
		return nil, nil
	}
	out := copyShipment(sh)
	return &out, nil
}

func (r *txRepo) ClaimAvailableDriver(_ context.Context) (*domain.Driver, error) {
	for _, d := range sortedDrivers(r.state.drivers) {
		if !d.Available {
			continue
		}
		d.Available = false
		r.state.drivers[d.ID] = d
		return &d, nil
	}
	return nil, nil
}

func (r *txRepo) UpdateShipmentStatus(_ context.Context, id int64, status domain.ShipmentStatus, driverID *int64) error {
	sh, ok := r.state.shipments[id]
	if !ok || sh.Status != domain.StatusPendingPayment {
		return fmt.Errorf("shipment %d is not pending payment: %w", id, apperr.ErrConflict)
	}
	if status == domain.StatusConfirmed && driverID != nil {
		for _, other := range r.state.shipments {
			if other.Status == domain.StatusConfirmed && other.DriverID != nil && *other.DriverID == *driverID {
				return fmt.Errorf("driver %d already assigned: %w", *driverID, apperr.ErrConflict)
			}
		}
	}
	sh.Status = status
	sh.DriverID = nil
	if driverID != nil {
		v := *driverID
		sh.DriverID = &v
	}
	sh.UpdatedAt = r.now()
	r.state.shipments[id] = sh
	return nil
}

func sortedDrivers(m map[int64]domain.Driver) []domain.Driver {
	out := make([]domain.Driver, 0, len(m))
	for _, d := range m {
		out = append(out, d)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.Before(out[j].CreatedAt)
		}
		return out[i].ID < out[j].ID
	})
	return out
}

func copyShipment(sh domain.Shipment) domain.Shipment {
	if sh.DriverID != nil {
		v := *sh.DriverID
		sh.DriverID = &v
	}
	return sh
}
