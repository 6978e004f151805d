package booking

import (
	"fmt"
	"math"

	"freight-booking/internal/config"
	"freight-booking/internal/domain"
)

type flatTariff struct {
	rates map[domain.ShipmentType]int64
}

// NewTariff returns a flat per-type rate multiplied by weight.
func NewTariff(cfg config.Tariff) Tariff {
	return flatTariff{rates: map[domain.ShipmentType]int64{
		domain.TypeDomestic:      cfg.DomesticRate,
		domain.TypeInternational: cfg.InternationalRate,
	}}
}

// Quote returns rate(t) × weight rounded half away from zero.
func (f flatTariff) Quote(t domain.ShipmentType, weight float64) (int64, error) {
	rate, ok := f.rates[t]
	if !ok {
		return 0, fmt.Errorf("unknown shipment type: %s", t)
	}
	total := math.Round(float64(rate) * weight)
	// float64(math.MaxInt64) is 2^63, which does not fit in int64.
	if math.IsInf(total, 0) || total >= math.MaxInt64 {
		return 0, fmt.Errorf("tariff overflow for weight %v", weight)
	}
	return int64(total), nil
}
