package outliers

import (
	"fmt"

	"PriceScope/internal/domain/models"
)

// DefaultSigma is the band width multiplier used when a request does not set one.
const DefaultSigma = 1.5

// Compute runs the moving-average confidence-band detector over a
// chronologically ordered series. For each index i >= window-1 it takes the
// mean and standard deviation of the trailing window ending at i, builds the
// band mean +/- sigma*stddev and flags prices strictly outside it. Equality
// with a band edge is not an outlier.
//
// Standard deviation uses the population convention (divide by N); the sample
// convention would widen the band and change boundary cases.
//
// The result covers indices window-1 .. len(series)-1 in input order; earlier
// indices have no defined rolling statistic and are excluded, not flagged.
// Pure function: no side effects, identical inputs give identical output.
func Compute(series models.PriceSeries, window int, sigma float64) ([]models.BandPoint, error) {
	if len(series) == 0 {
		return nil, ErrEmptySeries
	}
	if window <= 0 {
		return nil, fmt.Errorf("%w: window %d must be positive", ErrInvalidConfiguration, window)
	}
	if window > len(series) {
		return nil, fmt.Errorf("%w: window %d exceeds series length %d", ErrInvalidConfiguration, window, len(series))
	}
	if sigma <= 0 {
		sigma = DefaultSigma
	}

	roll := newRollingStats(window)
	out := make([]models.BandPoint, 0, len(series)-window+1)
	for _, p := range series {
		roll.add(p.Price)
		if !roll.full() {
			continue
		}
		mean := roll.mean()
		sd := roll.stdDev()
		low := mean - sigma*sd
		high := mean + sigma*sd
		out = append(out, models.BandPoint{
			Date:     p.Date,
			Price:    p.Price,
			Mean:     mean,
			StdDev:   sd,
			BandLow:  low,
			BandHigh: high,
			Outlier:  p.Price < low || p.Price > high,
		})
	}
	return out, nil
}
