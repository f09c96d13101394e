package models

import "time"

// PricePoint is one daily observation of the tracked value (e.g. S&P 500 open).
type PricePoint struct {
	Date  time.Time `json:"date"`
	Price float64   `json:"price"`
}

// PriceSeries is a chronologically ordered sequence of daily observations.
// Ordering is a loader invariant: sources reject unordered input, downstream
// code may rely on ascending dates.
type PriceSeries []PricePoint

// Subset returns the points with from <= date <= to. Zero bounds are open.
func (s PriceSeries) Subset(from, to time.Time) PriceSeries {
	out := make(PriceSeries, 0, len(s))
	for _, p := range s {
		if !from.IsZero() && p.Date.Before(from) {
			continue
		}
		if !to.IsZero() && p.Date.After(to) {
			continue
		}
		out = append(out, p)
	}
	return out
}

// Prices returns the value vector in series order.
func (s PriceSeries) Prices() []float64 {
	out := make([]float64, len(s))
	for i, p := range s {
		out[i] = p.Price
	}
	return out
}
