package models

import "time"

// BandPoint is one per-index record of an outlier analysis: the observed price,
// the trailing-window statistics and the confidence band derived from them.
// Indices with insufficient history (the first window-1 points) never appear.
type BandPoint struct {
	Date     time.Time `json:"date"`
	Price    float64   `json:"price"`
	Mean     float64   `json:"mean"`
	StdDev   float64   `json:"stddev"`
	BandLow  float64   `json:"band_low"`
	BandHigh float64   `json:"band_high"`
	Outlier  bool      `json:"is_outlier"`
}

// DetectorConfig parametrizes a detector run.
type DetectorConfig struct {
	// Window is the number of consecutive trading days in the trailing window.
	Window int `json:"window"`
	// Sigma scales the standard deviation when building the confidence band.
	Sigma float64 `json:"sigma"`
}

// OutlierReport is the full result of one analysis, aligned to the input's
// chronological order and optionally subset by date range.
type OutlierReport struct {
	Symbol       string      `json:"symbol"`
	Method       string      `json:"method"`
	Window       int         `json:"window"`
	Sigma        float64     `json:"sigma"`
	From         *time.Time  `json:"from,omitempty"`
	To           *time.Time  `json:"to,omitempty"`
	Points       []BandPoint `json:"points"`
	OutlierCount int         `json:"outlier_count"`
	GeneratedAt  time.Time   `json:"generated_at"`
}

// Outliers returns only the flagged points.
func (r *OutlierReport) Outliers() []BandPoint {
	out := make([]BandPoint, 0, r.OutlierCount)
	for _, p := range r.Points {
		if p.Outlier {
			out = append(out, p)
		}
	}
	return out
}
