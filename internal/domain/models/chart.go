package models

import "time"

// Chart is a renderable view of an analysis: line series plus outlier markers.
// It is a pure data structure; actual rendering is the consumer's concern.
type Chart struct {
	Title   string        `json:"title"`
	Series  []ChartSeries `json:"series"`
	Markers []ChartMarker `json:"markers"`
}

// ChartSeries is one named line (prices, moving average, band edge).
type ChartSeries struct {
	Name   string      `json:"name"`
	Dates  []time.Time `json:"dates"`
	Values []float64   `json:"values"`
}

// ChartMarker is a single highlighted point.
type ChartMarker struct {
	Date  time.Time `json:"date"`
	Value float64   `json:"value"`
	Label string    `json:"label"`
}
