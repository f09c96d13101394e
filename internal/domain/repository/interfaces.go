package repository

import (
	"context"

	"PriceScope/internal/domain/models"
)

// PriceSource loads a full daily price series for a symbol. Implementations
// must return the series in ascending date order; downstream code relies on it.
type PriceSource interface {
	DailySeries(ctx context.Context, symbol string) (models.PriceSeries, error)
	Health(ctx context.Context) error
	Close() error
}

type Metrics interface {
	RecordAnalysis(method, symbol string)
	RecordOutliers(symbol string, count int)
	RecordError(kind string)
	RecordLatency(op string, seconds float64)
}
