package service

import (
	"context"

	"PriceScope/internal/domain/models"
)

// Detector finds outliers in a chronologically ordered price series.
// moving_average is the only implementation today; planned methods (z-score,
// k-means proximity) plug in behind the same contract.
type Detector interface {
	Name() string
	Detect(ctx context.Context, series models.PriceSeries, cfg models.DetectorConfig) ([]models.BandPoint, error)
}
