package outliers

import (
	"context"

	"PriceScope/internal/domain/models"
	domsvc "PriceScope/internal/domain/service"
)

// MethodMovingAverage is the registered name of the moving-average detector.
const MethodMovingAverage = "moving_average"

// MovingAverageDetector adapts Compute to the domain Detector contract.
type MovingAverageDetector struct{}

func NewMovingAverageDetector() *MovingAverageDetector {
	return &MovingAverageDetector{}
}

func (d *MovingAverageDetector) Name() string { return MethodMovingAverage }

func (d *MovingAverageDetector) Detect(_ context.Context, series models.PriceSeries, cfg models.DetectorConfig) ([]models.BandPoint, error) {
	return Compute(series, cfg.Window, cfg.Sigma)
}

var _ domsvc.Detector = (*MovingAverageDetector)(nil)
