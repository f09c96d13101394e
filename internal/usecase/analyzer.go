package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"PriceScope/internal/domain/models"
	domrepo "PriceScope/internal/domain/repository"
	domsvc "PriceScope/internal/domain/service"
	pkgcache "PriceScope/pkg/cache"
)

// ErrUnknownMethod is returned when a request names a detector that is not
// registered (e.g. the planned z-score and k-means methods).
var ErrUnknownMethod = errors.New("unknown detection method")

// AnalyzeParams are the resolved parameters of one analysis request.
type AnalyzeParams struct {
	Symbol string
	Method string
	Window int
	Sigma  float64
	From   time.Time
	To     time.Time
}

// OutlierAnalyzer orchestrates one analysis: load the series, run the named
// detector over the full history, subset the report by date range. Reports are
// cached when a cache is attached; the computation itself is pure.
type OutlierAnalyzer struct {
	source    domrepo.PriceSource
	detectors map[string]domsvc.Detector
	metrics   domrepo.Metrics
	cache     pkgcache.Service
	ttl       time.Duration
}

func NewOutlierAnalyzer(source domrepo.PriceSource, metrics domrepo.Metrics, detectors ...domsvc.Detector) *OutlierAnalyzer {
	m := make(map[string]domsvc.Detector, len(detectors))
	for _, d := range detectors {
		m[d.Name()] = d
	}
	return &OutlierAnalyzer{source: source, detectors: m, metrics: metrics}
}

// WithCache attaches a report cache with the given TTL.
func (a *OutlierAnalyzer) WithCache(c pkgcache.Service, ttl time.Duration) *OutlierAnalyzer {
	a.cache = c
	a.ttl = ttl
	return a
}

// Methods lists the registered detector names.
func (a *OutlierAnalyzer) Methods() []string {
	out := make([]string, 0, len(a.detectors))
	for name := range a.detectors {
		out = append(out, name)
	}
	return out
}

func (a *OutlierAnalyzer) Analyze(ctx context.Context, p AnalyzeParams) (*models.OutlierReport, error) {
	det, ok := a.detectors[p.Method]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownMethod, p.Method)
	}

	key := a.reportKey(p)
	if a.cache != nil {
		var cached models.OutlierReport
		if err := a.cache.Get(ctx, key, &cached); err == nil {
			return &cached, nil
		}
	}

	start := time.Now()
	series, err := a.source.DailySeries(ctx, p.Symbol)
	if err != nil {
		a.recordError("source")
		return nil, fmt.Errorf("load series: %w", err)
	}

	// The rolling statistics always see the full history; from/to only subset
	// the reported points, mirroring how the date filters behave downstream.
	points, err := det.Detect(ctx, series, models.DetectorConfig{Window: p.Window, Sigma: p.Sigma})
	if err != nil {
		a.recordError("detect")
		return nil, err
	}

	report := &models.OutlierReport{
		Symbol:      p.Symbol,
		Method:      p.Method,
		Window:      p.Window,
		Sigma:       p.Sigma,
		GeneratedAt: time.Now().UTC(),
	}
	if !p.From.IsZero() {
		from := p.From
		report.From = &from
	}
	if !p.To.IsZero() {
		to := p.To
		report.To = &to
	}
	report.Points = subsetPoints(points, p.From, p.To)
	for _, bp := range report.Points {
		if bp.Outlier {
			report.OutlierCount++
		}
	}

	if a.metrics != nil {
		a.metrics.RecordAnalysis(p.Method, p.Symbol)
		a.metrics.RecordOutliers(p.Symbol, report.OutlierCount)
		a.metrics.RecordLatency("analyze", time.Since(start).Seconds())
	}
	if a.cache != nil {
		_ = a.cache.Set(ctx, key, report, a.ttl)
	}
	return report, nil
}

// Series returns the raw loaded series, optionally subset by date range.
func (a *OutlierAnalyzer) Series(ctx context.Context, symbol string, from, to time.Time) (models.PriceSeries, error) {
	series, err := a.source.DailySeries(ctx, symbol)
	if err != nil {
		a.recordError("source")
		return nil, fmt.Errorf("load series: %w", err)
	}
	return series.Subset(from, to), nil
}

// Chart builds the renderable view of an analysis: the observed prices, the
// moving average, both band edges, and one marker per flagged point.
func (a *OutlierAnalyzer) Chart(ctx context.Context, p AnalyzeParams) (*models.Chart, error) {
	report, err := a.Analyze(ctx, p)
	if err != nil {
		return nil, err
	}

	n := len(report.Points)
	dates := make([]time.Time, n)
	prices := make([]float64, n)
	means := make([]float64, n)
	highs := make([]float64, n)
	lows := make([]float64, n)
	for i, bp := range report.Points {
		dates[i] = bp.Date
		prices[i] = bp.Price
		means[i] = bp.Mean
		highs[i] = bp.BandHigh
		lows[i] = bp.BandLow
	}

	chart := &models.Chart{
		Title: fmt.Sprintf("%s %s outliers (window=%d, sigma=%g)", p.Symbol, p.Method, p.Window, p.Sigma),
		Series: []models.ChartSeries{
			{Name: "price", Dates: dates, Values: prices},
			{Name: "moving_average", Dates: dates, Values: means},
			{Name: "band_high", Dates: dates, Values: highs},
			{Name: "band_low", Dates: dates, Values: lows},
		},
	}
	for _, bp := range report.Outliers() {
		chart.Markers = append(chart.Markers, models.ChartMarker{
			Date:  bp.Date,
			Value: bp.Price,
			Label: "outlier",
		})
	}
	return chart, nil
}

// Health reports the price source's availability.
func (a *OutlierAnalyzer) Health(ctx context.Context) error {
	return a.source.Health(ctx)
}

func (a *OutlierAnalyzer) recordError(kind string) {
	if a.metrics != nil {
		a.metrics.RecordError(kind)
	}
}

func (a *OutlierAnalyzer) reportKey(p AnalyzeParams) string {
	return pkgcache.GenerateKeyWithParams("report",
		p.Symbol, p.Method, p.Window, p.Sigma, p.From.Unix(), p.To.Unix())
}

func subsetPoints(points []models.BandPoint, from, to time.Time) []models.BandPoint {
	out := make([]models.BandPoint, 0, len(points))
	for _, bp := range points {
		if !from.IsZero() && bp.Date.Before(from) {
			continue
		}
		if !to.IsZero() && bp.Date.After(to) {
			continue
		}
		out = append(out, bp)
	}
	return out
}
