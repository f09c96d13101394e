package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"PriceScope/internal/domain/models"
	"PriceScope/internal/outliers"
	pkgcache "PriceScope/pkg/cache"
)

type stubSource struct {
	series models.PriceSeries
	calls  int
	err    error
}

func (s *stubSource) DailySeries(_ context.Context, _ string) (models.PriceSeries, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	return s.series, nil
}

func (s *stubSource) Health(_ context.Context) error { return nil }
func (s *stubSource) Close() error                   { return nil }

func spikeSeries() models.PriceSeries {
	base := time.Date(2018, 5, 1, 0, 0, 0, 0, time.UTC)
	prices := []float64{10, 10, 10, 10, 20}
	s := make(models.PriceSeries, len(prices))
	for i, p := range prices {
		s[i] = models.PricePoint{Date: base.AddDate(0, 0, i), Price: p}
	}
	return s
}

func newTestAnalyzer(src *stubSource) *OutlierAnalyzer {
	return NewOutlierAnalyzer(src, nil, outliers.NewMovingAverageDetector())
}

func TestAnalyzeReport(t *testing.T) {
	src := &stubSource{series: spikeSeries()}
	a := newTestAnalyzer(src)

	report, err := a.Analyze(context.Background(), AnalyzeParams{
		Symbol: "SPX",
		Method: outliers.MethodMovingAverage,
		Window: 4,
		Sigma:  1.5,
	})
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if len(report.Points) != 2 {
		t.Fatalf("got %d points, want 2", len(report.Points))
	}
	if report.OutlierCount != 1 {
		t.Fatalf("outlier count %d, want 1", report.OutlierCount)
	}
	if got := report.Outliers(); len(got) != 1 || got[0].Price != 20 {
		t.Fatalf("unexpected outliers %+v", got)
	}
}

func TestAnalyzeUnknownMethod(t *testing.T) {
	a := newTestAnalyzer(&stubSource{series: spikeSeries()})
	_, err := a.Analyze(context.Background(), AnalyzeParams{
		Symbol: "SPX",
		Method: "k_means",
		Window: 4,
		Sigma:  1.5,
	})
	if !errors.Is(err, ErrUnknownMethod) {
		t.Fatalf("got %v, want ErrUnknownMethod", err)
	}
}

func TestAnalyzePropagatesCoreErrors(t *testing.T) {
	a := newTestAnalyzer(&stubSource{series: spikeSeries()})
	_, err := a.Analyze(context.Background(), AnalyzeParams{
		Symbol: "SPX",
		Method: outliers.MethodMovingAverage,
		Window: 50,
		Sigma:  1.5,
	})
	if !errors.Is(err, outliers.ErrInvalidConfiguration) {
		t.Fatalf("got %v, want ErrInvalidConfiguration", err)
	}
}

func TestAnalyzeDateSubset(t *testing.T) {
	src := &stubSource{series: spikeSeries()}
	a := newTestAnalyzer(src)

	// Subset to the final day only. The rolling window still sees the full
	// history, so the spike keeps its trailing statistics.
	from := time.Date(2018, 5, 5, 0, 0, 0, 0, time.UTC)
	report, err := a.Analyze(context.Background(), AnalyzeParams{
		Symbol: "SPX",
		Method: outliers.MethodMovingAverage,
		Window: 4,
		Sigma:  1.5,
		From:   from,
	})
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if len(report.Points) != 1 {
		t.Fatalf("got %d points, want 1", len(report.Points))
	}
	if !report.Points[0].Outlier {
		t.Fatalf("subset point should stay flagged")
	}
	if report.From == nil || !report.From.Equal(from) {
		t.Fatalf("report from %v, want %v", report.From, from)
	}
}

func TestAnalyzeUsesCache(t *testing.T) {
	src := &stubSource{series: spikeSeries()}
	a := newTestAnalyzer(src).WithCache(pkgcache.NewMemoryCache(), time.Minute)

	params := AnalyzeParams{
		Symbol: "SPX",
		Method: outliers.MethodMovingAverage,
		Window: 4,
		Sigma:  1.5,
	}
	first, err := a.Analyze(context.Background(), params)
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	second, err := a.Analyze(context.Background(), params)
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if src.calls != 1 {
		t.Fatalf("source called %d times, want 1 (second hit served from cache)", src.calls)
	}
	if second.OutlierCount != first.OutlierCount || len(second.Points) != len(first.Points) {
		t.Fatalf("cached report diverges: %+v vs %+v", second, first)
	}
}

func TestChart(t *testing.T) {
	a := newTestAnalyzer(&stubSource{series: spikeSeries()})
	chart, err := a.Chart(context.Background(), AnalyzeParams{
		Symbol: "SPX",
		Method: outliers.MethodMovingAverage,
		Window: 4,
		Sigma:  1.5,
	})
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if len(chart.Series) != 4 {
		t.Fatalf("got %d series, want price/moving_average/band_high/band_low", len(chart.Series))
	}
	for _, s := range chart.Series {
		if len(s.Dates) != 2 || len(s.Values) != 2 {
			t.Fatalf("series %s has %d/%d entries, want 2/2", s.Name, len(s.Dates), len(s.Values))
		}
	}
	if len(chart.Markers) != 1 || chart.Markers[0].Value != 20 {
		t.Fatalf("unexpected markers %+v", chart.Markers)
	}
}

func TestSeriesSubset(t *testing.T) {
	a := newTestAnalyzer(&stubSource{series: spikeSeries()})
	from := time.Date(2018, 5, 3, 0, 0, 0, 0, time.UTC)
	to := time.Date(2018, 5, 4, 0, 0, 0, 0, time.UTC)
	series, err := a.Series(context.Background(), "SPX", from, to)
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if len(series) != 2 {
		t.Fatalf("got %d points, want 2", len(series))
	}
}
