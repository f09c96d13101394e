package outliers

import (
	"errors"
	"math"
	"testing"
	"time"

	"PriceScope/internal/domain/models"
)

func daySeries(prices ...float64) models.PriceSeries {
	base := time.Date(2018, 5, 1, 0, 0, 0, 0, time.UTC)
	s := make(models.PriceSeries, len(prices))
	for i, p := range prices {
		s[i] = models.PricePoint{Date: base.AddDate(0, 0, i), Price: p}
	}
	return s
}

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestComputeResultLength(t *testing.T) {
	s := daySeries(1, 2, 3, 4, 5, 6, 7, 8)
	for window := 1; window <= len(s); window++ {
		res, err := Compute(s, window, 1.5)
		if err != nil {
			t.Fatalf("window %d: unexpected error %v", window, err)
		}
		if got, want := len(res), len(s)-window+1; got != want {
			t.Fatalf("window %d: got %d points, want %d", window, got, want)
		}
	}
}

func TestComputeBandOrdering(t *testing.T) {
	s := daySeries(10, 12, 9, 14, 11, 30, 8, 13)
	res, err := Compute(s, 3, 1.5)
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	for i, p := range res {
		if p.BandLow > p.Mean || p.Mean > p.BandHigh {
			t.Fatalf("point %d: band [%f, %f] does not bracket mean %f", i, p.BandLow, p.BandHigh, p.Mean)
		}
		if p.StdDev < 0 {
			t.Fatalf("point %d: negative stddev %f", i, p.StdDev)
		}
	}
}

func TestComputeBoundaryEqualityNotOutlier(t *testing.T) {
	// Constant series: stddev 0, band collapses to [mean, mean]. Every price
	// equals the band edge exactly, so nothing may be flagged.
	s := daySeries(10, 10, 10, 10, 10)
	res, err := Compute(s, 3, 1.5)
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	for i, p := range res {
		if p.Outlier {
			t.Fatalf("point %d flagged on boundary equality", i)
		}
		if !almostEqual(p.BandLow, 10) || !almostEqual(p.BandHigh, 10) {
			t.Fatalf("point %d: band [%f, %f], want collapsed at 10", i, p.BandLow, p.BandHigh)
		}
	}
}

func TestComputeSpikeScenario(t *testing.T) {
	s := daySeries(10, 10, 10, 10, 20)
	res, err := Compute(s, 4, 1.5)
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if len(res) != 2 {
		t.Fatalf("got %d points, want 2", len(res))
	}

	// Trailing [10,10,10,10]: degenerate band, price on the edge.
	if res[0].Outlier {
		t.Fatalf("flat window flagged as outlier")
	}
	if !almostEqual(res[0].Mean, 10) || !almostEqual(res[0].StdDev, 0) {
		t.Fatalf("flat window: mean %f stddev %f, want 10 and 0", res[0].Mean, res[0].StdDev)
	}

	// Trailing [10,10,10,20]: mean 12.5, population stddev sqrt(18.75).
	p := res[1]
	if !almostEqual(p.Mean, 12.5) {
		t.Fatalf("mean %f, want 12.5", p.Mean)
	}
	if !almostEqual(p.StdDev, math.Sqrt(18.75)) {
		t.Fatalf("stddev %f, want %f", p.StdDev, math.Sqrt(18.75))
	}
	if !p.Outlier {
		t.Fatalf("spike 20 above band high %f not flagged", p.BandHigh)
	}
	if p.BandHigh >= 20 {
		t.Fatalf("band high %f should sit below the spike", p.BandHigh)
	}
}

func TestComputeWindowEqualsLength(t *testing.T) {
	s := daySeries(5, 7, 6)
	res, err := Compute(s, len(s), 1.5)
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if len(res) != 1 {
		t.Fatalf("got %d points, want exactly 1", len(res))
	}
	if !res[0].Date.Equal(s[len(s)-1].Date) {
		t.Fatalf("single point at %v, want last date %v", res[0].Date, s[len(s)-1].Date)
	}
}

func TestComputeErrors(t *testing.T) {
	if _, err := Compute(nil, 5, 1.5); !errors.Is(err, ErrEmptySeries) {
		t.Fatalf("empty series: got %v, want ErrEmptySeries", err)
	}
	s := daySeries(5, 5, 5)
	if _, err := Compute(s, 5, 1.5); !errors.Is(err, ErrInvalidConfiguration) {
		t.Fatalf("oversized window: got %v, want ErrInvalidConfiguration", err)
	}
	if _, err := Compute(s, 0, 1.5); !errors.Is(err, ErrInvalidConfiguration) {
		t.Fatalf("zero window: got %v, want ErrInvalidConfiguration", err)
	}
	if _, err := Compute(s, -2, 1.5); !errors.Is(err, ErrInvalidConfiguration) {
		t.Fatalf("negative window: got %v, want ErrInvalidConfiguration", err)
	}
}

func TestComputeIdempotent(t *testing.T) {
	s := daySeries(10, 12, 9, 14, 11, 30, 8, 13, 12, 40, 11)
	a, err := Compute(s, 4, 1.5)
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	b, err := Compute(s, 4, 1.5)
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if len(a) != len(b) {
		t.Fatalf("lengths differ: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("point %d differs between runs: %+v vs %+v", i, a[i], b[i])
		}
	}
}

func TestRollingMatchesDirectComputation(t *testing.T) {
	s := daySeries(100.5, 99.2, 101.7, 98.4, 103.9, 97.1, 105.6, 96.3, 110.2, 95.8)
	window := 4
	res, err := Compute(s, window, 1.5)
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	for i, p := range res {
		end := i + window // index into s is i+window-1, trailing starts at i
		var sum float64
		for _, q := range s[i:end] {
			sum += q.Price
		}
		mean := sum / float64(window)
		var varSum float64
		for _, q := range s[i:end] {
			d := q.Price - mean
			varSum += d * d
		}
		sd := math.Sqrt(varSum / float64(window))
		if !almostEqual(p.Mean, mean) {
			t.Fatalf("point %d: running mean %f, direct %f", i, p.Mean, mean)
		}
		if !almostEqual(p.StdDev, sd) {
			t.Fatalf("point %d: running stddev %f, direct %f", i, p.StdDev, sd)
		}
	}
}
