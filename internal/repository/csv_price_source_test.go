package repository

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestParseDailyCSVWithHeader(t *testing.T) {
	in := "Date,Open\n2018-05-01,2650.25\n2018-05-02,2655.10\n2018-05-03,2612.40\n"
	series, err := ParseDailyCSV(strings.NewReader(in))
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if len(series) != 3 {
		t.Fatalf("got %d points, want 3", len(series))
	}
	want := time.Date(2018, 5, 1, 0, 0, 0, 0, time.UTC)
	if !series[0].Date.Equal(want) {
		t.Fatalf("first date %v, want %v", series[0].Date, want)
	}
	if series[2].Price != 2612.40 {
		t.Fatalf("last price %f, want 2612.40", series[2].Price)
	}
}

func TestParseDailyCSVNoHeader(t *testing.T) {
	in := "2018-05-01,2650.25\n2018-05-02,2655.10\n"
	series, err := ParseDailyCSV(strings.NewReader(in))
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if len(series) != 2 {
		t.Fatalf("got %d points, want 2", len(series))
	}
}

func TestParseDailyCSVRejectsUnordered(t *testing.T) {
	in := "2018-05-02,2655.10\n2018-05-01,2650.25\n"
	if _, err := ParseDailyCSV(strings.NewReader(in)); err == nil {
		t.Fatalf("expected chronological order error")
	}
}

func TestParseDailyCSVRejectsBadPrice(t *testing.T) {
	in := "2018-05-01,abc\n"
	if _, err := ParseDailyCSV(strings.NewReader(in)); err == nil {
		t.Fatalf("expected price parse error")
	}
}

func TestCSVPriceSourceDailySeries(t *testing.T) {
	path := filepath.Join(t.TempDir(), "spx.csv")
	data := "Date,Open\n2018-05-01,2650.25\n2018-05-02,2655.10\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	src := NewCSVPriceSource("SPX", path)
	series, err := src.DailySeries(context.Background(), "SPX")
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if len(series) != 2 {
		t.Fatalf("got %d points, want 2", len(series))
	}

	if _, err := src.DailySeries(context.Background(), "AAPL"); err == nil {
		t.Fatalf("expected error for unknown symbol")
	}
	if err := src.Health(context.Background()); err != nil {
		t.Fatalf("health: %v", err)
	}
}
