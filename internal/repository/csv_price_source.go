package repository

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"PriceScope/internal/domain/models"
	applogger "PriceScope/pkg/logger"
)

// dateLayout is the on-disk date format, matching the historical price dumps
// the service is fed with (Date,Open columns, ISO dates).
const dateLayout = "2006-01-02"

// CSVPriceSource serves a single symbol's daily series from a local CSV file.
// The file is re-read per request; callers are expected to cache reports.
type CSVPriceSource struct {
	symbol string
	path   string
	l      *applogger.Logger
}

func NewCSVPriceSource(symbol, path string) *CSVPriceSource {
	return &CSVPriceSource{symbol: symbol, path: path}
}

// SetLogger injects a structured logger.
func (s *CSVPriceSource) SetLogger(l *applogger.Logger) { s.l = l }

func (s *CSVPriceSource) DailySeries(ctx context.Context, symbol string) (models.PriceSeries, error) {
	if symbol != s.symbol {
		return nil, fmt.Errorf("csv source: symbol %q not available (serving %q)", symbol, s.symbol)
	}
	start := time.Now()

	f, err := os.Open(s.path)
	if err != nil {
		return nil, fmt.Errorf("open series file: %w", err)
	}
	defer f.Close()

	series, err := ParseDailyCSV(f)
	if err != nil {
		if s.l != nil {
			s.l.Error("csv parse error",
				applogger.String("path", s.path),
				applogger.String("symbol", symbol),
				applogger.Error(err),
			)
		}
		return nil, fmt.Errorf("parse series file: %w", err)
	}
	if s.l != nil {
		s.l.Info("csv series loaded",
			applogger.String("path", s.path),
			applogger.String("symbol", symbol),
			applogger.Int("rows", len(series)),
			applogger.Duration("duration_ms", time.Since(start)),
		)
	}
	_ = ctx
	return series, nil
}

func (s *CSVPriceSource) Health(_ context.Context) error {
	if _, err := os.Stat(s.path); err != nil {
		return fmt.Errorf("series file: %w", err)
	}
	return nil
}

func (s *CSVPriceSource) Close() error { return nil }

// ParseDailyCSV reads (date, price) rows into a series. The first column must
// be an ISO date, the second a float. A header row is skipped when its first
// field does not parse as a date. Rows must be in ascending date order.
func ParseDailyCSV(r io.Reader) (models.PriceSeries, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	series := make(models.PriceSeries, 0, 1024)
	line := 0
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read row: %w", err)
		}
		line++
		if len(rec) < 2 {
			return nil, fmt.Errorf("row %d: want at least 2 columns, got %d", line, len(rec))
		}

		date, err := time.Parse(dateLayout, rec[0])
		if err != nil {
			if line == 1 {
				continue // header
			}
			return nil, fmt.Errorf("row %d: bad date %q: %w", line, rec[0], err)
		}
		price, err := strconv.ParseFloat(rec[1], 64)
		if err != nil {
			return nil, fmt.Errorf("row %d: bad price %q: %w", line, rec[1], err)
		}

		if n := len(series); n > 0 && !date.After(series[n-1].Date) {
			return nil, fmt.Errorf("row %d: date %s breaks chronological order", line, rec[0])
		}
		series = append(series, models.PricePoint{Date: date, Price: price})
	}
	return series, nil
}
