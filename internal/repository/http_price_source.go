package repository

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"PriceScope/internal/domain/models"
	xhttp "PriceScope/pkg/http"
	applogger "PriceScope/pkg/logger"
)

// HTTPPriceSource fetches a daily CSV dump (same Date,Open layout as the local
// file source) from a configured URL per request.
type HTTPPriceSource struct {
	symbol string
	url    string
	client *xhttp.Client
	l      *applogger.Logger
}

func NewHTTPPriceSource(symbol, url string, timeout time.Duration) *HTTPPriceSource {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &HTTPPriceSource{
		symbol: symbol,
		url:    url,
		client: xhttp.NewClient(xhttp.WithTimeout(timeout)),
	}
}

// SetLogger injects a structured logger.
func (s *HTTPPriceSource) SetLogger(l *applogger.Logger) { s.l = l }

func (s *HTTPPriceSource) DailySeries(ctx context.Context, symbol string) (models.PriceSeries, error) {
	if symbol != s.symbol {
		return nil, fmt.Errorf("http source: symbol %q not available (serving %q)", symbol, s.symbol)
	}
	start := time.Now()

	var body []byte
	err := s.client.SendAndParse(ctx, &xhttp.RequestOptions{
		Method: xhttp.MethodGet,
		URL:    s.url,
	}, &body)
	if err != nil {
		if s.l != nil {
			s.l.Error("series fetch error",
				applogger.String("url", s.url),
				applogger.String("symbol", symbol),
				applogger.Error(err),
			)
		}
		return nil, fmt.Errorf("fetch series: %w", err)
	}

	series, err := ParseDailyCSV(bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("parse fetched series: %w", err)
	}
	if s.l != nil {
		s.l.Info("series fetched",
			applogger.String("url", s.url),
			applogger.String("symbol", symbol),
			applogger.Int("rows", len(series)),
			applogger.Duration("duration_ms", time.Since(start)),
		)
	}
	return series, nil
}

func (s *HTTPPriceSource) Health(ctx context.Context) error {
	err := s.client.SendAndParse(ctx, &xhttp.RequestOptions{
		Method: xhttp.MethodGet,
		URL:    s.url,
	}, nil)
	if err != nil {
		return fmt.Errorf("series endpoint: %w", err)
	}
	return nil
}

func (s *HTTPPriceSource) Close() error { return nil }
