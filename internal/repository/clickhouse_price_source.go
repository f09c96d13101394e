package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"PriceScope/internal/domain/models"
	pkgch "PriceScope/pkg/clickhouse"
	applogger "PriceScope/pkg/logger"
)

// CHPriceSource reads daily series from a ClickHouse table holding one row per
// (symbol, day). Read-only: the service never writes analysis results back.
type CHPriceSource struct {
	db    *sql.DB
	ch    *pkgch.Client
	table string
	l     *applogger.Logger
}

func NewCHPriceSource(ch *pkgch.Client, table string) *CHPriceSource {
	return &CHPriceSource{db: ch.DB(), ch: ch, table: table}
}

// SetLogger injects a structured logger.
func (s *CHPriceSource) SetLogger(l *applogger.Logger) { s.l = l }

func (s *CHPriceSource) DailySeries(ctx context.Context, symbol string) (models.PriceSeries, error) {
	start := time.Now()
	const qtpl = `
        SELECT day, price
        FROM %s
        WHERE symbol = ?
        ORDER BY day ASC
    `
	q := fmt.Sprintf(qtpl, s.table)
	rows, err := s.db.QueryContext(ctx, q, symbol)
	if err != nil {
		if s.l != nil {
			s.l.Error("clickhouse daily_series query error",
				applogger.String("table", s.table),
				applogger.String("symbol", symbol),
				applogger.Error(err),
			)
		}
		return nil, fmt.Errorf("get daily series: %w", err)
	}
	defer rows.Close()

	out := make(models.PriceSeries, 0, 1024)
	for rows.Next() {
		var p models.PricePoint
		if err := rows.Scan(&p.Date, &p.Price); err != nil {
			if s.l != nil {
				s.l.Error("clickhouse daily_series scan error",
					applogger.String("table", s.table),
					applogger.String("symbol", symbol),
					applogger.Error(err),
				)
			}
			return nil, fmt.Errorf("scan price point: %w", err)
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}
	if s.l != nil {
		s.l.Info("clickhouse daily_series ok",
			applogger.String("table", s.table),
			applogger.String("symbol", symbol),
			applogger.Int("rows", len(out)),
			applogger.Duration("duration_ms", time.Since(start)),
		)
	}
	return out, nil
}

func (s *CHPriceSource) Health(ctx context.Context) error {
	return s.ch.Health(ctx)
}

func (s *CHPriceSource) Close() error {
	return s.ch.Close()
}
