package di

import (
	"fmt"

	"PriceScope/internal/domain/repository"
	"PriceScope/internal/domain/service"
	"PriceScope/internal/handler/api"
	"PriceScope/internal/outliers"
	internalrepo "PriceScope/internal/repository"
	"PriceScope/internal/usecase"
	pkgcache "PriceScope/pkg/cache"
	pkgch "PriceScope/pkg/clickhouse"
	"PriceScope/pkg/config"
	xhttp "PriceScope/pkg/http"
	applogger "PriceScope/pkg/logger"
	"PriceScope/pkg/metrics"
	"PriceScope/pkg/server"
)

// ProvideLogger creates the application logger from config.
func ProvideLogger(cfg *config.Config) (*applogger.Logger, error) {
	l, err := applogger.New(&applogger.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Output: cfg.Logging.Output,
	})
	if err != nil {
		return nil, fmt.Errorf("logger: %w", err)
	}
	return l, nil
}

// ProvideMetrics creates a Prometheus metrics recorder.
func ProvideMetrics() repository.Metrics {
	return metrics.New()
}

// ProvidePriceSource creates the configured daily-series source. The
// ClickHouse client is only dialed when that source is selected.
func ProvidePriceSource(cfg *config.Config, l *applogger.Logger) (repository.PriceSource, error) {
	switch cfg.Data.Source {
	case "csv":
		src := internalrepo.NewCSVPriceSource(cfg.Data.Symbol, cfg.Data.CSV.Path)
		src.SetLogger(l)
		return src, nil

	case "http":
		src := internalrepo.NewHTTPPriceSource(cfg.Data.Symbol, cfg.Data.HTTP.URL, cfg.Data.HTTP.Timeout)
		src.SetLogger(l)
		return src, nil

	case "clickhouse":
		ch := cfg.Data.ClickHouse
		client, err := pkgch.NewClient(
			pkgch.WithHost(ch.Host),
			pkgch.WithPort(ch.Port),
			pkgch.WithDatabase(ch.Database),
			pkgch.WithCredentials(ch.User, ch.Password),
			pkgch.WithMaxConnections(10, 5),
			pkgch.WithHTTP(ch.UseHTTP),
			pkgch.WithTimeouts(ch.DialTimeout, ch.ReadTimeout, ch.WriteTimeout),
			pkgch.WithMaxExecutionTime(ch.MaxExecutionTime),
		)
		if err != nil {
			return nil, fmt.Errorf("clickhouse client: %w", err)
		}
		table := ch.Table
		if ch.Database != "" {
			table = ch.Database + "." + ch.Table
		}
		src := internalrepo.NewCHPriceSource(client, table)
		src.SetLogger(l)
		return src, nil

	default:
		return nil, fmt.Errorf("unknown data source %q", cfg.Data.Source)
	}
}

// ProvideCache creates the report cache: layered memory+Redis when Redis is
// enabled, in-process memory otherwise.
func ProvideCache(cfg *config.Config) (pkgcache.Service, error) {
	if !cfg.Analytics.Redis.Enabled {
		return pkgcache.NewMemoryCache(), nil
	}

	rc, err := pkgcache.NewRedisCache(
		pkgcache.WithRedisHost(cfg.Analytics.Redis.Host),
		pkgcache.WithRedisPort(cfg.Analytics.Redis.Port),
		pkgcache.WithRedisPassword(cfg.Analytics.Redis.Password),
		pkgcache.WithRedisDB(cfg.Analytics.Redis.DB),
	)
	if err != nil {
		return nil, fmt.Errorf("redis cache: %w", err)
	}
	return pkgcache.NewLayeredCache(rc), nil
}

// ProvideDetectors lists the registered detection methods.
func ProvideDetectors() []service.Detector {
	return []service.Detector{
		outliers.NewMovingAverageDetector(),
	}
}

// ProvideAnalyzer creates the outlier analysis use case.
func ProvideAnalyzer(
	source repository.PriceSource,
	m repository.Metrics,
	c pkgcache.Service,
	detectors []service.Detector,
	cfg *config.Config,
) *usecase.OutlierAnalyzer {
	return usecase.NewOutlierAnalyzer(source, m, detectors...).
		WithCache(c, cfg.Analytics.CacheTTL)
}

// ProvideAPIHandler creates the Echo API handler.
func ProvideAPIHandler(l *applogger.Logger, analyzer *usecase.OutlierAnalyzer) xhttp.Handler {
	return api.NewOutliersEchoHandler(l, analyzer)
}

// ProvideApp creates the application server.
func ProvideApp(
	cfg *config.Config,
	l *applogger.Logger,
	handler xhttp.Handler,
	source repository.PriceSource,
	c pkgcache.Service,
) *server.App {
	return server.New(cfg, l, handler, source, c)
}
