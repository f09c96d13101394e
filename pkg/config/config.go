package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Environment string `yaml:"environment"`
	Server      struct {
		Port            int           `yaml:"port"`
		ReadTimeout     time.Duration `yaml:"read_timeout"`
		WriteTimeout    time.Duration `yaml:"write_timeout"`
		ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
	} `yaml:"server"`
	Metrics struct {
		Enabled bool   `yaml:"enabled"`
		Path    string `yaml:"path"`
	} `yaml:"metrics"`
	Logging struct {
		Level  string `yaml:"level"`
		Format string `yaml:"format"`
		Output string `yaml:"output"`
	} `yaml:"logging"`
	Data struct {
		Source string `yaml:"source"` // csv, http or clickhouse
		Symbol string `yaml:"symbol"`
		CSV    struct {
			Path string `yaml:"path"`
		} `yaml:"csv"`
		HTTP struct {
			URL     string        `yaml:"url"`
			Timeout time.Duration `yaml:"timeout"`
		} `yaml:"http"`
		ClickHouse struct {
			Host             string        `yaml:"host"`
			Port             int           `yaml:"port"`
			Database         string        `yaml:"database"`
			Table            string        `yaml:"table"`
			User             string        `yaml:"user"`
			Password         string        `yaml:"password"`
			UseHTTP          bool          `yaml:"use_http"`
			DialTimeout      time.Duration `yaml:"dial_timeout"`
			ReadTimeout      time.Duration `yaml:"read_timeout"`
			WriteTimeout     time.Duration `yaml:"write_timeout"`
			MaxExecutionTime time.Duration `yaml:"max_execution_time"`
		} `yaml:"clickhouse"`
	} `yaml:"data"`
	Analytics struct {
		Window   int           `yaml:"window"`
		Sigma    float64       `yaml:"sigma"`
		CacheTTL time.Duration `yaml:"cache_ttl"`
		Redis    struct {
			Enabled  bool   `yaml:"enabled"`
			Host     string `yaml:"host"`
			Port     int    `yaml:"port"`
			Password string `yaml:"password"`
			DB       int    `yaml:"db"`
		} `yaml:"redis"`
	} `yaml:"analytics"`
}

// Load reads and parses a YAML configuration file.
func Load(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var c Config
	if err := yaml.Unmarshal(b, &c); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	c.applyDefaults()

	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return &c, nil
}

// LoadWithEnv loads config from YAML and overrides with environment variables.
func LoadWithEnv(path string) (*Config, error) {
	c, err := Load(path)
	if err != nil {
		return nil, err
	}

	if v := os.Getenv("DATA_SOURCE"); v != "" {
		c.Data.Source = v
	}
	if v := os.Getenv("SYMBOL"); v != "" {
		c.Data.Symbol = v
	}
	if v := os.Getenv("SERIES_CSV_PATH"); v != "" {
		c.Data.CSV.Path = v
	}
	if v := os.Getenv("SERIES_URL"); v != "" {
		c.Data.HTTP.URL = v
	}
	if v := os.Getenv("CLICKHOUSE_HOST"); v != "" {
		c.Data.ClickHouse.Host = v
	}
	if v := os.Getenv("REDIS_PASSWORD"); v != "" {
		c.Analytics.Redis.Password = v
	}

	return c, nil
}

func (c *Config) applyDefaults() {
	if c.Analytics.Window == 0 {
		c.Analytics.Window = 20
	}
	if c.Analytics.Sigma == 0 {
		c.Analytics.Sigma = 1.5
	}
	if c.Analytics.CacheTTL == 0 {
		c.Analytics.CacheTTL = 15 * time.Minute
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	if c.Logging.Format == "" {
		c.Logging.Format = "console"
	}
	if c.Logging.Output == "" {
		c.Logging.Output = "stdout"
	}
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Environment == "" {
		return fmt.Errorf("environment is required")
	}
	if c.Data.Symbol == "" {
		return fmt.Errorf("data.symbol is required")
	}
	switch c.Data.Source {
	case "csv":
		if c.Data.CSV.Path == "" {
			return fmt.Errorf("data.csv.path is required for the csv source")
		}
	case "http":
		if c.Data.HTTP.URL == "" {
			return fmt.Errorf("data.http.url is required for the http source")
		}
	case "clickhouse":
		if c.Data.ClickHouse.Host == "" {
			return fmt.Errorf("data.clickhouse.host is required for the clickhouse source")
		}
		if c.Data.ClickHouse.Table == "" {
			return fmt.Errorf("data.clickhouse.table is required for the clickhouse source")
		}
	default:
		return fmt.Errorf("data.source must be 'csv', 'http' or 'clickhouse', got '%s'", c.Data.Source)
	}
	if c.Analytics.Window <= 0 {
		return fmt.Errorf("analytics.window must be positive")
	}
	if c.Analytics.Sigma <= 0 {
		return fmt.Errorf("analytics.sigma must be positive")
	}
	return nil
}
