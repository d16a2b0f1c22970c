package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Supported data source providers.
const (
	ProviderYahoo     = "yahoo"
	ProviderFinanceGo = "finance-go"
)

const dateLayout = "2006-01-02"

// Config holds all application configuration.
type Config struct {
	DataSource struct {
		Provider  string `yaml:"provider"`
		Symbol    string `yaml:"symbol"`
		StartDate string `yaml:"start_date"` // YYYY-MM-DD
	} `yaml:"data_source"`
	Database struct {
		SQLitePath string `yaml:"sqlite_path"`
	} `yaml:"database"`
	Output struct {
		ChartPath string `yaml:"chart_path"`
	} `yaml:"output"`
	Proxy string `yaml:"proxy"`

	// Start is StartDate parsed at load time.
	Start time.Time `yaml:"-"`
}

// Load reads config from a YAML file, then applies environment variable overrides.
// A missing file is not an error; defaults still apply.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	// Environment variable overrides
	if v := os.Getenv("TRENDLENS_PROVIDER"); v != "" {
		cfg.DataSource.Provider = v
	}
	if v := os.Getenv("TRENDLENS_SYMBOL"); v != "" {
		cfg.DataSource.Symbol = v
	}
	if v := os.Getenv("TRENDLENS_START_DATE"); v != "" {
		cfg.DataSource.StartDate = v
	}
	if v := os.Getenv("SQLITE_PATH"); v != "" {
		cfg.Database.SQLitePath = v
	}
	if v := os.Getenv("CHART_PATH"); v != "" {
		cfg.Output.ChartPath = v
	}
	if v := os.Getenv("HTTPS_PROXY"); v != "" {
		cfg.Proxy = v
	}

	// Defaults
	if cfg.DataSource.Provider == "" {
		cfg.DataSource.Provider = ProviderYahoo
	}
	if cfg.DataSource.Symbol == "" {
		cfg.DataSource.Symbol = "BTC-USD"
	}
	if cfg.DataSource.StartDate == "" {
		cfg.DataSource.StartDate = "2023-01-01"
	}
	if cfg.Output.ChartPath == "" {
		cfg.Output.ChartPath = "out/trend.html"
	}

	start, err := time.Parse(dateLayout, cfg.DataSource.StartDate)
	if err != nil {
		return nil, fmt.Errorf("parse start_date %q: %w", cfg.DataSource.StartDate, err)
	}
	cfg.Start = start

	return cfg, nil
}

// Validate checks that all required fields are set and consistent.
func (c *Config) Validate() error {
	if c.DataSource.Symbol == "" {
		return fmt.Errorf("data_source.symbol is required")
	}
	switch c.DataSource.Provider {
	case ProviderYahoo, ProviderFinanceGo:
	default:
		return fmt.Errorf("data_source.provider %q is not supported", c.DataSource.Provider)
	}
	if c.Start.IsZero() {
		return fmt.Errorf("data_source.start_date is required")
	}
	if c.Start.After(time.Now()) {
		return fmt.Errorf("data_source.start_date %s is in the future", c.DataSource.StartDate)
	}
	if c.Output.ChartPath == "" {
		return fmt.Errorf("output.chart_path is required")
	}
	return nil
}
