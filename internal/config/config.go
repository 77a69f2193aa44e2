package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"BacktestDesk/internal/model"
)

// Config holds all application configuration.
type Config struct {
	Log struct {
		Level       string `yaml:"level"`
		Environment string `yaml:"environment"`
	} `yaml:"log"`
	Data struct {
		Symbol      string  `yaml:"symbol"`
		Interval    string  `yaml:"interval"`
		Bars        int     `yaml:"bars"`
		Seed        int64   `yaml:"seed"`
		BasePrice   float64 `yaml:"base_price"`
		StatsWindow int     `yaml:"stats_window"`
	} `yaml:"data"`
	Chart struct {
		Type string `yaml:"type"`
	} `yaml:"chart"`
	Indicators []model.Indicator `yaml:"indicators"`
	Schedule   struct {
		RefreshCron string `yaml:"refresh_cron"`
	} `yaml:"schedule"`
	Database struct {
		SQLitePath string `yaml:"sqlite_path"`
	} `yaml:"database"`
	Metrics struct {
		ListenAddr string `yaml:"listen_addr"`
	} `yaml:"metrics"`
}

// Load reads config from a YAML file and an optional .env file, then applies
// environment variable overrides and defaults. A missing file is not an error.
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

	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	// Environment variable overrides
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
	if v := os.Getenv("APP_ENV"); v != "" {
		cfg.Log.Environment = v
	}
	if v := os.Getenv("DESK_SYMBOL"); v != "" {
		cfg.Data.Symbol = v
	}
	if v := os.Getenv("DESK_INTERVAL"); v != "" {
		cfg.Data.Interval = v
	}
	if v := os.Getenv("DESK_BARS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("parse DESK_BARS: %w", err)
		}
		cfg.Data.Bars = n
	}
	if v := os.Getenv("DESK_SEED"); v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("parse DESK_SEED: %w", err)
		}
		cfg.Data.Seed = n
	}
	if v := os.Getenv("SQLITE_PATH"); v != "" {
		cfg.Database.SQLitePath = v
	}
	if v := os.Getenv("CRON_REFRESH"); v != "" {
		cfg.Schedule.RefreshCron = v
	}
	if v := os.Getenv("METRICS_ADDR"); v != "" {
		cfg.Metrics.ListenAddr = v
	}

	// Defaults
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
	if cfg.Log.Environment == "" {
		cfg.Log.Environment = "production"
	}
	if cfg.Data.Symbol == "" {
		cfg.Data.Symbol = "BTCUSD"
	}
	if cfg.Data.Interval == "" {
		cfg.Data.Interval = string(model.Interval1d)
	}
	if cfg.Data.Bars == 0 {
		cfg.Data.Bars = 90
	}
	if cfg.Data.BasePrice == 0 {
		cfg.Data.BasePrice = 42000
	}
	if cfg.Data.StatsWindow == 0 {
		cfg.Data.StatsWindow = 30
	}
	if cfg.Chart.Type == "" {
		cfg.Chart.Type = string(model.ChartArea)
	}
	if len(cfg.Indicators) == 0 {
		cfg.Indicators = model.DefaultIndicators()
	}
	if cfg.Schedule.RefreshCron == "" {
		cfg.Schedule.RefreshCron = "0 */5 * * * *"
	}
	if cfg.Database.SQLitePath == "" {
		cfg.Database.SQLitePath = "data/backtest_desk.db"
	}

	return cfg, nil
}

// Validate checks that all fields hold usable values.
func (c *Config) Validate() error {
	if _, err := model.ParseInterval(c.Data.Interval); err != nil {
		return fmt.Errorf("data.interval: %w", err)
	}
	if c.Data.Bars <= 0 {
		return fmt.Errorf("data.bars must be positive")
	}
	if c.Data.BasePrice <= 0 {
		return fmt.Errorf("data.base_price must be positive")
	}
	if c.Data.StatsWindow <= 0 {
		return fmt.Errorf("data.stats_window must be positive")
	}
	if err := c.ChartSettings(time.Now()).Validate(); err != nil {
		return err
	}
	return nil
}

// ChartSettings converts the config into chart settings covering the
// configured number of bars ending at now.
func (c *Config) ChartSettings(now time.Time) model.ChartSettings {
	interval := model.TimeInterval(c.Data.Interval)
	return model.ChartSettings{
		Type:     model.ChartType(c.Chart.Type),
		Interval: interval,
		TimeRange: model.TimeRange{
			Start: now.Add(-time.Duration(c.Data.Bars) * interval.Duration()),
			End:   now,
		},
		Indicators: c.Indicators,
	}
}
