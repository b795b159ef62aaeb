package config

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
)

const (
	LogBackendSheets   = "sheets"
	LogBackendPostgres = "postgres"
)

type Config struct {
	Environment string
	Host        string `toml:"host"`
	Port        int    `toml:"port"`

	PrometheusMetricsHost string `toml:"prometheus_metrics_host"`
	PrometheusMetricsPort string `toml:"prometheus_metrics_port"`

	AllowedOrigins []string `toml:"allowed_origins"`

	// logging
	LogLevel      string `toml:"log_level"`
	LogsPath      string `toml:"logs_path"`
	LogToStdout   bool   `toml:"log_to_stdout"`
	LogFormatJSON bool   `toml:"log_format_json"`
	SentryEnabled bool   `toml:"sentry_enabled"`

	// redis (settings persistence + rate limiting)
	RedisHost string `toml:"redis_host"`
	RedisPort string `toml:"redis_port"`

	// workout log store
	LogBackend     string `toml:"log_backend"`
	SheetsEndpoint string `toml:"sheets_endpoint"`
	PostgresHost   string `toml:"postgres_host"`
	PostgresPort   string `toml:"postgres_port"`
	PostgresDBName string `toml:"postgres_db_name"`

	// schedule
	DefaultCycleStartDay int `toml:"default_cycle_start_day"`

	// coach
	GeminiModel                 string `toml:"gemini_model"`
	CoachRateLimitAllowedPerMin int    `toml:"coach_rate_limit_allowed_per_min"`
	ReportCacheSizeMB           int    `toml:"report_cache_size_mb"`
}

type Toml struct {
	Development *Config
	Production  *Config
}

func (t *Toml) Get(env string) (*Config, error) {
	var cfg *Config
	switch strings.ToLower(env) {
	case "dev", "development":
		cfg = t.Development
	case "prod", "production":
		cfg = t.Production
	default:
		return nil, fmt.Errorf("unknown env: %s", env)
	}
	if cfg == nil {
		return nil, fmt.Errorf("config for env [%s] missing", env)
	}
	return cfg, nil
}

// Load reads the TOML file at path and returns the section for env,
// with defaults filled in for zero values.
func Load(env, path string) (*Config, error) {
	var t Toml
	if _, err := toml.DecodeFile(path, &t); err != nil {
		return nil, fmt.Errorf("decode config file [%s]: %w", path, err)
	}
	return fromToml(&t, env)
}

// Parse is Load for already-read TOML content.
func Parse(env, content string) (*Config, error) {
	var t Toml
	if _, err := toml.Decode(content, &t); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	return fromToml(&t, env)
}

func fromToml(t *Toml, env string) (*Config, error) {
	cfg, err := t.Get(env)
	if err != nil {
		return nil, err
	}
	cfg.Environment = strings.ToLower(env)
	cfg.setDefaults()
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) setDefaults() {
	if c.Host == "" {
		c.Host = "localhost"
	}
	if c.Port == 0 {
		c.Port = 9000
	}
	if c.PrometheusMetricsPort == "" {
		c.PrometheusMetricsPort = "2112"
	}
	if c.LogBackend == "" {
		c.LogBackend = LogBackendSheets
	}
	if c.GeminiModel == "" {
		c.GeminiModel = "gemini-2.5-flash"
	}
	if c.CoachRateLimitAllowedPerMin == 0 {
		c.CoachRateLimitAllowedPerMin = 10
	}
	if c.ReportCacheSizeMB == 0 {
		c.ReportCacheSizeMB = 8
	}
}

func (c *Config) validate() error {
	switch c.LogBackend {
	case LogBackendSheets, LogBackendPostgres:
	default:
		return fmt.Errorf("unknown log backend: %s", c.LogBackend)
	}
	if c.DefaultCycleStartDay < 0 || c.DefaultCycleStartDay > 6 {
		return fmt.Errorf("default cycle start day must be 0-6, got %d", c.DefaultCycleStartDay)
	}
	return nil
}
