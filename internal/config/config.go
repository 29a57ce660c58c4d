// Package config handles loading and validating the application configuration
// from YAML files with environment variable substitution.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the top-level application configuration.
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Database  DatabaseConfig  `yaml:"database"`
	Models    ModelsConfig    `yaml:"models"`
	TCO       TCOConfig       `yaml:"tco"`
	Schedule  ScheduleConfig  `yaml:"schedule"`
	RateLimit RateLimitConfig `yaml:"ratelimit"`
	Telemetry TelemetryConfig `yaml:"telemetry"`
	Logging   LoggingConfig   `yaml:"logging"`
}

// ServerConfig defines the Echo HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"`
	Port            int           `yaml:"port"`
	ReadTimeout     time.Duration `yaml:"read_timeout"`
	WriteTimeout    time.Duration `yaml:"write_timeout"`
	RequestTimeout  time.Duration `yaml:"request_timeout"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
}

// DatabaseConfig defines PostgreSQL connection settings.
type DatabaseConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	Name     string `yaml:"name"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	SSLMode  string `yaml:"sslmode"`
	PoolSize int    `yaml:"pool_size"`
}

// DSN returns a PostgreSQL connection string.
func (d *DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d dbname=%s user=%s password=%s sslmode=%s",
		d.Host, d.Port, d.Name, d.User, d.Password, d.SSLMode,
	)
}

// ModelsConfig defines the regression snapshot cache.
type ModelsConfig struct {
	CacheTTL time.Duration `yaml:"cache_ttl"`
}

// TCOConfig defines energy unit prices in SEK.
type TCOConfig struct {
	PetrolPerLitre    float64 `yaml:"petrol_per_litre"`
	DieselPerLitre    float64 `yaml:"diesel_per_litre"`
	ElectricityPerKWh float64 `yaml:"electricity_per_kwh"`
}

// ScheduleConfig defines cron intervals.
type ScheduleConfig struct {
	SummaryInterval time.Duration `yaml:"summary_interval"`
	WarmupInterval  time.Duration `yaml:"warmup_interval"` // default: models.cache_ttl
}

// RateLimitConfig defines per-client API rate limiting.
type RateLimitConfig struct {
	Enabled   bool    `yaml:"enabled"`
	PerSecond float64 `yaml:"per_second"`
	Burst     int     `yaml:"burst"`
}

// TelemetryConfig defines OpenTelemetry tracing. An empty endpoint disables
// export.
type TelemetryConfig struct {
	OTLPEndpoint string  `yaml:"otlp_endpoint"`
	Insecure     bool    `yaml:"insecure"`
	ServiceName  string  `yaml:"service_name"`
	SampleRatio  float64 `yaml:"sample_ratio"`
}

// LoggingConfig defines logging settings.
type LoggingConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // text, json
}

// Load reads and parses a YAML config file, performing environment variable
// substitution and validation.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // config path from trusted CLI flag
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	// Expand environment variables in the YAML content.
	expanded := os.ExpandEnv(string(data))

	cfg := &Config{}
	if err := yaml.Unmarshal([]byte(expanded), cfg); err != nil {
		return nil, fmt.Errorf("parsing config YAML: %w", err)
	}

	applyDefaults(cfg)

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

func applyDefaults(cfg *Config) {
	applyServerDefaults(&cfg.Server)
	applyDatabaseDefaults(&cfg.Database)
	applyModelsDefaults(&cfg.Models)
	applyTCODefaults(&cfg.TCO)
	applyScheduleDefaults(&cfg.Schedule, cfg.Models)
	applyRateLimitDefaults(&cfg.RateLimit)
	applyTelemetryDefaults(&cfg.Telemetry)
	applyLoggingDefaults(&cfg.Logging)
}

func applyServerDefaults(s *ServerConfig) {
	if s.Host == "" {
		s.Host = "0.0.0.0"
	}
	if s.Port == 0 {
		s.Port = 8080
	}
	if s.ReadTimeout == 0 {
		s.ReadTimeout = 30 * time.Second
	}
	if s.WriteTimeout == 0 {
		s.WriteTimeout = 30 * time.Second
	}
	if s.RequestTimeout == 0 {
		s.RequestTimeout = 15 * time.Second
	}
	if s.ShutdownTimeout == 0 {
		s.ShutdownTimeout = 10 * time.Second
	}
}

func applyDatabaseDefaults(d *DatabaseConfig) {
	if d.Port == 0 {
		d.Port = 5432
	}
	if d.SSLMode == "" {
		d.SSLMode = "disable"
	}
	if d.PoolSize == 0 {
		d.PoolSize = 10
	}
}

func applyModelsDefaults(m *ModelsConfig) {
	if m.CacheTTL == 0 {
		m.CacheTTL = 5 * time.Minute
	}
}

func applyTCODefaults(t *TCOConfig) {
	if t.PetrolPerLitre == 0 {
		t.PetrolPerLitre = 18.5
	}
	if t.DieselPerLitre == 0 {
		t.DieselPerLitre = 19.9
	}
	if t.ElectricityPerKWh == 0 {
		t.ElectricityPerKWh = 2.0
	}
}

func applyScheduleDefaults(s *ScheduleConfig, m ModelsConfig) {
	if s.SummaryInterval == 0 {
		s.SummaryInterval = time.Hour
	}
	if s.WarmupInterval == 0 {
		s.WarmupInterval = m.CacheTTL
	}
}

func applyRateLimitDefaults(r *RateLimitConfig) {
	if r.PerSecond == 0 {
		r.PerSecond = 10
	}
	if r.Burst == 0 {
		r.Burst = 20
	}
}

func applyTelemetryDefaults(t *TelemetryConfig) {
	if t.ServiceName == "" {
		t.ServiceName = "hela-notan"
	}
	if t.SampleRatio == 0 {
		t.SampleRatio = 1.0
	}
}

func applyLoggingDefaults(l *LoggingConfig) {
	if l.Level == "" {
		l.Level = "info"
	}
	if l.Format == "" {
		l.Format = "text"
	}
}

func validate(cfg *Config) error {
	var errs []error

	if cfg.Database.Host == "" {
		errs = append(errs, fmt.Errorf("database.host is required"))
	}
	if cfg.Database.Name == "" {
		errs = append(errs, fmt.Errorf("database.name is required"))
	}
	if cfg.Database.User == "" {
		errs = append(errs, fmt.Errorf("database.user is required"))
	}
	if cfg.Database.PoolSize < 1 || cfg.Database.PoolSize > 1000 {
		errs = append(errs, fmt.Errorf("database.pool_size must be between 1 and 1000 (got %d)", cfg.Database.PoolSize))
	}

	if cfg.Models.CacheTTL < 0 {
		errs = append(errs, fmt.Errorf("models.cache_ttl must not be negative"))
	}

	if cfg.TCO.PetrolPerLitre < 0 || cfg.TCO.DieselPerLitre < 0 || cfg.TCO.ElectricityPerKWh < 0 {
		errs = append(errs, fmt.Errorf("tco energy prices must not be negative"))
	}

	if cfg.Schedule.SummaryInterval < time.Minute {
		errs = append(errs, fmt.Errorf(
			"schedule.summary_interval must be at least 1m (got %s)", cfg.Schedule.SummaryInterval,
		))
	}

	if cfg.RateLimit.Enabled && cfg.RateLimit.PerSecond < 0 {
		errs = append(errs, fmt.Errorf("ratelimit.per_second must not be negative"))
	}

	if cfg.Telemetry.SampleRatio < 0 || cfg.Telemetry.SampleRatio > 1 {
		errs = append(errs, fmt.Errorf(
			"telemetry.sample_ratio must be between 0 and 1 (got %g)", cfg.Telemetry.SampleRatio,
		))
	}

	switch cfg.Logging.Format {
	case "text", "json":
	default:
		errs = append(errs, fmt.Errorf("logging.format must be one of: text, json (got %q)", cfg.Logging.Format))
	}

	return errors.Join(errs...)
}
