package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const minimalDB = `
database:
  host: localhost
  name: carsdb
  user: reader
`

func TestLoad(t *testing.T) {
	tests := []struct {
		name      string
		yaml      string
		envVars   map[string]string
		wantErr   string
		checkFunc func(t *testing.T, cfg *Config)
	}{
		{
			name: "valid minimal config",
			yaml: minimalDB,
			checkFunc: func(t *testing.T, cfg *Config) {
				t.Helper()
				assert.Equal(t, "localhost", cfg.Database.Host)
				assert.Equal(t, "carsdb", cfg.Database.Name)
				assert.Equal(t, "reader", cfg.Database.User)
			},
		},
		{
			name: "defaults applied for optional fields",
			yaml: minimalDB,
			checkFunc: func(t *testing.T, cfg *Config) {
				t.Helper()
				assert.Equal(t, "0.0.0.0", cfg.Server.Host)
				assert.Equal(t, 8080, cfg.Server.Port)
				assert.Equal(t, 30*time.Second, cfg.Server.ReadTimeout)
				assert.Equal(t, 30*time.Second, cfg.Server.WriteTimeout)
				assert.Equal(t, 15*time.Second, cfg.Server.RequestTimeout)
				assert.Equal(t, 10*time.Second, cfg.Server.ShutdownTimeout)
				assert.Equal(t, 5432, cfg.Database.Port)
				assert.Equal(t, "disable", cfg.Database.SSLMode)
				assert.Equal(t, 10, cfg.Database.PoolSize)
				assert.Equal(t, 5*time.Minute, cfg.Models.CacheTTL)
				assert.InDelta(t, 18.5, cfg.TCO.PetrolPerLitre, 1e-9)
				assert.InDelta(t, 19.9, cfg.TCO.DieselPerLitre, 1e-9)
				assert.InDelta(t, 2.0, cfg.TCO.ElectricityPerKWh, 1e-9)
				assert.Equal(t, time.Hour, cfg.Schedule.SummaryInterval)
				assert.Equal(t, 5*time.Minute, cfg.Schedule.WarmupInterval)
				assert.False(t, cfg.RateLimit.Enabled)
				assert.InDelta(t, 10.0, cfg.RateLimit.PerSecond, 1e-9)
				assert.Equal(t, 20, cfg.RateLimit.Burst)
				assert.Empty(t, cfg.Telemetry.OTLPEndpoint)
				assert.Equal(t, "hela-notan", cfg.Telemetry.ServiceName)
				assert.InDelta(t, 1.0, cfg.Telemetry.SampleRatio, 1e-9)
				assert.Equal(t, "info", cfg.Logging.Level)
				assert.Equal(t, "text", cfg.Logging.Format)
			},
		},
		{
			name: "warmup follows cache ttl",
			yaml: minimalDB + `
models:
  cache_ttl: 2m
`,
			checkFunc: func(t *testing.T, cfg *Config) {
				t.Helper()
				assert.Equal(t, 2*time.Minute, cfg.Models.CacheTTL)
				assert.Equal(t, 2*time.Minute, cfg.Schedule.WarmupInterval)
			},
		},
		{
			name: "env var substitution",
			yaml: `
database:
  host: localhost
  name: carsdb
  user: reader
  password: "${TEST_HN_DB_PASSWORD}"
`,
			envVars: map[string]string{
				"TEST_HN_DB_PASSWORD": "secret123",
			},
			checkFunc: func(t *testing.T, cfg *Config) {
				t.Helper()
				assert.Equal(t, "secret123", cfg.Database.Password)
			},
		},
		{
			name: "missing required database.host",
			yaml: `
database:
  name: carsdb
  user: reader
`,
			wantErr: "database.host is required",
		},
		{
			name: "missing required database.name",
			yaml: `
database:
  host: localhost
  user: reader
`,
			wantErr: "database.name is required",
		},
		{
			name: "missing required database.user",
			yaml: `
database:
  host: localhost
  name: carsdb
`,
			wantErr: "database.user is required",
		},
		{
			name: "summary interval too short",
			yaml: minimalDB + `
schedule:
  summary_interval: 10s
`,
			wantErr: "schedule.summary_interval must be at least 1m",
		},
		{
			name: "sample ratio out of range",
			yaml: minimalDB + `
telemetry:
  sample_ratio: 1.5
`,
			wantErr: "telemetry.sample_ratio must be between 0 and 1",
		},
		{
			name: "negative energy price",
			yaml: minimalDB + `
tco:
  diesel_per_litre: -1
`,
			wantErr: "tco energy prices must not be negative",
		},
		{
			name: "invalid log format",
			yaml: minimalDB + `
logging:
  format: xml
`,
			wantErr: `logging.format must be one of: text, json (got "xml")`,
		},
		{
			name:    "invalid YAML",
			yaml:    `{{{not valid yaml`,
			wantErr: "parsing config YAML",
		},
		{
			name: "full config with overrides",
			yaml: `
server:
  host: "127.0.0.1"
  port: 9090
  read_timeout: 60s
  write_timeout: 60s
  request_timeout: 5s
database:
  host: db.example.com
  port: 5433
  name: cars_prod
  user: admin
  password: pass
  sslmode: require
  pool_size: 20
models:
  cache_ttl: 10m
tco:
  petrol_per_litre: 17.9
  diesel_per_litre: 18.4
  electricity_per_kwh: 1.6
schedule:
  summary_interval: 30m
  warmup_interval: 3m
ratelimit:
  enabled: true
  per_second: 2.5
  burst: 5
telemetry:
  otlp_endpoint: otel-collector:4317
  insecure: true
  service_name: hn-api
  sample_ratio: 0.25
logging:
  level: debug
  format: json
`,
			checkFunc: func(t *testing.T, cfg *Config) {
				t.Helper()
				assert.Equal(t, "127.0.0.1", cfg.Server.Host)
				assert.Equal(t, 9090, cfg.Server.Port)
				assert.Equal(t, 60*time.Second, cfg.Server.ReadTimeout)
				assert.Equal(t, 5*time.Second, cfg.Server.RequestTimeout)
				assert.Equal(t, "db.example.com", cfg.Database.Host)
				assert.Equal(t, 5433, cfg.Database.Port)
				assert.Equal(t, "require", cfg.Database.SSLMode)
				assert.Equal(t, 20, cfg.Database.PoolSize)
				assert.Equal(t, 10*time.Minute, cfg.Models.CacheTTL)
				assert.InDelta(t, 17.9, cfg.TCO.PetrolPerLitre, 1e-9)
				assert.InDelta(t, 1.6, cfg.TCO.ElectricityPerKWh, 1e-9)
				assert.Equal(t, 30*time.Minute, cfg.Schedule.SummaryInterval)
				assert.Equal(t, 3*time.Minute, cfg.Schedule.WarmupInterval)
				assert.True(t, cfg.RateLimit.Enabled)
				assert.InDelta(t, 2.5, cfg.RateLimit.PerSecond, 1e-9)
				assert.Equal(t, 5, cfg.RateLimit.Burst)
				assert.Equal(t, "otel-collector:4317", cfg.Telemetry.OTLPEndpoint)
				assert.True(t, cfg.Telemetry.Insecure)
				assert.Equal(t, "hn-api", cfg.Telemetry.ServiceName)
				assert.InDelta(t, 0.25, cfg.Telemetry.SampleRatio, 1e-9)
				assert.Equal(t, "debug", cfg.Logging.Level)
				assert.Equal(t, "json", cfg.Logging.Format)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Only parallelize tests that don't modify env vars.
			if len(tt.envVars) == 0 {
				t.Parallel()
			}

			for k, v := range tt.envVars {
				t.Setenv(k, v)
			}

			dir := t.TempDir()
			path := filepath.Join(dir, "config.yaml")
			require.NoError(t, os.WriteFile(path, []byte(tt.yaml), 0o644))

			cfg, err := Load(path)

			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}

			require.NoError(t, err)
			require.NotNil(t, cfg)

			if tt.checkFunc != nil {
				tt.checkFunc(t, cfg)
			}
		})
	}
}

func TestLoad_FileNotFound(t *testing.T) {
	t.Parallel()

	_, err := Load("/nonexistent/path/config.yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading config file")
}

func TestValidate_JoinsErrors(t *testing.T) {
	t.Parallel()

	cfg := &Config{}
	applyDefaults(cfg)
	err := validate(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "database.host is required")
	assert.Contains(t, err.Error(), "database.name is required")
	assert.Contains(t, err.Error(), "database.user is required")
}

func TestDatabaseConfig_DSN(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		cfg  DatabaseConfig
		want string
	}{
		{
			name: "basic DSN",
			cfg: DatabaseConfig{
				Host:     "localhost",
				Port:     5432,
				Name:     "carsdb",
				User:     "reader",
				Password: "testpass",
				SSLMode:  "disable",
			},
			want: "host=localhost port=5432 dbname=carsdb user=reader password=testpass sslmode=disable",
		},
		{
			name: "production DSN",
			cfg: DatabaseConfig{
				Host:     "db.example.com",
				Port:     5433,
				Name:     "cars",
				User:     "admin",
				Password: "s3cret",
				SSLMode:  "require",
			},
			want: "host=db.example.com port=5433 dbname=cars user=admin password=s3cret sslmode=require",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, tt.cfg.DSN())
		})
	}
}
