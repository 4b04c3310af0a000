package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleConfig = `
[server]
http_port = 8090

[logs]
level = "debug"

[booking]
window_days = 14
toast_ttl_ms = 3000
simulation_enabled = false

[auth]
jwt_secret = "file-secret"
revocation_store = "redis"
dev_token_ttl_minutes = 60

[redis]
address = "redis:6379"

[database]
enabled = true
host = "db"
port = 5433
user = "wash"
dbname = "users"
`

func TestParse(t *testing.T) {
	cfg, err := Parse([]byte(sampleConfig))
	require.NoError(t, err)

	assert.Equal(t, 8090, cfg.Server.HTTPPort)
	assert.Equal(t, 15, cfg.Server.ReadTimeout)
	assert.Equal(t, "debug", cfg.Logs.Level)
	assert.Equal(t, "/metrics", cfg.Metrics.Path)

	assert.Equal(t, 14, cfg.Booking.WindowDays)
	assert.Equal(t, 3*time.Second, cfg.Booking.ToastTTL())
	assert.False(t, cfg.Booking.SimulationEnabled)
	assert.Equal(t, 30*time.Second, cfg.Booking.SimulationInterval())

	assert.Equal(t, "file-secret", cfg.Auth.JWTSecret)
	assert.Equal(t, RevocationStoreRedis, cfg.Auth.RevocationStore)
	assert.Equal(t, time.Hour, cfg.Auth.DevTokenTTL())

	assert.Equal(t, "host=db port=5433 user=wash password= dbname=users sslmode=disable", cfg.Database.DSN())
}

func TestParse_EnvOverrides(t *testing.T) {
	t.Setenv(EnvJWTSecret, "env-secret")
	t.Setenv(EnvHTTPPort, "9000")
	t.Setenv(EnvDBPassword, "pg-pass")
	t.Setenv(EnvRedisPassword, "redis-pass")
	t.Setenv(EnvLogLevel, "warn")

	cfg, err := Parse([]byte(sampleConfig))
	require.NoError(t, err)

	assert.Equal(t, "env-secret", cfg.Auth.JWTSecret)
	assert.Equal(t, 9000, cfg.Server.HTTPPort)
	assert.Equal(t, "pg-pass", cfg.Database.Password)
	assert.Equal(t, "redis-pass", cfg.Redis.Password)
	assert.Equal(t, "warn", cfg.Logs.Level)
}

func TestParse_Errors(t *testing.T) {
	t.Setenv(EnvJWTSecret, "")

	tests := []struct {
		name    string
		data    string
		wantErr error
	}{
		{name: "broken toml", data: "[server\nhttp_port = 1", wantErr: ErrParse},
		{name: "missing secret", data: "", wantErr: ErrValidation},
		{name: "bad port", data: "[server]\nhttp_port = 70000\n[auth]\njwt_secret = \"s\"", wantErr: ErrValidation},
		{name: "bad window", data: "[booking]\nwindow_days = 0\n[auth]\njwt_secret = \"s\"", wantErr: ErrValidation},
		{name: "unknown store", data: "[auth]\njwt_secret = \"s\"\nrevocation_store = \"etcd\"", wantErr: ErrValidation},
		{name: "db without name", data: "[auth]\njwt_secret = \"s\"\n[database]\nenabled = true", wantErr: ErrValidation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.data))
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
		})
	}
}

func TestParse_InvalidEnvPort(t *testing.T) {
	t.Setenv(EnvHTTPPort, "http")

	_, err := Parse([]byte(sampleConfig))
	assert.True(t, errors.Is(err, ErrParse))
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(sampleConfig), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 14, cfg.Booking.WindowDays)

	_, err = Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.True(t, errors.Is(err, ErrRead))
}
