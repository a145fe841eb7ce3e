package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

const validConfig = `
[server]
http_port = 8083
read_timeout = 15
write_timeout = 15
idle_timeout = 60
shutdown_timeout = 10

[database]
host = "localhost"
port = 5432
user = "salon_booking"
password = "secret"
dbname = "salon_booking"
sslmode = "disable"
max_open_conns = 25
max_idle_conns = 5
conn_max_lifetime = 300

[logs]
file = "logs/service.log"
level = "info"

[metrics]
enabled = true
path = "/metrics"
service_name = "salon-booking-service"
`

func TestLoad(t *testing.T) {
	cfg, err := Load(writeConfig(t, validConfig))
	require.NoError(t, err)

	assert.Equal(t, 8083, cfg.Server.HTTPPort)
	assert.Equal(t, "localhost", cfg.Database.Host)
	assert.Equal(t, 25, cfg.Database.MaxOpenConns)
	assert.Equal(t, "info", cfg.Logs.Level)
	assert.True(t, cfg.Metrics.Enabled)
	assert.Equal(t, "/metrics", cfg.Metrics.Path)
}

func TestLoad_FileNotFound(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}

func TestLoad_InvalidTOML(t *testing.T) {
	_, err := Load(writeConfig(t, "[server\nhttp_port = 8083"))
	assert.Error(t, err)
}

func TestLoad_MissingPort(t *testing.T) {
	_, err := Load(writeConfig(t, `
[database]
host = "localhost"
dbname = "salon_booking"
`))
	assert.ErrorContains(t, err, "http_port")
}

func TestLoad_MetricsPathRequired(t *testing.T) {
	_, err := Load(writeConfig(t, `
[server]
http_port = 8083

[database]
host = "localhost"
dbname = "salon_booking"

[metrics]
enabled = true
`))
	assert.ErrorContains(t, err, "metrics.path")
}

func TestDatabaseConfig_DSN(t *testing.T) {
	cfg, err := Load(writeConfig(t, validConfig))
	require.NoError(t, err)

	assert.Equal(t,
		"host=localhost port=5432 user=salon_booking password=secret dbname=salon_booking sslmode=disable",
		cfg.Database.DSN())
}
