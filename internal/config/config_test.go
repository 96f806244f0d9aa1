package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_AppliesDefaults(t *testing.T) {
	path := writeConfig(t, `
[server]
http_port = 9090

[database]
dbname = "schedule"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.HTTPPort)
	assert.Equal(t, "schedule", cfg.Database.DBName)
	assert.Equal(t, 5432, cfg.Database.Port)
	assert.Equal(t, domain.DefaultWindowDays, cfg.Schedule.WindowDays)
	assert.Equal(t, domain.PolicyOverlap, cfg.Schedule.Policy())
	assert.Equal(t, 3*time.Second, cfg.Schedule.StoreTimeout())

	wh, err := cfg.Schedule.WorkingHours()
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultWorkingHours(), wh)
}

func TestLoad_Schedule(t *testing.T) {
	path := writeConfig(t, `
[schedule]
work_start = "10:00"
work_end = "16:00"
interval_minutes = 45
default_service_duration_minutes = 60
window_days = 14
conflict_policy = "exact"
fit_service_before_close = true
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	wh, err := cfg.Schedule.WorkingHours()
	require.NoError(t, err)
	assert.Equal(t, "10:00", wh.Start.String())
	assert.Equal(t, "16:00", wh.End.String())
	assert.Equal(t, 45, wh.IntervalMinutes)
	assert.Equal(t, domain.PolicyExact, cfg.Schedule.Policy())
	assert.True(t, cfg.Schedule.FitServiceBeforeClose)
	assert.Equal(t, 14, cfg.Schedule.WindowDays)
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"malformed toml", `[server`},
		{"bad port", "[server]\nhttp_port = 0"},
		{"start after end", "[schedule]\nwork_start = \"18:00\"\nwork_end = \"09:00\""},
		{"bad clock", "[schedule]\nwork_start = \"9:00\""},
		{"zero interval", "[schedule]\ninterval_minutes = 0"},
		{"zero duration", "[schedule]\ndefault_service_duration_minutes = 0"},
		{"window above max", "[schedule]\nwindow_days = 100\nmax_window_days = 90"},
		{"unknown policy", "[schedule]\nconflict_policy = \"strict\""},
		{"zero store timeout", "[schedule]\nstore_timeout_seconds = 0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.content))
			assert.Error(t, err)
		})
	}

	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}

func TestDSN(t *testing.T) {
	d := DatabaseConfig{Host: "db", Port: 5433, User: "u", Password: "p", DBName: "n", SSLMode: "disable"}
	assert.Equal(t, "host=db port=5433 user=u password=p dbname=n sslmode=disable", d.DSN())
}
