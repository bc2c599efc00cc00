package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_Defaults(t *testing.T) {
	t.Setenv("PETCARE_POSTGRES_DSN", "")
	t.Setenv("PETCARE_DB_DRIVER", "")

	cfg, err := New()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.HTTPPort)
	assert.Equal(t, DriverMemory, cfg.DBDriver)
	assert.Equal(t, time.Sunday, cfg.FirstWeekday())
	assert.Equal(t, time.UTC, cfg.Location())
	assert.True(t, cfg.SeedSampleData)
	assert.Equal(t, ":8080", cfg.HTTPAddr())
}

func TestNew_AutoPicksPostgresWhenDSNPresent(t *testing.T) {
	t.Setenv("PETCARE_POSTGRES_DSN", "postgres://u:p@localhost:5432/petcare")
	t.Setenv("PETCARE_DB_DRIVER", "auto")

	cfg, err := New()
	require.NoError(t, err)
	assert.Equal(t, DriverPostgres, cfg.DBDriver)
}

func TestResolveDefaults_Errors(t *testing.T) {
	cases := []struct {
		name string
		mut  func(c *Config)
	}{
		{"unknown driver", func(c *Config) { c.DBDriver = "mongo" }},
		{"postgres without dsn", func(c *Config) { c.DBDriver = DriverPostgres; c.PostgresDSN = "" }},
		{"sqlite without path", func(c *Config) { c.DBDriver = DriverSQLite; c.SQLitePath = " " }},
		{"bad timezone", func(c *Config) { c.TimeZone = "Mars/Olympus" }},
		{"bad week start", func(c *Config) { c.WeekStart = "someday" }},
		{"bad port", func(c *Config) { c.HTTPPort = 0 }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := NewForTesting()
			tc.mut(cfg)
			assert.Error(t, cfg.ResolveDefaults())
		})
	}
}

func TestResolveDefaults_WeekStartMonday(t *testing.T) {
	cfg := NewForTesting()
	cfg.WeekStart = "monday"
	require.NoError(t, cfg.ResolveDefaults())
	assert.Equal(t, time.Monday, cfg.FirstWeekday())
}
