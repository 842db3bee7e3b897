package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/osmike/cronpick/internal/domain"
	errs "github.com/osmike/cronpick/internal/error"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, err := Load("", Flags{})
	require.NoError(t, err)
	assert.Equal(t, domain.Standard, cfg.Dialect)
	assert.Equal(t, domain.Format24, cfg.HourFormat)
	assert.Equal(t, DriverSQLite, cfg.Store.Driver)
	assert.Equal(t, 5, cfg.Preview.Count)
	assert.Equal(t, "UTC", cfg.Preview.Timezone)
}

func TestLoad_File(t *testing.T) {
	path := writeConfig(t, `
dialect: quartz
hour_format: "12"
store:
  driver: redis
  dsn: redis://localhost:6379/0
  key_prefix: "app:"
log:
  level: debug
preview:
  count: 3
  timezone: Europe/Berlin
`)
	cfg, err := Load(path, Flags{})
	require.NoError(t, err)
	assert.Equal(t, domain.Quartz, cfg.Dialect)
	assert.Equal(t, domain.Format12, cfg.HourFormat)
	assert.Equal(t, DriverRedis, cfg.Store.Driver)
	assert.Equal(t, "redis://localhost:6379/0", cfg.Store.DSN)
	assert.Equal(t, "app:", cfg.Store.KeyPrefix)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "console", cfg.Log.Format)
	assert.Equal(t, 3, cfg.Preview.Count)
	assert.Equal(t, "Europe/Berlin", cfg.Preview.Timezone)
}

func TestLoad_Precedence(t *testing.T) {
	path := writeConfig(t, "dialect: quartz\nstore:\n  driver: redis\n")
	t.Setenv("CRONPICK_DIALECT", "standard")
	t.Setenv("CRONPICK_STORE", "sqlite")

	cfg, err := Load(path, Flags{Driver: "memory"})
	require.NoError(t, err)
	assert.Equal(t, domain.Standard, cfg.Dialect)
	assert.Equal(t, DriverMemory, cfg.Store.Driver)
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"), Flags{})
	assert.Error(t, err)
}

func TestLoad_Invalid(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	_, err := Load("", Flags{Dialect: "unix"})
	assert.ErrorIs(t, err, errs.ErrUnknownDialect)

	_, err = Load("", Flags{HourFormat: "36"})
	assert.ErrorIs(t, err, errs.ErrUnknownHourFormat)

	_, err = Load("", Flags{Driver: "etcd"})
	assert.ErrorIs(t, err, errs.ErrUnknownStore)

	_, err = Load(writeConfig(t, "dialect: [unclosed"), Flags{})
	assert.Error(t, err)
}
