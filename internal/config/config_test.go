package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/hotelres/internal/db"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestDefaults(t *testing.T) {
	d := Defaults()

	assert.Equal(t, "The Grand Budapest Hotel", d.HotelName)
	assert.Equal(t, "FRONT-DESK", d.Clerk)
	assert.Equal(t, "warn", d.Log.Level)
	assert.Equal(t, FormatConsole, d.Log.Format)
	assert.True(t, d.Audit.Enabled)
	assert.Equal(t, db.DefaultDSN, d.Audit.DSN)
	assert.NoError(t, d.Validate())
}

func TestLoad_File(t *testing.T) {
	path := writeConfig(t, `
hotel_name: Hotel Lux
clerk: NIGHT-SHIFT
log:
  level: debug
  format: json
audit:
  enabled: false
`)

	cfg, err := Load(viper.New(), path)
	require.NoError(t, err)

	assert.Equal(t, "Hotel Lux", cfg.HotelName)
	assert.Equal(t, "NIGHT-SHIFT", cfg.Clerk)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, FormatJSON, cfg.Log.Format)
	assert.False(t, cfg.Audit.Enabled)
	// Unset keys keep their defaults.
	assert.Equal(t, db.DefaultDSN, cfg.Audit.DSN)
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	_, err := Load(viper.New(), filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
}

func TestLoad_NoFileUsesDefaults(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("HOME", t.TempDir())

	cfg, err := Load(viper.New(), "")
	require.NoError(t, err)
	assert.Equal(t, Defaults(), cfg)
}

func TestLoad_EnvOverride(t *testing.T) {
	path := writeConfig(t, "clerk: DAY-SHIFT\n")
	t.Setenv("HOTELRES_CLERK", "ENV-CLERK")
	t.Setenv("HOTELRES_LOG_LEVEL", "error")

	cfg, err := Load(viper.New(), path)
	require.NoError(t, err)

	assert.Equal(t, "ENV-CLERK", cfg.Clerk)
	assert.Equal(t, "error", cfg.Log.Level)
}

func TestLoad_InvalidFormat(t *testing.T) {
	path := writeConfig(t, "log:\n  format: xml\n")

	_, err := Load(viper.New(), path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "log.format")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{name: "defaults", mutate: func(*Config) {}},
		{name: "blank hotel name", mutate: func(c *Config) { c.HotelName = "  " }, wantErr: true},
		{name: "json format", mutate: func(c *Config) { c.Log.Format = FormatJSON }},
		{name: "unknown format", mutate: func(c *Config) { c.Log.Format = "pretty" }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Defaults()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
