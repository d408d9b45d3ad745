// Package config loads hotelres settings from defaults, a YAML file and the
// environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/example/hotelres/internal/db"
	"github.com/example/hotelres/internal/models"
)

// EnvPrefix scopes environment overrides, e.g. HOTELRES_LOG_LEVEL=debug.
const EnvPrefix = "HOTELRES"

// Log formats.
const (
	FormatConsole = "console"
	FormatJSON    = "json"
)

// Config holds all hotelres settings.
type Config struct {
	HotelName string      `mapstructure:"hotel_name"`
	Clerk     string      `mapstructure:"clerk"`
	Log       LogConfig   `mapstructure:"log"`
	Audit     AuditConfig `mapstructure:"audit"`
}

// LogConfig configures the process logger.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"` // "console" or "json"
}

// AuditConfig configures the reservation ledger.
type AuditConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	DSN     string `mapstructure:"dsn"`
}

// Defaults returns the built-in configuration.
func Defaults() Config {
	return Config{
		HotelName: models.DefaultHotelName,
		Clerk:     "FRONT-DESK",
		Log: LogConfig{
			Level:  "warn",
			Format: FormatConsole,
		},
		Audit: AuditConfig{
			Enabled: true,
			DSN:     db.DefaultDSN,
		},
	}
}

// SetDefaults registers Defaults() on v.
func SetDefaults(v *viper.Viper) {
	d := Defaults()
	v.SetDefault("hotel_name", d.HotelName)
	v.SetDefault("clerk", d.Clerk)
	v.SetDefault("log.level", d.Log.Level)
	v.SetDefault("log.format", d.Log.Format)
	v.SetDefault("audit.enabled", d.Audit.Enabled)
	v.SetDefault("audit.dsn", d.Audit.DSN)
}

// Load reads configuration into v and returns the merged result.
// An explicit path must exist; without one, .hotelres/config.yaml and
// ~/.config/hotelres/config.yaml are tried and silently skipped when absent.
func Load(v *viper.Viper, path string) (Config, error) {
	SetDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".hotelres")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", "hotelres"))
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate rejects settings the rest of the program cannot honor.
func (c Config) Validate() error {
	if strings.TrimSpace(c.HotelName) == "" {
		return errors.New("hotel_name must not be empty")
	}
	switch c.Log.Format {
	case FormatConsole, FormatJSON:
	default:
		return fmt.Errorf("log.format must be %q or %q, got %q", FormatConsole, FormatJSON, c.Log.Format)
	}
	return nil
}
