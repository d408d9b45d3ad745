package logging

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/hotelres/internal/config"
)

func TestNew_JSON(t *testing.T) {
	var buf bytes.Buffer
	log, err := New(&buf, config.LogConfig{Level: "info", Format: config.FormatJSON})
	require.NoError(t, err)

	log.Info().Str("id", "12345abABC").Msg("reservation added")

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "info", line["level"])
	assert.Equal(t, "hotelres", line["app"])
	assert.Equal(t, "12345abABC", line["id"])
	assert.Equal(t, "reservation added", line["message"])
}

func TestNew_LevelFilters(t *testing.T) {
	var buf bytes.Buffer
	log, err := New(&buf, config.LogConfig{Level: "WARN", Format: config.FormatJSON})
	require.NoError(t, err)

	log.Info().Msg("hidden")
	assert.Zero(t, buf.Len())

	log.Warn().Msg("shown")
	assert.Contains(t, buf.String(), "shown")
}

func TestNew_Console(t *testing.T) {
	var buf bytes.Buffer
	log, err := New(&buf, config.LogConfig{Level: "debug", Format: config.FormatConsole})
	require.NoError(t, err)

	log.Debug().Msg("console line")
	assert.Contains(t, buf.String(), "console line")
	assert.NotContains(t, buf.String(), "{")
}

func TestNew_DefaultLevel(t *testing.T) {
	log, err := New(&bytes.Buffer{}, config.LogConfig{})
	require.NoError(t, err)
	assert.Equal(t, zerolog.WarnLevel, log.GetLevel())
}

func TestNew_InvalidLevel(t *testing.T) {
	_, err := New(&bytes.Buffer{}, config.LogConfig{Level: "loud"})
	assert.Error(t, err)
}
