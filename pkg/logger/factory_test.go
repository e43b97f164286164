package logger_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/localekit/pkg/logger"
)

func TestNewJSONOutput(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New(logger.WithOutput(&buf))

	log.Info("catalogs loaded", "languages", 2)

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "catalogs loaded", record["msg"])
	assert.Equal(t, "INFO", record["level"])
	assert.Equal(t, float64(2), record["languages"])
}

func TestNewTextFormat(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New(logger.WithOutput(&buf), logger.WithFormat(logger.FormatText))

	log.Info("hello")
	assert.Contains(t, buf.String(), "msg=hello")
}

func TestNewLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New(logger.WithOutput(&buf), logger.WithLevel(slog.LevelWarn))

	log.Info("dropped")
	assert.Zero(t, buf.Len())

	log.Warn("kept")
	assert.Contains(t, buf.String(), "kept")
}

func TestNewStaticAttrs(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New(logger.WithOutput(&buf), logger.WithAttr(slog.String("component", "i18n")))

	log.Info("hello")

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "i18n", record["component"])
}

func TestWithDevelopment(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New(logger.WithOutput(&buf), logger.WithDevelopment("bot"))

	log.Debug("verbose")
	out := buf.String()
	assert.Contains(t, out, "msg=verbose")
	assert.Contains(t, out, "service=bot")
}

func TestWithFormatUnknownKeepsDefault(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New(logger.WithOutput(&buf), logger.WithFormat("xml"))

	log.Info("hello")
	assert.True(t, json.Valid(buf.Bytes()))
}
