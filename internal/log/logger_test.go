package log

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithComponent(t *testing.T) {
	var buf bytes.Buffer
	Configure(Config{Level: "debug", Output: &buf})
	t.Cleanup(func() { Configure(Config{Level: "info"}) })

	logger := WithComponent("grammar")
	logger.Debug().Str("table", "xtext.amelia").Msg("resolved")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "grammar", entry["component"])
	assert.Equal(t, "ameliaview", entry["service"])
	assert.Equal(t, "xtext.amelia", entry["table"])
	assert.Equal(t, "debug", entry["level"])
}

func TestConfigureLevel(t *testing.T) {
	var buf bytes.Buffer
	Configure(Config{Level: "warn", Output: &buf})
	t.Cleanup(func() { Configure(Config{Level: "info"}) })

	assert.Equal(t, zerolog.WarnLevel, zerolog.GlobalLevel())
	logger := Base()
	logger.Info().Msg("dropped")
	assert.Empty(t, buf.String())

	logger.Warn().Msg("kept")
	assert.Contains(t, buf.String(), "kept")
}

func TestConfigureIgnoresBadLevel(t *testing.T) {
	t.Setenv("LOG_LEVEL", "")
	Configure(Config{Level: "loud", Output: &bytes.Buffer{}})
	t.Cleanup(func() { Configure(Config{Level: "info"}) })

	assert.Equal(t, zerolog.InfoLevel, zerolog.GlobalLevel())
}
