package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_JSON(t *testing.T) {
	var buf bytes.Buffer
	l := Logger{Level: "warn", Format: "json"}.New(&buf)

	l.Info().Msg("hidden")
	assert.Zero(t, buf.Len())

	l.Warn().Int("index", 2).Msg("bad point")
	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "warn", entry["level"])
	assert.Equal(t, "bad point", entry["message"])
	assert.Equal(t, 2.0, entry["index"])
}

func TestNew_ConsoleDefaults(t *testing.T) {
	var buf bytes.Buffer
	l := Logger{NoColor: true}.New(&buf)
	assert.Equal(t, zerolog.InfoLevel, l.GetLevel())

	l.Info().Str("polygon", "kitchen").Msg("measured")
	assert.Contains(t, buf.String(), "measured")
	assert.Contains(t, buf.String(), "polygon=kitchen")
}

func TestNew_UnknownLevel(t *testing.T) {
	l := Logger{Level: "loud"}.New(&bytes.Buffer{})
	assert.Equal(t, zerolog.InfoLevel, l.GetLevel())
}
