package log

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	l := New(Config{Level: LevelWarn, Encoding: EncodingConsole}, &buf)
	l.Debug("hidden")
	l.Info("hidden too")
	l.Warn("shown")
	require.NoError(t, l.Sync())

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "shown")
	assert.Contains(t, out, "WARN")
}

func TestUnknownLevelFallsBackToWarn(t *testing.T) {
	assert.Equal(t, LevelWarn, Config{Level: "chatty"}.level().String())
	assert.Equal(t, LevelDebug, Config{Level: "DEBUG"}.level().String())
}

func TestJSONEncoding(t *testing.T) {
	var buf bytes.Buffer
	l := New(Config{Level: LevelDebug, Encoding: EncodingJSON}, &buf)
	l.Debugw("key generated", "length", 48)
	require.NoError(t, l.Sync())

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "key generated", entry["MESSAGE"])
	assert.Equal(t, "DEBUG", entry["LEVEL"])
	assert.EqualValues(t, 48, entry["length"])
}
