package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlogLogger_JSONOutput(t *testing.T) {
	var buf bytes.Buffer
	l := NewSlogLoggerTo(&buf, "json", "info")

	l.Infof("created question %d", 7)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "INFO", entry["level"])
	assert.Equal(t, "created question 7", entry["msg"])
}

func TestSlogLogger_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	l := NewSlogLoggerTo(&buf, "text", "warn")

	l.Debugf("hidden")
	l.Infof("hidden too")
	assert.Empty(t, buf.String())

	l.Warningf("feed cache %s", "down")
	assert.Contains(t, buf.String(), "level=WARN")
	assert.Contains(t, buf.String(), "feed cache down")
}
