package logging_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/veldhost/veld/logging"
)

// TestLevel_String verifies level names, including the out-of-range case.
func TestLevel_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "DEBUG", logging.LevelDebug.String())
	assert.Equal(t, "INFO", logging.LevelInfo.String())
	assert.Equal(t, "WARN", logging.LevelWarn.String())
	assert.Equal(t, "ERROR", logging.LevelError.String())
	assert.Equal(t, "UNKNOWN", logging.Level(42).String())
}

// TestNew_LevelFiltering verifies records below the configured level are
// dropped and the rest carry level and message.
func TestNew_LevelFiltering(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := logging.New(&buf, logging.LevelWarn)

	log.Debug("too quiet")
	log.Info("still too quiet")
	log.Warn("loud enough", "k", "v")

	out := buf.String()
	assert.NotContains(t, out, "too quiet")
	assert.Contains(t, out, "level=WARN")
	assert.Contains(t, out, "loud enough")
	assert.Contains(t, out, "k=v")
}

// TestWith verifies attached attributes appear on subsequent records.
func TestWith(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := logging.New(&buf, logging.LevelInfo).With("plugin", "myplugin")

	log.Info("hello")
	require.Contains(t, buf.String(), "plugin=myplugin")
	assert.Contains(t, buf.String(), "msg=hello")
}
