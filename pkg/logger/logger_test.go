package logger

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogger_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	log, err := NewWithWriter(&buf, "warn")
	require.NoError(t, err)

	log.Info("Accept: booking id=%s", "CW001")
	log.Warn("Accept: booking id=%s is not pending", "CW002")

	out := buf.String()
	assert.NotContains(t, out, "CW001")
	assert.Contains(t, out, "booking id=CW002 is not pending")
	assert.Contains(t, out, "level=WARN")
}

func TestNew_UnknownLevel(t *testing.T) {
	_, err := New("", "verbose")
	assert.Error(t, err)
}
