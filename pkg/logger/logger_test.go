package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, zapcore.DebugLevel, ParseLevel("debug"))
	assert.Equal(t, zapcore.WarnLevel, ParseLevel("warn"))
	assert.Equal(t, zapcore.ErrorLevel, ParseLevel("ERROR"))
	assert.Equal(t, zapcore.InfoLevel, ParseLevel(""))
	assert.Equal(t, zapcore.InfoLevel, ParseLevel("verbose"))
}

func TestWithCarriesFields(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	log := NewLoggerFromCore(core).With("runId", "abc")

	log.Info("Batch generated", "count", 5)
	log.Debug("Identifier collision")

	entries := logs.All()
	require.Len(t, entries, 2)
	assert.Equal(t, "Batch generated", entries[0].Message)
	assert.Equal(t, "abc", entries[0].ContextMap()["runId"])
	assert.EqualValues(t, 5, entries[0].ContextMap()["count"])
	assert.Equal(t, zapcore.DebugLevel, entries[1].Level)
}

func TestNopLoggerDiscards(t *testing.T) {
	log := NewNopLogger()
	assert.NotPanics(t, func() {
		log.With("k", "v").Error("ignored", "error", "boom")
	})
}
