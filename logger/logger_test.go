package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/tranvictor/explink/config"
)

func TestNewLoggerLevels(t *testing.T) {
	tests := []struct {
		level     string
		wantDebug bool
		wantInfo  bool
	}{
		{"debug", true, true},
		{"info", false, true},
		{"error", false, false},
		{"WARN", false, false},
		{"", false, true},
	}
	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			l, err := newLogger(config.LoggerConfig{Level: tt.level}, zapcore.AddSync(&bytes.Buffer{}))
			require.NoError(t, err)
			assert.Equal(t, tt.wantDebug, l.Core().Enabled(zap.DebugLevel))
			assert.Equal(t, tt.wantInfo, l.Core().Enabled(zap.InfoLevel))
		})
	}
}

func TestNewLoggerJSONEncoding(t *testing.T) {
	buf := &bytes.Buffer{}
	l, err := newLogger(config.LoggerConfig{Level: "info", Encoding: "json"}, zapcore.AddSync(buf))
	require.NoError(t, err)

	l.Info("Resolved explorer base path", zap.String("network", "tezos"))
	require.NoError(t, l.Sync())

	entry := map[string]interface{}{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "Resolved explorer base path", entry["msg"])
	assert.Equal(t, "tezos", entry["network"])
	assert.Contains(t, entry, "timestamp")
}

func TestNewLoggerRejectsBadConfig(t *testing.T) {
	_, err := newLogger(config.LoggerConfig{Level: "not-a-level"}, zapcore.AddSync(&bytes.Buffer{}))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not-a-level")

	_, err = newLogger(config.LoggerConfig{Level: "info", Encoding: "xml"}, zapcore.AddSync(&bytes.Buffer{}))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "xml")
}
