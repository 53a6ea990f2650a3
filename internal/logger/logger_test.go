package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type logEntry struct {
	Level   string `json:"level"`
	Message string `json:"message"`
	Path    string `json:"path"`
}

func TestLogger(t *testing.T) {
	tests := []struct {
		name      string
		verbosity int
		logFunc   func(Logger)
		wantLevel string
		wantMsg   string
		shouldLog bool
	}{
		{
			name:      "warn at default verbosity",
			verbosity: 0,
			logFunc:   func(l Logger) { l.Warn("warn message") },
			wantLevel: "warn",
			wantMsg:   "warn message",
			shouldLog: true,
		},
		{
			name:      "info hidden at default verbosity",
			verbosity: 0,
			logFunc:   func(l Logger) { l.Info("info message") },
		},
		{
			name:      "info shown at verbosity 1",
			verbosity: 1,
			logFunc:   func(l Logger) { l.Info("info message") },
			wantLevel: "info",
			wantMsg:   "info message",
			shouldLog: true,
		},
		{
			name:      "debug hidden at verbosity 1",
			verbosity: 1,
			logFunc:   func(l Logger) { l.Debug("debug message") },
		},
		{
			name:      "trace hidden at verbosity 2",
			verbosity: 2,
			logFunc:   func(l Logger) { l.Trace("trace message") },
		},
		{
			name:      "trace shown at verbosity 3",
			verbosity: 3,
			logFunc:   func(l Logger) { l.Trace("trace message") },
			wantLevel: "debug",
			wantMsg:   "TRACE: trace message",
			shouldLog: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			log := NewLogger(Config{Verbosity: tt.verbosity, Output: &buf})

			tt.logFunc(log)

			if !tt.shouldLog {
				assert.Empty(t, buf.String())
				return
			}
			var entry logEntry
			require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
			assert.Equal(t, tt.wantLevel, entry.Level)
			assert.Equal(t, tt.wantMsg, entry.Message)
		})
	}
}

func TestWithFields(t *testing.T) {
	var buf bytes.Buffer
	log := NewLogger(Config{Output: &buf})

	log.WithFields(Fields{"path": "data/latest.log"}).Error("read failed")

	var entry logEntry
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "error", entry.Level)
	assert.Equal(t, "data/latest.log", entry.Path)
}

func TestNop(t *testing.T) {
	log := Nop()
	assert.NotPanics(t, func() {
		log.WithFields(Fields{"k": "v"}).Error("discarded")
	})
}
